// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

import (
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/gaissmai/tart/internal/runes"
)

// DefaultLeafLimit is the default upper bound of distinct key
// suffixes held in one compact leaf before the leaf is expanded into
// an inner node, see [Trie.WithLeafLimit].
const DefaultLeafLimit = 50

// ErrInvalidKey is returned when a key or prefix is not well-formed
// UTF-8. Malformed input fails fast at the API boundary instead of
// being silently truncated or mis-split between code points.
var ErrInvalidKey = fmt.Errorf("tart: invalid key: %w", runes.ErrInvalidEncoding)

// Trie is a prefix index with payload V.
//
// The zero value is ready to use.
//
// A single key may be inserted multiple times, its values form an
// insertion-ordered multiset; repeated inserts accumulate, they
// never overwrite.
//
// The Trie is safe for concurrent reads, but concurrent reads and
// writes must be externally synchronized. Mutation via Insert/Delete
// requires locks, or alternatively, take a [Trie.Clone] under a
// short lock and read from the copy.
//
// A Trie must not be copied by value; always pass by pointer.
type Trie[V any] struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	// the root, always the inner variant, even when the trie is empty
	root innerNode[V]

	// the number of stored (key, value) pairs
	size int

	// max distinct suffixes per compact leaf, 0 means DefaultLeafLimit
	leafLimit int
}

// WithLeafLimit sets the capacity of the compact leaves and returns
// the trie for chaining.
//
// Lower limits bias toward more, smaller inner nodes: faster prefix
// descent, more memory overhead per entry. Higher limits bias toward
// fewer, larger compact leaves: slower linear scan within a leaf,
// less memory overhead. Limits < 1 select [DefaultLeafLimit].
//
// WithLeafLimit must be called before the first Insert,
// it panics on a non-empty trie.
func (t *Trie[V]) WithLeafLimit(limit int) *Trie[V] {
	if t.size != 0 {
		panic("tart: WithLeafLimit called on non-empty Trie")
	}
	if limit < 1 {
		limit = 0
	}
	t.leafLimit = limit
	return t
}

// maxLeafEntries, the effective compact leaf capacity.
func (t *Trie[V]) maxLeafEntries() int {
	if t.leafLimit < 1 {
		return DefaultLeafLimit
	}
	return t.leafLimit
}

// Size returns the total number of stored (key, value) pairs.
// The counter is maintained on every successful Insert/Delete,
// Size is O(1).
func (t *Trie[V]) Size() int {
	return t.size
}

// ValidKey reports whether key is acceptable as key or prefix,
// it returns nil or [ErrInvalidKey].
func ValidKey(key string) error {
	if runes.Validate(key) != nil {
		return ErrInvalidKey
	}
	return nil
}

// Insert adds (key, val) to the trie. Inserting the same key again,
// with the same or another value, accumulates in the key's value
// multiset.
//
// The only error condition is a malformed key, [ErrInvalidKey].
func (t *Trie[V]) Insert(key string, val V) error {
	if err := ValidKey(key); err != nil {
		return err
	}
	t.insert(key, val)
	return nil
}

// insert, key is already validated.
//
// Walks the code points of key from the root, creating missing
// children lazily. A miss lands the whole remaining suffix in a new
// compact leaf. An over-capacity leaf on the path is expanded in
// place and the walk continues against the new inner node; repeated
// expansions along a long shared suffix are handled by the same
// loop.
func (t *Trie[V]) insert(key string, val V) {
	n := &t.root

	// pos is the byte offset of the next unconsumed code point;
	// key is valid UTF-8, byte slicing never splits a code point
	pos := 0
	for {
		// key fully consumed, val terminates at this inner node
		if pos == len(key) {
			n.values = append(n.values, val)
			t.size++
			return
		}

		r, size := utf8.DecodeRuneInString(key[pos:])
		rest := key[pos+size:]

		kid, ok := n.children.Get(r)
		if !ok {
			// no child, park the whole remaining suffix in a new leaf
			leaf := new(leafNode[V])
			leaf.groups.InsertAt(rest, []V{val})
			n.children.InsertAt(r, leaf)
			t.size++
			return
		}

		switch kid := kid.(type) {
		case *innerNode[V]:
			// descend
			n = kid
			pos += size

		case *leafNode[V]:
			// exact suffix group, accumulate in the multiset
			if _, ok := kid.groups.Get(rest); ok {
				kid.groups.UpdateAt(rest, func(vals []V, _ bool) []V {
					return append(vals, val)
				})
				t.size++
				return
			}

			// leaf has room for a new suffix group
			if kid.groups.Len() < t.maxLeafEntries() {
				kid.groups.InsertAt(rest, []V{val})
				t.size++
				return
			}

			// leaf at capacity, expand it into an inner node,
			// replace it in the parent and retry against the
			// now-inner node
			inner := kid.expand()
			n.children.InsertAt(r, inner)
			n = inner
			pos += size
		}
	}
}

// Get returns the values stored under exactly key, in insertion
// order, or nil if key is not present. The returned slice is a copy.
func (t *Trie[V]) Get(key string) ([]V, error) {
	if err := ValidKey(key); err != nil {
		return nil, err
	}

	n := &t.root
	pos := 0
	for {
		if pos == len(key) {
			if len(n.values) == 0 {
				return nil, nil
			}
			return slices.Clone(n.values), nil
		}

		r, size := utf8.DecodeRuneInString(key[pos:])

		kid, ok := n.children.Get(r)
		if !ok {
			return nil, nil
		}

		switch kid := kid.(type) {
		case *innerNode[V]:
			n = kid
			pos += size
		case *leafNode[V]:
			vals, ok := kid.groups.Get(key[pos+size:])
			if !ok {
				return nil, nil
			}
			return slices.Clone(vals), nil
		}
	}
}

// Delete removes the first occurrence equal to val from the multiset
// stored under key and reports whether a value was removed.
//
// Equality is decided by [Equaler] if V implements it, with
// reflect.DeepEqual as fallback. Deleting a nonexistent key or value
// is a no-op, not an error; the only error is a malformed key.
func (t *Trie[V]) Delete(key string, val V) (bool, error) {
	return t.deleteFirst(key, func(v V) bool { return equal(v, val) })
}

// DeleteFunc removes the first value under key for which sel returns
// true and reports whether a value was removed.
func (t *Trie[V]) DeleteFunc(key string, sel func(V) bool) (bool, error) {
	if sel == nil {
		return false, nil
	}
	return t.deleteFirst(key, sel)
}

// DeleteKey removes key with its whole value multiset and returns
// the number of removed values.
func (t *Trie[V]) DeleteKey(key string) (int, error) {
	if err := ValidKey(key); err != nil {
		return 0, err
	}

	removed := t.descend(key, func(vals []V) ([]V, int) {
		return nil, len(vals)
	})
	return removed, nil
}

// deleteFirst removes the first value under key selected by sel.
func (t *Trie[V]) deleteFirst(key string, sel func(V) bool) (bool, error) {
	if err := ValidKey(key); err != nil {
		return false, err
	}

	removed := t.descend(key, func(vals []V) ([]V, int) {
		for i, v := range vals {
			if sel(v) {
				return slices.Delete(vals, i, i+1), 1
			}
		}
		return vals, 0
	})
	return removed > 0, nil
}

// descend walks to the terminal value multiset of key and applies
// shrink to it. shrink returns the new multiset and the number of
// removed values. After a removal, now-empty nodes are pruned toward
// the root, stopping at the first ancestor that still has another
// child or a non-empty multiset. The root is never pruned.
//
// descend returns the number of removed values, 0 if key is not
// present or shrink removed nothing.
func (t *Trie[V]) descend(key string, shrink func([]V) ([]V, int)) int {
	n := &t.root

	// stack of the traversed inner nodes and the code points taken,
	// to purge dangling paths after deletion
	var stack []*innerNode[V]
	var taken []rune

	removed := 0
	pos := 0

walk:
	for {
		if pos == len(key) {
			if len(n.values) == 0 {
				return 0
			}
			n.values, removed = shrink(n.values)
			if len(n.values) == 0 {
				n.values = nil
			}
			break walk
		}

		r, size := utf8.DecodeRuneInString(key[pos:])

		kid, ok := n.children.Get(r)
		if !ok {
			// no child, nothing to delete
			return 0
		}

		switch kid := kid.(type) {
		case *innerNode[V]:
			stack = append(stack, n)
			taken = append(taken, r)
			n = kid
			pos += size

		case *leafNode[V]:
			rest := key[pos+size:]

			vals, ok := kid.groups.Get(rest)
			if !ok {
				return 0
			}

			vals, removed = shrink(vals)
			if removed == 0 {
				return 0
			}

			if len(vals) == 0 {
				kid.groups.DeleteAt(rest)
			} else {
				kid.groups.InsertAt(rest, vals)
			}

			if kid.isEmpty() {
				n.children.DeleteAt(r)
			}
			break walk
		}
	}

	if removed == 0 {
		return 0
	}
	t.size -= removed

	// purge dangling path, if needed
	for i := len(stack) - 1; i >= 0; i-- {
		if n.isEmpty() {
			stack[i].children.DeleteAt(taken[i])
		}

		// go up
		n = stack[i]
	}

	return removed
}

// Clone returns a deep copy of the trie. If V implements [Cloner],
// the payloads are deep cloned as well, otherwise they are copied by
// assignment.
func (t *Trie[V]) Clone() *Trie[V] {
	if t == nil {
		return nil
	}

	c := new(Trie[V])
	c.leafLimit = t.leafLimit
	c.size = t.size
	c.root = *t.root.cloneRec(cloneFnFactory[V]())

	return c
}
