// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

import (
	"unicode/utf8"

	"github.com/gaissmai/tart/internal/runes"
	"github.com/gaissmai/tart/internal/sparse"
)

// innerNode is a branching point in the key space.
//
// The children are keyed by single code points and hold either a
// *innerNode or a *leafNode, the variant is switched explicitly at
// every use. Each child has exactly one parent, subtrees are never
// shared.
//
// values is the multiset of payloads whose key terminates exactly at
// this node, in insertion order. Most inner nodes are pass-through
// and hold no values.
type innerNode[V any] struct {
	children sparse.Array[rune, any]
	values   []V
}

// leafNode is the compact variant: instead of a subtree of
// single-code-point nodes it holds the remaining key suffixes
// directly, as a small sorted list of (suffix, values) groups.
//
// The suffixes are strings of code points, the empty suffix is
// legal. A leaf holds at most the trie's leaf limit of distinct
// suffixes before it must be expanded.
//
// Suffix ordering note: bytewise comparison of valid UTF-8 equals
// code point order, so the sorted groups are already in lexical
// code point order without decoding.
type leafNode[V any] struct {
	groups sparse.Array[string, []V]
}

// isEmpty returns true if the node has neither values nor children.
func (n *innerNode[V]) isEmpty() bool {
	return len(n.values) == 0 && n.children.Len() == 0
}

// isEmpty returns true if the leaf holds no suffix groups.
func (l *leafNode[V]) isEmpty() bool {
	return l.groups.Len() == 0
}

// expand converts an over-capacity compact leaf into an inner node.
//
// The first code point of every stored suffix becomes the
// child-selector, the remainder is pushed into a new compact leaf
// under that child. Values of the empty suffix terminate at the new
// inner node itself.
//
// The groups are sorted, so all suffixes sharing a first code point
// are adjacent and end up in the same child leaf, preserving order.
func (l *leafNode[V]) expand() *innerNode[V] {
	inner := new(innerNode[V])

	for i, suffix := range l.groups.Keys {
		vals := l.groups.Items[i]

		if suffix == "" {
			inner.values = vals
			continue
		}

		r, size := utf8.DecodeRuneInString(suffix)
		rest := suffix[size:]

		if kid, ok := inner.children.Get(r); ok {
			kid.(*leafNode[V]).groups.InsertAt(rest, vals)
			continue
		}

		kid := new(leafNode[V])
		kid.groups.InsertAt(rest, vals)
		inner.children.InsertAt(r, kid)
	}

	return inner
}

// allRec yields all entries under n in depth-first code point order,
// path is the key consumed so far. Values at a node are yielded
// before any deeper key, so shorter keys sort before their
// extensions. Per key the values come in insertion order.
//
// If the yield function returns false the recursion ends prematurely
// and the false value is propagated.
func (n *innerNode[V]) allRec(path string, yield func(string, V) bool) bool {
	for _, val := range n.values {
		if !yield(path, val) {
			// premature end of recursion
			return false
		}
	}

	for i, r := range n.children.Keys {
		switch kid := n.children.Items[i].(type) {
		case *innerNode[V]:
			if !kid.allRec(path+string(r), yield) {
				return false
			}
		case *leafNode[V]:
			if !kid.eachMatch(path+string(r), "", yield) {
				return false
			}
		}
	}

	return true
}

// eachMatch yields all entries of the leaf whose suffix starts with
// rest, in suffix sort order. base is the part of the key space
// already consumed on the way down to this leaf, the full key is
// base plus the stored suffix.
func (l *leafNode[V]) eachMatch(base, rest string, yield func(string, V) bool) bool {
	for i, suffix := range l.groups.Keys {
		if !runes.HasPrefix(suffix, rest) {
			continue
		}

		key := base + suffix
		for _, val := range l.groups.Items[i] {
			if !yield(key, val) {
				return false
			}
		}
	}

	return true
}

// cloneRec clones the node recursively. If cloneFn is not nil it is
// applied to every payload for deep cloning.
func (n *innerNode[V]) cloneRec(cloneFn cloneFunc[V]) *innerNode[V] {
	c := &innerNode[V]{
		children: *n.children.Copy(),
		values:   cloneValues(n.values, cloneFn),
	}

	// now clone the children deep
	for i, kid := range c.children.Items {
		switch kid := kid.(type) {
		case *innerNode[V]:
			c.children.Items[i] = kid.cloneRec(cloneFn)
		case *leafNode[V]:
			c.children.Items[i] = kid.cloneLeaf(cloneFn)
		}
	}

	return c
}

// cloneLeaf clones the leaf and its value multisets.
func (l *leafNode[V]) cloneLeaf(cloneFn cloneFunc[V]) *leafNode[V] {
	c := &leafNode[V]{groups: *l.groups.Copy()}
	for i, vals := range c.groups.Items {
		c.groups.Items[i] = cloneValues(vals, cloneFn)
	}
	return c
}

// numEntriesRec counts the stored (key, value) pairs under n.
// Only used for consistency checks, [Trie.Size] is O(1).
func (n *innerNode[V]) numEntriesRec() int {
	size := len(n.values)
	for _, kid := range n.children.Items {
		switch kid := kid.(type) {
		case *innerNode[V]:
			size += kid.numEntriesRec()
		case *leafNode[V]:
			for _, vals := range kid.groups.Items {
				size += len(vals)
			}
		}
	}
	return size
}
