// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/tart/internal/runes"
)

// kid, one key with its value multiset plus the direct kids below
// it in the prefix hierarchy. A key's parent is the longest stored
// proper prefix of that key.
type kid[V any] struct {
	key  string
	vals []V
	kids []*kid[V]
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Trie.Fprint].
func (t *Trie[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered keys as
// string, just a wrapper for [Trie.Fprint].
// If Fprint returns an error, String panics.
func (t *Trie[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered keys with
// their value multisets to w.
//
// The order from top to bottom is the code point sort order of the
// keys and the nesting follows the prefix relation between stored
// keys.
//
//	▼
//	├─ git (2)
//	└─ go (1, 4)
//	   └─ gopher (3)
func (t *Trie[V]) Fprint(w io.Writer) error {
	root := t.buildKids()
	if len(root.kids) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return fprintRec(w, root, "")
}

// buildKids collects the entries grouped per key and nests them by
// the longest-stored-proper-prefix relation. The keys arrive in
// sorted order from allRec, so the parent of a key is always the
// nearest stack entry whose key is a prefix of it.
func (t *Trie[V]) buildKids() *kid[V] {
	root := &kid[V]{}
	stack := []*kid[V]{root}

	var cur *kid[V]
	t.root.allRec("", func(key string, val V) bool {
		if cur != nil && cur.key == key {
			// another value of the same key's multiset
			cur.vals = append(cur.vals, val)
			return true
		}

		// unwind the stack to the longest stored prefix of key
		for len(stack) > 1 {
			top := stack[len(stack)-1]
			if runes.HasPrefix(key, top.key) {
				break
			}
			stack = stack[:len(stack)-1]
		}

		cur = &kid[V]{key: key, vals: []V{val}}
		parent := stack[len(stack)-1]
		parent.kids = append(parent.kids, cur)
		stack = append(stack, cur)
		return true
	})

	return root
}

// fprintRec, the output is a hierarchical key tree starting with
// this kid.
func fprintRec[V any](w io.Writer, parent *kid[V], pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	// for all direct kids under this node ...
	for i, k := range parent.kids {
		// ... treat last kid special
		if i == len(parent.kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		// print key and value multiset, padded with glyphe
		if _, err := fmt.Fprintf(w, "%s%s (%s)\n", pad+glyphe, k.key, valsString(k.vals)); err != nil {
			return err
		}

		if err := fprintRec(w, k, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// valsString, the value multiset in insertion order, comma separated.
func valsString[V any](vals []V) string {
	w := new(strings.Builder)
	for i, val := range vals {
		if i > 0 {
			w.WriteString(", ")
		}
		fmt.Fprintf(w, "%v", val)
	}

	return w.String()
}
