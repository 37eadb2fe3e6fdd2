// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

import (
	"iter"
	"unicode/utf8"

	"github.com/gaissmai/tart/internal/runes"
)

// Entry is one (key, value) pair of the trie, ready to render in a
// suggestion list.
type Entry[V any] struct {
	Key   string
	Value V
}

// SearchPrefix returns an iterator over all entries whose key starts
// with prefix, the empty prefix matches every key.
//
// The iteration is lazy and depth-first in code point order: a key
// sorts before its extensions, per key the values come in insertion
// order. The order is deterministic, also when limit truncates the
// result.
//
// The iteration ends after limit results, limit <= 0 means no limit.
// Callers building suggestion lists should always pass a small
// limit. The sequence is finite and restartable only by calling
// SearchPrefix again, it is not a resumable cursor. Abandoning the
// sequence early has no side effects.
//
// A malformed prefix matches nothing; use [ValidKey] or [Trie.Suggest]
// to surface [ErrInvalidKey] instead.
//
// Entries must not be inserted or deleted during iteration, otherwise
// the behavior is undefined.
func (t *Trie[V]) SearchPrefix(prefix string, limit int) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		// iterator setup
		if runes.Validate(prefix) != nil {
			return
		}

		yield = capped(limit, yield)

		// descend, consuming prefix code points, never creating nodes
		n := &t.root
		pos := 0
		for pos < len(prefix) {
			r, size := utf8.DecodeRuneInString(prefix[pos:])

			kid, ok := n.children.Get(r)
			if !ok {
				// no key starts with prefix
				return
			}

			switch kid := kid.(type) {
			case *innerNode[V]:
				n = kid
				pos += size

			case *leafNode[V]:
				// the matching branch is inside a compact leaf,
				// match the unconsumed prefix rest against the
				// stored suffixes
				kid.eachMatch(prefix[:pos+size], prefix[pos+size:], yield)
				return
			}
		}

		// prefix fully consumed, n roots the matching branch
		n.allRec(prefix, yield)
	}
}

// Suggest returns at most limit entries whose key starts with
// prefix, eagerly materialized in the [Trie.SearchPrefix] order.
// A malformed prefix returns [ErrInvalidKey].
func (t *Trie[V]) Suggest(prefix string, limit int) ([]Entry[V], error) {
	if err := ValidKey(prefix); err != nil {
		return nil, err
	}

	var result []Entry[V]
	if limit > 0 {
		result = make([]Entry[V], 0, limit)
	}

	for key, val := range t.SearchPrefix(prefix, limit) {
		result = append(result, Entry[V]{Key: key, Value: val})
	}

	return result, nil
}

// All returns an iterator over all entries of the trie, in the same
// deterministic order as [Trie.SearchPrefix] with the empty prefix.
//
// Entries must not be inserted or deleted during iteration, otherwise
// the behavior is undefined.
func (t *Trie[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		t.root.allRec("", yield)
	}
}

// capped wraps yield to stop the traversal after limit results,
// limit <= 0 means no limit.
func capped[V any](limit int, yield func(string, V) bool) func(string, V) bool {
	if limit <= 0 {
		return yield
	}

	n := 0
	return func(key string, val V) bool {
		if !yield(key, val) {
			return false
		}
		n++
		return n < limit
	}
}
