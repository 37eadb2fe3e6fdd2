// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package tart provides a Trie for Autocomplete Retrieval of Text,
// an in-memory prefix index answering "all entries whose key starts
// with prefix P" in time proportional to the prefix length plus the
// number of results, independent of the total number of entries.
//
// The trie is a hybrid: sparsely populated subtrees are held in
// compact leaves, small sorted lists of (key-suffix, values) groups,
// instead of chains of single-character nodes. A compact leaf that
// outgrows its capacity is expanded into a proper inner node on the
// fly. The capacity is tunable per trie and trades scan time within
// a leaf against memory overhead per entry.
//
// Keys are sequences of Unicode code points, never raw bytes, so the
// trie branches on character boundaries and stays correct for
// multi-byte UTF-8 input. A single key may hold multiple values, the
// values of a key form an insertion-ordered multiset.
//
// Iteration is depth-first in code point order, making the result of
// a prefix search directly renderable as a suggestion list.
package tart
