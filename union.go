// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

// Union merges all entries of other into t, the other trie is not
// modified. Entries present in both tries accumulate in the key's
// value multiset, t's values keep their insertion rank before
// other's.
//
// If V implements [Cloner], the payloads are deep cloned on the way,
// otherwise both tries share the payloads afterwards.
func (t *Trie[V]) Union(other *Trie[V]) {
	if other == nil {
		return
	}

	cloneFn := cloneFnFactory[V]()

	for key, val := range other.All() {
		if cloneFn != nil {
			val = cloneFn(val)
		}

		// keys from a well-formed trie are valid by construction
		t.insert(key, val)
	}
}
