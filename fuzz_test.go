// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

import (
	"math/rand/v2"
	"slices"
	"testing"
)

// alphabet biased toward collisions, including multi-byte code points
var fuzzAlphabet = []rune{'a', 'b', 'c', 'g', 'o', 'é', '日', '本'}

func randomKey(prng *rand.Rand) string {
	n := prng.IntN(7)
	key := make([]rune, n)
	for i := range key {
		key[i] = fuzzAlphabet[prng.IntN(len(fuzzAlphabet))]
	}
	return string(key)
}

// model is the reference implementation, a map of insertion-ordered
// value multisets.
type model map[string][]int

func (m model) insert(key string, val int) { m[key] = append(m[key], val) }

func (m model) deleteFirst(key string, val int) bool {
	vals := m[key]
	for i, v := range vals {
		if v == val {
			vals = slices.Delete(vals, i, i+1)
			if len(vals) == 0 {
				delete(m, key)
			} else {
				m[key] = vals
			}
			return true
		}
	}
	return false
}

func (m model) size() int {
	n := 0
	for _, vals := range m {
		n += len(vals)
	}
	return n
}

// entries returns all (key, value) pairs in the contract order:
// keys in code point order, values per key in insertion order.
func (m model) entries(prefix string) (keys []string, vals []int) {
	sorted := make([]string, 0, len(m))
	for key := range m {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			sorted = append(sorted, key)
		}
	}
	slices.Sort(sorted)

	for _, key := range sorted {
		for _, val := range m[key] {
			keys = append(keys, key)
			vals = append(vals, val)
		}
	}
	return keys, vals
}

func FuzzTrieVsModel(f *testing.F) {
	// seed corpus
	f.Add(uint64(12345), 150, 2)
	f.Add(uint64(67890), 400, 3)
	f.Add(uint64(54321), 800, 50)
	// edge-case leaning seeds
	f.Add(uint64(0), 20, 1)
	f.Add(^uint64(0), 1000, 100)

	f.Fuzz(func(t *testing.T, seed uint64, ops, leafLimit int) {
		if ops < 1 || ops > 5000 || leafLimit < 1 || leafLimit > 500 {
			t.Skip("bounds")
		}

		prng := rand.New(rand.NewPCG(seed, 13))
		trie := new(Trie[int]).WithLeafLimit(leafLimit)
		ref := model{}

		for op := range ops {
			key := randomKey(prng)

			switch {
			case prng.IntN(4) == 0: // 25% deletes
				val := prng.IntN(ops)
				got, err := trie.Delete(key, val)
				if err != nil {
					t.Fatalf("op %d: Delete(%q, %d): %v", op, key, val, err)
				}
				if want := ref.deleteFirst(key, val); got != want {
					t.Fatalf("op %d: Delete(%q, %d) = %v, want %v", op, key, val, got, want)
				}

			default:
				if err := trie.Insert(key, op); err != nil {
					t.Fatalf("op %d: Insert(%q): %v", op, key, err)
				}
				ref.insert(key, op)
			}
		}

		if trie.Size() != ref.size() {
			t.Fatalf("Size() = %d, model has %d", trie.Size(), ref.size())
		}
		checkInvariants(t, trie)

		// compare a handful of prefix searches against the model
		for range 20 {
			prefix := randomKey(prng)
			wantKeys, wantVals := ref.entries(prefix)

			var gotKeys []string
			var gotVals []int
			for key, val := range trie.SearchPrefix(prefix, 0) {
				gotKeys = append(gotKeys, key)
				gotVals = append(gotVals, val)
			}

			if !slices.Equal(gotKeys, wantKeys) || !slices.Equal(gotVals, wantVals) {
				t.Fatalf("SearchPrefix(%q) mismatch\ngot:  %v %v\nwant: %v %v",
					prefix, gotKeys, gotVals, wantKeys, wantVals)
			}
		}
	})
}
