// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart_test

import (
	"slices"
	"testing"

	"github.com/gaissmai/tart"
)

// payload implements tart.Cloner and tart.Equaler.
type payload struct {
	hits []int
}

func (p *payload) Clone() *payload {
	return &payload{hits: slices.Clone(p.hits)}
}

func (p *payload) Equal(other *payload) bool {
	return slices.Equal(p.hits, other.hits)
}

func TestCloneIndependent(t *testing.T) {
	t.Parallel()

	trie := new(tart.Trie[int]).WithLeafLimit(2)
	for i, key := range []string{"go", "gopher", "git", "gob", "rust"} {
		if err := trie.Insert(key, i); err != nil {
			t.Fatalf("Insert(%q): %v", key, err)
		}
	}

	clone := trie.Clone()

	// mutate the original, the clone must not change
	if _, err := trie.DeleteKey("go"); err != nil {
		t.Fatal(err)
	}
	if err := trie.Insert("zig", 99); err != nil {
		t.Fatal(err)
	}

	var got []string
	for key := range clone.All() {
		got = append(got, key)
	}

	want := []string{"git", "go", "gob", "gopher", "rust"}
	if !slices.Equal(got, want) {
		t.Errorf("clone changed with original:\ngot:  %v\nwant: %v", got, want)
	}
	if clone.Size() != 5 {
		t.Errorf("clone Size() = %d, want 5", clone.Size())
	}
}

func TestCloneNil(t *testing.T) {
	t.Parallel()

	var trie *tart.Trie[int]
	if trie.Clone() != nil {
		t.Error("Clone of nil trie must be nil")
	}
}

func TestCloneDeepPayload(t *testing.T) {
	t.Parallel()

	trie := new(tart.Trie[*payload])
	p := &payload{hits: []int{1}}
	if err := trie.Insert("go", p); err != nil {
		t.Fatal(err)
	}

	clone := trie.Clone()

	// payload implements Cloner, the clone must hold a deep copy
	p.hits[0] = 42

	vals, err := clone.Get("go")
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 1 || vals[0].hits[0] != 1 {
		t.Errorf("payload not deep cloned: %v", vals)
	}
}

func TestDeleteWithEqualer(t *testing.T) {
	t.Parallel()

	trie := new(tart.Trie[*payload])
	if err := trie.Insert("go", &payload{hits: []int{1, 2}}); err != nil {
		t.Fatal(err)
	}

	// a different pointer with equal content matches via Equaler
	ok, err := trie.Delete("go", &payload{hits: []int{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Delete with Equaler payload did not match")
	}
	if trie.Size() != 0 {
		t.Errorf("Size() = %d, want 0", trie.Size())
	}
}
