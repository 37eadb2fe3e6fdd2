// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package sparse implements a generic sparse array with sorted keys.
//
// The key space of the trie is the full set of Unicode code points
// (or arbitrary key suffixes), far too large for popcount-compressed
// bitset indexing. A sorted slice pair with binary search keeps the
// memory footprint proportional to the population and gives ordered
// iteration for free.
package sparse

import (
	"cmp"
	"slices"
)

// Array, a generic sparse array with sorted keys K and payload T.
// Keys and Items are parallel slices, Keys is kept in ascending order.
//
// The zero value is ready to use.
type Array[K cmp.Ordered, T any] struct {
	Keys  []K
	Items []T
}

// Len returns the number of items in the sparse array.
func (s *Array[K, T]) Len() int {
	return len(s.Items)
}

// rank returns the slice index for k and whether k is present.
func (s *Array[K, T]) rank(k K) (int, bool) {
	return slices.BinarySearch(s.Keys, k)
}

// InsertAt inserts val at k, keeping the keys sorted.
// If k already exists, its item is overwritten with val and true is returned.
func (s *Array[K, T]) InsertAt(k K, val T) (exists bool) {
	i, ok := s.rank(k)
	if ok {
		s.Items[i] = val
		return true
	}

	s.Keys = slices.Insert(s.Keys, i, k)
	s.Items = slices.Insert(s.Items, i, val)
	return false
}

// DeleteAt removes the item at k. It is valid to delete a non-existent key.
func (s *Array[K, T]) DeleteAt(k K) (T, bool) {
	var zero T
	i, ok := s.rank(k)
	if !ok {
		return zero, false
	}

	val := s.Items[i]
	s.Keys = slices.Delete(s.Keys, i, i+1)
	s.Items = slices.Delete(s.Items, i, i+1)
	return val, true
}

// Get returns the item at k from the sparse array.
func (s *Array[K, T]) Get(k K) (val T, ok bool) {
	var zero T
	if i, ok := s.rank(k); ok {
		return s.Items[i], true
	}
	return zero, false
}

// MustGet, use it only after a successful Get or the behavior is undefined,
// it panics on missing keys.
func (s *Array[K, T]) MustGet(k K) T {
	i, ok := s.rank(k)
	if !ok {
		panic("MustGet: key not found")
	}
	return s.Items[i]
}

// UpdateAt updates the item at k via callback. The callback is called
// with the old item and true if k exists, or the zero item and false.
// The returned item is stored at k.
func (s *Array[K, T]) UpdateAt(k K, cb func(T, bool) T) {
	i, ok := s.rank(k)
	if ok {
		s.Items[i] = cb(s.Items[i], true)
		return
	}

	var zero T
	s.Keys = slices.Insert(s.Keys, i, k)
	s.Items = slices.Insert(s.Items, i, cb(zero, false))
}

// Copy returns a shallow copy of the sparse array.
// The keys are copied, the items are copied by assignment.
func (s *Array[K, T]) Copy() *Array[K, T] {
	return &Array[K, T]{
		Keys:  slices.Clone(s.Keys),
		Items: slices.Clone(s.Items),
	}
}
