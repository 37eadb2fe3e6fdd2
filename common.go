// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package tart

import "reflect"

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used.
// Otherwise, [reflect.DeepEqual] is used as a fallback.
func equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Trie.Clone] and [Trie.Union] use
// its Clone method to perform deep copies of the payload.
type Cloner[V any] interface {
	Clone() V
}

// cloneFunc is a type definition for a function that takes a value of
// type V and returns the (possibly cloned) value of type V.
type cloneFunc[V any] func(V) V

// cloneFnFactory returns a cloneFunc, or nil if V does not
// implement Cloner[V].
func cloneFnFactory[V any]() cloneFunc[V] {
	var zero V
	// you can't assert directly on a type parameter
	if _, ok := any(zero).(Cloner[V]); ok {
		return cloneVal[V]
	}
	return nil
}

// cloneVal returns a deep clone of val by calling its Clone method when
// val implements Cloner[V]. If val does not implement Cloner[V] or the
// asserted Cloner is nil, val is returned unchanged.
func cloneVal[V any](val V) V {
	c, ok := any(val).(Cloner[V])
	if !ok || c == nil {
		return val
	}
	return c.Clone()
}

// cloneValues clones a value multiset, preserving insertion order.
func cloneValues[V any](vals []V, cloneFn cloneFunc[V]) []V {
	if vals == nil {
		return nil
	}
	c := make([]V, len(vals))
	for i, v := range vals {
		if cloneFn != nil {
			v = cloneFn(v)
		}
		c[i] = v
	}
	return c
}
