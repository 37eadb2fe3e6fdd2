// Copyright (c) 2026 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package runes provides code point helpers for the tart trie.
//
// Keys are indexed per Unicode code point, never per byte, so that
// branching can't split inside a multi-byte UTF-8 sequence. All key
// material entering the trie is decoded and validated here.
package runes

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned for byte sequences that are not
// well-formed UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Decode returns s as a slice of code points.
// Malformed input fails fast instead of being silently replaced
// with U+FFFD as string-to-rune conversion would do.
func Decode(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidEncoding
	}
	return []rune(s), nil
}

// Validate reports a malformed key without decoding it.
func Validate(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidEncoding
	}
	return nil
}

// CommonPrefixLen returns the length of the common prefix of a and b,
// counted in code points. Both strings must be valid UTF-8.
func CommonPrefixLen(a, b string) int {
	n := 0
	for len(a) > 0 && len(b) > 0 {
		ra, sizeA := utf8.DecodeRuneInString(a)
		rb, sizeB := utf8.DecodeRuneInString(b)
		if ra != rb {
			break
		}
		a = a[sizeA:]
		b = b[sizeB:]
		n++
	}
	return n
}

// HasPrefix reports whether s starts with prefix.
//
// For valid UTF-8 the bytewise comparison is also correct on code
// point boundaries, no decoding needed.
func HasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
