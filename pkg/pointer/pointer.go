// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional fields such as a recipe's
favourite flag, where nil means "never set".
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T { return &v }

// Val dereferences p, treating nil as the zero value.
func Val[T any](p *T) (v T) {
	if p != nil {
		v = *p
	}
	return v
}

// Equal reports whether both pointers are nil or both point to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a fresh pointer holding the same value, or nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return To(*p)
}
