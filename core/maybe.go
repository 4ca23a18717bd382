// SPDX-License-Identifier: MIT

// Package core: NA-aware element type.
// Maybe[T] carries a value of T or the "missing" marker, independent of T's
// own value space (a missing float64 is not NaN, a missing string is not "").

package core

import "fmt"

// Maybe is one element of an NA-carrying sequence.
// The zero value is NA.
type Maybe[T any] struct {
	v  T
	ok bool
}

// Some wraps a defined value.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{v: v, ok: true}
}

// NA returns the missing marker for T.
func NA[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is defined.
func (m Maybe[T]) Get() (T, bool) {
	return m.v, m.ok
}

// IsNA reports whether m is missing.
func (m Maybe[T]) IsNA() bool {
	return !m.ok
}

// OrElse returns the value or def when missing.
func (m Maybe[T]) OrElse(def T) T {
	if m.ok {
		return m.v
	}
	return def
}

// String renders NA as "NA".
func (m Maybe[T]) String() string {
	if !m.ok {
		return "NA"
	}
	return fmt.Sprint(m.v)
}

// Somes lifts plain values into a sequence with no missing elements.
// Complexity: O(n).
func Somes[T any](xs ...T) []Maybe[T] {
	out := make([]Maybe[T], len(xs))
	for i, x := range xs {
		out[i] = Some(x)
	}
	return out
}

// Values splits an NA-carrying sequence into raw values and a defined-mask.
// Missing positions hold T's zero value.
// Complexity: O(n).
func Values[T any](ms []Maybe[T]) ([]T, []bool) {
	vals := make([]T, len(ms))
	mask := make([]bool, len(ms))
	for i, m := range ms {
		vals[i], mask[i] = m.Get()
	}
	return vals, mask
}

// EqualMaybe compares two elements with eq for defined values; two NA are equal.
func EqualMaybe[T any](a, b Maybe[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if !a.ok {
		return true
	}
	return eq(a.v, b.v)
}
