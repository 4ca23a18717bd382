// SPDX-License-Identifier: MIT

package predicate

import (
	"github.com/katalvlaran/lvfunc/core"
)

// Filter returns the elements of xs for which pred holds, in order.
// Empty input yields an empty, non-nil slice.
// Complexity: O(n).
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reject returns the elements of xs for which pred does not hold.
func Reject[T any](xs []T, pred func(T) bool) []T {
	return Filter(xs, func(x T) bool { return !pred(x) })
}

// Find returns the first element satisfying pred, or the last one when
// fromEnd is set. ok is false when nothing matches or xs is empty.
func Find[T any](xs []T, pred func(T) bool, fromEnd bool) (T, bool) {
	i, ok := Position(xs, pred, fromEnd)
	if !ok {
		var zero T
		return zero, false
	}
	return xs[i], true
}

// Position is the index analog of Find: the first (or last, when fromEnd)
// index whose element satisfies pred.
// Complexity: O(n) worst case; stops at the first hit.
func Position[T any](xs []T, pred func(T) bool, fromEnd bool) (int, bool) {
	if fromEnd {
		for i := len(xs) - 1; i >= 0; i-- {
			if pred(xs[i]) {
				return i, true
			}
		}
		return -1, false
	}
	for i, x := range xs {
		if pred(x) {
			return i, true
		}
	}
	return -1, false
}

// Where returns the length-preserving mask of pred over xs.
// Complexity: O(n).
func Where[T any](xs []T, pred func(T) bool) []bool {
	mask := make([]bool, len(xs))
	for i, x := range xs {
		mask[i] = pred(x)
	}
	return mask
}

// Select returns xs at the positions where mask is true.
// Filter(xs, p) equals Select(xs, Where(xs, p)).
//
// Errors: *core.LengthMismatch when len(mask) != len(xs).
func Select[T any](xs []T, mask []bool) ([]T, error) {
	if len(xs) != len(mask) {
		return nil, core.Wrap("predicate.Select", &core.LengthMismatch{Left: len(xs), Right: len(mask)})
	}
	out := make([]T, 0, len(xs))
	for i, keep := range mask {
		if keep {
			out = append(out, xs[i])
		}
	}
	return out, nil
}

// Count returns how many elements satisfy pred.
func Count[T any](xs []T, pred func(T) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}
	return n
}

// Some reports whether at least one element satisfies pred (false for empty xs).
func Some[T any](xs []T, pred func(T) bool) bool {
	_, ok := Position(xs, pred, false)
	return ok
}

// Every reports whether all elements satisfy pred (true for empty xs).
func Every[T any](xs []T, pred func(T) bool) bool {
	_, ok := Position(xs, func(x T) bool { return !pred(x) }, false)
	return !ok
}

// Defined is the predicate "element is not NA" for NA-carrying sequences.
func Defined[T any](m core.Maybe[T]) bool {
	return !m.IsNA()
}

// Not negates pred.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool { return !pred(x) }
}
