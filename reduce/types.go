// SPDX-License-Identifier: MIT

package reduce

import "github.com/katalvlaran/lvfunc/core"

// Direction controls the association order of a fold.
//
//   - Left : f(f(f(x0, x1), x2), ...); init, if any, is prepended.
//   - Right: f(x0, f(x1, ... f(xn-2, xn-1))); init, if any, is appended.
//
// The two differ observably only when f is not commutative.
type Direction int

const (
	// Left folds from the first element (default).
	Left Direction = iota

	// Right folds from the last element.
	Right
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Options configures Reduce and Accumulate.
//
// Fields:
//   - Init     : optional seed. Absent (core.NA) means the first (Left) or
//     last (Right) element seeds the fold and empty input is an error.
//   - Direction: Left or Right.
//
// Example:
//
//	o := reduce.Options[string]{Init: core.Some(""), Direction: reduce.Right}
//	s, err := reduce.Reduce(words, concat, o)
type Options[T any] struct {
	Init      core.Maybe[T]
	Direction Direction
}

// DefaultOptions returns a left fold without a seed.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Init: core.NA[T](), Direction: Left}
}
