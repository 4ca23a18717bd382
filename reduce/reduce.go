// SPDX-License-Identifier: MIT

package reduce

import (
	"fmt"

	"github.com/katalvlaran/lvfunc/core"
)

const (
	opReduce     = "reduce.Reduce"
	opAccumulate = "reduce.Accumulate"
	opScanWith   = "reduce.ScanWith"
)

// Reduce folds xs to a single value with the binary function f.
//
// Errors:
//   - core.ErrEmptyReduction when xs is empty and o.Init is absent.
//
// Complexity: O(n) calls of f, O(1) extra space.
func Reduce[T any](xs []T, f func(T, T) T, o Options[T]) (T, error) {
	return TryReduce(xs, lift(f), o)
}

// TryReduce is Reduce with a fallible combining function.
//
// Errors:
//   - core.ErrEmptyReduction as for Reduce.
//   - *core.CallbackFailure{Index} where Index is the element being folded in.
func TryReduce[T any](xs []T, f func(T, T) (T, error), o Options[T]) (T, error) {
	acc, _, err := fold(xs, f, o, false)
	if err != nil {
		var zero T
		return zero, core.Wrap(opReduce, err)
	}
	return acc, nil
}

// Accumulate is the trace form of Reduce: it returns every intermediate
// accumulator in input order.
//
// Behavior highlights:
//   - Left:  out[0] = init (or x0), out[k] = f(out[k-1], next element).
//   - Right: out[i] is the fold of xs[i:] (plus init); the seed, if any, is
//     the last element.
//   - len(out) == len(xs), or len(xs)+1 when o.Init is present.
//
// Complexity: O(n) calls of f, O(n) space.
func Accumulate[T any](xs []T, f func(T, T) T, o Options[T]) ([]T, error) {
	return TryAccumulate(xs, lift(f), o)
}

// TryAccumulate is Accumulate with a fallible combining function.
func TryAccumulate[T any](xs []T, f func(T, T) (T, error), o Options[T]) ([]T, error) {
	_, trace, err := fold(xs, f, o, true)
	if err != nil {
		return nil, core.Wrap(opAccumulate, err)
	}
	return trace, nil
}

// Fold threads an explicit accumulator of a different type through xs from
// left to right and returns it. The caller owns the accumulator; nothing is
// captured or mutated behind the caller's back.
func Fold[T, S any](xs []T, init S, step func(S, T) S) S {
	acc := init
	for _, x := range xs {
		acc = step(acc, x)
	}
	return acc
}

// ScanWith runs a custom, possibly non-associative step over xs where each
// output depends on the previous output: out[i] = step(out[i-1], xs[i]) with
// out[-1] = init. len(out) == len(xs); init itself is not included.
func ScanWith[T, S any](xs []T, init S, step func(S, T) S) []S {
	out, _ := TryScanWith(xs, init, func(s S, x T) (S, error) { return step(s, x), nil })
	return out
}

// TryScanWith is ScanWith with a fallible step.
// Errors: *core.CallbackFailure{Index} for the failing element.
func TryScanWith[T, S any](xs []T, init S, step func(S, T) (S, error)) ([]S, error) {
	out := make([]S, len(xs))
	prev := init
	for i, x := range xs {
		next, err := step(prev, x)
		if err != nil {
			return nil, core.Wrap(opScanWith, &core.CallbackFailure{Index: i, Cause: err})
		}
		out[i] = next
		prev = next
	}
	return out, nil
}

// fold is the shared engine. trace, when requested, is returned in input order.
func fold[T any](xs []T, f func(T, T) (T, error), o Options[T], trace bool) (T, []T, error) {
	var zero T
	init, seeded := o.Init.Get()
	n := len(xs)
	if n == 0 && !seeded {
		return zero, nil, fmt.Errorf("%w (direction %s)", core.ErrEmptyReduction, o.Direction)
	}

	if o.Direction == Right {
		return foldRight(xs, f, init, seeded, trace)
	}

	// Left: seed with init or x0, then fold forward.
	var out []T
	acc, start := init, 0
	if !seeded {
		acc, start = xs[0], 1
	}
	if trace {
		out = make([]T, 0, n+1)
		out = append(out, acc)
	}
	var i int
	var err error
	for i = start; i < n; i++ {
		if acc, err = f(acc, xs[i]); err != nil {
			return zero, nil, &core.CallbackFailure{Index: i, Cause: err}
		}
		if trace {
			out = append(out, acc)
		}
	}
	return acc, out, nil
}

// foldRight seeds with init (appended) or the last element and folds backward.
func foldRight[T any](xs []T, f func(T, T) (T, error), init T, seeded, trace bool) (T, []T, error) {
	var zero T
	n := len(xs)
	size, acc, last := n, init, n-1
	if seeded {
		size = n + 1
	} else {
		acc, last = xs[n-1], n-2
	}

	var out []T
	if trace {
		out = make([]T, size)
		out[size-1] = acc
	}
	var i int
	var err error
	for i = last; i >= 0; i-- {
		if acc, err = f(xs[i], acc); err != nil {
			return zero, nil, &core.CallbackFailure{Index: i, Cause: err}
		}
		if trace {
			out[i] = acc
		}
	}
	return acc, out, nil
}

func lift[T any](f func(T, T) T) func(T, T) (T, error) {
	return func(a, b T) (T, error) { return f(a, b), nil }
}
