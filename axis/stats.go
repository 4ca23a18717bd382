// SPDX-License-Identifier: MIT
// Package: axis
//
// Purpose:
//   - Common statistical transforms expressed as an axis fold followed by a
//     sweep, with no explicit loops over the array:
//     Center(X, axis) -> (Xc, means)   // subtract the mean along axis
//     Scale(X, axis)  -> (Y, norms)    // divide by the L2 norm along axis
//
// Notes:
//   - Center(X, 0) on a matrix is column centering; Center(X, 1) is row
//     centering.
//   - Zero-length slices have mean 0 and norm 0; degenerate (zero-norm)
//     slices are left unchanged by Scale.

package axis

import (
	"context"
	"math"

	"github.com/katalvlaran/lvfunc/apply"
	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/ndarray"
)

const (
	opCenter = "axis.Center"
	opScale  = "axis.Scale"
)

// Center subtracts, from every element, the mean of its slice along axis.
//
// Implementation:
//   - Stage 1: means = ApplyAxis(X, Collapse(axis), mean).
//   - Stage 2: Xc = Sweep(X, axis, means, minus).
//
// Returns:
//   - centered copy of X (same shape).
//   - means with X's shape minus axis.
//
// Complexity: Time O(size), Space O(size).
func Center(ctx context.Context, x *ndarray.Array[float64], axis int, opts ...core.Option) (*ndarray.Array[float64], *ndarray.Array[float64], error) {
	means, err := ApplyAxis(ctx, x, Collapse(axis), func(s *ndarray.Array[float64]) (any, error) {
		return mean(s.Data()), nil
	}, apply.Scalar[float64](), opts...)
	if err != nil {
		return nil, nil, core.Wrap(opCenter, err)
	}
	xc, err := Sweep(x, axis, means, func(v, m float64) float64 { return v - m })
	if err != nil {
		return nil, nil, core.Wrap(opCenter, err)
	}
	return xc, means, nil
}

// Scale divides every element by the L2 norm of its slice along axis.
// Slices with zero norm are left unchanged.
//
// Returns:
//   - scaled copy of X.
//   - norms with X's shape minus axis (0 for degenerate slices).
func Scale(ctx context.Context, x *ndarray.Array[float64], axis int, opts ...core.Option) (*ndarray.Array[float64], *ndarray.Array[float64], error) {
	norms, err := ApplyAxis(ctx, x, Collapse(axis), func(s *ndarray.Array[float64]) (any, error) {
		return l2(s.Data()), nil
	}, apply.Scalar[float64](), opts...)
	if err != nil {
		return nil, nil, core.Wrap(opScale, err)
	}
	y, err := Sweep(x, axis, norms, func(v, n float64) float64 {
		if n == 0 {
			return v // degenerate slice: unchanged
		}
		return v / n
	})
	if err != nil {
		return nil, nil, core.Wrap(opScale, err)
	}
	return y, norms, nil
}

// mean of xs; 0 for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

// l2 norm of xs.
func l2(xs []float64) float64 {
	var s float64
	for _, v := range xs {
		s += v * v
	}
	return math.Sqrt(s)
}
