// SPDX-License-Identifier: MIT
// Package: axis
//
// Purpose:
//   - Generalize strict-contract application to N-dimensional arrays by
//     decomposing an array into slices along a Selection.
//   - Broadcast a per-position statistic back across an axis (Sweep) and
//     build Cartesian combinations of two sequences (Outer).
//
// Determinism:
//   - Slices are produced in row-major order of the kept axes; elements of a
//     slice are in row-major order of the collapsed axes (ascending axis order).
//   - All per-slice work is dispatched through apply.Apply, so ordering is
//     identical under sequential and parallel strategies.

package axis

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfunc/apply"
	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/ndarray"
)

// Operation name constants for unified error wrapping.
const (
	opApplyAxis    = "axis.ApplyAxis"
	opApplyAxisVec = "axis.ApplyAxisVec"
	opSweep        = "axis.Sweep"
)

// SliceFunc consumes one slice of the collapsed axes and returns a result
// that the descriptor will check.
type SliceFunc[A any] func(*ndarray.Array[A]) (any, error)

// ApplyAxis applies f to every slice of x selected by sel and stacks the
// scalar results into an array whose shape is the kept extents.
//
// Implementation:
//   - Stage 1: Resolve the margin and enumerate its coordinates row-major.
//   - Stage 2: apply.Apply over the coordinates; each task extracts its
//     slice and calls f. The descriptor contract of apply holds unchanged.
//   - Stage 3: Reassemble the results under the kept shape.
//
// Errors:
//   - ndarray.ErrBadAxis for an invalid selection.
//   - *core.ShapeViolation (Index = slice position), *core.CallbackFailure,
//     *core.Cancelled as for apply.Apply.
//
// Complexity:
//   - Time O(size) slice extraction + one f call per slice.
func ApplyAxis[A, B any](ctx context.Context, x *ndarray.Array[A], sel Selection, f SliceFunc[A], d apply.Descriptor[B], opts ...core.Option) (*ndarray.Array[B], error) {
	margin, keptShape, coords, err := decompose(x, sel)
	if err != nil {
		return nil, core.Wrap(opApplyAxis, err)
	}

	results, err := apply.Apply(ctx, coords, sliceCaller(x, margin, f), d, opts...)
	if err != nil {
		return nil, core.Wrap(opApplyAxis, err)
	}

	out, err := ndarray.FromSlice(results, keptShape...)
	if err != nil {
		return nil, core.Wrap(opApplyAxis, err)
	}
	return out, nil
}

// ApplyAxisVec is ApplyAxis for vector results of fixed arity k: the
// output has shape [k, kept...] and out[j, c...] = f(slice at c)[j].
//
// Behavior highlights:
//   - With f the identity on a single-axis slice, the result is exactly the
//     axis transposition of x, never a reshape.
func ApplyAxisVec[A, E any](ctx context.Context, x *ndarray.Array[A], sel Selection, f SliceFunc[A], d apply.Descriptor[[]E], opts ...core.Option) (*ndarray.Array[E], error) {
	margin, keptShape, coords, err := decompose(x, sel)
	if err != nil {
		return nil, core.Wrap(opApplyAxisVec, err)
	}

	results, err := apply.Apply(ctx, coords, sliceCaller(x, margin, f), d, opts...)
	if err != nil {
		return nil, core.Wrap(opApplyAxisVec, err)
	}

	k, m := d.Arity(), len(results)
	data := make([]E, k*m)
	for c, vec := range results {
		// A custom measure (apply.Of) may accept a slice whose length is not k.
		if len(vec) != k {
			return nil, core.Wrap(opApplyAxisVec, &core.ShapeViolation{
				Index:    c,
				Expected: fmt.Sprintf("%d elements", k),
				Actual:   fmt.Sprintf("%d elements", len(vec)),
			})
		}
		for j, v := range vec {
			data[j*m+c] = v
		}
	}
	out, err := ndarray.FromSlice(data, append([]int{k}, keptShape...)...)
	if err != nil {
		return nil, core.Wrap(opApplyAxisVec, err)
	}
	return out, nil
}

// Sweep combines every element of x with the statistic for its position on
// the non-swept axes: out[c] = op(x[c], stat[c without axis]).
// stat must have x's shape with axis removed, which is exactly the shape an
// axis fold over axis produces.
//
// Errors:
//   - ndarray.ErrBadAxis if axis is outside [0, rank).
//   - ndarray.ErrDimensionMismatch if stat has the wrong shape.
//
// Complexity: O(size * rank).
func Sweep[A any](x *ndarray.Array[A], axis int, stat *ndarray.Array[A], op func(A, A) A) (*ndarray.Array[A], error) {
	shape := x.Shape()
	if err := ndarray.CheckAxes(len(shape), []int{axis}); err != nil {
		return nil, core.Wrap(opSweep, err)
	}
	rest := ndarray.Complement(len(shape), []int{axis})
	want := ndarray.Pick(shape, rest)
	if !slices.Equal(want, stat.Shape()) {
		return nil, core.Wrap(opSweep, fmt.Errorf("%w: stat shape %v, want %v", ndarray.ErrDimensionMismatch, stat.Shape(), want))
	}

	data := x.Data()
	if len(data) == 0 {
		out, err := ndarray.FromSlice(data, shape...)
		return out, core.Wrap(opSweep, err)
	}
	statData := stat.Data()
	c := make(ndarray.Coord, len(shape))
	sc := make(ndarray.Coord, len(rest))
	for p := range data {
		for k, ax := range rest {
			sc[k] = c[ax]
		}
		off, err := stat.Ravel(sc)
		if err != nil {
			return nil, core.Wrap(opSweep, err)
		}
		data[p] = op(data[p], statData[off])
		ndarray.NextCoord(c, shape)
	}

	out, err := ndarray.FromSlice(data, shape...)
	if err != nil {
		return nil, core.Wrap(opSweep, err)
	}
	return out, nil
}

// Outer builds the [len(xs), len(ys)] array with out[i, j] = f(xs[i], ys[j]).
// Complexity: O(len(xs) * len(ys)).
func Outer[A, B, C any](xs []A, ys []B, f func(A, B) C) *ndarray.Array[C] {
	m := len(ys)
	data := make([]C, len(xs)*m)
	for i, x := range xs {
		for j, y := range ys {
			data[i*m+j] = f(x, y)
		}
	}
	out, _ := ndarray.FromSlice(data, len(xs), m) // data length is len(xs)*m by construction
	return out
}

// decompose resolves sel against x and enumerates the margin coordinates.
func decompose[A any](x *ndarray.Array[A], sel Selection) ([]int, []int, []ndarray.Coord, error) {
	margin, err := sel.Margin(x.Rank())
	if err != nil {
		return nil, nil, nil, err
	}
	keptShape := ndarray.Pick(x.Shape(), margin)
	return margin, keptShape, ndarray.Coords(keptShape), nil
}

// sliceCaller adapts f to apply's element callback: coordinate in, result out.
func sliceCaller[A any](x *ndarray.Array[A], margin []int, f SliceFunc[A]) func(ndarray.Coord) (any, error) {
	return func(c ndarray.Coord) (any, error) {
		s, err := x.Slice(margin, c)
		if err != nil {
			return nil, err
		}
		return f(s)
	}
}
