// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Axis-indexed decomposition: extract the slice that holds a set of axes
//     fixed (Slice), write such a slice back (Place), and permute axes
//     (Transpose).
//
// Determinism:
//   - Every traversal is row-major over the free axes (last axis fastest).
//   - Zero-size arrays iterate nothing and allocate empty buffers.

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvfunc/core"
)

const (
	opTranspose = "Array.Transpose"
	opSlice     = "Array.Slice"
	opPlace     = "Array.Place"
)

// CheckAxes validates that axes are distinct and inside [0, rank).
func CheckAxes(rank int, axes []int) error {
	seen := make([]bool, rank)
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			return fmt.Errorf("%w: axis %d for rank %d", ErrBadAxis, ax, rank)
		}
		if seen[ax] {
			return fmt.Errorf("%w: axis %d repeated", ErrBadAxis, ax)
		}
		seen[ax] = true
	}
	return nil
}

// Complement returns the axes of [0, rank) not listed in axes, ascending.
func Complement(rank int, axes []int) []int {
	in := make([]bool, rank)
	for _, ax := range axes {
		in[ax] = true
	}
	rest := make([]int, 0, rank-len(axes))
	var ax int
	for ax = 0; ax < rank; ax++ {
		if !in[ax] {
			rest = append(rest, ax)
		}
	}
	return rest
}

// Pick returns the extents of shape at axes, in the order of axes.
func Pick(shape []int, axes []int) []int {
	out := make([]int, len(axes))
	for k, ax := range axes {
		out[k] = shape[ax]
	}
	return out
}

// NextCoord advances c to the next row-major coordinate within shape and
// reports false once every coordinate has been visited.
func NextCoord(c Coord, shape []int) bool {
	for ax := len(shape) - 1; ax >= 0; ax-- {
		c[ax]++
		if c[ax] < shape[ax] {
			return true
		}
		c[ax] = 0
	}
	return false
}

// Coords lists every coordinate of shape in row-major order.
// Complexity: O(size * rank).
func Coords(shape []int) []Coord {
	size, err := sizeOf(shape)
	if err != nil || size == 0 {
		return []Coord{}
	}
	out := make([]Coord, 0, size)
	c := make(Coord, len(shape))
	for {
		out = append(out, clone(c))
		if !NextCoord(c, shape) {
			return out
		}
	}
}

// Transpose returns a new array whose axis i is axis perm[i] of a.
// With no perm the axes are reversed.
//
// Errors: ErrBadAxis when perm is not a permutation of [0, rank).
// Complexity: O(size * rank).
func (a *Array[T]) Transpose(perm ...int) (*Array[T], error) {
	rank := len(a.shape)
	if len(perm) == 0 {
		perm = make([]int, rank)
		for i := range perm {
			perm[i] = rank - 1 - i
		}
	}
	if len(perm) != rank {
		return nil, core.Wrap(opTranspose, fmt.Errorf("%w: permutation of %d axes for rank %d", ErrBadAxis, len(perm), rank))
	}
	if err := CheckAxes(rank, perm); err != nil {
		return nil, core.Wrap(opTranspose, err)
	}

	outShape := Pick(a.shape, perm)
	out, err := New[T](outShape...)
	if err != nil {
		return nil, core.Wrap(opTranspose, err)
	}
	if out.Size() == 0 {
		return out, nil
	}

	// out[c] = a[d] with d[perm[i]] = c[i]; walk out in row-major order.
	c := make(Coord, rank)
	pos := 0
	for {
		src := 0
		for i, ax := range perm {
			src += c[i] * a.strides[ax]
		}
		out.data[pos] = a.data[src]
		pos++
		if !NextCoord(c, outShape) {
			break
		}
	}
	return out, nil
}

// Slice returns the sub-array obtained by fixing axes keep at coordinates
// at and varying the remaining axes in ascending axis order.
// The result has rank Rank()-len(keep).
//
// Errors:
//   - ErrBadAxis for invalid keep axes.
//   - ErrOutOfRange when at has the wrong length or an entry out of bounds.
//
// Complexity: O(slice size * rank).
func (a *Array[T]) Slice(keep []int, at Coord) (*Array[T], error) {
	base, free, err := a.anchor(keep, at)
	if err != nil {
		return nil, core.Wrap(opSlice, err)
	}
	freeShape := Pick(a.shape, free)
	out, err := New[T](freeShape...)
	if err != nil {
		return nil, core.Wrap(opSlice, err)
	}
	if out.Size() == 0 {
		return out, nil
	}

	c := make(Coord, len(free))
	pos := 0
	for {
		src := base
		for k, ax := range free {
			src += c[k] * a.strides[ax]
		}
		out.data[pos] = a.data[src]
		pos++
		if !NextCoord(c, freeShape) {
			break
		}
	}
	return out, nil
}

// Place writes src into the slice of a addressed by keep/at; it is the
// inverse of Slice and is meant for arrays under construction.
//
// Errors:
//   - as Slice, plus ErrDimensionMismatch when src does not have the free
//     extents of the slice.
func (a *Array[T]) Place(keep []int, at Coord, src *Array[T]) error {
	base, free, err := a.anchor(keep, at)
	if err != nil {
		return core.Wrap(opPlace, err)
	}
	freeShape := Pick(a.shape, free)
	if len(freeShape) != len(src.shape) {
		return core.Wrap(opPlace, fmt.Errorf("%w: slice shape %v, src shape %v", ErrDimensionMismatch, freeShape, src.shape))
	}
	for k := range freeShape {
		if freeShape[k] != src.shape[k] {
			return core.Wrap(opPlace, fmt.Errorf("%w: slice shape %v, src shape %v", ErrDimensionMismatch, freeShape, src.shape))
		}
	}
	if src.Size() == 0 {
		return nil
	}

	c := make(Coord, len(free))
	pos := 0
	for {
		dst := base
		for k, ax := range free {
			dst += c[k] * a.strides[ax]
		}
		a.data[dst] = src.data[pos]
		pos++
		if !NextCoord(c, freeShape) {
			break
		}
	}
	return nil
}

// anchor validates keep/at and returns the flat base offset plus the free axes.
func (a *Array[T]) anchor(keep []int, at Coord) (int, []int, error) {
	rank := len(a.shape)
	if err := CheckAxes(rank, keep); err != nil {
		return 0, nil, err
	}
	if len(at) != len(keep) {
		return 0, nil, fmt.Errorf("%w: %d coordinates for %d fixed axes", ErrOutOfRange, len(at), len(keep))
	}
	base := 0
	for k, ax := range keep {
		if at[k] < 0 || at[k] >= a.shape[ax] {
			return 0, nil, fmt.Errorf("%w: index %d on axis %d of extent %d", ErrOutOfRange, at[k], ax, a.shape[ax])
		}
		base += at[k] * a.strides[ax]
	}
	return base, Complement(rank, keep), nil
}
