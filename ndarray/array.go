// SPDX-License-Identifier: MIT

// Package ndarray: the dense Array type, construction and index math.
// Array stores elements in a flat slice with precomputed strides; the last
// axis varies fastest.

package ndarray

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvfunc/core"
)

const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opAt        = "Array.At"
	opSet       = "Array.Set"
)

// Coord is an index tuple, one entry per axis.
type Coord []int

// Array is a dense N-dimensional array of T.
// shape holds one extent per axis (extents >= 0), strides the row-major
// step per axis, and data len == product(shape) elements.
type Array[T any] struct {
	shape   []int
	strides []int
	data    []T
}

// New creates an array of the given shape filled with T's zero value.
// A call with no extents yields a rank-0 array holding one element.
// Stage 1 (Validate): every extent >= 0.
// Stage 2 (Prepare): compute strides and allocate the flat buffer.
// Complexity: O(size) time and memory.
func New[T any](shape ...int) (*Array[T], error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, core.Wrap(opNew, err)
	}
	return &Array[T]{shape: clone(shape), strides: stridesOf(shape), data: make([]T, size)}, nil
}

// FromSlice creates an array of the given shape over a copy of data,
// interpreted in row-major order.
// Errors: ErrBadShape when product(shape) != len(data) or an extent < 0.
// Complexity: O(size).
func FromSlice[T any](data []T, shape ...int) (*Array[T], error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, core.Wrap(opFromSlice, err)
	}
	if size != len(data) {
		return nil, core.Wrap(opFromSlice, fmt.Errorf("%w: shape %v holds %d elements, got %d", ErrBadShape, shape, size, len(data)))
	}
	cp := make([]T, len(data))
	copy(cp, data)
	return &Array[T]{shape: clone(shape), strides: stridesOf(shape), data: cp}, nil
}

// Vector wraps xs as a rank-1 array.
func Vector[T any](xs []T) *Array[T] {
	a, _ := FromSlice(xs, len(xs)) // a length always matches its own rank-1 shape
	return a
}

// Shape returns a copy of the extents.
// Complexity: O(rank).
func (a *Array[T]) Shape() []int { return clone(a.shape) }

// Rank returns the number of axes.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array[T]) Size() int { return len(a.data) }

// Dim returns the extent of axis, or 0 when axis is out of range.
func (a *Array[T]) Dim(axis int) int {
	if axis < 0 || axis >= len(a.shape) {
		return 0
	}
	return a.shape[axis]
}

// Ravel converts a coordinate into its flat row-major offset.
// Errors: ErrOutOfRange on wrong rank or out-of-bounds entry.
// Complexity: O(rank).
func (a *Array[T]) Ravel(c Coord) (int, error) {
	if len(c) != len(a.shape) {
		return 0, fmt.Errorf("%w: rank %d index for rank %d array", ErrOutOfRange, len(c), len(a.shape))
	}
	off := 0
	for ax, i := range c {
		if i < 0 || i >= a.shape[ax] {
			return 0, fmt.Errorf("%w: index %d on axis %d of extent %d", ErrOutOfRange, i, ax, a.shape[ax])
		}
		off += i * a.strides[ax]
	}
	return off, nil
}

// Unravel converts a flat offset into a coordinate. The offset must be in
// [0, Size()).
// Complexity: O(rank).
func (a *Array[T]) Unravel(off int) Coord {
	c := make(Coord, len(a.shape))
	for ax := range a.shape {
		if a.strides[ax] == 0 {
			continue
		}
		c[ax] = off / a.strides[ax]
		off %= a.strides[ax]
	}
	return c
}

// At retrieves the element at idx.
// Stage 1 (Validate): bounds check via Ravel.
// Stage 2 (Execute): read from data slice.
// Complexity: O(rank).
func (a *Array[T]) At(idx ...int) (T, error) {
	off, err := a.Ravel(idx)
	if err != nil {
		var zero T
		return zero, core.Wrap(opAt, err)
	}
	return a.data[off], nil
}

// Set assigns v at idx. Intended for construction: combinators never call
// Set on a caller's array.
// Complexity: O(rank).
func (a *Array[T]) Set(idx Coord, v T) error {
	off, err := a.Ravel(idx)
	if err != nil {
		return core.Wrap(opSet, err)
	}
	a.data[off] = v
	return nil
}

// Data returns a copy of the elements in row-major order.
// Complexity: O(size).
func (a *Array[T]) Data() []T {
	cp := make([]T, len(a.data))
	copy(cp, a.data)
	return cp
}

// Clone returns a deep copy.
// Complexity: O(size).
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{shape: clone(a.shape), strides: clone(a.strides), data: a.Data()}
}

// String renders the shape and the flat data, e.g. "[2 3] [1 2 3 4 5 6]".
func (a *Array[T]) String() string {
	var b strings.Builder
	fmt.Fprint(&b, a.shape, " ", a.data)
	return b.String()
}

// Map returns a new array of the same shape with f applied element-wise.
// Complexity: O(size).
func Map[A, B any](x *Array[A], f func(A) B) *Array[B] {
	out := make([]B, len(x.data))
	for i, v := range x.data {
		out[i] = f(v)
	}
	return &Array[B]{shape: clone(x.shape), strides: clone(x.strides), data: out}
}

// Equal reports whether a and b have identical shape and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Array[T], eq func(x, y T) bool) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for ax := range a.shape {
		if a.shape[ax] != b.shape[ax] {
			return false
		}
	}
	for i := range a.data {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}
	return true
}

// sizeOf validates extents and returns their product (1 for rank 0).
func sizeOf(shape []int) (int, error) {
	size := 1
	for ax, n := range shape {
		if n < 0 {
			return 0, fmt.Errorf("%w: extent %d on axis %d", ErrBadShape, n, ax)
		}
		size *= n
	}
	return size, nil
}

// stridesOf computes row-major strides; the last axis has stride 1.
func stridesOf(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for ax := len(shape) - 1; ax >= 0; ax-- {
		strides[ax] = step
		step *= shape[ax]
	}
	return strides
}

func clone(xs []int) []int {
	cp := make([]int, len(xs))
	copy(cp, xs)
	return cp
}
