// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfunc/ndarray"
)

// mustArray builds an array or fails the test.
func mustArray[T any](t *testing.T, data []T, shape ...int) *ndarray.Array[T] {
	t.Helper()
	a, err := ndarray.FromSlice(data, shape...)
	require.NoError(t, err, "FromSlice(%v)", shape)
	return a
}

// arange returns [0, n) as float64.
func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func TestNew_ShapesAndRankZero(t *testing.T) {
	t.Parallel()

	a, err := ndarray.New[int](2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, 6, a.Size())
	assert.Equal(t, 3, a.Dim(1))
	assert.Equal(t, 0, a.Dim(5))

	s, err := ndarray.New[int]()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Size())
	v, err := s.At()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	z, err := ndarray.New[int](3, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Size())

	_, err = ndarray.New[int](2, -1)
	require.ErrorIs(t, err, ndarray.ErrBadShape)
}

func TestFromSlice_Validation(t *testing.T) {
	t.Parallel()

	_, err := ndarray.FromSlice([]int{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ndarray.ErrBadShape)

	data := []int{1, 2, 3, 4}
	a := mustArray(t, data, 2, 2)
	data[0] = 99
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "input copied")

	out := a.Data()
	out[1] = 99
	v, _ = a.At(0, 1)
	assert.Equal(t, 2, v, "Data returns a copy")
}

func TestAtSetRavel(t *testing.T) {
	t.Parallel()

	a := mustArray(t, arange(24), 2, 3, 4)
	v, err := a.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 23.0, v)

	off, err := a.Ravel(ndarray.Coord{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 14, off)
	assert.Equal(t, ndarray.Coord{1, 0, 2}, a.Unravel(14))

	_, err = a.At(2, 0, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)
	_, err = a.At(0, 0)
	require.ErrorIs(t, err, ndarray.ErrOutOfRange)

	b := a.Clone()
	require.NoError(t, b.Set(ndarray.Coord{0, 0, 0}, -1))
	v, _ = a.At(0, 0, 0)
	assert.Equal(t, 0.0, v, "Clone is deep")
	require.ErrorIs(t, b.Set(ndarray.Coord{0, 3, 0}, 1), ndarray.ErrOutOfRange)
}

func TestMapEqual(t *testing.T) {
	t.Parallel()

	a := mustArray(t, []int{1, 2, 3, 4}, 2, 2)
	b := ndarray.Map(a, func(x int) int { return x * 10 })
	assert.Equal(t, []int{10, 20, 30, 40}, b.Data())
	assert.True(t, ndarray.Equal(a, a.Clone()))
	assert.False(t, ndarray.Equal(a, b))
	assert.False(t, ndarray.Equal(a, mustArray(t, []int{1, 2, 3, 4}, 4)))
	assert.Equal(t, "[2 2] [1 2 3 4]", a.String())
}

func TestVector(t *testing.T) {
	t.Parallel()

	v := ndarray.Vector([]string{"a", "b"})
	assert.Equal(t, []int{2}, v.Shape())
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, "b", x)
}
