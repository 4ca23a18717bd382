// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfunc/core"
)

func TestGroupBy_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	keys := []string{"b", "a", "b", "c", "a"}
	g := core.GroupBy(len(keys), func(i int) string { return keys[i] })
	require.NoError(t, g.Validate())
	assert.Equal(t, []string{"b", "a", "c"}, g.Keys())
	assert.Equal(t, []int{0, 2}, g.Members(0))
	assert.Equal(t, []int{1, 4}, g.Members(1))
	assert.Equal(t, []int{3}, g.Members(2))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 5, g.N())
}

func TestGroupBy_Sorted(t *testing.T) {
	t.Parallel()

	keys := []string{"b", "a", "b", "c", "a"}
	g := core.GroupBy(len(keys), func(i int) string { return keys[i] })
	s := core.SortKeys(g)
	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
	assert.Equal(t, []int{1, 4}, s.Members(0))
	assert.Equal(t, []string{"b", "a", "c"}, g.Keys(), "original untouched")

	desc := g.SortFunc(func(a, b string) int { return strings.Compare(b, a) })
	assert.Equal(t, []string{"c", "b", "a"}, desc.Keys())
	require.NoError(t, desc.Validate())
}

func TestGroupBy_NaNKeysShareOneGroup(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	keys := []float64{1, nan, 2, nan, 1, nan}
	g := core.GroupBy(len(keys), func(i int) float64 { return keys[i] })
	require.NoError(t, g.Validate())
	require.Equal(t, 3, g.Len())
	assert.Equal(t, 1.0, g.Key(0))
	assert.True(t, math.IsNaN(g.Key(1)))
	assert.Equal(t, 2.0, g.Key(2))
	assert.Equal(t, []int{1, 3, 5}, g.Members(1))
	assert.Equal(t, []int{0, 4}, g.Members(0))

	type celsius float64
	temps := []celsius{celsius(nan), 20, celsius(nan)}
	ct := core.GroupBy(len(temps), func(i int) celsius { return temps[i] })
	require.Equal(t, 2, ct.Len())
	assert.Equal(t, []int{0, 2}, ct.Members(0))

	_, err := core.NewGrouping([]float64{nan, nan}, [][]int{{0}, {1}}, 2)
	require.ErrorIs(t, err, core.ErrBadGrouping)
}

func TestNewGrouping_Validation(t *testing.T) {
	t.Parallel()

	_, err := core.NewGrouping([]int{1, 2}, [][]int{{0, 1}, {2}}, 3)
	require.NoError(t, err)

	cases := []struct {
		name    string
		keys    []int
		members [][]int
		n       int
	}{
		{"overlap", []int{1, 2}, [][]int{{0, 1}, {1, 2}}, 3},
		{"gap", []int{1, 2}, [][]int{{0}, {2}}, 3},
		{"out of range", []int{1}, [][]int{{0, 3}}, 2},
		{"repeated key", []int{1, 1}, [][]int{{0}, {1}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := core.NewGrouping(tc.keys, tc.members, tc.n)
			require.ErrorIs(t, err, core.ErrBadGrouping)
		})
	}

	_, err = core.NewGrouping([]int{1}, [][]int{{0}, {1}}, 2)
	require.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestGroupBy_Empty(t *testing.T) {
	t.Parallel()

	g := core.GroupBy(0, func(int) int { return 0 })
	assert.Equal(t, 0, g.Len())
	require.NoError(t, g.Validate())
}
