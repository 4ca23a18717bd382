// SPDX-License-Identifier: MIT

package predicate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/predicate"
)

func even(x int) bool { return x%2 == 0 }

func TestFilterReject(t *testing.T) {
	t.Parallel()

	xs := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{2, 4, 6}, predicate.Filter(xs, even))
	assert.Equal(t, []int{1, 3, 5}, predicate.Reject(xs, even))
	assert.Equal(t, []int{1, 3, 5}, predicate.Filter(xs, predicate.Not(even)))

	none := predicate.Filter([]int{}, even)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.NotNil(t, predicate.Filter([]int{1, 3}, even))
}

func TestFindPosition(t *testing.T) {
	t.Parallel()

	xs := []int{1, 4, 3, 8, 5}
	v, ok := predicate.Find(xs, even, false)
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	v, ok = predicate.Find(xs, even, true)
	assert.True(t, ok)
	assert.Equal(t, 8, v)

	i, ok := predicate.Position(xs, even, false)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	i, ok = predicate.Position(xs, even, true)
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = predicate.Find([]int{1, 3}, even, false)
	assert.False(t, ok)
	i, ok = predicate.Position([]int{}, even, true)
	assert.False(t, ok)
	assert.Equal(t, -1, i)
}

// TestPosition_NA: position of the first and last defined element.
func TestPosition_NA(t *testing.T) {
	t.Parallel()

	xs := []core.Maybe[int]{core.NA[int](), core.Some(5), core.NA[int](), core.Some(7)}
	i, ok := predicate.Position(xs, predicate.Defined[int], false)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	i, ok = predicate.Position(xs, predicate.Defined[int], true)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	m, ok := predicate.Find(xs, predicate.Defined[int], true)
	require.True(t, ok)
	assert.Equal(t, 7, m.OrElse(0))
}

// TestFindPositionAgreement: Position returns i iff xs[i] is the Find
// result and no earlier (later, fromEnd) index qualifies.
func TestFindPositionAgreement(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 300; trial++ {
		xs := make([]int, rng.Intn(15))
		for i := range xs {
			xs[i] = rng.Intn(10)
		}
		for _, fromEnd := range []bool{false, true} {
			v, found := predicate.Find(xs, even, fromEnd)
			i, ok := predicate.Position(xs, even, fromEnd)
			require.Equal(t, found, ok)
			if !ok {
				require.Equal(t, 0, predicate.Count(xs, even))
				continue
			}
			require.Equal(t, xs[i], v)
			require.True(t, even(xs[i]))
			if fromEnd {
				require.False(t, predicate.Some(xs[i+1:], even))
			} else {
				require.False(t, predicate.Some(xs[:i], even))
			}
		}
	}
}

func TestWhereSelect(t *testing.T) {
	t.Parallel()

	xs := []int{1, 2, 3, 4}
	mask := predicate.Where(xs, even)
	assert.Equal(t, []bool{false, true, false, true}, mask)

	sel, err := predicate.Select(xs, mask)
	require.NoError(t, err)
	assert.Equal(t, predicate.Filter(xs, even), sel)

	_, err = predicate.Select(xs, mask[:3])
	var lm *core.LengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 4, lm.Left)
	assert.Equal(t, 3, lm.Right)
}

// TestFilterEqualsSelectWhere on random inputs.
func TestFilterEqualsSelectWhere(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	for trial := 0; trial < 100; trial++ {
		xs := make([]int, rng.Intn(30))
		for i := range xs {
			xs[i] = rng.Intn(100)
		}
		sel, err := predicate.Select(xs, predicate.Where(xs, even))
		require.NoError(t, err)
		require.Equal(t, predicate.Filter(xs, even), sel)
		require.Equal(t, len(sel), predicate.Count(xs, even))
	}
}

func TestSomeEvery(t *testing.T) {
	t.Parallel()

	assert.False(t, predicate.Some([]int{}, even))
	assert.True(t, predicate.Every([]int{}, even))
	assert.True(t, predicate.Some([]int{1, 2}, even))
	assert.False(t, predicate.Every([]int{1, 2}, even))
	assert.True(t, predicate.Every([]int{2, 4}, even))
}
