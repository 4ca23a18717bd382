// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvfunc/core"
)

func TestMaybe_ZeroValueIsNA(t *testing.T) {
	t.Parallel()

	var m core.Maybe[int]
	assert.True(t, m.IsNA())
	_, ok := m.Get()
	assert.False(t, ok)
	assert.Equal(t, 9, m.OrElse(9))
	assert.Equal(t, "NA", m.String())
	assert.True(t, core.NA[int]().IsNA())
}

func TestMaybe_Some(t *testing.T) {
	t.Parallel()

	m := core.Some(0) // a defined zero is not NA
	v, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.False(t, m.IsNA())
	assert.Equal(t, 0, m.OrElse(9))
	assert.Equal(t, "0", m.String())
}

func TestMaybe_SomesAndValues(t *testing.T) {
	t.Parallel()

	ms := append(core.Somes(1, 2), core.NA[int](), core.Some(4))
	vals, mask := core.Values(ms)
	assert.Equal(t, []int{1, 2, 0, 4}, vals)
	assert.Equal(t, []bool{true, true, false, true}, mask)

	assert.Empty(t, core.Somes[int]())
}

func TestEqualMaybe(t *testing.T) {
	t.Parallel()

	eq := func(a, b int) bool { return a == b }
	assert.True(t, core.EqualMaybe(core.NA[int](), core.NA[int](), eq))
	assert.True(t, core.EqualMaybe(core.Some(3), core.Some(3), eq))
	assert.False(t, core.EqualMaybe(core.Some(3), core.Some(4), eq))
	assert.False(t, core.EqualMaybe(core.Some(0), core.NA[int](), eq))
}
