// SPDX-License-Identifier: MIT

package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfunc/core"
)

func TestErrors_IsAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	cases := []struct {
		name     string
		err      error
		sentinel error
		cause    error
	}{
		{"shape", &core.ShapeViolation{Index: 1, Expected: "float64[1]", Actual: "string"}, core.ErrShapeViolation, nil},
		{"length", &core.LengthMismatch{Left: 3, Right: 2}, core.ErrLengthMismatch, nil},
		{"partition", &core.PartitionFailure{Key: "A", Cause: cause}, core.ErrPartitionFailure, cause},
		{"callback", &core.CallbackFailure{Index: 4, Cause: cause}, core.ErrCallbackFailure, cause},
		{"cancelled", &core.Cancelled{Cause: context.Canceled}, core.ErrCancelled, context.Canceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			wrapped := core.Wrap("test.Op", tc.err)
			assert.ErrorIs(t, wrapped, tc.sentinel)
			assert.Contains(t, wrapped.Error(), "test.Op")
			if tc.cause != nil {
				assert.ErrorIs(t, wrapped, tc.cause)
			}
		})
	}
}

func TestErrors_StructuredContext(t *testing.T) {
	t.Parallel()

	err := core.Wrap("outer", core.Wrap("inner", &core.ShapeViolation{Index: 7, Expected: "int[1]", Actual: "string"}))
	var sv *core.ShapeViolation
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, 7, sv.Index)
	assert.Equal(t, "int[1]", sv.Expected)
	assert.Equal(t, "string", sv.Actual)

	var pf *core.PartitionFailure
	require.ErrorAs(t, core.Wrap("x", &core.PartitionFailure{Key: "B", Cause: &core.PanicError{Value: "p"}}), &pf)
	assert.Equal(t, "B", pf.Key)
	assert.Contains(t, pf.Error(), "B")
}

func TestWrap_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, core.Wrap("op", nil))
}
