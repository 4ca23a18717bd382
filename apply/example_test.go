// SPDX-License-Identifier: MIT

package apply_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvfunc/apply"
	"github.com/katalvlaran/lvfunc/core"
)

// ExampleApply shows the strict contract: the declared element type must
// match exactly.
func ExampleApply() {
	in := []any{1, "a", 3}

	strs, err := apply.Apply(context.Background(), in, func(v any) (any, error) {
		return fmt.Sprint(v), nil
	}, apply.Scalar[string]())
	fmt.Println(strs, err)

	_, err = apply.Apply(context.Background(), in, func(v any) (any, error) { return v, nil }, apply.Scalar[int]())
	var sv *core.ShapeViolation
	fmt.Println(errors.As(err, &sv), sv.Index)
	// Output:
	// [1 a 3] <nil>
	// true 1
}

// ExampleApplyBestEffort infers the shape once, from the first element.
func ExampleApplyBestEffort() {
	r, err := apply.ApplyBestEffort(context.Background(), []int{1, 2}, func(x int) (any, error) {
		return []int{x, x * 10}, nil
	})
	fmt.Println(r.Kind(), r.Arity(), r.Values(), err)
	// Output:
	// []int 2 [[1 10] [2 20]] <nil>
}
