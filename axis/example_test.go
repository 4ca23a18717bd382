// SPDX-License-Identifier: MIT

package axis_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfunc/apply"
	"github.com/katalvlaran/lvfunc/axis"
	"github.com/katalvlaran/lvfunc/ndarray"
)

// ExampleApplyAxis sums the rows and the columns of a 2×3 matrix.
func ExampleApplyAxis() {
	x, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	sum := func(s *ndarray.Array[float64]) (any, error) {
		var t float64
		for _, v := range s.Data() {
			t += v
		}
		return t, nil
	}
	rows, _ := axis.ApplyAxis(context.Background(), x, axis.Keep(0), sum, apply.Scalar[float64]())
	cols, _ := axis.ApplyAxis(context.Background(), x, axis.Collapse(0), sum, apply.Scalar[float64]())
	fmt.Println(rows)
	fmt.Println(cols)
	// Output:
	// [2] [6 15]
	// [3] [5 7 9]
}

// ExampleSweep centers the columns of a matrix.
func ExampleSweep() {
	x, _ := ndarray.FromSlice([]float64{1, 2, 3, 10, 20, 30}, 2, 3)
	means, _ := ndarray.FromSlice([]float64{5.5, 11, 16.5}, 3)
	out, _ := axis.Sweep(x, 0, means, func(v, m float64) float64 { return v - m })
	fmt.Println(out)
	// Output:
	// [2 3] [-4.5 -9 -13.5 4.5 9 13.5]
}

// ExampleOuter builds a multiplication table.
func ExampleOuter() {
	fmt.Println(axis.Outer([]int{1, 2, 3}, []int{1, 10}, func(a, b int) int { return a * b }))
	// Output:
	// [3 2] [1 10 2 20 3 30]
}
