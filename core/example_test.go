// SPDX-License-Identifier: MIT

package core_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfunc/core"
)

// ExampleGroupBy shows first-seen group order and explicit sorting.
func ExampleGroupBy() {
	keys := []string{"b", "a", "b", "c"}
	g := core.GroupBy(len(keys), func(i int) string { return keys[i] })
	fmt.Println(g.Keys(), g.Members(0))
	fmt.Println(core.SortKeys(g).Keys())
	// Output:
	// [b a c] [0 2]
	// [a b c]
}

// ExampleNewTable builds a keyed table and reads one row.
func ExampleNewTable() {
	t, err := core.NewTable(
		core.NewCol("group", []string{"A", "A", "B"}),
		core.NewCol("v", []float64{1.5, 2.5, 4}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.Rows(), t.Names())
	fmt.Println(t.Row(2))
	// Output:
	// 3 [group v]
	// [{group B} {v 4}]
}

// ExampleRun dispatches independent items; results land at their index.
func ExampleRun() {
	out := make([]int, 5)
	err := core.Run(context.Background(), "example", len(out), core.Gather(core.WithParallel(3)),
		func(_ context.Context, i int) error {
			out[i] = i * i
			return nil
		})
	fmt.Println(out, err)
	// Output:
	// [0 1 4 9 16] <nil>
}

// ExampleMaybe shows NA handling.
func ExampleMaybe() {
	xs := []core.Maybe[int]{core.Some(5), core.NA[int]()}
	for _, x := range xs {
		fmt.Println(x, x.OrElse(-1))
	}
	// Output:
	// 5 5
	// NA -1
}
