// SPDX-License-Identifier: MIT

package predicate_test

import (
	"fmt"

	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/predicate"
)

func ExamplePosition() {
	xs := []core.Maybe[int]{core.NA[int](), core.Some(5), core.NA[int](), core.Some(7)}
	fmt.Println(predicate.Position(xs, predicate.Defined[int], false))
	fmt.Println(predicate.Position(xs, predicate.Defined[int], true))
	// Output:
	// 1 true
	// 3 true
}

func ExampleSelect() {
	xs := []string{"ant", "bee", "cat"}
	mask := predicate.Where(xs, func(s string) bool { return s != "bee" })
	out, err := predicate.Select(xs, mask)
	fmt.Println(mask, out, err)
	// Output:
	// [true false true] [ant cat] <nil>
}
