// SPDX-License-Identifier: MIT

package assoc_test

import (
	"fmt"

	"github.com/katalvlaran/lvfunc/assoc"
	"github.com/katalvlaran/lvfunc/core"
)

func ExampleFamily_Fold() {
	sum, _ := assoc.New(assoc.Sum[int]())
	fmt.Println(sum.Fold(core.Somes(1, 2, 3, 4)))
	fmt.Println(sum.Fold(nil))
	fmt.Println(sum.Fold([]core.Maybe[int]{core.Some(5), core.NA[int]()}))
	// Output:
	// 10
	// 0
	// 5
}

func ExampleFamily_Scan() {
	sum, _ := assoc.New(assoc.Sum[int]())
	fmt.Println(sum.Scan(core.Somes(1, 4, 10)))
	// Output:
	// [1 5 15]
}

func ExampleFamily_CheckLaws() {
	spec := assoc.Product[int]()
	spec.Identity = 0
	prod, _ := assoc.New(spec)
	fmt.Println(prod.CheckLaws(core.Somes(3)))
	// Output:
	// assoc: product violates left identity for [0 3]
}
