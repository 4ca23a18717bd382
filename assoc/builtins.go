// SPDX-License-Identifier: MIT
// Package: assoc
//
// Builtin operators. Each identity is the unique neutral element of its
// operator on the stated domain:
//
//	Sum          0        x + 0 == x
//	Product      1        x * 1 == x
//	MinFloat64   +Inf     min(x, +Inf) == x
//	MaxFloat64   -Inf     max(x, -Inf) == x
//	Min/Max      caller   the greatest (least) value of the caller's domain
//	All          true     x && true == x
//	Any          false    x || false == x
//	Concat       ""       s + "" == s == "" + s (not commutative)
//	DecimalSum   0        exact decimal addition
//
// All builtins skip NA. Floating-point Sum and Product are associative only
// up to rounding; property tests sample integers for them.

package assoc

import (
	"cmp"
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/lvfunc/core"
)

func equal[T comparable](a, b T) bool { return a == b }

// Sum is addition with identity 0.
func Sum[N core.Number]() Spec[N] {
	return Spec[N]{
		Name:     "sum",
		Combine:  func(a, b N) N { return a + b },
		Identity: 0,
		NA:       SkipNA,
		Equal:    equal[N],
	}
}

// Product is multiplication with identity 1.
func Product[N core.Number]() Spec[N] {
	return Spec[N]{
		Name:     "product",
		Combine:  func(a, b N) N { return a * b },
		Identity: 1,
		NA:       SkipNA,
		Equal:    equal[N],
	}
}

// MinFloat64 is the float64 minimum with identity +Inf.
func MinFloat64() Spec[float64] {
	return Spec[float64]{
		Name:     "min",
		Combine:  math.Min,
		Identity: math.Inf(1),
		NA:       SkipNA,
		Equal:    equal[float64],
	}
}

// MaxFloat64 is the float64 maximum with identity -Inf.
func MaxFloat64() Spec[float64] {
	return Spec[float64]{
		Name:     "max",
		Combine:  math.Max,
		Identity: math.Inf(-1),
		NA:       SkipNA,
		Equal:    equal[float64],
	}
}

// Min is the ordered minimum. identity must be the greatest value the
// caller will ever combine (e.g. math.MaxInt for int).
func Min[T cmp.Ordered](identity T) Spec[T] {
	return Spec[T]{
		Name:     "min",
		Combine:  func(a, b T) T { return min(a, b) },
		Identity: identity,
		NA:       SkipNA,
		Equal:    equal[T],
	}
}

// Max is the ordered maximum. identity must be the least value the caller
// will ever combine (e.g. "" for strings).
func Max[T cmp.Ordered](identity T) Spec[T] {
	return Spec[T]{
		Name:     "max",
		Combine:  func(a, b T) T { return max(a, b) },
		Identity: identity,
		NA:       SkipNA,
		Equal:    equal[T],
	}
}

// All is logical and with identity true.
func All() Spec[bool] {
	return Spec[bool]{
		Name:     "all",
		Combine:  func(a, b bool) bool { return a && b },
		Identity: true,
		NA:       SkipNA,
		Equal:    equal[bool],
	}
}

// Any is logical or with identity false.
func Any() Spec[bool] {
	return Spec[bool]{
		Name:     "any",
		Combine:  func(a, b bool) bool { return a || b },
		Identity: false,
		NA:       SkipNA,
		Equal:    equal[bool],
	}
}

// Concat is string concatenation with identity "".
func Concat() Spec[string] {
	return Spec[string]{
		Name:     "concat",
		Combine:  func(a, b string) string { return a + b },
		Identity: "",
		NA:       SkipNA,
		Equal:    equal[string],
	}
}

// DecimalSum is exact decimal addition with identity 0. Equality is numeric
// (1.0 equals 1.00).
func DecimalSum() Spec[decimal.Decimal] {
	return Spec[decimal.Decimal]{
		Name:     "decimal-sum",
		Combine:  decimal.Decimal.Add,
		Identity: decimal.Zero,
		NA:       SkipNA,
		Equal:    decimal.Decimal.Equal,
	}
}
