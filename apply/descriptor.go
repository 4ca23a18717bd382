// SPDX-License-Identifier: MIT

package apply

import (
	"fmt"

	"github.com/katalvlaran/lvfunc/core"
)

const panicArityInvalid = "apply: descriptor arity must be >= 0"

// Descriptor declares the exact shape every produced element must have:
// its Go type B (checked by type assertion on the callback result) and its
// arity (1 for scalars, n for fixed-length vectors).
// The zero Descriptor is not usable; build one with Scalar, Vector or Of.
type Descriptor[B any] struct {
	arity   int
	measure func(B) int // nil: scalar, arity is 1 by construction
}

// Scalar declares single values of type B.
func Scalar[B any]() Descriptor[B] {
	return Descriptor[B]{arity: 1}
}

// Vector declares []E results of exactly n elements.
// Panics if n < 0.
func Vector[E any](n int) Descriptor[[]E] {
	if n < 0 {
		panic(panicArityInvalid)
	}
	return Descriptor[[]E]{arity: n, measure: func(v []E) int { return len(v) }}
}

// Of declares results of type B whose arity, as reported by measure, must
// equal arity. Panics if arity < 0 or measure is nil.
func Of[B any](arity int, measure func(B) int) Descriptor[B] {
	if arity < 0 || measure == nil {
		panic(panicArityInvalid)
	}
	return Descriptor[B]{arity: arity, measure: measure}
}

// Arity returns the declared element arity.
func (d Descriptor[B]) Arity() int { return d.arity }

// String renders the descriptor as "type[arity]", e.g. "float64[1]".
func (d Descriptor[B]) String() string {
	return fmt.Sprintf("%s[%d]", core.TypeName[B](), d.arity)
}

// Check asserts v against d for element i.
// Errors: *core.ShapeViolation on type or arity mismatch.
func (d Descriptor[B]) Check(i int, v any) (B, error) {
	b, ok := v.(B)
	if !ok {
		return b, &core.ShapeViolation{Index: i, Expected: d.String(), Actual: fmt.Sprintf("%T", v)}
	}
	return d.checkArity(i, b)
}

// checkArity is the arity half of Check, used directly by typed callers.
func (d Descriptor[B]) checkArity(i int, b B) (B, error) {
	if d.measure == nil {
		return b, nil
	}
	if got := d.measure(b); got != d.arity {
		return b, &core.ShapeViolation{Index: i, Expected: d.String(), Actual: fmt.Sprintf("%s[%d]", core.TypeName[B](), got)}
	}
	return b, nil
}
