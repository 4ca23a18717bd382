// SPDX-License-Identifier: MIT
// Package: assoc
//
// Purpose:
//   - Derive the five standard forms of one associative, NA-aware binary
//     operator from a single Spec:
//     Pairwise(a, b)   NA policy, then Combine
//     Fold(xs)         Reduce over Pairwise seeded with Identity
//     ZipWith(xs, ys)  element-wise Pairwise, equal lengths only
//     Scan(xs)         running Fold, Scan(xs)[i] == Fold(xs[:i+1])
//     AxisFold(X, ax)  Fold of every slice along axis ax
//
// Guarantees:
//   - Fold([]) == Some(Identity), Fold([x]) == x for defined x.
//   - Results never depend on how Fold is bracketed, provided the Spec obeys
//     its laws (see CheckLaws).

package assoc

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfunc/apply"
	"github.com/katalvlaran/lvfunc/axis"
	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/ndarray"
	"github.com/katalvlaran/lvfunc/reduce"
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "assoc.New"
	opZipWith  = "assoc.ZipWith"
	opAxisFold = "assoc.AxisFold"
)

// NAPolicy decides how Pairwise treats missing operands.
type NAPolicy int

const (
	// SkipNA: a missing operand yields the other operand; two missing
	// operands yield the identity.
	SkipNA NAPolicy = iota
	// PropagateNA: any missing operand yields a missing result.
	PropagateNA
)

// String returns the policy name.
func (p NAPolicy) String() string {
	switch p {
	case SkipNA:
		return "skip"
	case PropagateNA:
		return "propagate"
	default:
		return fmt.Sprintf("NAPolicy(%d)", int(p))
	}
}

// Spec defines an associative operator. Combine must be associative and
// Identity must be its two-sided identity under Equal.
type Spec[T any] struct {
	Name     string
	Combine  func(a, b T) T
	Identity T
	NA       NAPolicy
	Equal    func(a, b T) bool
}

// Family holds the forms derived from one Spec. It is immutable and safe
// for concurrent use.
type Family[T any] struct {
	spec Spec[T]
}

// New derives the family of spec.
// Errors: ErrInvalidSpec if Combine or Equal is nil.
func New[T any](spec Spec[T]) (*Family[T], error) {
	if spec.Combine == nil || spec.Equal == nil {
		return nil, core.Wrap(opNew, fmt.Errorf("%w: %q needs Combine and Equal", ErrInvalidSpec, spec.Name))
	}
	return &Family[T]{spec: spec}, nil
}

// Spec returns the operator definition.
func (f *Family[T]) Spec() Spec[T] { return f.spec }

// Identity returns the identity as a defined value.
func (f *Family[T]) Identity() core.Maybe[T] { return core.Some(f.spec.Identity) }

// Pairwise applies the NA policy, then Combine.
func (f *Family[T]) Pairwise(a, b core.Maybe[T]) core.Maybe[T] {
	av, aok := a.Get()
	bv, bok := b.Get()
	switch {
	case aok && bok:
		return core.Some(f.spec.Combine(av, bv))
	case f.spec.NA == PropagateNA:
		return core.NA[T]()
	case aok:
		return a
	case bok:
		return b
	default:
		return f.Identity()
	}
}

// Fold combines xs left to right, seeded with the identity.
// Complexity: O(n).
func (f *Family[T]) Fold(xs []core.Maybe[T]) core.Maybe[T] {
	out, _ := reduce.Reduce(xs, f.Pairwise, f.seed()) // seeded: never empty
	return out
}

// ZipWith combines xs[i] with ys[i] for every i.
// Errors: *core.LengthMismatch if the lengths differ; nothing is recycled.
func (f *Family[T]) ZipWith(xs, ys []core.Maybe[T]) ([]core.Maybe[T], error) {
	if len(xs) != len(ys) {
		return nil, core.Wrap(opZipWith, &core.LengthMismatch{Left: len(xs), Right: len(ys)})
	}
	out := make([]core.Maybe[T], len(xs))
	for i := range xs {
		out[i] = f.Pairwise(xs[i], ys[i])
	}
	return out, nil
}

// Scan returns the running folds of xs: len(out) == len(xs) and
// out[i] == Fold(xs[:i+1]).
// Complexity: O(n).
func (f *Family[T]) Scan(xs []core.Maybe[T]) []core.Maybe[T] {
	trace, _ := reduce.Accumulate(xs, f.Pairwise, f.seed())
	return trace[1:] // drop the seed
}

// AxisFold folds every slice of x along axis ax; the result has x's shape
// with ax removed. Slices are dispatched through axis.ApplyAxis, so opts
// select the execution strategy.
//
// Errors:
//   - ndarray.ErrBadAxis for an invalid axis.
//   - *core.Cancelled on cancellation or timeout.
func (f *Family[T]) AxisFold(ctx context.Context, x *ndarray.Array[core.Maybe[T]], ax int, opts ...core.Option) (*ndarray.Array[core.Maybe[T]], error) {
	out, err := axis.ApplyAxis(ctx, x, axis.Collapse(ax), func(s *ndarray.Array[core.Maybe[T]]) (any, error) {
		return f.Fold(s.Data()), nil
	}, apply.Scalar[core.Maybe[T]](), opts...)
	if err != nil {
		return nil, core.Wrap(opAxisFold, err)
	}
	return out, nil
}

// Equal compares two possibly-missing values with the spec's Equal.
func (f *Family[T]) Equal(a, b core.Maybe[T]) bool {
	return core.EqualMaybe(a, b, f.spec.Equal)
}

func (f *Family[T]) seed() reduce.Options[core.Maybe[T]] {
	o := reduce.DefaultOptions[core.Maybe[T]]()
	o.Init = core.Some(f.Identity())
	return o
}
