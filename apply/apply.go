// SPDX-License-Identifier: MIT

package apply

import (
	"context"

	"github.com/katalvlaran/lvfunc/core"
)

// Operation name constants for unified error wrapping.
const (
	opApply     = "apply.Apply"
	opMap       = "apply.Map"
	opVectorize = "apply.Vectorize"
)

// Apply runs f over every element of in and materializes the results into a
// []B that satisfies d exactly.
//
// Implementation:
//   - Stage 1: Resolve the execution options.
//   - Stage 2: Dispatch one task per element through core.Run; task i calls
//     f(in[i]), checks the result against d, and writes slot i.
//   - Stage 3: Return the full result, or nothing at all on failure.
//
// Behavior highlights:
//   - Index-to-result correspondence is preserved under every strategy.
//   - No coercion: an int is not accepted where float64 is declared.
//
// Errors (wrapped with the op tag, match via errors.Is / errors.As):
//   - *core.ShapeViolation for the first element violating d.
//   - *core.CallbackFailure when f returns an error or panics.
//   - *core.Cancelled on cancellation or timeout.
//
// Complexity:
//   - Time O(n) calls of f; Space O(n).
func Apply[A, B any](ctx context.Context, in []A, f func(A) (any, error), d Descriptor[B], opts ...core.Option) ([]B, error) {
	o := core.Gather(opts...)
	out := make([]B, len(in))

	err := core.Run(ctx, opApply, len(in), o, func(_ context.Context, i int) error {
		v, err := f(in[i])
		if err != nil {
			return &core.CallbackFailure{Index: i, Cause: err}
		}
		b, err := d.Check(i, v)
		if err != nil {
			return err
		}
		out[i] = b
		return nil
	})
	if err != nil {
		return nil, core.Wrap(opApply, err)
	}
	return out, nil
}

// Map is the statically typed form of Apply: the compiler guarantees the
// element type, and d still enforces arity.
func Map[A, B any](ctx context.Context, in []A, f func(A) (B, error), d Descriptor[B], opts ...core.Option) ([]B, error) {
	o := core.Gather(opts...)
	out := make([]B, len(in))

	err := core.Run(ctx, opMap, len(in), o, func(_ context.Context, i int) error {
		b, err := f(in[i])
		if err != nil {
			return &core.CallbackFailure{Index: i, Cause: err}
		}
		if b, err = d.checkArity(i, b); err != nil {
			return err
		}
		out[i] = b
		return nil
	})
	if err != nil {
		return nil, core.Wrap(opMap, err)
	}
	return out, nil
}

// Vectorize lifts an opaque scalar collaborator over float64 sequences.
func Vectorize(f core.ScalarFunc) func(ctx context.Context, xs []float64, opts ...core.Option) ([]float64, error) {
	return func(ctx context.Context, xs []float64, opts ...core.Option) ([]float64, error) {
		out, err := Map(ctx, xs, func(x float64) (float64, error) { return f(x), nil }, Scalar[float64](), opts...)
		return out, core.Wrap(opVectorize, err)
	}
}
