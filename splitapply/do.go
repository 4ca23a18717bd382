// SPDX-License-Identifier: MIT

package splitapply

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvfunc/apply"
	"github.com/katalvlaran/lvfunc/core"
)

// Operation name constants for unified error wrapping.
const (
	opDo   = "splitapply.Do"
	opWalk = "splitapply.Walk"
)

// Do runs the apply and combine steps over s: f is invoked once per group,
// independently, and c reassembles the results.
//
// Implementation:
//   - Stage 1: Dispatch one task per group through apply.Map with a scalar
//     descriptor, so every cell of the splitter × combiner matrix goes
//     through the same contract checks and execution strategy.
//   - Stage 2: Translate a per-group failure into *core.PartitionFailure
//     carrying the group key.
//   - Stage 3: Combine.
//
// Errors:
//   - *core.PartitionFailure{Key, Cause} when f fails or panics on a group.
//   - *core.Cancelled on cancellation or timeout.
//   - whatever the combiner reports (wrapped).
//
// Partial results are never returned.
func Do[K, P, R, Out any](ctx context.Context, s *Split[K, P], f func(K, P) (R, error), c Combiner[K, R, Out], opts ...core.Option) (Out, error) {
	var zero Out
	o := core.Gather(opts...)
	o.Logger().V(1).Info("split-apply-combine",
		"op", opDo, "layout", s.Kind().String(), "groups", s.Len(), "combine", c.Name())

	groups := make([]int, s.Len())
	for g := range groups {
		groups[g] = g
	}
	results, err := apply.Map(ctx, groups, func(g int) (R, error) {
		return f(s.keys[g], s.parts[g])
	}, apply.Scalar[R](), o.AsOption())
	if err != nil {
		var cf *core.CallbackFailure
		if errors.As(err, &cf) {
			err = &core.PartitionFailure{Key: s.keys[cf.Index], Cause: cf.Cause}
		}
		return zero, core.Wrap(opDo, err)
	}

	out, err := c.Combine(s.Meta, results)
	if err != nil {
		return zero, core.Wrap(opDo+"/"+c.Name(), err)
	}
	return out, nil
}

// Walk invokes f once per group for effect only; it is Do with AsNone.
func Walk[K, P any](ctx context.Context, s *Split[K, P], f func(K, P) error, opts ...core.Option) error {
	_, err := Do(ctx, s, func(k K, p P) (struct{}, error) {
		return struct{}{}, f(k, p)
	}, AsNone[K, struct{}](), opts...)
	return core.Wrap(opWalk, err)
}
