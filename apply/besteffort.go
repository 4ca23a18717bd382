// SPDX-License-Identifier: MIT

package apply

import (
	"context"
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvfunc/core"
)

const (
	opBestEffort = "apply.ApplyBestEffort"
	opAs         = "apply.As"

	kindEmpty = "empty"
)

// Result is the output of ApplyBestEffort: values of one inferred dynamic
// type and arity, or an explicit empty result.
type Result struct {
	values []any
	kind   reflect.Type
	arity  int
}

// Values returns a copy of the produced values. Never nil.
func (r Result) Values() []any {
	cp := make([]any, len(r.values))
	copy(cp, r.values)
	return cp
}

// Len returns the number of values.
func (r Result) Len() int { return len(r.values) }

// Kind names the inferred element type, or "empty" for empty input.
func (r Result) Kind() string {
	if len(r.values) == 0 {
		return kindEmpty
	}
	if r.kind == nil {
		return "<nil>"
	}
	return r.kind.String()
}

// Arity returns the inferred element arity (0 for empty input).
func (r Result) Arity() int { return r.arity }

// ApplyBestEffort is the explicitly named best-effort variant of Apply.
// It infers the element type and arity from the result for element 0, then
// enforces that shape on every remaining element. It never falls back to a
// heterogeneous result.
//
// Behavior highlights:
//   - Empty input yields an empty Result (Kind() == "empty"), never nil.
//   - Slices and arrays have arity len(v); every other value has arity 1.
//
// Errors:
//   - *core.ShapeViolation when an element disagrees with the inferred shape.
//   - *core.CallbackFailure / *core.Cancelled as for Apply.
func ApplyBestEffort[A any](ctx context.Context, in []A, f func(A) (any, error), opts ...core.Option) (Result, error) {
	if len(in) == 0 {
		return Result{values: []any{}}, nil
	}
	// One deadline covers both stages.
	o := core.Gather(opts...)
	if o.Timeout() > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout())
		defer cancel()
		o = core.Gather(o.AsOption(), core.WithTimeout(0))
	}
	out := make([]any, len(in))

	// Stage 1 (Infer): element 0 fixes the shape for the whole call.
	err := core.Run(ctx, opBestEffort, 1, o, func(_ context.Context, _ int) error {
		v, err := f(in[0])
		if err != nil {
			return &core.CallbackFailure{Index: 0, Cause: err}
		}
		out[0] = v
		return nil
	})
	if err != nil {
		return Result{}, core.Wrap(opBestEffort, err)
	}
	kind, arity := reflect.TypeOf(out[0]), arityOf(out[0])
	want := describe(kind, arity)

	// Stage 2 (Enforce): the rest must match exactly.
	rest := in[1:]
	err = core.Run(ctx, opBestEffort, len(rest), o, func(_ context.Context, k int) error {
		i := k + 1
		v, err := f(rest[k])
		if err != nil {
			return &core.CallbackFailure{Index: i, Cause: err}
		}
		if t, n := reflect.TypeOf(v), arityOf(v); t != kind || n != arity {
			return &core.ShapeViolation{Index: i, Expected: want, Actual: describe(t, n)}
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return Result{}, core.Wrap(opBestEffort, err)
	}
	return Result{values: out, kind: kind, arity: arity}, nil
}

// As converts a best-effort Result into a typed slice.
// Errors: *core.ShapeViolation for the first value that is not a B.
func As[B any](r Result) ([]B, error) {
	out := make([]B, len(r.values))
	for i, v := range r.values {
		b, ok := v.(B)
		if !ok {
			return nil, core.Wrap(opAs, &core.ShapeViolation{Index: i, Expected: core.TypeName[B](), Actual: fmt.Sprintf("%T", v)})
		}
		out[i] = b
	}
	return out, nil
}

// arityOf reports len for slices and arrays, 1 otherwise.
func arityOf(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	default:
		return 1
	}
}

func describe(t reflect.Type, arity int) string {
	if t == nil {
		return fmt.Sprintf("<nil>[%d]", arity)
	}
	return fmt.Sprintf("%s[%d]", t, arity)
}
