// SPDX-License-Identifier: MIT
// Package: splitapply
//
// Purpose:
//   - Step 3 of split/apply/combine: reassemble per-group results.
//
// Combiners are independent of the splitter: every combiner below accepts
// results from a sequence, table or array split, except Stack, which is the
// exact inverse of ByAxes and therefore needs an array layout.
//
//	AsSequence -> []R in group order
//	AsTable    -> key column + value column, one row per group
//	AsRecords  -> key column + named columns returned per group
//	AsArray    -> kept-axes shape (array splits) or [groups]
//	AsNone     -> nothing (f runs for effect)
//	Unsplit    -> per-group slices written back to their original positions
//	BindRows   -> per-group tables stacked in group order
//	Stack      -> per-group slices placed back along the split axes

package splitapply

import (
	"fmt"

	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/ndarray"
)

// Combiner reassembles the ordered per-group results of a split.
type Combiner[K, R, Out any] struct {
	name string
	fn   func(m Meta[K], rs []R) (Out, error)
}

// NewCombiner builds a custom combiner. rs[g] is the result of group g of m.
func NewCombiner[K, R, Out any](name string, fn func(m Meta[K], rs []R) (Out, error)) Combiner[K, R, Out] {
	return Combiner[K, R, Out]{name: name, fn: fn}
}

// Name identifies the combiner in logs and errors.
func (c Combiner[K, R, Out]) Name() string { return c.name }

// Combine runs the combiner directly; Do calls it after the apply step.
func (c Combiner[K, R, Out]) Combine(m Meta[K], rs []R) (Out, error) {
	return c.fn(m, rs)
}

// AsSequence returns one result per group, in group order.
func AsSequence[K, R any]() Combiner[K, R, []R] {
	return NewCombiner("sequence", func(_ Meta[K], rs []R) ([]R, error) {
		out := make([]R, len(rs))
		copy(out, rs)
		return out, nil
	})
}

// AsTable returns a two-column table: group keys under keyCol and results
// under valueCol.
//
// Errors:
//   - core.ErrDuplicateColumn if keyCol == valueCol.
func AsTable[K, R any](keyCol, valueCol string) Combiner[K, R, *core.Table] {
	return NewCombiner("table", func(m Meta[K], rs []R) (*core.Table, error) {
		return core.NewTable(core.NewCol(keyCol, m.keys), core.NewCol(valueCol, rs))
	})
}

// AsRecords returns one row per group: the key under keyCol followed by the
// named values of the group's record, column-aligned by name.
//
// Errors:
//   - *core.ShapeViolation (Index = group) if a record's names differ from
//     the first group's.
//   - core.ErrDuplicateColumn if a record field is named keyCol.
func AsRecords[K any](keyCol string) Combiner[K, core.Record, *core.Table] {
	return NewCombiner("records", func(m Meta[K], rs []core.Record) (*core.Table, error) {
		vals, err := core.FromRecords(rs)
		if err != nil {
			return nil, err
		}
		cols := append([]core.Column{core.NewCol(keyCol, m.keys)}, vals.Columns()...)
		return core.NewTable(cols...)
	})
}

// AsArray stacks scalar results into an array: the kept-axes shape for
// array splits (each result at its group coordinate), otherwise [groups].
func AsArray[K, R any]() Combiner[K, R, *ndarray.Array[R]] {
	return NewCombiner("array", func(m Meta[K], rs []R) (*ndarray.Array[R], error) {
		if m.kind != KindArray {
			return ndarray.Vector(rs), nil
		}
		out, err := ndarray.New[R](m.keptShape()...)
		if err != nil {
			return nil, err
		}
		for g, r := range rs {
			if err = out.Set(m.at[g], r); err != nil {
				return nil, err
			}
		}
		return out, nil
	})
}

// AsNone discards every result.
func AsNone[K, R any]() Combiner[K, R, struct{}] {
	return NewCombiner("none", func(Meta[K], []R) (struct{}, error) { return struct{}{}, nil })
}

// Unsplit writes each group's slice of results back to the group's original
// positions, producing a sequence of length N. With the identity function it
// inverts BySequence exactly; on array splits it yields the row-major data.
//
// Errors:
//   - *core.ShapeViolation (Index = group) if a result's length differs
//     from its group's size.
func Unsplit[K, T any]() Combiner[K, []T, []T] {
	return NewCombiner("unsplit", func(m Meta[K], rs [][]T) ([]T, error) {
		out := make([]T, m.n)
		for g, r := range rs {
			idx := m.index[g]
			if len(r) != len(idx) {
				return nil, &core.ShapeViolation{
					Index:    g,
					Expected: fmt.Sprintf("%d elements", len(idx)),
					Actual:   fmt.Sprintf("%d elements", len(r)),
				}
			}
			for k, i := range idx {
				out[i] = r[k]
			}
		}
		return out, nil
	})
}

// BindRows stacks the per-group tables in group order (see Meta.Order).
//
// Errors:
//   - *core.ShapeViolation (Index = group) on column name or type mismatch.
func BindRows[K any]() Combiner[K, *core.Table, *core.Table] {
	return NewCombiner("bind-rows", func(_ Meta[K], rs []*core.Table) (*core.Table, error) {
		return core.BindRows(rs...)
	})
}

// Stack places each group's slice back at its coordinate along the split
// axes. With the identity function it inverts ByAxes exactly.
//
// Errors:
//   - ErrLayout for splits that are not array splits.
//   - ndarray.ErrDimensionMismatch if a slice has the wrong shape.
func Stack[T any]() Combiner[ndarray.Coord, *ndarray.Array[T], *ndarray.Array[T]] {
	return NewCombiner("stack", func(m Meta[ndarray.Coord], rs []*ndarray.Array[T]) (*ndarray.Array[T], error) {
		if m.kind != KindArray {
			return nil, fmt.Errorf("%w: stack over %s split", ErrLayout, m.kind)
		}
		out, err := ndarray.New[T](m.shape...)
		if err != nil {
			return nil, err
		}
		for g, r := range rs {
			if err = out.Place(m.margin, m.at[g], r); err != nil {
				return nil, err
			}
		}
		return out, nil
	})
}
