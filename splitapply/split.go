// SPDX-License-Identifier: MIT
// Package: splitapply
//
// Purpose:
//   - Step 1 of split/apply/combine: partition a sequence, a table or an
//     array into an ordered collection of homogeneous partitions.
//
// Layout:
//   - Every Split remembers where it came from (Kind, original size, and for
//     arrays the shape, margin and per-group coordinates) so that combiners
//     can reassemble results without seeing the partitions themselves.
//
// Determinism:
//   - Sequence and table splits keep first-seen key order; array splits are
//     row-major over the kept axes. Sorted returns a reordered copy.

package splitapply

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvfunc/axis"
	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/ndarray"
)

// Operation name constants for unified error wrapping.
const (
	opByKeys   = "splitapply.ByKeys"
	opByColumn = "splitapply.ByColumn"
	opByAxes   = "splitapply.ByAxes"
)

// Kind identifies the input shape a split was taken from.
type Kind int

const (
	// KindSequence marks splits of a []T.
	KindSequence Kind = iota
	// KindTable marks splits of a *core.Table.
	KindTable
	// KindArray marks splits of an *ndarray.Array along axes.
	KindArray
)

// String returns the lowercase shape name.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindTable:
		return "table"
	case KindArray:
		return "array"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Meta is the partition-free view of a split: keys, member indices and
// layout. Combiners receive a Meta together with the per-group results.
type Meta[K any] struct {
	kind   Kind
	keys   []K
	index  [][]int
	at     []ndarray.Coord // array splits only
	n      int
	shape  []int // array splits only
	margin []int // array splits only
}

// Kind reports the input shape of the split.
func (m Meta[K]) Kind() Kind { return m.kind }

// Len returns the number of groups.
func (m Meta[K]) Len() int { return len(m.keys) }

// Key returns the key of group g.
func (m Meta[K]) Key(g int) K { return m.keys[g] }

// Keys returns all keys in group order.
func (m Meta[K]) Keys() []K { return slices.Clone(m.keys) }

// Index returns a copy of the original positions covered by group g:
// element indices for sequences, row indices for tables and row-major flat
// offsets for arrays.
func (m Meta[K]) Index(g int) []int { return slices.Clone(m.index[g]) }

// N returns the size of the split input (elements, rows, or array size).
func (m Meta[K]) N() int { return m.n }

// Shape returns the shape of the split array, nil for other kinds.
func (m Meta[K]) Shape() []int { return slices.Clone(m.shape) }

// Margin returns the kept axes of an array split, nil for other kinds.
func (m Meta[K]) Margin() []int { return slices.Clone(m.margin) }

// Order concatenates the group indices in group order. For a table split,
// t.Take(s.Order()) is the table as BindRows reassembles it.
func (m Meta[K]) Order() []int {
	out := make([]int, 0, m.n)
	for _, idx := range m.index {
		out = append(out, idx...)
	}
	return out
}

// keptShape is the extents of the margin axes of an array split.
func (m Meta[K]) keptShape() []int { return ndarray.Pick(m.shape, m.margin) }

// Split is an ordered collection of groups, each a key plus its partition.
type Split[K, P any] struct {
	Meta[K]
	parts []P
}

// Part returns the partition of group g.
func (s *Split[K, P]) Part(g int) P { return s.parts[g] }

// Sorted returns a copy of s with groups ordered by cmp on keys (stable).
// Combiners that reassemble by position (AsArray and Stack on array splits,
// Unsplit) are unaffected by the reordering.
func (s *Split[K, P]) Sorted(cmp func(a, b K) int) *Split[K, P] {
	order := make([]int, len(s.keys))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp(s.keys[a], s.keys[b]) })

	out := &Split[K, P]{Meta: s.Meta, parts: make([]P, len(order))}
	out.keys = make([]K, len(order))
	out.index = make([][]int, len(order))
	if s.at != nil {
		out.at = make([]ndarray.Coord, len(order))
	}
	for dst, src := range order {
		out.keys[dst] = s.keys[src]
		out.index[dst] = s.index[src]
		out.parts[dst] = s.parts[src]
		if s.at != nil {
			out.at[dst] = s.at[src]
		}
	}
	return out
}

// FromGrouping splits xs by an explicit grouping over its indices.
//
// Errors:
//   - *core.LengthMismatch if g does not cover exactly len(xs) indices.
func FromGrouping[T any, K comparable](xs []T, g *core.Grouping[K]) (*Split[K, []T], error) {
	if g.N() != len(xs) {
		return nil, core.Wrap("splitapply.FromGrouping", &core.LengthMismatch{Left: len(xs), Right: g.N()})
	}
	s := &Split[K, []T]{Meta: fromGrouping(KindSequence, g)}
	s.parts = make([][]T, g.Len())
	for gi := range s.parts {
		part := make([]T, len(s.index[gi]))
		for k, i := range s.index[gi] {
			part[k] = xs[i]
		}
		s.parts[gi] = part
	}
	return s, nil
}

// BySequence groups the elements of xs by key(i, xs[i]).
// Complexity: O(n).
func BySequence[T any, K comparable](xs []T, key func(int, T) K) *Split[K, []T] {
	g := core.GroupBy(len(xs), func(i int) K { return key(i, xs[i]) })
	s, _ := FromGrouping(xs, g) // g covers len(xs) by construction
	return s
}

// ByKeys groups xs by the parallel key slice keys.
//
// Errors:
//   - *core.LengthMismatch if len(keys) != len(xs); keys are never recycled.
func ByKeys[T any, K comparable](xs []T, keys []K) (*Split[K, []T], error) {
	if len(keys) != len(xs) {
		return nil, core.Wrap(opByKeys, &core.LengthMismatch{Left: len(xs), Right: len(keys)})
	}
	return BySequence(xs, func(i int, _ T) K { return keys[i] }), nil
}

// ByColumn groups the rows of t by the values of column name.
//
// Errors:
//   - core.ErrUnknownColumn if t has no such column.
//   - *core.ShapeViolation (Index = row) for the first value that is not a K.
func ByColumn[K comparable](t *core.Table, name string) (*Split[K, *core.Table], error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, core.Wrap(opByColumn, err)
	}
	keys := make([]K, col.Len())
	for i := range keys {
		k, ok := col.Value(i).(K)
		if !ok {
			return nil, core.Wrap(opByColumn, &core.ShapeViolation{
				Index:    i,
				Expected: core.TypeName[K](),
				Actual:   fmt.Sprintf("%T", col.Value(i)),
			})
		}
		keys[i] = k
	}
	return byTable(t, core.GroupBy(t.Rows(), func(i int) K { return keys[i] })), nil
}

// ByRow groups the rows of t by key(row).
func ByRow[K comparable](t *core.Table, key func(core.Record) K) *Split[K, *core.Table] {
	return byTable(t, core.GroupBy(t.Rows(), func(i int) K { return key(t.Row(i)) }))
}

// ByAxes splits x into the slices indexed by the kept axes of sel. The key
// of each group is its coordinate on the kept axes; the partition is the
// slice over the collapsed axes.
//
// Errors:
//   - ndarray.ErrBadAxis for an invalid selection.
//
// Complexity: O(size * rank).
func ByAxes[T any](x *ndarray.Array[T], sel axis.Selection) (*Split[ndarray.Coord, *ndarray.Array[T]], error) {
	margin, err := sel.Margin(x.Rank())
	if err != nil {
		return nil, core.Wrap(opByAxes, err)
	}
	shape := x.Shape()
	coords := ndarray.Coords(ndarray.Pick(shape, margin))
	free := ndarray.Complement(len(shape), margin)
	freeShape := ndarray.Pick(shape, free)

	s := &Split[ndarray.Coord, *ndarray.Array[T]]{
		Meta: Meta[ndarray.Coord]{
			kind:   KindArray,
			keys:   make([]ndarray.Coord, len(coords)),
			index:  make([][]int, len(coords)),
			at:     make([]ndarray.Coord, len(coords)),
			n:      x.Size(),
			shape:  shape,
			margin: margin,
		},
		parts: make([]*ndarray.Array[T], len(coords)),
	}
	for g, at := range coords {
		part, err := x.Slice(margin, at)
		if err != nil {
			return nil, core.Wrap(opByAxes, err)
		}
		idx, err := offsets(x, margin, at, free, freeShape, part.Size())
		if err != nil {
			return nil, core.Wrap(opByAxes, err)
		}
		s.keys[g] = slices.Clone(at)
		s.at[g] = at
		s.index[g] = idx
		s.parts[g] = part
	}
	return s, nil
}

// fromGrouping copies keys and members of g into a Meta.
func fromGrouping[K comparable](kind Kind, g *core.Grouping[K]) Meta[K] {
	m := Meta[K]{kind: kind, keys: g.Keys(), index: make([][]int, g.Len()), n: g.N()}
	for gi := range m.index {
		m.index[gi] = g.Members(gi)
	}
	return m
}

// byTable builds a table split whose partitions are row subsets.
func byTable[K comparable](t *core.Table, g *core.Grouping[K]) *Split[K, *core.Table] {
	s := &Split[K, *core.Table]{Meta: fromGrouping(KindTable, g)}
	s.parts = make([]*core.Table, g.Len())
	for gi := range s.parts {
		s.parts[gi] = t.Take(s.index[gi])
	}
	return s
}

// offsets lists the flat offsets of the slice at/margin in slice order.
func offsets[T any](x *ndarray.Array[T], margin []int, at ndarray.Coord, free, freeShape []int, size int) ([]int, error) {
	out := make([]int, 0, size)
	if size == 0 {
		return out, nil
	}
	full := make(ndarray.Coord, x.Rank())
	for k, ax := range margin {
		full[ax] = at[k]
	}
	c := make(ndarray.Coord, len(free))
	for {
		for k, ax := range free {
			full[ax] = c[k]
		}
		off, err := x.Ravel(full)
		if err != nil {
			return nil, err
		}
		out = append(out, off)
		if !ndarray.NextCoord(c, freeShape) {
			break
		}
	}
	return out, nil
}
