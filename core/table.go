// SPDX-License-Identifier: MIT

// Package core: KeyedTable, an ordered set of named, equal-length columns.
//
// Columns may carry different element types. A Table is immutable after
// construction: constructors copy their inputs and accessors return copies,
// so a Table can be shared across goroutines without locking.

package core

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

const (
	opNewTable  = "NewTable"
	opBindRows  = "BindRows"
	opColumn    = "Table.Column"
	opColValues = "ColumnValues"
)

// Column is one named column of a Table.
type Column interface {
	// Name returns the column name.
	Name() string

	// Len returns the number of rows.
	Len() int

	// Value returns row i boxed as any.
	Value(i int) any

	// Type names the element type, e.g. "int" or "string".
	Type() string

	// Take returns a new column holding rows idx in that order.
	Take(idx []int) Column

	// Concat appends other below this column; other must hold the same
	// element type.
	Concat(other Column) (Column, error)
}

// Col is the generic Column implementation.
type Col[T any] struct {
	name string
	data []T
}

// NewCol builds a column named name over a copy of data.
// Complexity: O(n).
func NewCol[T any](name string, data []T) *Col[T] {
	cp := make([]T, len(data))
	copy(cp, data)
	return &Col[T]{name: name, data: cp}
}

// Name returns the column name.
func (c *Col[T]) Name() string { return c.name }

// Len returns the number of rows.
func (c *Col[T]) Len() int { return len(c.data) }

// At returns row i typed.
func (c *Col[T]) At(i int) T { return c.data[i] }

// Value returns row i boxed as any.
func (c *Col[T]) Value(i int) any { return c.data[i] }

// Values returns a copy of the column data.
func (c *Col[T]) Values() []T {
	cp := make([]T, len(c.data))
	copy(cp, c.data)
	return cp
}

// Type names the element type.
func (c *Col[T]) Type() string { return TypeName[T]() }

// Take returns a new column with rows idx.
// Complexity: O(len(idx)).
func (c *Col[T]) Take(idx []int) Column {
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = c.data[i]
	}
	return &Col[T]{name: c.name, data: out}
}

// Concat appends other below c.
func (c *Col[T]) Concat(other Column) (Column, error) {
	o, ok := other.(*Col[T])
	if !ok {
		return nil, &ShapeViolation{Index: c.Len(), Expected: c.Type(), Actual: other.Type()}
	}
	out := make([]T, 0, len(c.data)+len(o.data))
	out = append(out, c.data...)
	out = append(out, o.data...)
	return &Col[T]{name: c.name, data: out}, nil
}

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered list of named values: a table row, or the
// multi-valued result of a per-group function.
type Record []Field

// Get returns the value named name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}
	return names
}

// Table is an ordered sequence of named, equal-length columns.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// NewTable assembles a table from cols in the given order.
//
// Errors:
//   - *LengthMismatch if column lengths differ (first vs offending column).
//   - ErrDuplicateColumn if two columns share a name.
//
// Complexity: O(width).
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{cols: make([]Column, len(cols)), index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, Wrap(opNewTable, &LengthMismatch{Left: t.rows, Right: c.Len()})
		}
		if _, dup := t.index[c.Name()]; dup {
			return nil, Wrap(opNewTable, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name()))
		}
		t.index[c.Name()] = i
		t.cols[i] = c
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in order.
func (t *Table) Columns() []Column {
	cp := make([]Column, len(t.cols))
	copy(cp, t.cols)
	return cp
}

// Column returns the column named name, or ErrUnknownColumn.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, Wrap(opColumn, fmt.Errorf("%w: %q", ErrUnknownColumn, name))
	}
	return t.cols[i], nil
}

// Row returns row i as a Record.
// Complexity: O(width).
func (t *Table) Row(i int) Record {
	r := make(Record, len(t.cols))
	for j, c := range t.cols {
		r[j] = Field{Name: c.Name(), Value: c.Value(i)}
	}
	return r
}

// Take returns a new table holding rows idx in that order.
// Complexity: O(width * len(idx)).
func (t *Table) Take(idx []int) *Table {
	out := &Table{cols: make([]Column, len(t.cols)), index: t.index, rows: len(idx)}
	for j, c := range t.cols {
		out.cols[j] = c.Take(idx)
	}
	return out
}

// Equal reports whether t and o have the same column names, element types
// and values in the same row order.
func (t *Table) Equal(o *Table) bool {
	if t.rows != o.rows || len(t.cols) != len(o.cols) {
		return false
	}
	for j, c := range t.cols {
		d := o.cols[j]
		if c.Name() != d.Name() || c.Type() != d.Type() {
			return false
		}
		var i int
		for i = 0; i < t.rows; i++ {
			if !reflect.DeepEqual(c.Value(i), d.Value(i)) {
				return false
			}
		}
	}
	return true
}

// String renders a header line and one line per row.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Names(), "\t"))
	b.WriteByte('\n')
	var i int
	for i = 0; i < t.rows; i++ {
		for j, c := range t.cols {
			if j > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprint(&b, c.Value(i))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// BindRows stacks tables vertically. All tables must share column names,
// order and element types with the first one.
//
// Errors:
//   - *ShapeViolation (Index = offending table) on name or type mismatch.
//
// Complexity: O(total rows * width).
func BindRows(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return NewTable()
	}
	first := tables[0]
	cols := first.Columns()
	want := strings.Join(first.Names(), ",")
	for k, t := range tables[1:] {
		if got := strings.Join(t.Names(), ","); got != want {
			return nil, Wrap(opBindRows, &ShapeViolation{Index: k + 1, Expected: want, Actual: got})
		}
		for j := range cols {
			merged, err := cols[j].Concat(t.cols[j])
			if err != nil {
				var sv *ShapeViolation
				if errors.As(err, &sv) {
					sv.Index = k + 1
				}
				return nil, Wrap(opBindRows, err)
			}
			cols[j] = merged
		}
	}
	return NewTable(cols...)
}

// FromRecords builds a table whose columns follow the names of the first
// record. Columns are typed any because record values are dynamic.
//
// Errors:
//   - *ShapeViolation (Index = record) when a record's names differ.
func FromRecords(records []Record) (*Table, error) {
	if len(records) == 0 {
		return NewTable()
	}
	names := records[0].Names()
	want := strings.Join(names, ",")
	data := make([][]any, len(names))
	for j := range data {
		data[j] = make([]any, len(records))
	}
	for i, r := range records {
		if got := strings.Join(r.Names(), ","); got != want {
			return nil, &ShapeViolation{Index: i, Expected: want, Actual: got}
		}
		for j, f := range r {
			data[j][i] = f.Value
		}
	}
	cols := make([]Column, len(names))
	for j, name := range names {
		cols[j] = &Col[any]{name: name, data: data[j]}
	}
	return NewTable(cols...)
}

// ColumnValues returns a typed copy of column name.
//
// Errors:
//   - ErrUnknownColumn if the table lacks name.
//   - *ShapeViolation if the column element type is not T.
func ColumnValues[T any](t *Table, name string) ([]T, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, Wrap(opColValues, err)
	}
	typed, ok := c.(*Col[T])
	if !ok {
		return nil, Wrap(opColValues, &ShapeViolation{Index: t.index[name], Expected: TypeName[T](), Actual: c.Type()})
	}
	return typed.Values(), nil
}

// TypeName names T without needing a value of it; used to describe
// expected types in ShapeViolation messages.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
