// SPDX-License-Identifier: MIT

// Package core: sentinel error set and structured failure types.
// This file defines the error taxonomy shared by every combinator package.
// Each structured type matches its sentinel through Is, so callers test
// failures with errors.Is and extract context with errors.As.
//
// ERROR PRIORITY (documented, enforced in tests):
// cancellation -> callback failure -> shape violation -> length mismatch.
// A cancelled call never reports the callback failure that raced with it.

package core

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every sentinel message is prefixed with "core: ..." for easy grepping.
// Operation context is attached by the calling package with Wrap(op, err);
// the sentinel stays reachable through errors.Is.

var (
	// ErrShapeViolation is matched by *ShapeViolation: a produced element did
	// not satisfy the declared output descriptor.
	ErrShapeViolation = errors.New("core: output shape violation")

	// ErrEmptyReduction is returned when a reduction without an initial value
	// is asked to fold an empty sequence.
	ErrEmptyReduction = errors.New("core: empty reduction without init")

	// ErrLengthMismatch is matched by *LengthMismatch: two inputs that must
	// have equal length did not.
	ErrLengthMismatch = errors.New("core: length mismatch")

	// ErrPartitionFailure is matched by *PartitionFailure: the per-group
	// function failed for one partition.
	ErrPartitionFailure = errors.New("core: partition failure")

	// ErrCallbackFailure is matched by *CallbackFailure: a host-supplied
	// function returned an error or panicked.
	ErrCallbackFailure = errors.New("core: callback failure")

	// ErrCancelled is matched by *Cancelled: the call context was cancelled
	// or its deadline expired before all work completed.
	ErrCancelled = errors.New("core: cancelled")

	// ErrDuplicateColumn indicates two table columns share one name.
	ErrDuplicateColumn = errors.New("core: duplicate column name")

	// ErrUnknownColumn indicates a lookup of a column name the table lacks.
	ErrUnknownColumn = errors.New("core: unknown column")

	// ErrBadGrouping indicates a grouping that does not partition its index
	// set (overlap, gap, or out-of-range member).
	ErrBadGrouping = errors.New("core: grouping is not a partition")
)

// ShapeViolation reports the first produced element that failed the output
// descriptor. Index is the element (or group) position, Expected and Actual
// describe the declared and observed type/arity.
type ShapeViolation struct {
	Index    int
	Expected string
	Actual   string
}

// Error implements error.
func (e *ShapeViolation) Error() string {
	return fmt.Sprintf("core: shape violation at index %d: expected %s, got %s", e.Index, e.Expected, e.Actual)
}

// Is matches ErrShapeViolation.
func (e *ShapeViolation) Is(target error) bool { return target == ErrShapeViolation }

// LengthMismatch reports two inputs whose lengths had to agree.
type LengthMismatch struct {
	Left, Right int
}

// Error implements error.
func (e *LengthMismatch) Error() string {
	return fmt.Sprintf("core: length mismatch: %d vs %d", e.Left, e.Right)
}

// Is matches ErrLengthMismatch.
func (e *LengthMismatch) Is(target error) bool { return target == ErrLengthMismatch }

// PartitionFailure carries the group key whose partition failed and the
// underlying cause.
type PartitionFailure struct {
	Key   any
	Cause error
}

// Error implements error.
func (e *PartitionFailure) Error() string {
	return fmt.Sprintf("core: partition %v failed: %v", e.Key, e.Cause)
}

// Is matches ErrPartitionFailure.
func (e *PartitionFailure) Is(target error) bool { return target == ErrPartitionFailure }

// Unwrap exposes the cause.
func (e *PartitionFailure) Unwrap() error { return e.Cause }

// CallbackFailure wraps an error (or recovered panic) raised by a host
// closure while processing element Index.
type CallbackFailure struct {
	Index int
	Cause error
}

// Error implements error.
func (e *CallbackFailure) Error() string {
	return fmt.Sprintf("core: callback failed at index %d: %v", e.Index, e.Cause)
}

// Is matches ErrCallbackFailure.
func (e *CallbackFailure) Is(target error) bool { return target == ErrCallbackFailure }

// Unwrap exposes the cause.
func (e *CallbackFailure) Unwrap() error { return e.Cause }

// Cancelled wraps the context error that stopped a call.
// errors.Is(err, context.DeadlineExceeded) keeps working through Unwrap.
type Cancelled struct {
	Cause error
}

// Error implements error.
func (e *Cancelled) Error() string {
	return fmt.Sprintf("core: cancelled: %v", e.Cause)
}

// Is matches ErrCancelled.
func (e *Cancelled) Is(target error) bool { return target == ErrCancelled }

// Unwrap exposes the context error.
func (e *Cancelled) Unwrap() error { return e.Cause }

// PanicError is the cause recorded when a callback panics.
type PanicError struct {
	Value any
}

// Error implements error.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Wrap tags err with the operation name that observed it. A nil err stays nil.
// Typed failures remain reachable through errors.Is / errors.As.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, op)
}
