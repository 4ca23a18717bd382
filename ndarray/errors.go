// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// All constructors and indexers MUST return these sentinels (optionally wrapped
// with an op tag) and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions.

package ndarray

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// extent) or does not match the supplied data length.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrOutOfRange indicates an index outside valid bounds, or an index
	// tuple of the wrong rank. Public indexers (At/Set) return this, not panic.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. a sweep statistic that does not match the non-swept extents.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrBadAxis indicates an axis outside [0, rank), a repeated axis, or a
	// permutation that is not one.
	ErrBadAxis = errors.New("ndarray: invalid axis")
)
