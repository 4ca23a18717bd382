// SPDX-License-Identifier: MIT

// Package core: shared type constraints and collaborator contracts.

package core

// Number is the constraint for arithmetic element types used by the builtin
// associative operators and the statistics helpers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ScalarFunc is the contract of an external numerical collaborator
// (root finders, optimizers): callable repeatedly, no side effects relevant
// to correctness. The toolkit only lifts such functions over sequences.
type ScalarFunc func(float64) float64
