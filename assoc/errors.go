// SPDX-License-Identifier: MIT

package assoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpec indicates a Spec without Combine or Equal.
	ErrInvalidSpec = errors.New("assoc: invalid operator spec")

	// ErrLawViolation is matched by *LawViolation.
	ErrLawViolation = errors.New("assoc: algebraic law violated")
)

// Law names checked by CheckLaws.
const (
	LawLeftIdentity        = "left identity"
	LawRightIdentity       = "right identity"
	LawIdentityConsistency = "identity consistency"
	LawAssociativity       = "associativity"
	LawNAPolicy            = "na policy"
)

// LawViolation reports the operands for which a law failed.
type LawViolation struct {
	Op       string
	Law      string
	Operands []string
}

func (e *LawViolation) Error() string {
	return fmt.Sprintf("assoc: %s violates %s for %v", e.Op, e.Law, e.Operands)
}

// Is lets errors.Is(err, ErrLawViolation) match.
func (e *LawViolation) Is(target error) bool { return target == ErrLawViolation }
