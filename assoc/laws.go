// SPDX-License-Identifier: MIT

package assoc

import (
	"github.com/katalvlaran/lvfunc/core"
)

// CheckLaws verifies, over samples (NA included), that Pairwise obeys:
//
//   - left and right identity for every defined sample,
//   - identity consistency for every sample, NA included:
//     e∘(e∘x) == e∘x,
//   - the NA policy (skip: NA is neutral and NA∘NA is the identity;
//     propagate: any NA operand yields NA),
//   - associativity for every ordered triple of samples.
//
// Meant for tests and operator definitions, not hot paths.
// Errors: *LawViolation for the first failure found.
// Complexity: O(len(samples)^3) calls of Combine.
func (f *Family[T]) CheckLaws(samples []core.Maybe[T]) error {
	e := f.Identity()
	na := core.NA[T]()

	for _, x := range samples {
		if x.IsNA() {
			continue
		}
		if got := f.Pairwise(e, x); !f.Equal(got, x) {
			return f.violation(LawLeftIdentity, e, x)
		}
		if got := f.Pairwise(x, e); !f.Equal(got, x) {
			return f.violation(LawRightIdentity, x, e)
		}
	}

	for _, x := range samples {
		once := f.Pairwise(e, x)
		if !f.Equal(f.Pairwise(e, once), once) {
			return f.violation(LawIdentityConsistency, e, x)
		}
	}

	for _, x := range samples {
		var wantL, wantR core.Maybe[T]
		switch f.spec.NA {
		case PropagateNA:
			wantL, wantR = na, na
		default:
			wantL, wantR = x, x
			if x.IsNA() {
				wantL, wantR = e, e
			}
		}
		if !f.Equal(f.Pairwise(na, x), wantL) {
			return f.violation(LawNAPolicy, na, x)
		}
		if !f.Equal(f.Pairwise(x, na), wantR) {
			return f.violation(LawNAPolicy, x, na)
		}
	}

	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				l := f.Pairwise(f.Pairwise(a, b), c)
				r := f.Pairwise(a, f.Pairwise(b, c))
				if !f.Equal(l, r) {
					return f.violation(LawAssociativity, a, b, c)
				}
			}
		}
	}
	return nil
}

func (f *Family[T]) violation(law string, operands ...core.Maybe[T]) error {
	ops := make([]string, len(operands))
	for i, o := range operands {
		ops[i] = o.String()
	}
	return &LawViolation{Op: f.spec.Name, Law: law, Operands: ops}
}
