// Package assoc derives the standard forms of an associative operator.
//
// One Spec (Combine, Identity, NA policy, Equal) yields a Family with
// Pairwise, Fold, ZipWith, Scan and AxisFold, all built on package reduce
// and package axis. CheckLaws verifies identity, NA policy and
// associativity over sample values, so a new operator is validated by a
// property test rather than by assertions in hot paths.
//
//	sum, _ := assoc.New(assoc.Sum[int]())
//	sum.Fold(core.Somes(1, 2, 3, 4)) // Some(10)
//	sum.Fold(nil)                    // Some(0)
//	sum.Scan(core.Somes(1, 4, 10))   // [1 5 15]
//
// Builtins cover numeric sum/product, min/max, boolean all/any, string
// concatenation and exact decimal sums (github.com/shopspring/decimal).
package assoc
