// Package predicate provides search and selection functionals built on one
// contract: pred func(T) bool, total and side-effect-free.
//
//	Filter    elements where pred holds, order preserved
//	Find      first (or last) matching element, (T, bool)
//	Position  first (or last) matching index, (int, bool)
//	Where     length-preserving []bool mask
//	Select    elements at the true positions of a mask
//
// Find and Position always agree: Position returns (i, true) exactly when
// xs[i] is the Find result and no earlier (later, with fromEnd) index
// qualifies. Filter(xs, p) is Select(xs, Where(xs, p)).
//
// For NA-carrying sequences use Defined:
//
//	xs := []core.Maybe[int]{core.NA[int](), core.Some(5), core.NA[int](), core.Some(7)}
//	i, _ := predicate.Position(xs, predicate.Defined[int], false) // 1
//	j, _ := predicate.Position(xs, predicate.Defined[int], true)  // 3
package predicate
