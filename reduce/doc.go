// Package reduce folds sequences with a binary combining function.
//
// 🚀 What does it cover?
//
//	Reduce        fold to one value, Left or Right, optional seed.
//	Accumulate    the same fold returning every intermediate accumulator.
//	TryReduce / TryAccumulate  fallible combining functions; failures
//	              surface as *core.CallbackFailure{Index}.
//	Fold          explicit accumulator of a different type, passed in and
//	              returned (no mutation of captured outer variables).
//	ScanWith      a scan whose step may be non-associative and whose output
//	              at i depends on the output at i-1.
//
// ✨ Edge cases:
//   - Empty input without a seed fails with core.ErrEmptyReduction; callers
//     that need a defined empty-case value pass Options.Init.
//   - Reduce([], f, Init: e) == e for either direction.
//
// ⚙️ Usage:
//
//	sum, _ := reduce.Reduce([]int{1, 2, 3, 4},
//	    func(a, b int) int { return a + b },
//	    reduce.DefaultOptions[int]())             // 10
//
//	trace, _ := reduce.Accumulate([]string{"a", "b", "c"}, concat,
//	    reduce.Options[string]{Direction: reduce.Right}) // ["abc" "bc" "c"]
//
// Performance:
//
//   - Time:   O(n) calls of f
//   - Memory: O(1) for Reduce, O(n) for Accumulate
package reduce
