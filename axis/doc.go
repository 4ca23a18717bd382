// Package axis applies functions to N-dimensional arrays slice by slice.
//
// 🚀 What is an axis application?
//
//	Given an array X and a Selection, X is decomposed into slices: the kept
//	(margin) axes index the slices, the collapsed axes vary inside each
//	slice. A function is applied per slice under an apply.Descriptor and the
//	results are stacked back under the kept shape.
//
//	    X: 2×3              ApplyAxis(X, Keep(0), sum)     → shape [2]
//	    [1 2 3]             ApplyAxis(X, Collapse(0), sum) → shape [3]
//	    [4 5 6]             ApplyAxisVec(X, Keep(0), id)   → shape [3 2] = Xᵀ
//
// ✨ Key features:
//   - Keep / Collapse name the same decomposition from either side.
//   - Vector results of arity k stack to [k, kept...]; the identity on a
//     single-axis slice is therefore an axis transposition (regression-tested).
//   - Sweep broadcasts a per-position statistic back across an axis:
//     Sweep(X, 0, colMeans, minus) centers columns.
//   - Outer builds the Cartesian [len(xs), len(ys)] table of f(x, y).
//   - Center / Scale: centering and L2 scaling as fold + sweep.
//
// ⚙️ Usage:
//
//	sums, err := axis.ApplyAxis(ctx, X, axis.Collapse(0),
//	    func(s *ndarray.Array[float64]) (any, error) { return total(s.Data()), nil },
//	    apply.Scalar[float64](), core.WithParallel(4))
//
// Performance:
//
//   - Time:   O(size) slice extraction plus one call per slice
//   - Memory: O(size of one slice) per in-flight task, O(output) for results
package axis
