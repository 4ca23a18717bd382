// Package lvfunc is a toolkit of typed higher-order operations over
// sequences, tables and N-dimensional arrays: apply a function, reduce,
// filter, split into groups and recombine.
//
// 🚀 What is lvfunc?
//
//	A small, context-aware library that brings together:
//		• Typed apply: per-element calls checked against a declared output
//		  descriptor (scalar or fixed-arity vector), or inferred best-effort
//		• Reduce and Accumulate: left/right folds with an optional seed
//		• Predicates: Where, Select, Find, Position, Filter, all NA-aware
//		• Axis apply: functions over array slices, plus Sweep and Outer
//		• Split/apply/combine: any splitter with any combiner, one engine
//		• Associative families: Sum, Product, Min, Max, All, Any, Concat and
//		  exact decimal sums, each with Fold, Scan, ZipWith and AxisFold
//
// ✨ Why choose lvfunc?
//
//   - Predictable: outputs keep input order under every strategy
//   - Checked: shape and type contracts fail fast with the offending index
//   - Parallel on request: core.WithParallel fans work out on a bounded pool
//   - Quiet by default: logging goes through logr and is discarded unless a
//     logger is supplied
//
// Packages:
//
//	core/       - Maybe (NA), Table, Grouping, options, runner, error types
//	ndarray/    - dense row-major arrays, slicing and index math
//	apply/      - Apply, Map, Vectorize, ApplyBestEffort
//	reduce/     - Reduce, Accumulate, Fold, ScanWith
//	predicate/  - masks, selection and search
//	axis/       - ApplyAxis, ApplyAxisVec, Sweep, Outer, Center, Scale
//	splitapply/ - splitters, combiners, Do and Walk
//	assoc/      - associative operator families and law checks
//
// Quick example:
//
//	s, _ := splitapply.ByColumn[string](t, "group")
//	n, _ := splitapply.Do(ctx, s,
//	    func(_ string, p *core.Table) (int, error) { return p.Rows(), nil },
//	    splitapply.AsTable[string, int]("group", "n"))
//
//	go get github.com/katalvlaran/lvfunc
package lvfunc
