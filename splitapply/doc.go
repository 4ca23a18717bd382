// Package splitapply implements split/apply/combine as one engine.
//
// A computation is three independent choices:
//
//	split    BySequence, ByKeys, FromGrouping   ([]T)
//	         ByColumn, ByRow                    (*core.Table)
//	         ByAxes                             (*ndarray.Array)
//	apply    f(key, partition) (R, error), once per group
//	combine  AsSequence, AsTable, AsRecords, AsArray, AsNone,
//	         Unsplit, BindRows, Stack
//
// Every splitter feeds every combiner through the same Do, which dispatches
// the apply step via apply.Map. Groups never observe each other's results,
// so core.WithParallel is safe whenever f is side-effect-free; output order
// is the group order under every strategy.
//
// Example: count rows per group.
//
//	s, err := splitapply.ByColumn[string](t, "group")
//	counts, err := splitapply.Do(ctx, s,
//	    func(_ string, p *core.Table) (int, error) { return p.Rows(), nil },
//	    splitapply.AsTable[string, int]("group", "n"))
//
// A failure in f aborts the whole call with *core.PartitionFailure naming
// the group key; no partial result is returned.
package splitapply
