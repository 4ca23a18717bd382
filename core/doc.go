// Package core defines the data model and execution machinery shared by every
// lvfunc combinator package.
//
// 🚀 What lives here?
//
//   - Maybe[T]: an element that is either a value or NA (missing), so
//     NA-carrying sequences are plain []Maybe[T] slices.
//   - Table / Column / Record: a keyed table of named, equal-length columns
//     with heterogeneous element types.
//   - Grouping[K]: a partition of an index set by key, first-seen ordered.
//   - Option / Options / Run: the execution strategy (Sequential or
//     Parallel(workers), optional timeout, logr.Logger) and the dispatcher
//     that honours it.
//   - The error taxonomy: ShapeViolation, LengthMismatch, PartitionFailure,
//     CallbackFailure, Cancelled, and ErrEmptyReduction.
//
// ✨ Guarantees:
//
//   - Inputs are never mutated. Tables copy on construction and on access.
//   - No package-level mutable state; every call carries its own Options.
//   - Output ordering is identical under Sequential and Parallel strategies.
//   - Every failure carries index or key context and matches its sentinel via
//     errors.Is.
//
// ⚙️ Usage:
//
//	opts := []core.Option{
//	    core.WithParallel(4),
//	    core.WithTimeout(2 * time.Second),
//	    core.WithLogger(logger),
//	}
//	out, err := apply.Map(ctx, xs, f, apply.Scalar[float64](), opts...)
//	if errors.Is(err, core.ErrCancelled) { ... }
//
// The execution strategy is the only configuration object the toolkit
// accepts.
package core
