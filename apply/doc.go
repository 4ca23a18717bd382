// Package apply implements strict-contract functional application: map a
// function over a sequence and materialize the results into a container
// whose element type and arity are declared up front.
//
// 🚀 What is a shape contract?
//
//	A Descriptor[B] states the exact Go type and arity every produced element
//	must have. Apply checks each result before storing it and fails with
//	*core.ShapeViolation{Index, Expected, Actual} on the first mismatch. There
//	is no coercion and no guessing: a result is either fully conforming or an
//	error, never a mixed container.
//
// ✨ Entry points:
//   - Apply: f returns any; type and arity are checked at runtime.
//   - Map: f returns B; the compiler checks the type, d the arity.
//   - ApplyBestEffort: opt-in inference, element 0 fixes the shape, every
//     other element must match it. Empty input yields an explicit empty Result.
//   - Vectorize: lifts a core.ScalarFunc over []float64.
//
// ⚙️ Usage:
//
//	strs, err := apply.Apply(ctx, []any{1, "a", 3},
//	    func(v any) (any, error) { return fmt.Sprint(v), nil },
//	    apply.Scalar[string]())
//	// strs == ["1" "a" "3"]
//
//	pairs, err := apply.Map(ctx, xs, minMax, apply.Vector[float64](2),
//	    core.WithParallel(8))
//
// Execution:
//
//	All entry points dispatch through core.Run, so they honour
//	core.WithParallel, core.WithTimeout and core.WithLogger, and produce the
//	same output order under every strategy.
package apply
