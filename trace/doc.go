// Package trace records the step-by-step derivation produced alongside every
// numerical result.
//
// A Trace is an ordered, append-only sequence of typed entries. Each entry is
// a plain struct (PivotSwap, Eliminate, FactorCompute, ForwardSub,
// BackwardSub, IterationUpdate, ConvergenceCheck, BracketCheck, Bisect,
// SecantStep, RKSubstep, plus Snapshot and SingularPivot) that carries the
// numeric operands and the resulting value, so a presentation layer can
// re-render the full derivation without re-running the algorithm.
//
// Numbers are stored as Float, a float64 whose JSON form tolerates NaN and
// ±Inf: failed evaluations are part of the record, not a reason to drop it.
//
//	t := trace.New()
//	t.Append(trace.Bisect{Iteration: 1, A: 2, B: 3, Mid: 2.5})
//	for _, line := range t.Lines(4) {
//		fmt.Println(line)
//	}
package trace
