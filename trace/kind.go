package trace

import "fmt"

// Kind tags the variant of an Entry.
type Kind int

const (
	// KindPivotSwap records a partial-pivoting row interchange.
	KindPivotSwap Kind = iota
	// KindEliminate records one cell update A[i][j] -= factor·A[k][j].
	KindEliminate
	// KindFactorCompute records one computed cell of L or U.
	KindFactorCompute
	// KindForwardSub records one component of L·Y = B.
	KindForwardSub
	// KindBackwardSub records one component of U·X = Y.
	KindBackwardSub
	// KindIterationUpdate records one component update of a Jacobi/Gauss-Seidel sweep.
	KindIterationUpdate
	// KindConvergenceCheck records the end-of-sweep tolerance test.
	KindConvergenceCheck
	// KindBracketCheck records one sign test of the bracket search.
	KindBracketCheck
	// KindBisect records one halving of the bracket.
	KindBisect
	// KindSecantStep records one secant iteration.
	KindSecantStep
	// KindRKSubstep records one Heun (RK2) step.
	KindRKSubstep
	// KindSnapshot records the full working matrix at a point in elimination.
	KindSnapshot
	// KindSingularPivot records a (near-)zero pivot that halted or degraded a solve.
	KindSingularPivot
)

var kindNames = [...]string{
	KindPivotSwap:        "pivotSwap",
	KindEliminate:        "eliminate",
	KindFactorCompute:    "factorCompute",
	KindForwardSub:       "forwardSub",
	KindBackwardSub:      "backwardSub",
	KindIterationUpdate:  "iterationUpdate",
	KindConvergenceCheck: "convergenceCheck",
	KindBracketCheck:     "bracketCheck",
	KindBisect:           "bisect",
	KindSecantStep:       "secantStep",
	KindRKSubstep:        "rkSubstep",
	KindSnapshot:         "snapshot",
	KindSingularPivot:    "singularPivot",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("trace: unknown kind %d", int(k))
	}

	return []byte(kindNames[k]), nil
}

// ParseKind resolves a wire name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("trace: unknown kind %q", name)
}
