package trace

// Entry is one reproducible computational event. Concrete entries are plain
// structs carrying the operands and results needed to re-derive the displayed
// formula without re-running the algorithm.
type Entry interface {
	Kind() Kind
}

// Term is one product of a running sum: Left·Right. Index is the summation
// index k of the term (0-based).
type Term struct {
	Index int   `json:"index"`
	Left  Float `json:"left"`
	Right Float `json:"right"`
}

// Half names the sub-interval a bisection step keeps.
type Half string

const (
	// KeepLeft keeps [a, mid].
	KeepLeft Half = "left"
	// KeepRight keeps [mid, b].
	KeepRight Half = "right"
)

// PivotSwap: rows From and To were exchanged to put the largest |value| of
// Column on the diagonal.
type PivotSwap struct {
	Column int   `json:"column"`
	From   int   `json:"from"`
	To     int   `json:"to"`
	Pivot  Float `json:"pivot"`
}

// Eliminate: A[Row][Col] = Old − Factor·PivotValue = New, where PivotValue is
// A[PivotRow][Col].
type Eliminate struct {
	PivotRow   int   `json:"pivotRow"`
	Row        int   `json:"row"`
	Col        int   `json:"col"`
	Factor     Float `json:"factor"`
	Old        Float `json:"old"`
	PivotValue Float `json:"pivotValue"`
	New        Float `json:"new"`
}

// FactorCompute: one Doolittle cell.
//
//	U[Row][Col] = Source − Σ Terms                 (Factor == "U", Divisor == 1)
//	L[Row][Col] = (Source − Σ Terms) / Divisor     (Factor == "L")
type FactorCompute struct {
	Factor  string `json:"factor"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Source  Float  `json:"source"`
	Terms   []Term `json:"terms"`
	Sum     Float  `json:"sum"`
	Divisor Float  `json:"divisor"`
	Value   Float  `json:"value"`
}

// ForwardSub: Y[Row] = RHS − Σ L[Row][k]·Y[k].
type ForwardSub struct {
	Row   int    `json:"row"`
	RHS   Float  `json:"rhs"`
	Terms []Term `json:"terms"`
	Sum   Float  `json:"sum"`
	Value Float  `json:"value"`
}

// BackwardSub: X[Row] = (RHS − Σ Coef[Row][k]·X[k]) / Divisor. Coef names the
// triangular matrix ("U" for LU, "A" for the reduced Gauss system).
type BackwardSub struct {
	Coef    string `json:"coef"`
	Row     int    `json:"row"`
	RHS     Float  `json:"rhs"`
	Terms   []Term `json:"terms"`
	Sum     Float  `json:"sum"`
	Divisor Float  `json:"divisor"`
	Value   Float  `json:"value"`
}

// IterationUpdate: x[Component] = (RHS − Σ A[i][j]·x[j]) / Diagonal for one
// sweep of Method ("jacobi" or "gauss-seidel").
type IterationUpdate struct {
	Method    string `json:"method"`
	Iteration int    `json:"iteration"`
	Component int    `json:"component"`
	RHS       Float  `json:"rhs"`
	Terms     []Term `json:"terms"`
	Diagonal  Float  `json:"diagonal"`
	Value     Float  `json:"value"`
}

// ConvergenceCheck: max |xNew − xOld| against Tolerance after a sweep.
type ConvergenceCheck struct {
	Iteration int     `json:"iteration"`
	Estimate  []Float `json:"estimate"`
	Deltas    []Float `json:"deltas"`
	MaxDelta  Float   `json:"maxDelta"`
	Tolerance Float   `json:"tolerance"`
	Converged bool    `json:"converged"`
}

// BracketCheck: the sign test f(A)·f(B) < 0 of bracket search attempt
// Attempt (1-based). WorkA/WorkB hold the substitution reductions.
type BracketCheck struct {
	Attempt    int      `json:"attempt"`
	A          Float    `json:"a"`
	B          Float    `json:"b"`
	FA         Float    `json:"fa"`
	FB         Float    `json:"fb"`
	WorkA      []string `json:"workA"`
	WorkB      []string `json:"workB"`
	SignChange bool     `json:"signChange"`
	Exact      bool     `json:"exact"`
	Err        string   `json:"err,omitempty"`
}

// Bisect: one halving of [A, B] at Mid. Final marks the closing entry that
// reports the midpoint of the accepted interval.
type Bisect struct {
	Iteration  int      `json:"iteration"`
	A          Float    `json:"a"`
	B          Float    `json:"b"`
	Mid        Float    `json:"mid"`
	FMid       Float    `json:"fmid"`
	Work       []string `json:"work"`
	Keep       Half     `json:"keep"`
	Reasoning  string   `json:"reasoning"`
	Conclusion string   `json:"conclusion"`
	Final      bool     `json:"final"`
	Err        string   `json:"err,omitempty"`
}

// SecantStep: Next = X1 − FX1·(X1 − X0)/(FX1 − FX0).
type SecantStep struct {
	Iteration int      `json:"iteration"`
	X0        Float    `json:"x0"`
	X1        Float    `json:"x1"`
	FX0       Float    `json:"fx0"`
	FX1       Float    `json:"fx1"`
	Next      Float    `json:"next"`
	FNext     Float    `json:"fnext"`
	Work      []string `json:"work"`
	Err       string   `json:"err,omitempty"`
}

// RKSubstep: one Heun step from (X, Y) with predictor (PredX, PredY).
type RKSubstep struct {
	Step  int    `json:"step"`
	X     Float  `json:"x"`
	Y     Float  `json:"y"`
	F1    Float  `json:"f1"`
	K1    Float  `json:"k1"`
	PredX Float  `json:"predX"`
	PredY Float  `json:"predY"`
	F2    Float  `json:"f2"`
	K2    Float  `json:"k2"`
	XNext Float  `json:"xNext"`
	YNext Float  `json:"yNext"`
	Err   string `json:"err,omitempty"`
}

// Snapshot: the full working matrix after a named stage.
type Snapshot struct {
	Label string    `json:"label"`
	Rows  [][]Float `json:"rows"`
}

// SingularPivot: pivot Index of Stage was |Value| ≤ eps.
type SingularPivot struct {
	Stage string `json:"stage"`
	Index int    `json:"index"`
	Value Float  `json:"value"`
}

func (PivotSwap) Kind() Kind        { return KindPivotSwap }
func (Eliminate) Kind() Kind        { return KindEliminate }
func (FactorCompute) Kind() Kind    { return KindFactorCompute }
func (ForwardSub) Kind() Kind       { return KindForwardSub }
func (BackwardSub) Kind() Kind      { return KindBackwardSub }
func (IterationUpdate) Kind() Kind  { return KindIterationUpdate }
func (ConvergenceCheck) Kind() Kind { return KindConvergenceCheck }
func (BracketCheck) Kind() Kind     { return KindBracketCheck }
func (Bisect) Kind() Kind           { return KindBisect }
func (SecantStep) Kind() Kind       { return KindSecantStep }
func (RKSubstep) Kind() Kind        { return KindRKSubstep }
func (Snapshot) Kind() Kind         { return KindSnapshot }
func (SingularPivot) Kind() Kind    { return KindSingularPivot }
