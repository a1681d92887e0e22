package iterative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/trace"
)

// Method names recorded in results and IterationUpdate entries.
const (
	MethodJacobi = "jacobi"
	MethodSeidel = "gauss-seidel"
)

// Result is the outcome of a Jacobi or Gauss-Seidel run.
//
// X is the last computed estimate, also when Converged is false. Iterations
// counts completed sweeps. Diverged reports that a component stopped being a
// finite number, which ends the run early. DiagonallyDominant is advisory:
// strict row dominance guarantees convergence, its absence does not preclude it.
type Result struct {
	Method             string
	X                  matrix.Vector
	Iterations         int
	Converged          bool
	Diverged           bool
	DiagonallyDominant bool
	Trace              *trace.Trace
}

// Jacobi solves the augmented n×(n+1) system by Jacobi iteration: every
// component of a sweep is computed from the previous full estimate only,
//
//	xNew[i] = (b[i] − Σ_{j≠i} A[i][j]·xOld[j]) / A[i][i]
//
// Each component emits an IterationUpdate entry and each sweep a
// ConvergenceCheck carrying the full |xNew − xOld| vector. The run stops when
// max |xNew − xOld| < Tolerance or after MaxIterations sweeps; exhausting the
// budget is reported with Converged == false, not an error.
//
// Errors: ErrInvalidInput family for bad shape or options, ErrZeroDiagonal
// (matching matrix.ErrSingular) when some A[i][i] == 0.
func Jacobi(aug matrix.Matrix, opts Options) (*Result, error) {
	return solve(opJacobi, MethodJacobi, aug, opts, false)
}

// GaussSeidel is Jacobi that reads components already updated in the current
// sweep (xNew[j] for j < i). For diagonally dominant systems it needs no more
// sweeps than Jacobi.
func GaussSeidel(aug matrix.Matrix, opts Options) (*Result, error) {
	return solve(opSeidel, MethodSeidel, aug, opts, true)
}

func solve(tag, method string, aug matrix.Matrix, opts Options, inPlace bool) (*Result, error) {
	a, b, err := matrix.SplitAugmented(aug)
	if err != nil {
		return nil, iterativeErrorf(tag, wrapInput(err))
	}
	if err = matrix.ValidateFinite(aug); err != nil {
		return nil, iterativeErrorf(tag, wrapInput(err))
	}
	n := len(b)
	if err = opts.validate(n); err != nil {
		return nil, iterativeErrorf(tag, err)
	}
	eps := matrix.NewMatrixOptions(matrix.WithEpsilon(opts.Epsilon)).Epsilon()
	rows := a.ToRows()
	for i := 0; i < n; i++ {
		if matrix.IsZeroPivot(rows[i][i], eps) {
			return nil, iterativeErrorf(tag, fmt.Errorf("%w: a[%d][%d] = %v", ErrZeroDiagonal, i+1, i+1, rows[i][i]))
		}
	}
	dominant, err := matrix.IsDiagonallyDominant(a)
	if err != nil {
		return nil, iterativeErrorf(tag, err)
	}

	tr := trace.New()
	res := &Result{Method: method, DiagonallyDominant: dominant, Trace: tr}
	xOld := make(matrix.Vector, n)
	if opts.Initial != nil {
		copy(xOld, opts.Initial)
	}

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		xNew := make(matrix.Vector, n)
		copy(xNew, xOld)
		src := xOld
		if inPlace {
			src = xNew
		}
		for i := 0; i < n; i++ {
			var terms []trace.Term
			sum := matrix.ZeroSum
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				terms = append(terms, trace.Term{Index: j, Left: trace.Float(rows[i][j]), Right: trace.Float(src[j])})
				sum += rows[i][j] * src[j]
			}
			xNew[i] = round((b[i]-sum)/rows[i][i], opts.Precision)
			tr.Append(trace.IterationUpdate{
				Method:    method,
				Iteration: iter,
				Component: i,
				RHS:       trace.Float(b[i]),
				Terms:     terms,
				Diagonal:  trace.Float(rows[i][i]),
				Value:     trace.Float(xNew[i]),
			})
		}

		deltas := make([]float64, n)
		maxDelta := 0.0
		finite := true
		for i := range xNew {
			deltas[i] = math.Abs(xNew[i] - xOld[i])
			maxDelta = math.Max(maxDelta, deltas[i])
			if math.IsNaN(xNew[i]) || math.IsInf(xNew[i], 0) {
				finite = false
			}
		}
		converged := finite && maxDelta < opts.Tolerance
		tr.Append(trace.ConvergenceCheck{
			Iteration: iter,
			Estimate:  trace.Floats(xNew),
			Deltas:    trace.Floats(deltas),
			MaxDelta:  trace.Float(maxDelta),
			Tolerance: trace.Float(opts.Tolerance),
			Converged: converged,
		})
		res.X, res.Iterations = xNew, iter
		if converged {
			res.Converged = true
			break
		}
		if !finite {
			res.Diverged = true
			break
		}
		xOld = xNew
	}

	return res, nil
}

func round(v float64, places int) float64 {
	if places == NoRounding {
		return v
	}

	return matrix.Round(v, places)
}

// wrapInput tags a matrix validation failure as ErrInvalidInput.
func wrapInput(err error) error {
	return &inputError{err: err}
}

type inputError struct{ err error }

func (e *inputError) Error() string        { return e.err.Error() }
func (e *inputError) Unwrap() error        { return e.err }
func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }
