package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/trace"
)

// GaussResult is the outcome of Gauss. Reduced is the upper-triangular
// augmented matrix left by elimination; it is set even when the solve fails.
type GaussResult struct {
	X         matrix.Vector
	Reduced   *matrix.Dense
	Converged bool
	Trace     *trace.Trace
}

// Gauss solves the augmented n×(n+1) system by Gaussian elimination with
// partial pivoting and back-substitution.
//
// Algorithm Outline, for each pivot column k:
//  1. Select the row p ≥ k with the largest |A[p][k]| (first on ties) and
//     swap it into row k (PivotSwap + Snapshot).
//  2. If |A[k][k]| <= Epsilon record a SingularPivot and skip the column.
//  3. For every row i > k: factor = A[i][k]/A[k][k], then
//     A[i][j] = A[i][j] − factor·A[k][j] for j = k..n (one Eliminate entry
//     per cell), followed by a Snapshot of the whole matrix.
//
// Back-substitution then computes X[i] = (A[i][n] − Σ_{j>i} A[i][j]·X[j]) /
// A[i][i] from the last row up (BackwardSub entries with Coef "A").
// Every assigned cell and component is rounded to Precision fractional digits.
//
// A skipped pivot makes back-substitution impossible: the partial result is
// returned together with an error wrapping matrix.ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory plus O(n³) trace entries.
func Gauss(aug matrix.Matrix, opts Options) (*GaussResult, error) {
	if err := opts.validate(); err != nil {
		return nil, linearErrorf(opGauss, err)
	}
	a, b, err := split(opGauss, aug)
	if err != nil {
		return nil, err
	}
	n := len(b)
	for i := range a {
		a[i] = append(a[i], b[i])
	}

	tr := trace.New()
	res := &GaussResult{Trace: tr}
	singular := -1

	for k := 0; k < n; k++ {
		p := k
		for i := k + 1; i < n; i++ {
			if math.Abs(a[i][k]) > math.Abs(a[p][k]) {
				p = i
			}
		}
		if p != k {
			a[k], a[p] = a[p], a[k]
			tr.Append(trace.PivotSwap{Column: k, From: p, To: k, Pivot: trace.Float(a[k][k])})
			tr.Append(snapshot(fmt.Sprintf("Matrix after swapping row %d with row %d", k+1, p+1), a))
		}
		if matrix.IsZeroPivot(a[k][k], opts.Epsilon) {
			tr.Append(trace.SingularPivot{Stage: "gauss", Index: k, Value: trace.Float(a[k][k])})
			if singular < 0 {
				singular = k
			}
			continue
		}
		for i := k + 1; i < n; i++ {
			factor := a[i][k] / a[k][k]
			for j := k; j <= n; j++ {
				old := a[i][j]
				a[i][j] = opts.round(old - factor*a[k][j])
				tr.Append(trace.Eliminate{
					PivotRow:   k,
					Row:        i,
					Col:        j,
					Factor:     trace.Float(factor),
					Old:        trace.Float(old),
					PivotValue: trace.Float(a[k][j]),
					New:        trace.Float(a[i][j]),
				})
			}
			tr.Append(snapshot(fmt.Sprintf("Matrix after eliminating row %d", i+1), a))
		}
	}
	res.Reduced = dense(a)
	if singular >= 0 {
		return res, singularErrorf(opGauss, singular, a[singular][singular])
	}

	x := make(matrix.Vector, n)
	for i := n - 1; i >= 0; i-- {
		var terms []trace.Term
		sum := matrix.ZeroSum
		for j := i + 1; j < n; j++ {
			terms = append(terms, trace.Term{Index: j, Left: trace.Float(a[i][j]), Right: trace.Float(x[j])})
			sum += a[i][j] * x[j]
		}
		x[i] = opts.round((a[i][n] - sum) / a[i][i])
		tr.Append(trace.BackwardSub{
			Coef:    "A",
			Row:     i,
			RHS:     trace.Float(a[i][n]),
			Terms:   terms,
			Sum:     trace.Float(sum),
			Divisor: trace.Float(a[i][i]),
			Value:   trace.Float(x[i]),
		})
	}
	res.X = x
	res.Converged = true

	return res, nil
}

func snapshot(label string, rows [][]float64) trace.Snapshot {
	return trace.Snapshot{Label: label, Rows: trace.Grid(rows)}
}
