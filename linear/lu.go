package linear

import (
	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/trace"
)

// LUResult is the outcome of LU.
//
// On a singular pivot L and U hold the factor cells computed so far, Y and X
// are nil and Converged is false.
type LUResult struct {
	L         *matrix.Dense
	U         *matrix.Dense
	Y         matrix.Vector
	X         matrix.Vector
	Converged bool
	Trace     *trace.Trace
}

// LU solves the augmented n×(n+1) system [A | B] by Doolittle decomposition
// A = L·U (L unit lower triangular, no pivoting), then L·Y = B top-down and
// U·X = Y bottom-up.
//
// Recurrences, for i = 0..n-1:
//
//	U[i][j] = A[i][j] − Σ_{k<i} L[i][k]·U[k][j]                 j ≥ i
//	L[j][i] = (A[j][i] − Σ_{k<i} L[j][k]·U[k][i]) / U[i][i]     j > i
//	Y[i]    = B[i] − Σ_{k<i} L[i][k]·Y[k]
//	X[i]    = (Y[i] − Σ_{k>i} U[i][k]·X[k]) / U[i][i]
//
// Each computed cell emits a FactorCompute entry, each Y and X component a
// ForwardSub or BackwardSub entry. When |U[i][i]| <= Epsilon the solve stops
// with a SingularPivot entry, the partial result, and an error wrapping
// matrix.ErrSingular.
//
// Complexity: O(n³) time, O(n²) memory.
func LU(aug matrix.Matrix, opts Options) (*LUResult, error) {
	if err := opts.validate(); err != nil {
		return nil, linearErrorf(opLU, err)
	}
	a, b, err := split(opLU, aug)
	if err != nil {
		return nil, err
	}
	n := len(b)

	tr := trace.New()
	l := identity(n)
	u := zeros(n)
	res := &LUResult{Trace: tr}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			terms, sum := products(i, func(k int) (float64, float64) { return l[i][k], u[k][j] })
			u[i][j] = a[i][j] - sum
			tr.Append(trace.FactorCompute{
				Factor:  "U",
				Row:     i,
				Col:     j,
				Source:  trace.Float(a[i][j]),
				Terms:   terms,
				Sum:     trace.Float(sum),
				Divisor: 1,
				Value:   trace.Float(u[i][j]),
			})
		}
		if matrix.IsZeroPivot(u[i][i], opts.Epsilon) {
			tr.Append(trace.SingularPivot{Stage: "lu", Index: i, Value: trace.Float(u[i][i])})
			res.L, res.U = dense(l), dense(u)
			return res, singularErrorf(opLU, i, u[i][i])
		}
		for j := i + 1; j < n; j++ {
			terms, sum := products(i, func(k int) (float64, float64) { return l[j][k], u[k][i] })
			l[j][i] = (a[j][i] - sum) / u[i][i]
			tr.Append(trace.FactorCompute{
				Factor:  "L",
				Row:     j,
				Col:     i,
				Source:  trace.Float(a[j][i]),
				Terms:   terms,
				Sum:     trace.Float(sum),
				Divisor: trace.Float(u[i][i]),
				Value:   trace.Float(l[j][i]),
			})
		}
	}

	y := make(matrix.Vector, n)
	for i := 0; i < n; i++ {
		terms, sum := products(i, func(k int) (float64, float64) { return l[i][k], y[k] })
		y[i] = b[i] - sum
		tr.Append(trace.ForwardSub{
			Row:   i,
			RHS:   trace.Float(b[i]),
			Terms: terms,
			Sum:   trace.Float(sum),
			Value: trace.Float(y[i]),
		})
	}

	x := make(matrix.Vector, n)
	for i := n - 1; i >= 0; i-- {
		var terms []trace.Term
		sum := matrix.ZeroSum
		for k := i + 1; k < n; k++ {
			terms = append(terms, trace.Term{Index: k, Left: trace.Float(u[i][k]), Right: trace.Float(x[k])})
			sum += u[i][k] * x[k]
		}
		x[i] = (y[i] - sum) / u[i][i]
		tr.Append(trace.BackwardSub{
			Coef:    "U",
			Row:     i,
			RHS:     trace.Float(y[i]),
			Terms:   terms,
			Sum:     trace.Float(sum),
			Divisor: trace.Float(u[i][i]),
			Value:   trace.Float(x[i]),
		})
	}

	res.L, res.U = dense(l), dense(u)
	res.Y, res.X = y, x
	res.Converged = true

	return res, nil
}

// products accumulates Σ_{k<upto} left(k)·right(k) and records every term.
func products(upto int, term func(k int) (float64, float64)) ([]trace.Term, float64) {
	var terms []trace.Term
	sum := matrix.ZeroSum
	for k := 0; k < upto; k++ {
		left, right := term(k)
		terms = append(terms, trace.Term{Index: k, Left: trace.Float(left), Right: trace.Float(right)})
		sum += left * right
	}

	return terms, sum
}

// split validates an augmented system and returns A's rows and B.
func split(tag string, aug matrix.Matrix) ([][]float64, matrix.Vector, error) {
	a, b, err := matrix.SplitAugmented(aug)
	if err != nil {
		return nil, nil, inputErrorf(tag, err)
	}
	if err = matrix.ValidateFinite(aug); err != nil {
		return nil, nil, inputErrorf(tag, err)
	}

	return a.ToRows(), b, nil
}

// identity returns the n×n identity as a working grid; n >= 1 after split.
func identity(n int) [][]float64 {
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return zeros(n)
	}

	return id.ToRows()
}

func zeros(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}

	return m
}

// dense copies a working grid into a Dense. Working grids are never empty or
// ragged, so construction cannot fail.
func dense(rows [][]float64) *matrix.Dense {
	m, _ := matrix.NewFromRows(rows, matrix.WithNoValidateNaNInf())

	return m
}
