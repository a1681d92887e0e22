// SPDX-License-Identifier: MIT
// Package matrix provides the shared kernels used by the solver packages:
// matrix multiplication (for L·U reconstruction), tolerance comparison,
// augmented-system splitting, diagonal-dominance inspection and the
// fixed-precision rounding applied by the traced solvers.
//
// Notes:
//   - Inputs are never mutated; results are always freshly allocated.
//   - Loop orders are fixed so results are bit-for-bit reproducible.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k through the interface.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized; NaN/Inf tolerances yield ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// SplitAugmented separates an n×(n+1) augmented system into the coefficient
// matrix A (n×n) and the right-hand side b (length n). Both are fresh copies.
func SplitAugmented(m Matrix) (*Dense, Vector, error) {
	if err := ValidateAugmented(m); err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	n := m.Rows()
	a, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSplit, err)
	}
	b := make(Vector, n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j <= n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opSplit, err)
			}
			if j == n {
				b[i] = v
				continue
			}
			a.data[i*n+j] = v
		}
	}

	return a, b, nil
}

// IsDiagonallyDominant reports whether every row of the square part of m
// satisfies |m[i][i]| > Σ_{j≠i} |m[i][j]|. The last column of an augmented
// n×(n+1) system is ignored, so the solver input can be passed directly.
// Any other shape fails with ErrNonSquare.
func IsDiagonallyDominant(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opDominant, err)
	}
	n := m.Rows()
	if m.Cols() != n+1 {
		if err := ValidateSquare(m); err != nil {
			return false, matrixErrorf(opDominant, fmt.Errorf("got %dx%d: %w", n, m.Cols(), err))
		}
	}
	var i, j int
	var v, diag, off float64
	var err error
	for i = 0; i < n; i++ {
		off = ZeroSum
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return false, matrixErrorf(opDominant, err)
			}
			if i == j {
				diag = math.Abs(v)
				continue
			}
			off += math.Abs(v)
		}
		if diag <= off {
			return false, nil
		}
	}

	return true, nil
}

// IsZeroPivot reports whether |p| ≤ eps.
func IsZeroPivot(p, eps float64) bool { return math.Abs(p) <= eps }

// Round rounds v half away from zero to the given number of fractional
// digits. Non-finite values and negative places are returned unchanged.
func Round(v float64, places int) float64 {
	if places < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}

	return r
}
