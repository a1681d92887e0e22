// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep solver kernels minimal by delegating shape/nil checks here.
//  - Return wrapped sentinel errors so call sites can match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed-nil *Dense is rejected as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateAugmented checks that m is non-nil and shaped n×(n+1) with n ≥ 1.
func ValidateAugmented(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < 1 || m.Cols() != m.Rows()+1 {
		return validatorErrorf("ValidateAugmented", fmt.Errorf("got %dx%d: %w", m.Rows(), m.Cols(), ErrNotAugmented))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a×b.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures no element is NaN or ±Inf. Matrices built with
// WithNoValidateNaNInf (or by a foreign Matrix implementation) may hold them.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("at (%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
