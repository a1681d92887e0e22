// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numtrace/matrix"
)

// 1) TestValidateNotNil rejects both untyped and typed nils.
func TestValidateNotNil(t *testing.T) {
	var typed *matrix.Dense
	for _, m := range []matrix.Matrix{nil, typed} {
		if err := matrix.ValidateNotNil(m); !errors.Is(err, matrix.ErrNilMatrix) {
			t.Fatalf("ValidateNotNil(%v) = %v", m, err)
		}
	}
}

// 2) TestValidateShapes covers square, augmented and vector checks.
func TestValidateShapes(t *testing.T) {
	sq := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	aug := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	if err := matrix.ValidateSquare(sq); err != nil {
		t.Fatalf("ValidateSquare: %v", err)
	}
	if err := matrix.ValidateSquare(aug); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("ValidateSquare(2x3) = %v", err)
	}
	if err := matrix.ValidateAugmented(aug); err != nil {
		t.Fatalf("ValidateAugmented: %v", err)
	}
	err := matrix.ValidateAugmented(sq)
	if !errors.Is(err, matrix.ErrNotAugmented) || !errors.Is(err, matrix.ErrInvalidInput) {
		t.Fatalf("ValidateAugmented(2x2) = %v", err)
	}
	if err = matrix.ValidateSameShape(sq, aug); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("ValidateSameShape = %v", err)
	}
	if err = matrix.ValidateVecLen([]float64{1}, 2); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("ValidateVecLen = %v", err)
	}
	if err = matrix.ValidateVecLen(nil, 2); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("ValidateVecLen(nil) = %v", err)
	}
}

// 3) TestValidateFinite finds non-finite cells admitted by WithNoValidateNaNInf.
func TestValidateFinite(t *testing.T) {
	if err := matrix.ValidateFinite(mustRows(t, [][]float64{{1, 2}})); err != nil {
		t.Fatalf("ValidateFinite: %v", err)
	}
	m := mustRows(t, [][]float64{{1, 2}, {math.NaN(), 4}}, matrix.WithNoValidateNaNInf())
	if err := matrix.ValidateFinite(m); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("ValidateFinite(NaN) = %v", err)
	}
}

// 4) TestOptions_DefaultsAndOrder checks documented defaults and last-writer-wins.
func TestOptions_DefaultsAndOrder(t *testing.T) {
	if o := matrix.NewMatrixOptions(); o.Epsilon() != matrix.DefaultEpsilon {
		t.Fatalf("default eps = %v", o.Epsilon())
	}
	if o := matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), nil, matrix.WithEpsilon(1e-6)); o.Epsilon() != 1e-6 {
		t.Fatalf("last writer must win, eps = %v", o.Epsilon())
	}

	m := mustRows(t, [][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	if err := matrix.ValidateFinite(m); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("ValidateFinite(+Inf) = %v", err)
	}
	if _, err := matrix.NewFromRows([][]float64{{math.Inf(1)}}); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("default policy must reject +Inf, err = %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("WithEpsilon(-1) must panic")
		}
	}()
	_ = matrix.WithEpsilon(-1)
}
