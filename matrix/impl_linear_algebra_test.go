// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numtrace/matrix"
)

// 1) TestMul_DenseAndFallbackAgree multiplies through both code paths.
func TestMul_DenseAndFallbackAgree(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 0}, {0, 1, 3}})
	b := mustRows(t, [][]float64{{1, 0}, {2, 1}, {0, 4}})
	want := mustRows(t, [][]float64{{5, 2}, {2, 13}})

	fast, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	slow, err := matrix.Mul(hide{a}, b)
	if err != nil {
		t.Fatalf("Mul (fallback): %v", err)
	}
	for _, got := range []matrix.Matrix{fast, slow} {
		ok, err := matrix.AllClose(got, want, 0, 0)
		if err != nil || !ok {
			t.Fatalf("Mul result %v, want %v (err %v)", got, want, err)
		}
	}

	if _, err = matrix.Mul(a, a); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("Mul 2x3·2x3 err = %v, want ErrDimensionMismatch", err)
	}
	if _, err = matrix.Mul(nil, a); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("Mul(nil) err = %v", err)
	}
}

// 2) TestAllClose_Tolerances exercises atol/rtol and shape checks.
func TestAllClose_Tolerances(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 100}})
	b := mustRows(t, [][]float64{{1.0005, 100.05}})
	cases := []struct {
		name       string
		rtol, atol float64
		want       bool
	}{
		{"exact", 0, 0, false},
		{"atol", 0, 1e-3, false},
		{"atol wide", 0, 0.1, true},
		{"rtol", 1e-3, 1e-3, true},
		{"negative normalized", -1e-3, -1e-3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.AllClose(a, b, tc.rtol, tc.atol)
			if err != nil {
				t.Fatalf("AllClose: %v", err)
			}
			if got != tc.want {
				t.Fatalf("AllClose = %v, want %v", got, tc.want)
			}
		})
	}
	if _, err := matrix.AllClose(a, b, math.NaN(), 0); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("NaN rtol err = %v", err)
	}
	if _, err := matrix.AllClose(a, mustRows(t, [][]float64{{1}, {2}}), 0, 0); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("shape mismatch err = %v", err)
	}
}

// 3) TestSplitAugmented separates coefficients and right-hand side.
func TestSplitAugmented(t *testing.T) {
	aug := mustRows(t, [][]float64{{1, 5, 1, 14}, {2, 1, 3, 13}, {3, 1, 4, 17}})
	a, b, err := matrix.SplitAugmented(aug)
	if err != nil {
		t.Fatalf("SplitAugmented: %v", err)
	}
	if a.Rows() != 3 || a.Cols() != 3 {
		t.Fatalf("A shape = %dx%d", a.Rows(), a.Cols())
	}
	if v, _ := a.At(2, 2); v != 4 {
		t.Fatalf("A[2][2] = %v, want 4", v)
	}
	want := matrix.Vector{14, 13, 17}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("b = %v, want %v", b, want)
		}
	}

	if _, _, err = matrix.SplitAugmented(a); !errors.Is(err, matrix.ErrNotAugmented) {
		t.Fatalf("square input err = %v, want ErrNotAugmented", err)
	}
}

// 4) TestIsDiagonallyDominant ignores the augmented column.
func TestIsDiagonallyDominant(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"dominant augmented", [][]float64{{4, 1, 9}, {1, 3, 7}}, true},
		{"dominant square", [][]float64{{4, 1}, {1, 3}}, true},
		{"equal is not strict", [][]float64{{2, 2, 0}, {0, 1, 1}}, false},
		{"large rhs ignored", [][]float64{{5, 1, 1000}, {1, 5, -1000}}, true},
		{"not dominant", [][]float64{{1, 3, 4}, {2, 1, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.IsDiagonallyDominant(mustRows(t, tc.rows))
			if err != nil {
				t.Fatalf("IsDiagonallyDominant: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
	if _, err := matrix.IsDiagonallyDominant(mustRows(t, [][]float64{{1, 2, 3, 4}})); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("1x4 err = %v", err)
	}
}

// 5) TestRound covers half-away-from-zero and pass-through cases.
func TestRound(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{2.104888, 4, 2.1049},
		{-2.5, 0, -3},
		{0.125, 2, 0.13},
		{1.23456789, 6, 1.234568},
		{1.5, -1, 1.5},
	}
	for _, tc := range cases {
		if got := matrix.Round(tc.v, tc.places); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Round(%v, %d) = %v, want %v", tc.v, tc.places, got, tc.want)
		}
	}
	if !math.IsNaN(matrix.Round(math.NaN(), 3)) || !math.IsInf(matrix.Round(math.Inf(1), 3), 1) {
		t.Fatalf("non-finite values must pass through")
	}
	if !matrix.IsZeroPivot(1e-13, matrix.DefaultEpsilon) || matrix.IsZeroPivot(1e-6, matrix.DefaultEpsilon) {
		t.Fatalf("IsZeroPivot threshold")
	}
}
