package linear_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numtrace/linear"
	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/trace"
)

var (
	sample = [][]float64{
		{1, 5, 1, 14},
		{2, 1, 3, 13},
		{3, 1, 4, 17},
	}
	dominant = [][]float64{
		{10, -1, 2, 0, 6},
		{-1, 11, -1, 3, 25},
		{2, -1, 10, -1, -11},
		{0, 3, -1, 8, 15},
	}
)

func mustAug(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func TestLUSample(t *testing.T) {
	res, err := linear.LU(mustAug(t, sample), linear.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, res.X, 1e-9)
	assert.InDeltaSlice(t, []float64{14, -15, -5.0 / 3}, res.Y, 1e-9)

	counts := res.Trace.Counts()
	assert.Equal(t, 9, counts[trace.KindFactorCompute])
	assert.Equal(t, 3, counts[trace.KindForwardSub])
	assert.Equal(t, 3, counts[trace.KindBackwardSub])
	assert.Zero(t, counts[trace.KindPivotSwap])
}

// TestLUReconstruction checks L·U == A and the triangular shapes.
func TestLUReconstruction(t *testing.T) {
	for name, rows := range map[string][][]float64{"sample": sample, "dominant": dominant} {
		t.Run(name, func(t *testing.T) {
			aug := mustAug(t, rows)
			res, err := linear.LU(aug, linear.DefaultOptions())
			require.NoError(t, err)

			a, _, err := matrix.SplitAugmented(aug)
			require.NoError(t, err)
			lu, err := matrix.Mul(res.L, res.U)
			require.NoError(t, err)
			ok, err := matrix.AllClose(lu, a, 1e-12, 1e-9)
			require.NoError(t, err)
			require.True(t, ok, "L·U:\n%v\nA:\n%v", lu, a)

			n := a.Rows()
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					l, _ := res.L.At(i, j)
					u, _ := res.U.At(i, j)
					switch {
					case i == j:
						assert.Equal(t, 1.0, l)
					case i < j:
						assert.Zero(t, l)
					default:
						assert.Zero(t, u)
					}
				}
			}
		})
	}
}

func TestLUSingular(t *testing.T) {
	res, err := linear.LU(mustAug(t, [][]float64{{1, 2, 3}, {2, 4, 6}}), linear.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotNil(t, res)
	assert.False(t, res.Converged)
	assert.Nil(t, res.X)
	require.NotNil(t, res.U)

	last := res.Trace.At(res.Trace.Len() - 1)
	require.Equal(t, trace.KindSingularPivot, last.Kind())
	assert.Equal(t, 1, last.(trace.SingularPivot).Index)
}

// TestLUZeroLeadingPivot: LU has no pivoting, Gauss swaps rows and succeeds.
func TestLUZeroLeadingPivot(t *testing.T) {
	rows := [][]float64{{0, 1, 1}, {1, 0, 1}}
	_, err := linear.LU(mustAug(t, rows), linear.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrSingular)

	res, err := linear.Gauss(mustAug(t, rows), linear.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, res.X)
	swap := res.Trace.At(0).(trace.PivotSwap)
	assert.Equal(t, trace.PivotSwap{Column: 0, From: 1, To: 0, Pivot: 1}, swap)
}

func TestGaussSample(t *testing.T) {
	res, err := linear.Gauss(mustAug(t, sample), linear.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, res.X, 1e-4)

	swaps := res.Trace.OfKind(trace.KindPivotSwap)
	require.Len(t, swaps, 2)
	assert.Equal(t, 2, swaps[0].(trace.PivotSwap).From)
	// Every swap is followed by a snapshot.
	entries := res.Trace.Entries()
	for i, e := range entries {
		if e.Kind() == trace.KindPivotSwap {
			require.Equal(t, trace.KindSnapshot, entries[i+1].Kind())
		}
	}
	// Reduced is upper triangular.
	for i := 1; i < 3; i++ {
		for j := 0; j < i; j++ {
			v, err := res.Reduced.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

func TestGaussRoundsEveryCell(t *testing.T) {
	res, err := linear.Gauss(mustAug(t, sample), linear.DefaultOptions())
	require.NoError(t, err)
	for _, e := range res.Trace.OfKind(trace.KindEliminate) {
		v := float64(e.(trace.Eliminate).New)
		assert.Equal(t, matrix.Round(v, 6), v)
	}
}

func TestGaussLUAgree(t *testing.T) {
	for name, rows := range map[string][][]float64{"sample": sample, "dominant": dominant} {
		t.Run(name, func(t *testing.T) {
			lu, err := linear.LU(mustAug(t, rows), linear.DefaultOptions())
			require.NoError(t, err)
			g, err := linear.Gauss(mustAug(t, rows), linear.DefaultOptions())
			require.NoError(t, err)
			assert.InDeltaSlice(t, lu.X, g.X, 1e-3)
		})
	}
}

func TestGaussSingular(t *testing.T) {
	res, err := linear.Gauss(mustAug(t, [][]float64{{1, 2, 3}, {2, 4, 6}}), linear.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.NotNil(t, res.Reduced)
	assert.False(t, res.Converged)
	assert.Len(t, res.Trace.OfKind(trace.KindSingularPivot), 1)
	assert.Empty(t, res.Trace.OfKind(trace.KindBackwardSub))
}

func TestInvalidInput(t *testing.T) {
	square := mustAug(t, [][]float64{{1, 2}, {3, 4}})
	_, err := linear.LU(square, linear.DefaultOptions())
	require.ErrorIs(t, err, linear.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrNotAugmented)

	_, err = linear.Gauss(nil, linear.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	opts := linear.DefaultOptions()
	opts.Epsilon = -1
	_, err = linear.LU(mustAug(t, sample), opts)
	require.ErrorIs(t, err, linear.ErrOptions)
	require.False(t, errors.Is(err, matrix.ErrSingular))

	nan, err := matrix.NewFromRows([][]float64{{1, math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = linear.Gauss(nan, linear.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDeterministic(t *testing.T) {
	a, err := linear.Gauss(mustAug(t, dominant), linear.DefaultOptions())
	require.NoError(t, err)
	b, err := linear.Gauss(mustAug(t, dominant), linear.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func BenchmarkLU(b *testing.B) {
	aug := mustAug(b, dominant)
	for i := 0; i < b.N; i++ {
		_, _ = linear.LU(aug, linear.DefaultOptions())
	}
}

func BenchmarkGauss(b *testing.B) {
	aug := mustAug(b, dominant)
	for i := 0; i < b.N; i++ {
		_, _ = linear.Gauss(aug, linear.DefaultOptions())
	}
}
