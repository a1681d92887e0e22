package ode_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numtrace/expr"
	"github.com/katalvlaran/numtrace/ode"
	"github.com/katalvlaran/numtrace/trace"
)

var linearProblem = ode.Problem{Equation: "x + y", X0: 0, Y0: 1, H: 0.2, TargetX: 0.4}

func TestRK2LinearODE(t *testing.T) {
	res, err := ode.RK2(linearProblem, ode.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Completed)
	assert.Equal(t, 2, res.Steps)
	assert.InDelta(t, 1.5768, res.FinalY, 1e-6)
	assert.InDelta(t, 0.4, res.FinalX, 1e-12)

	require.Len(t, res.Trajectory, 3)
	assert.Equal(t, ode.Point{X: 0, Y: 1}, res.Trajectory[0])
	assert.InDelta(t, 1.24, res.Trajectory[1].Y, 1e-12)

	first := res.Trace.At(0).(trace.RKSubstep)
	assert.Equal(t, 1, first.Step)
	assert.InDelta(t, 0.2, float64(first.K1), 1e-12)
	assert.InDelta(t, 0.2, float64(first.PredX), 1e-12)
	assert.InDelta(t, 1.2, float64(first.PredY), 1e-12)
	assert.InDelta(t, 0.28, float64(first.K2), 1e-12)
	assert.InDelta(t, 1.24, float64(first.YNext), 1e-12)
	assert.Empty(t, first.Err)
}

// TestRK2ExactOnQuadraticSolution: Heun is exact when y is a polynomial of
// degree ≤ 2 in x and f does not depend on y.
func TestRK2ExactOnQuadraticSolution(t *testing.T) {
	res, err := ode.RK2(ode.Problem{Equation: "2*x", X0: 0, Y0: 0, H: 0.25, TargetX: 1}, ode.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Steps)
	assert.InDelta(t, 1.0, res.FinalY, 1e-12)
}

func TestRK2StepCountRounds(t *testing.T) {
	p := ode.Problem{Equation: "y", X0: 0, Y0: 1, H: 0.3, TargetX: 1}
	assert.Equal(t, 3, p.StepCount())
	res, err := ode.RK2(p, ode.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Trace.Len())
	assert.InDelta(t, 0.9, res.FinalX, 1e-12)
}

func TestRK2EvaluationFailure(t *testing.T) {
	res, err := ode.RK2(ode.Problem{Equation: "1/(x - 0.2)", X0: 0, Y0: 0, H: 0.1, TargetX: 0.5}, ode.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Equal(t, 1, res.Steps)
	require.Len(t, res.Trajectory, 2)
	last := res.Trace.At(res.Trace.Len() - 1).(trace.RKSubstep)
	assert.Contains(t, last.Err, "division by zero")
	assert.True(t, math.IsNaN(float64(last.F2)))
}

func TestRK2InvalidInput(t *testing.T) {
	cases := []struct {
		name string
		p    ode.Problem
		want error
	}{
		{"zero step", ode.Problem{Equation: "y", H: 0, TargetX: 1}, ode.ErrStepSize},
		{"negative step", ode.Problem{Equation: "y", H: -0.1, TargetX: 1}, ode.ErrStepSize},
		{"target before start", ode.Problem{Equation: "y", X0: 1, H: 0.1, TargetX: 1}, ode.ErrInterval},
		{"step too wide", ode.Problem{Equation: "y", H: 5, TargetX: 1}, ode.ErrInterval},
		{"too many steps", ode.Problem{Equation: "y", H: 1e-9, TargetX: 1}, ode.ErrTooManySteps},
		{"nan", ode.Problem{Equation: "y", Y0: math.NaN(), H: 0.1, TargetX: 1}, ode.ErrNotFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ode.RK2(tc.p, ode.DefaultOptions())
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ode.ErrInvalidInput)
		})
	}

	_, err := ode.RK2(ode.Problem{Equation: "x + z", H: 0.1, TargetX: 1}, ode.DefaultOptions())
	require.ErrorIs(t, err, ode.ErrInvalidInput)
	var syn *expr.SyntaxError
	require.True(t, errors.As(err, &syn))
}

func TestRK2Deterministic(t *testing.T) {
	a, err := ode.RK2(linearProblem, ode.DefaultOptions())
	require.NoError(t, err)
	b, err := ode.RK2(linearProblem, ode.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func ExampleRK2() {
	res, err := ode.RK2(ode.Problem{Equation: "x + y", X0: 0, Y0: 1, H: 0.2, TargetX: 0.4}, ode.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, line := range res.Trace.Lines(4) {
		fmt.Println(line)
	}
	fmt.Printf("y(%.1f) = %.4f\n", res.FinalX, res.FinalY)
	// Output:
	// Step 1: x = 0.0000, y = 1.0000
	//   k1 = h*f(x, y) = h*1.0000 = 0.2000
	//   k2 = h*f(0.2000, 1.2000) = h*1.4000 = 0.2800
	//   y(0.2000) = y + (k1+k2)/2 = 1.2400
	// Step 2: x = 0.2000, y = 1.2400
	//   k1 = h*f(x, y) = h*1.4400 = 0.2880
	//   k2 = h*f(0.4000, 1.5280) = h*1.9280 = 0.3856
	//   y(0.4000) = y + (k1+k2)/2 = 1.5768
	// y(0.4) = 1.5768
}
