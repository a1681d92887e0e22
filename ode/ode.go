package ode

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/expr"
	"github.com/katalvlaran/numtrace/trace"
)

// Problem is an initial value problem dy/dx = Equation(x, y), y(X0) = Y0,
// integrated with step H up to TargetX.
type Problem struct {
	Equation string
	X0       float64
	Y0       float64
	H        float64
	TargetX  float64
}

// Point is one trajectory sample.
type Point struct {
	X float64
	Y float64
}

// Result is the outcome of RK2.
//
// Trajectory starts with (X0, Y0) and holds one point per completed step.
// Completed is false when an evaluation failed; the trajectory then ends at
// the last good point and the failing step's RKSubstep carries the error.
type Result struct {
	Trajectory []Point
	FinalX     float64
	FinalY     float64
	Steps      int
	Completed  bool
	Trace      *trace.Trace
}

// RK2 integrates p with Heun's method. With n = round((TargetX − X0)/H) steps,
// each step from (x, y) computes
//
//	k1 = h·f(x, y)
//	k2 = h·f(x + h, y + k1)
//	y' = y + (k1 + k2)/2,  x' = x + h
//
// and emits one RKSubstep entry with the predictor point (x + h, y + k1).
//
// Errors: ErrStepSize for H <= 0, ErrInterval for TargetX <= X0 or n < 1,
// ErrTooManySteps when n exceeds Options.MaxSteps, and ErrInvalidInput
// wrapping a compile error. All are reported before any step is taken.
func RK2(p Problem, opts Options) (*Result, error) {
	n, err := p.validate(opts)
	if err != nil {
		return nil, odeErrorf(opRK2, err)
	}
	f, err := expr.Compile(p.Equation, opts.XVariable, opts.YVariable)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opRK2, ErrInvalidInput, err)
	}

	tr := trace.New()
	res := &Result{
		Trajectory: make([]Point, 0, n+1),
		Trace:      tr,
	}
	x, y, h := p.X0, p.Y0, p.H
	res.Trajectory = append(res.Trajectory, Point{X: x, Y: y})

	for i := 1; i <= n; i++ {
		f1, err1 := f.Eval(x, y)
		k1 := h * f1
		predX, predY := x+h, y+k1
		f2, err2 := f.Eval(predX, predY)
		k2 := h * f2
		yNext := y + (k1+k2)/2
		xNext := x + h

		step := trace.RKSubstep{
			Step:  i,
			X:     trace.Float(x),
			Y:     trace.Float(y),
			F1:    trace.Float(f1),
			K1:    trace.Float(k1),
			PredX: trace.Float(predX),
			PredY: trace.Float(predY),
			F2:    trace.Float(f2),
			K2:    trace.Float(k2),
			XNext: trace.Float(xNext),
			YNext: trace.Float(yNext),
		}
		if err = errors.Join(err1, err2); err != nil || math.IsNaN(yNext) || math.IsInf(yNext, 0) {
			if err == nil {
				err = fmt.Errorf("y(%s) is not finite", expr.FormatNumber(xNext))
			}
			step.Err = err.Error()
			tr.Append(step)
			res.FinalX, res.FinalY = x, y
			return res, nil
		}
		tr.Append(step)

		x, y = xNext, yNext
		res.Trajectory = append(res.Trajectory, Point{X: x, Y: y})
		res.Steps = i
	}
	res.FinalX, res.FinalY = x, y
	res.Completed = true

	return res, nil
}

// StepCount returns round((TargetX − X0)/H), the number of steps RK2 takes.
func (p Problem) StepCount() int {
	return int(math.Round((p.TargetX - p.X0) / p.H))
}

func (p Problem) validate(opts Options) (int, error) {
	for _, v := range []float64{p.X0, p.Y0, p.H, p.TargetX} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNotFinite
		}
	}
	if opts.MaxSteps <= 0 {
		return 0, fmt.Errorf("%w: max steps must be positive (got %d)", ErrInvalidInput, opts.MaxSteps)
	}
	if !(p.H > 0) {
		return 0, fmt.Errorf("%w (got %v)", ErrStepSize, p.H)
	}
	if !(p.TargetX > p.X0) {
		return 0, fmt.Errorf("%w (x0 = %v, target = %v)", ErrInterval, p.X0, p.TargetX)
	}
	span := (p.TargetX - p.X0) / p.H
	if span > float64(opts.MaxSteps) {
		return 0, fmt.Errorf("%w (%.0f > %d)", ErrTooManySteps, math.Round(span), opts.MaxSteps)
	}
	n := p.StepCount()
	if n < 1 {
		return 0, fmt.Errorf("%w: step %v is wider than twice the interval", ErrInterval, p.H)
	}

	return n, nil
}
