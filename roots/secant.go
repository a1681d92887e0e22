package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/expr"
	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/trace"
)

// Secant finds a root of formula from the seeds x0 and x1.
//
// Each iteration computes
//
//	c = x1 − f(x1)·(x1 − x0) / (f(x1) − f(x0))
//
// and shifts x0 ← x1, x1 ← c. The search converges when |f(c)| < tol or when
// |x1 − x0| ≤ tol after the shift (tol = 10^-DecimalPlaces). It stalls, and
// reports StatusStalled, as soon as f(x1) − f(x0) == 0. After MaxIterations
// steps without convergence the Result reports StatusNotFound.
//
// Every iteration emits one SecantStep entry; a stall emits a final entry
// with Next = NaN and the reason in Err.
func Secant(formula string, x0, x1 float64, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, rootsErrorf(opSecant, err)
	}
	if math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(x1) || math.IsInf(x1, 0) {
		return nil, rootsErrorf(opSecant, ErrSeed)
	}
	f, err := expr.Compile(formula, opts.Variable)
	if err != nil {
		return nil, compileErrorf(opSecant, err)
	}

	tol := opts.Tolerance()
	tr := trace.New()
	res := &Result{Method: "secant", Status: StatusNotFound, Trace: tr}

	a, b := x0, x1
	for iter := 1; iter <= opts.MaxIterations; iter++ {
		fa, errA := f.Eval(a)
		fb, errB := f.Eval(b)
		if fb-fa == 0 {
			tr.Append(trace.SecantStep{
				Iteration: iter,
				X0:        trace.Float(a),
				X1:        trace.Float(b),
				FX0:       trace.Float(fa),
				FX1:       trace.Float(fb),
				Next:      trace.Float(math.NaN()),
				FNext:     trace.Float(math.NaN()),
				Err:       fmt.Sprintf("f(x1) - f(x0) = 0 at x0 = %s, x1 = %s; the secant is undefined", expr.FormatNumber(a), expr.FormatNumber(b)),
			})
			res.Status = StatusStalled
			return res, nil
		}

		c := b - fb*(b-a)/(fb-fa)
		fc, errC := f.Eval(c)
		tr.Append(trace.SecantStep{
			Iteration: iter,
			X0:        trace.Float(a),
			X1:        trace.Float(b),
			FX0:       trace.Float(fa),
			FX1:       trace.Float(fb),
			Next:      trace.Float(c),
			FNext:     trace.Float(fc),
			Work:      []string{secantWork(f, c, fc, errC)},
			Err:       errString(errors.Join(errA, errB, errC)),
		})
		res.Iterations = iter

		if math.Abs(fc) < tol {
			res.Root = matrix.Round(c, opts.DecimalPlaces)
			res.Status = StatusConverged
			return res, nil
		}
		a, b = b, c
		if math.Abs(b-a) <= tol {
			res.Root = matrix.Round(b, opts.DecimalPlaces)
			res.Status = StatusConverged
			return res, nil
		}
	}

	return res, nil
}

// secantWork renders the single-line evaluation "f(c) = <substituted> = value".
func secantWork(f *expr.Expr, c, fc float64, err error) string {
	text, subErr := f.Substitute(c)
	if subErr != nil {
		text = f.String()
	}
	value := expr.FormatNumber(fc)
	if err != nil {
		value = "undefined"
	}

	return fmt.Sprintf("%s = %s = %s", expr.Call("f", c), text, value)
}
