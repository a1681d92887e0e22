package roots

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/expr"
	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/trace"
)

// Bisection finds a root of formula by bracketing and halving.
//
// Algorithm Outline:
//  1. Bracketing: test [s, s+h], [s+h, s+2h], ... (s = BracketStart,
//     h = BracketStep) for a sign change f(a)·f(b) < 0, up to
//     MaxBracketAttempts intervals. An endpoint with f == 0 is an exact root.
//  2. Converging: while |b − a| > 10^-DecimalPlaces, evaluate f at
//     mid = (a+b)/2 and keep the half whose endpoints still differ in sign.
//  3. Report (a+b)/2 rounded to DecimalPlaces.
//
// A midpoint where f is undefined (NaN or ±Inf, e.g. a pole) never becomes
// an endpoint: the run stops with StatusNotFound and the failing Bisect entry
// is the last one in the trace.
//
// Every sign test emits a BracketCheck entry and every halving a Bisect entry,
// each carrying the substitution reduction of the evaluated points. A closing
// Bisect entry (Final) records the reported midpoint.
//
// Errors:
//   - ErrDecimalPlaces, ErrOptions, or ErrInvalidInput wrapping a compile
//     error. Not finding a root is not an error: the Result reports
//     StatusNotFound.
//
// Complexity:
//   - O(MaxBracketAttempts + log2(h·10^DecimalPlaces)) evaluations.
func Bisection(formula string, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, rootsErrorf(opBisection, err)
	}
	f, err := expr.Compile(formula, opts.Variable)
	if err != nil {
		return nil, compileErrorf(opBisection, err)
	}

	tr := trace.New()
	res := &Result{Method: "bisection", Status: StatusNotFound, Trace: tr}

	a, fa, b, fb, ok := bracket(f, opts, res)
	if !ok || res.Status == StatusExact {
		return res, nil
	}
	res.Bracket = &Bracket{A: a, B: b}

	tol := opts.Tolerance()
	var iter int
	for math.Abs(b-a) > tol {
		mid := (a + b) / 2
		if mid <= a || mid >= b {
			// The interval can no longer be split in float64.
			break
		}
		iter++
		work, fm, evalErr := f.Reduce(mid)
		step := trace.Bisect{
			Iteration: iter,
			A:         trace.Float(a),
			B:         trace.Float(b),
			Mid:       trace.Float(mid),
			FMid:      trace.Float(fm),
			Work:      work,
			Err:       errString(evalErr),
		}
		if fm == 0 {
			step.Reasoning = fmt.Sprintf("f(%s) = 0", expr.FormatNumber(mid))
			step.Conclusion = fmt.Sprintf("Therefore, x = %s is an exact root", expr.FormatNumber(mid))
			step.Final = true
			tr.Append(step)
			res.Root = matrix.Round(mid, opts.DecimalPlaces)
			res.Status = StatusExact
			res.Iterations = iter
			return res, nil
		}
		switch {
		case math.IsNaN(fm) || math.IsInf(fm, 0):
			step.Reasoning = fmt.Sprintf("f(%s) is undefined, the sign change cannot be located", expr.FormatNumber(mid))
			step.Conclusion = fmt.Sprintf("Therefore, no root can be reported between %s and %s", expr.FormatNumber(a), expr.FormatNumber(b))
			step.Final = true
			tr.Append(step)
			res.Iterations = iter
			return res, nil
		case fa*fm < 0:
			step.Keep = trace.KeepLeft
			step.Reasoning = fmt.Sprintf("As f(%s) and f(%s) have opposite signs", expr.FormatNumber(a), expr.FormatNumber(mid))
			step.Conclusion = fmt.Sprintf("Therefore, a real root lies between %s and %s", expr.FormatNumber(a), expr.FormatNumber(mid))
			b, fb = mid, fm
		case fm*fb < 0:
			step.Keep = trace.KeepRight
			step.Reasoning = fmt.Sprintf("As f(%s) and f(%s) have opposite signs", expr.FormatNumber(mid), expr.FormatNumber(b))
			step.Conclusion = fmt.Sprintf("Therefore, a real root lies between %s and %s", expr.FormatNumber(mid), expr.FormatNumber(b))
			a, fa = mid, fm
		default:
			step.Reasoning = fmt.Sprintf("f(%s), f(%s) and f(%s) share a sign", expr.FormatNumber(a), expr.FormatNumber(mid), expr.FormatNumber(b))
			step.Conclusion = "Therefore, the bracket no longer holds a sign change"
			step.Final = true
			tr.Append(step)
			res.Iterations = iter
			return res, nil
		}
		tr.Append(step)
	}

	final := (a + b) / 2
	work, ff, evalErr := f.Reduce(final)
	tr.Append(trace.Bisect{
		Iteration:  iter + 1,
		A:          trace.Float(a),
		B:          trace.Float(b),
		Mid:        trace.Float(final),
		FMid:       trace.Float(ff),
		Work:       work,
		Reasoning:  "Stopping as the interval is within the desired accuracy",
		Conclusion: fmt.Sprintf("Therefore, the root is x = %s", expr.FormatNumber(matrix.Round(final, opts.DecimalPlaces))),
		Final:      true,
		Err:        errString(evalErr),
	})
	res.Root = matrix.Round(final, opts.DecimalPlaces)
	res.Status = StatusConverged
	res.Iterations = iter

	return res, nil
}

// bracket runs the sign-change search. It returns the accepted interval with
// f(a), f(b) and ok == true, or ok == false when every attempt failed. An exact
// endpoint root is written straight into res.
func bracket(f *expr.Expr, opts Options, res *Result) (a, fa, b, fb float64, ok bool) {
	a = opts.BracketStart
	b = a + opts.BracketStep
	for attempt := 1; attempt <= opts.MaxBracketAttempts; attempt++ {
		workA, va, errA := f.Reduce(a)
		workB, vb, errB := f.Reduce(b)
		check := trace.BracketCheck{
			Attempt:    attempt,
			A:          trace.Float(a),
			B:          trace.Float(b),
			FA:         trace.Float(va),
			FB:         trace.Float(vb),
			WorkA:      workA,
			WorkB:      workB,
			SignChange: va*vb < 0,
			Exact:      va == 0 || vb == 0,
			Err:        errString(errors.Join(errA, errB)),
		}
		res.Trace.Append(check)

		switch {
		case va == 0:
			res.Root, res.Status = matrix.Round(a, opts.DecimalPlaces), StatusExact
			res.Bracket = &Bracket{A: a, B: b}
			return a, va, b, vb, true
		case vb == 0:
			res.Root, res.Status = matrix.Round(b, opts.DecimalPlaces), StatusExact
			res.Bracket = &Bracket{A: a, B: b}
			return a, va, b, vb, true
		case check.SignChange:
			return a, va, b, vb, true
		}
		a = b
		b = a + opts.BracketStep
	}

	return 0, 0, 0, 0, false
}

func errString(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
