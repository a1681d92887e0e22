package trace

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ShortestDigits renders numbers with the fewest digits that round-trip.
const ShortestDigits = -1

// Num formats v with the given number of fractional digits, or the shortest
// round-trip form when digits < 0.
func Num(v Float, digits int) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	if digits < 0 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', digits, 64)
}

// Lines renders every entry as human-readable text. Indices are shown 1-based.
func (t *Trace) Lines(digits int) []string {
	var out []string
	for _, e := range t.Entries() {
		out = append(out, Describe(e, digits)...)
	}

	return out
}

// Describe renders one entry as one or more text lines.
func Describe(e Entry, digits int) []string {
	n := func(v Float) string { return Num(v, digits) }
	switch e := e.(type) {
	case PivotSwap:
		return []string{fmt.Sprintf("Swap row %d with row %d (pivot %s in column %d)",
			e.To+1, e.From+1, n(e.Pivot), e.Column+1)}
	case Eliminate:
		return []string{fmt.Sprintf("A[%d][%d] = %s - %s*%s = %s",
			e.Row+1, e.Col+1, n(e.Old), n(e.Factor), n(e.PivotValue), n(e.New))}
	case FactorCompute:
		// Both factors sum L[row][k]·U[k][col].
		lines := sumLines(e.Terms, digits, func(t Term) string {
			return fmt.Sprintf("L[%d][%d] * U[%d][%d]", e.Row+1, t.Index+1, t.Index+1, e.Col+1)
		})
		if e.Factor == "U" {
			return append(lines, fmt.Sprintf("U[%d][%d] = A[%d][%d] - sum = %s - %s = %s",
				e.Row+1, e.Col+1, e.Row+1, e.Col+1, n(e.Source), n(e.Sum), n(e.Value)))
		}
		return append(lines, fmt.Sprintf("L[%d][%d] = (A[%d][%d] - sum) / U[%d][%d] = (%s - %s) / %s = %s",
			e.Row+1, e.Col+1, e.Row+1, e.Col+1, e.Col+1, e.Col+1, n(e.Source), n(e.Sum), n(e.Divisor), n(e.Value)))
	case ForwardSub:
		lines := sumLines(e.Terms, digits, func(t Term) string {
			return fmt.Sprintf("L[%d][%d] * Y[%d]", e.Row+1, t.Index+1, t.Index+1)
		})
		return append(lines, fmt.Sprintf("Y[%d] = B[%d] - sum = %s - %s = %s",
			e.Row+1, e.Row+1, n(e.RHS), n(e.Sum), n(e.Value)))
	case BackwardSub:
		lines := sumLines(e.Terms, digits, func(t Term) string {
			return fmt.Sprintf("%s[%d][%d] * X[%d]", e.Coef, e.Row+1, t.Index+1, t.Index+1)
		})
		return append(lines, fmt.Sprintf("X[%d] = (%s - sum) / %s[%d][%d] = (%s - %s) / %s = %s",
			e.Row+1, rhsName(e.Coef, e.Row), e.Coef, e.Row+1, e.Row+1, n(e.RHS), n(e.Sum), n(e.Divisor), n(e.Value)))
	case IterationUpdate:
		parts := make([]string, len(e.Terms))
		for i, t := range e.Terms {
			parts[i] = fmt.Sprintf("%s*%s", n(t.Left), n(t.Right))
		}
		others := "0"
		if len(parts) > 0 {
			others = strings.Join(parts, " + ")
		}
		return []string{fmt.Sprintf("Iteration %d: x%d = (%s - (%s)) / %s = %s",
			e.Iteration, e.Component+1, n(e.RHS), others, n(e.Diagonal), n(e.Value))}
	case ConvergenceCheck:
		verdict := "continue"
		if e.Converged {
			verdict = "converged"
		}
		return []string{fmt.Sprintf("Iteration %d: x = [%s], errors = [%s], max %s vs tolerance %s: %s",
			e.Iteration, joinNums(e.Estimate, digits), joinNums(e.Deltas, digits), n(e.MaxDelta), Num(e.Tolerance, ShortestDigits), verdict)}
	case BracketCheck:
		status := "no sign change"
		switch {
		case e.Exact:
			status = "exact root"
		case e.SignChange:
			status = "opposite sign"
		}
		lines := []string{fmt.Sprintf("Attempt %d: [%s, %s] f(a) = %s, f(b) = %s: %s",
			e.Attempt, n(e.A), n(e.B), n(e.FA), n(e.FB), status)}
		lines = append(lines, indent(e.WorkA)...)
		lines = append(lines, indent(e.WorkB)...)
		return withErr(lines, e.Err)
	case Bisect:
		lines := []string{fmt.Sprintf("Iteration %d: a = %s, b = %s, x = (a+b)/2 = %s, f(x) = %s",
			e.Iteration, n(e.A), n(e.B), n(e.Mid), n(e.FMid))}
		lines = append(lines, indent(e.Work)...)
		lines = append(lines, "  "+e.Reasoning, "  "+e.Conclusion)
		return withErr(lines, e.Err)
	case SecantStep:
		lines := []string{fmt.Sprintf("Iteration %d: x0 = %s, x1 = %s, f(x0) = %s, f(x1) = %s, x2 = x1 - f(x1)*(x1-x0)/(f(x1)-f(x0)) = %s",
			e.Iteration, n(e.X0), n(e.X1), n(e.FX0), n(e.FX1), n(e.Next))}
		return withErr(append(lines, indent(e.Work)...), e.Err)
	case RKSubstep:
		return withErr([]string{
			fmt.Sprintf("Step %d: x = %s, y = %s", e.Step, n(e.X), n(e.Y)),
			fmt.Sprintf("  k1 = h*f(x, y) = h*%s = %s", n(e.F1), n(e.K1)),
			fmt.Sprintf("  k2 = h*f(%s, %s) = h*%s = %s", n(e.PredX), n(e.PredY), n(e.F2), n(e.K2)),
			fmt.Sprintf("  y(%s) = y + (k1+k2)/2 = %s", n(e.XNext), n(e.YNext)),
		}, e.Err)
	case Snapshot:
		rows := make([]string, len(e.Rows))
		for i, r := range e.Rows {
			rows[i] = joinNums(r, digits)
		}
		return []string{fmt.Sprintf("%s: [%s]", e.Label, strings.Join(rows, " | "))}
	case SingularPivot:
		return []string{fmt.Sprintf("Singular pivot in %s at index %d (value %s)", e.Stage, e.Index+1, n(e.Value))}
	}

	return []string{fmt.Sprintf("%v", e)}
}

func sumLines(terms []Term, digits int, label func(Term) string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = fmt.Sprintf("Adding %s = %s * %s", label(t), Num(t.Left, digits), Num(t.Right, digits))
	}

	return out
}

func rhsName(coef string, row int) string {
	if coef == "U" {
		return fmt.Sprintf("Y[%d]", row+1)
	}

	return fmt.Sprintf("b[%d]", row+1)
}

func joinNums(v []Float, digits int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = Num(x, digits)
	}

	return strings.Join(parts, ", ")
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = "  " + l
	}

	return out
}

func withErr(lines []string, err string) []string {
	if err == "" {
		return lines
	}

	return append(lines, "  error: "+err)
}
