package expr

import (
	"fmt"
	"math"
	"strings"
)

// Expr is a compiled, immutable formula over a fixed variable list. It is
// safe for concurrent use: evaluation never mutates the tree.
type Expr struct {
	formula string
	vars    []string
	root    Node
	tokens  []Token
}

// Compile parses formula over the declared variables (default: "x").
// Only the declared names, numeric literals, + - * / ** ^ and parentheses
// are accepted.
func Compile(formula string, vars ...string) (*Expr, error) {
	if len(vars) == 0 {
		vars = []string{"x"}
	}
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if !isIdent(v) || seen[v] {
			return nil, fmt.Errorf("%w: %q", ErrBadVariable, v)
		}
		seen[v] = true
	}
	p := NewParser(formula, vars)
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}

	return &Expr{
		formula: formula,
		vars:    append([]string(nil), vars...),
		root:    root,
		tokens:  p.Tokens(),
	}, nil
}

// MustCompile is like Compile but panics on error. Intended for literals.
func MustCompile(formula string, vars ...string) *Expr {
	e, err := Compile(formula, vars...)
	if err != nil {
		panic(err)
	}

	return e
}

// String returns the source formula.
func (e *Expr) String() string { return e.formula }

// Vars returns the declared variable names in argument order.
func (e *Expr) Vars() []string { return append([]string(nil), e.vars...) }

// AST returns the root of the parsed tree.
func (e *Expr) AST() Node { return e.root }

// Eval evaluates the formula at the given values (one per declared variable).
func (e *Expr) Eval(values ...float64) (float64, error) {
	if len(values) != len(e.vars) {
		return math.NaN(), fmt.Errorf("%w: got %d, want %d", ErrArity, len(values), len(e.vars))
	}
	v, err := eval(e.root, values)
	if err != nil {
		return math.NaN(), &EvalError{Values: append([]float64(nil), values...), Err: err}
	}

	return v, nil
}

// Evaluate is Eval with failures collapsed to NaN.
func (e *Expr) Evaluate(values ...float64) float64 {
	v, err := e.Eval(values...)
	if err != nil {
		return math.NaN()
	}

	return v
}

func eval(n Node, values []float64) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Variable:
		return values[n.Index], nil
	case *Paren:
		return eval(n.X, values)
	case *Unary:
		x, err := eval(n.X, values)
		if err != nil {
			return 0, err
		}
		if n.Op == "-" {
			return -x, nil
		}
		return x, nil
	case *Binary:
		l, err := eval(n.L, values)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.R, values)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, l, r)
	}

	return 0, fmt.Errorf("expr: unknown node %T", n)
}

func apply(op string, l, r float64) (float64, error) {
	var v float64
	switch op {
	case "+":
		v = l + r
	case "-":
		v = l - r
	case "*":
		v = l * r
	case "/":
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		v = l / r
	case "**":
		v = math.Pow(l, r)
	default:
		return 0, fmt.Errorf("expr: unknown operator %q", op)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %s %s", ErrDomain, FormatNumber(l), op, FormatNumber(r))
	}

	return v, nil
}

func isIdent(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}

	return strings.IndexFunc(s, func(r rune) bool {
		return r > 127 || !(isLetter(byte(r)) || isDigit(byte(r)))
	}) < 0
}
