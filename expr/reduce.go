package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v the way the reduction steps show numbers: the
// shortest round-trip decimal, switching to exponent form for very large or
// very small magnitudes. Negative zero prints as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a < 1e-6 || a >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Substitute returns the formula with every variable textually replaced by
// its parenthesized value, keeping the user's spacing.
func (e *Expr) Substitute(values ...float64) (string, error) {
	if len(values) != len(e.vars) {
		return "", fmt.Errorf("%w: got %d, want %d", ErrArity, len(values), len(e.vars))
	}
	index := make(map[string]int, len(e.vars))
	for i, v := range e.vars {
		index[v] = i
	}
	var sb strings.Builder
	last := 0
	for _, tok := range e.tokens {
		if tok.Type != IDENT {
			continue
		}
		sb.WriteString(e.formula[last:tok.Pos])
		sb.WriteString("(" + FormatNumber(values[index[tok.Literal]]) + ")")
		last = tok.End
	}
	sb.WriteString(e.formula[last:])

	return strings.TrimSpace(sb.String()), nil
}

// Call renders the call site label, e.g. "f(2)" or "f(0.2, 1.2)".
func Call(name string, values ...float64) string {
	args := make([]string, len(values))
	for i, v := range values {
		args[i] = FormatNumber(v)
	}

	return name + "(" + strings.Join(args, ", ") + ")"
}

// Reduce evaluates the formula at values and returns the worked steps:
//
//	f(2) = (2)**3 - (2)**2 + (2) - 7
//	= 8 - 4 + (2) - 7
//	= -1
//
// The first line is the textual substitution; then every power is resolved,
// then every product and quotient, and the last line is the value. A stage
// that changes nothing is omitted, and so is a value line repeating the
// previous one. On failure the steps computed so far are
// returned with a closing "= undefined" line, NaN and the error.
func (e *Expr) Reduce(values ...float64) ([]string, float64, error) {
	text, err := e.Substitute(values...)
	if err != nil {
		return nil, math.NaN(), err
	}
	steps := []string{Call("f", values...) + " = " + text}
	fail := func(err error) ([]string, float64, error) {
		steps = append(steps, "= undefined ("+err.Error()+")")
		return steps, math.NaN(), &EvalError{Values: append([]float64(nil), values...), Err: err}
	}

	tree := substitute(e.root, values)
	prev := Print(tree)
	for _, ops := range [][]string{{"**"}, {"*", "/"}} {
		folded, err := fold(tree, ops)
		if err != nil {
			return fail(err)
		}
		if s := Print(folded); s != prev {
			steps = append(steps, "= "+s)
			prev = s
		}
		tree = folded
	}
	v, err := eval(tree, nil)
	if err != nil {
		return fail(err)
	}

	if s := FormatNumber(v); s != prev {
		steps = append(steps, "= "+s)
	}

	return steps, v, nil
}

// substitute replaces variables by substituted numbers, returning a new tree.
func substitute(n Node, values []float64) Node {
	switch n := n.(type) {
	case *Variable:
		return &Number{Value: values[n.Index], Substituted: true}
	case *Paren:
		return &Paren{X: substitute(n.X, values)}
	case *Unary:
		return &Unary{Op: n.Op, X: substitute(n.X, values)}
	case *Binary:
		return &Binary{Op: n.Op, Lit: n.Lit, L: substitute(n.L, values), R: substitute(n.R, values)}
	}

	return n
}

// fold collapses every Binary node whose operator is in ops into a Number.
// The tree must be variable-free.
func fold(n Node, ops []string) (Node, error) {
	switch n := n.(type) {
	case *Paren:
		x, err := fold(n.X, ops)
		if err != nil {
			return nil, err
		}
		return &Paren{X: x}, nil
	case *Unary:
		x, err := fold(n.X, ops)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: n.Op, X: x}, nil
	case *Binary:
		for _, op := range ops {
			if n.Op == op {
				v, err := eval(n, nil)
				if err != nil {
					return nil, err
				}
				return &Number{Value: v}, nil
			}
		}
		l, err := fold(n.L, ops)
		if err != nil {
			return nil, err
		}
		r, err := fold(n.R, ops)
		if err != nil {
			return nil, err
		}
		return &Binary{Op: n.Op, Lit: n.Lit, L: l, R: r}, nil
	}

	return n, nil
}

// Print renders a tree. Sums are spaced, products and powers are not,
// substituted values and computed negatives are parenthesized.
func Print(n Node) string {
	var sb strings.Builder
	printNode(&sb, n)

	return sb.String()
}

func printNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Number:
		switch {
		case n.Substituted:
			sb.WriteString("(" + FormatNumber(n.Value) + ")")
		case n.Literal != "":
			sb.WriteString(n.Literal)
		case n.Value < 0:
			sb.WriteString("(" + FormatNumber(n.Value) + ")")
		default:
			sb.WriteString(FormatNumber(n.Value))
		}
	case *Variable:
		sb.WriteString(n.Name)
	case *Paren:
		sb.WriteByte('(')
		printNode(sb, n.X)
		sb.WriteByte(')')
	case *Unary:
		sb.WriteString(n.Op)
		printNode(sb, n.X)
	case *Binary:
		printNode(sb, n.L)
		if n.Op == "+" || n.Op == "-" {
			sb.WriteString(" " + n.Lit + " ")
		} else {
			sb.WriteString(n.Lit)
		}
		printNode(sb, n.R)
	}
}

var superscripts = map[byte]string{
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹",
}

// Pretty renders the formula for display: integer exponents become
// superscripts and explicit multiplication signs are dropped ("x**3 - 2*x"
// prints as "x³ - 2x").
func (e *Expr) Pretty() string {
	var sb strings.Builder
	last := 0
	for i := 0; i < len(e.tokens); i++ {
		tok := e.tokens[i]
		switch tok.Type {
		case ASTERISK:
			sb.WriteString(strings.TrimRight(e.formula[last:tok.Pos], " \t"))
			last = tok.End
			// Drop the spacing after the sign as well.
			for last < len(e.formula) && (e.formula[last] == ' ' || e.formula[last] == '\t') {
				last++
			}
		case POW, CARET:
			next := e.tokens[i+1]
			if next.Type != NUMBER || strings.Trim(next.Literal, "0123456789") != "" {
				continue
			}
			sb.WriteString(e.formula[last:tok.Pos])
			for j := 0; j < len(next.Literal); j++ {
				sb.WriteString(superscripts[next.Literal[j]])
			}
			last = next.End
			i++
		}
	}
	sb.WriteString(e.formula[last:])

	return sb.String()
}
