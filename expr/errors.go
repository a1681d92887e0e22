package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax matches every *SyntaxError.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownVariable is returned when a formula references an identifier
	// that is not among the declared variables.
	ErrUnknownVariable = errors.New("expr: unknown variable")

	// ErrTooDeep is returned when nesting exceeds MaxDepth.
	ErrTooDeep = errors.New("expr: expression nested too deeply")

	// ErrBadVariable is returned when a declared variable name is not an
	// identifier or is declared twice.
	ErrBadVariable = errors.New("expr: invalid variable declaration")

	// ErrArity is returned when Eval receives the wrong number of values.
	ErrArity = errors.New("expr: wrong number of values")

	// ErrDivisionByZero is returned when a divisor evaluates to zero.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrDomain is returned when an operation has no real result (negative
	// base to a fractional power, zero to a negative power) or overflows.
	ErrDomain = errors.New("expr: result is not a finite real number")
)

// SyntaxError reports a compile failure at a byte offset of the formula.
// Unwrap yields ErrSyntax, ErrUnknownVariable or ErrTooDeep.
type SyntaxError struct {
	Formula string
	Pos     int
	Msg     string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: %s at column %d in %q", e.Msg, e.Pos+1, e.Formula)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// EvalError reports a runtime failure for a specific set of argument values.
type EvalError struct {
	Values []float64
	Err    error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%v (at %v)", e.Err, e.Values)
}

func (e *EvalError) Unwrap() error { return e.Err }
