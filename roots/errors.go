package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for every input-validation failure.
	// A formula that fails to compile is reported as ErrInvalidInput wrapping
	// the *expr.SyntaxError.
	ErrInvalidInput = errors.New("roots: invalid input")

	// ErrDecimalPlaces is returned for a negative or too large DecimalPlaces.
	ErrDecimalPlaces = fmt.Errorf("%w: decimal places must be an integer in [0, %d]", ErrInvalidInput, MaxDecimalPlaces)

	// ErrOptions is returned for non-positive budgets or a bad bracket step.
	ErrOptions = fmt.Errorf("%w: bad options", ErrInvalidInput)

	// ErrSeed is returned when a secant seed is NaN or ±Inf.
	ErrSeed = fmt.Errorf("%w: seeds must be finite", ErrInvalidInput)
)

const (
	opBisection = "Bisection"
	opSecant    = "Secant"
)

// rootsErrorf wraps err with an operation tag, preserving it for errors.Is.
func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// compileErrorf marks a formula compile failure as an input error while
// keeping the *expr.SyntaxError reachable through errors.As.
func compileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, err)
}
