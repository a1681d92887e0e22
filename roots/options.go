package roots

import (
	"fmt"
	"math"
)

// Defaults mirror the interactive calculator the method is taught with.
const (
	DefaultDecimalPlaces      = 4
	DefaultMaxBracketAttempts = 50
	DefaultBracketStart       = 0.0
	DefaultBracketStep        = 1.0
	DefaultMaxIterations      = 50
	DefaultVariable           = "x"

	// MaxDecimalPlaces bounds the requested accuracy to what float64 can resolve.
	MaxDecimalPlaces = 15
)

// Options configures Bisection and Secant.
//
// Fields:
//   - DecimalPlaces      — accuracy; the tolerance is 10^-DecimalPlaces and the
//     reported root is rounded to this many fractional digits.
//   - MaxBracketAttempts — bisection: unit intervals tested before giving up.
//   - BracketStart       — bisection: left end of the first tested interval.
//   - BracketStep        — bisection: width of each tested interval and shift
//     between attempts.
//   - MaxIterations      — secant: iteration budget.
//   - Variable           — the formula's variable name.
type Options struct {
	DecimalPlaces      int
	MaxBracketAttempts int
	BracketStart       float64
	BracketStep        float64
	MaxIterations      int
	Variable           string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		DecimalPlaces:      DefaultDecimalPlaces,
		MaxBracketAttempts: DefaultMaxBracketAttempts,
		BracketStart:       DefaultBracketStart,
		BracketStep:        DefaultBracketStep,
		MaxIterations:      DefaultMaxIterations,
		Variable:           DefaultVariable,
	}
}

// Tolerance returns 10^-DecimalPlaces.
func (o Options) Tolerance() float64 {
	return math.Pow(10, -float64(o.DecimalPlaces))
}

func (o Options) validate() error {
	if o.DecimalPlaces < 0 || o.DecimalPlaces > MaxDecimalPlaces {
		return fmt.Errorf("%w (got %d)", ErrDecimalPlaces, o.DecimalPlaces)
	}
	if o.MaxBracketAttempts <= 0 || o.MaxIterations <= 0 {
		return fmt.Errorf("%w: iteration budgets must be positive", ErrOptions)
	}
	if !(o.BracketStep > 0) || math.IsInf(o.BracketStep, 0) {
		return fmt.Errorf("%w: bracket step must be positive and finite", ErrOptions)
	}
	if math.IsNaN(o.BracketStart) || math.IsInf(o.BracketStart, 0) {
		return fmt.Errorf("%w: bracket start must be finite", ErrOptions)
	}

	return nil
}
