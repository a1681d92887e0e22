package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for every rejected Problem.
	ErrInvalidInput = errors.New("ode: invalid input")

	// ErrStepSize is returned for H <= 0.
	ErrStepSize = fmt.Errorf("%w: step size h must be positive", ErrInvalidInput)

	// ErrInterval is returned for TargetX <= X0, or when no whole step fits.
	ErrInterval = fmt.Errorf("%w: target x must be greater than x0", ErrInvalidInput)

	// ErrTooManySteps is returned when the step count exceeds Options.MaxSteps.
	ErrTooManySteps = fmt.Errorf("%w: too many steps", ErrInvalidInput)

	// ErrNotFinite is returned when a Problem parameter is NaN or ±Inf.
	ErrNotFinite = fmt.Errorf("%w: parameters must be finite", ErrInvalidInput)
)

const opRK2 = "RK2"

func odeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
