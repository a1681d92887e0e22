package linear

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numtrace/matrix"
)

var (
	// ErrInvalidInput is the umbrella for rejected input: a malformed
	// augmented matrix or bad Options. Matrix shape errors additionally match
	// their matrix sentinel (matrix.ErrNotAugmented, ...).
	ErrInvalidInput = errors.New("linear: invalid input")

	// ErrOptions is returned for an out-of-range Epsilon or Precision.
	ErrOptions = fmt.Errorf("%w: bad options", ErrInvalidInput)
)

const (
	opLU    = "LU"
	opGauss = "Gauss"
)

// linearErrorf wraps err with an operation tag.
func linearErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// inputErrorf marks a validation failure from package matrix as ErrInvalidInput
// while keeping the matrix sentinel reachable.
func inputErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, err)
}

// singularErrorf reports a zero pivot at index i.
func singularErrorf(tag string, i int, pivot float64) error {
	return fmt.Errorf("%s: pivot %d is %g: %w", tag, i+1, pivot, matrix.ErrSingular)
}
