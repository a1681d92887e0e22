package iterative

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numtrace/matrix"
)

var (
	// ErrInvalidInput is the umbrella for rejected input.
	ErrInvalidInput = errors.New("iterative: invalid input")

	// ErrTolerance is returned for a tolerance that is not a positive finite number.
	ErrTolerance = fmt.Errorf("%w: tolerance must be positive", ErrInvalidInput)

	// ErrMaxIterations is returned for a non-positive sweep budget.
	ErrMaxIterations = fmt.Errorf("%w: max iterations must be positive", ErrInvalidInput)

	// ErrZeroDiagonal is returned before iterating when some |A[i][i]| <= Epsilon.
	// It also matches matrix.ErrSingular.
	ErrZeroDiagonal = fmt.Errorf("iterative: zero on the diagonal: %w", matrix.ErrSingular)
)

const (
	opJacobi = "Jacobi"
	opSeidel = "GaussSeidel"
)

func iterativeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
