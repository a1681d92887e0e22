package iterative

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/matrix"
)

const (
	// DefaultTolerance is the max-norm step size below which a sweep counts
	// as converged.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the number of sweeps.
	DefaultMaxIterations = 50

	// DefaultPrecision is the number of fractional digits every updated
	// component is rounded to.
	DefaultPrecision = 6

	// NoRounding keeps full float64 components.
	NoRounding = -1
)

// Options configures Jacobi and GaussSeidel.
//
// Fields:
//   - Tolerance     — stop once max_i |xNew[i] − xOld[i]| < Tolerance; must be > 0.
//   - MaxIterations — sweep budget; must be > 0.
//   - Precision     — fractional digits each component is rounded to on
//     assignment, or NoRounding.
//   - Initial       — starting estimate; nil means the zero vector.
//   - Epsilon       — a diagonal entry with |a[i][i]| <= Epsilon is treated as zero.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Precision     int
	Initial       []float64
	Epsilon       float64
}

// DefaultOptions returns Tolerance 1e-4, MaxIterations 50, Precision 6, a
// zero starting vector and the matrix package's default epsilon.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Precision:     DefaultPrecision,
		Epsilon:       matrix.NewMatrixOptions().Epsilon(),
	}
}

func (o Options) validate(n int) error {
	if !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("%w (got %v)", ErrTolerance, o.Tolerance)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("%w (got %d)", ErrMaxIterations, o.MaxIterations)
	}
	if o.Precision < NoRounding || o.Precision > 15 {
		return fmt.Errorf("%w: precision must be in [-1, 15] (got %d)", ErrInvalidInput, o.Precision)
	}
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be finite and non-negative (got %v)", ErrInvalidInput, o.Epsilon)
	}
	if o.Initial != nil {
		if err := matrix.ValidateVecLen(o.Initial, n); err != nil {
			return fmt.Errorf("%w: initial estimate has %d components, want %d: %w", ErrInvalidInput, len(o.Initial), n, err)
		}
	}

	return nil
}
