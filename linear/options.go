package linear

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numtrace/matrix"
)

const (
	// DefaultEpsilon is the pivot magnitude at or below which a system is
	// treated as singular.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultPrecision is the number of fractional digits Gauss rounds every
	// assigned value to.
	DefaultPrecision = 6

	// NoRounding disables the working-precision rounding of Gauss.
	NoRounding = -1
)

// Options configures LU and Gauss.
//
// Fields:
//   - Epsilon   — singular-pivot threshold: |pivot| <= Epsilon halts a solve.
//   - Precision — Gauss only: fractional digits each eliminated cell and each
//     solution component is rounded to. NoRounding keeps full float64.
type Options struct {
	Epsilon   float64
	Precision int
}

// DefaultOptions returns Epsilon = 1e-12 and Precision = 6.
func DefaultOptions() Options {
	return Options{Epsilon: matrix.NewMatrixOptions().Epsilon(), Precision: DefaultPrecision}
}

func (o Options) validate() error {
	if o.Epsilon < 0 || math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) {
		return fmt.Errorf("%w: epsilon must be finite and non-negative (got %v)", ErrOptions, o.Epsilon)
	}
	if o.Precision < NoRounding || o.Precision > 15 {
		return fmt.Errorf("%w: precision must be in [-1, 15] (got %d)", ErrOptions, o.Precision)
	}

	return nil
}

func (o Options) round(v float64) float64 {
	if o.Precision == NoRounding {
		return v
	}

	return matrix.Round(v, o.Precision)
}
