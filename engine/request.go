package engine

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/numtrace/iterative"
	"github.com/katalvlaran/numtrace/linear"
	"github.com/katalvlaran/numtrace/ode"
	"github.com/katalvlaran/numtrace/roots"
)

// Method selects the algorithm a Request runs.
type Method string

const (
	MethodBisection Method = "bisection"
	MethodSecant    Method = "secant"
	MethodLU        Method = "lu"
	MethodGauss     Method = "gauss"
	MethodJacobi    Method = "jacobi"
	MethodSeidel    Method = "gauss-seidel"
	MethodRK2       Method = "rk2"
)

// Methods lists every supported method in display order.
var Methods = []Method{
	MethodBisection, MethodSecant, MethodLU, MethodGauss, MethodJacobi, MethodSeidel, MethodRK2,
}

// ParseMethod resolves a method name, accepting "seidel" for Gauss-Seidel.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "seidel" {
		return MethodSeidel, nil
	}
	for _, m := range Methods {
		if string(m) == name {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Family groups methods by the shape of their input.
func (m Method) Family() string {
	switch m {
	case MethodBisection, MethodSecant:
		return "root"
	case MethodLU, MethodGauss:
		return "direct"
	case MethodJacobi, MethodSeidel:
		return "iterative"
	case MethodRK2:
		return "ode"
	}

	return ""
}

// Digits is the number of fractional digits used to render the method's
// trace: 3 for LU, 6 for Gauss and the iterative methods, 9 for RK2, and the
// shortest exact form for the root finders.
func (m Method) Digits() int {
	switch m {
	case MethodLU:
		return 3
	case MethodGauss, MethodJacobi, MethodSeidel:
		return 6
	case MethodRK2:
		return 9
	}

	return -1
}

// Request is one problem. Fields that do not apply to Method are ignored.
// A Request decoded from YAML or JSON on top of NewRequest keeps the
// defaults for every key the document omits. YAML keys use the same
// hyphenated spelling as the CLI flags and config keys.
type Request struct {
	Method Method `yaml:"method" json:"method"`

	// Root finding and ODE.
	Equation string `yaml:"equation" json:"equation,omitempty"`

	// Root finding.
	Decimals int     `yaml:"decimals" json:"decimals"`
	X0       float64 `yaml:"x0" json:"x0"`
	X1       float64 `yaml:"x1" json:"x1"`

	// Linear systems, augmented n×(n+1).
	Matrix    [][]float64 `yaml:"matrix" json:"matrix,omitempty"`
	Tolerance float64     `yaml:"tolerance" json:"tolerance"`
	Precision int         `yaml:"precision" json:"precision"`

	// Secant and iterative solvers.
	MaxIterations int `yaml:"max-iterations" json:"max_iterations"`

	// ODE; X0 is shared with the secant seeds.
	Y0      float64 `yaml:"y0" json:"y0"`
	H       float64 `yaml:"h" json:"h"`
	TargetX float64 `yaml:"target-x" json:"target_x"`
}

// Sample problems used as defaults, the ones the methods are usually taught with.
var (
	SampleEquation    = "x**3 - x**2 + x - 7"
	SampleODEEquation = "x + y"
	SampleSystem      = [][]float64{{1, 5, 1, 14}, {2, 1, 3, 13}, {3, 1, 4, 17}}
	SampleDominant    = [][]float64{
		{10, -1, 2, 0, 6},
		{-1, 11, -1, 3, 25},
		{2, -1, 10, -1, -11},
		{0, 3, -1, 8, 15},
	}
)

// NewRequest returns a Request for m pre-filled with the method defaults and
// sample problem.
func NewRequest(m Method) Request {
	r := Request{
		Method:        m,
		Decimals:      roots.DefaultDecimalPlaces,
		Tolerance:     iterative.DefaultTolerance,
		Precision:     linear.DefaultPrecision,
		MaxIterations: roots.DefaultMaxIterations,
	}
	switch m.Family() {
	case "root":
		r.Equation = SampleEquation
		r.X0, r.X1 = 2, 3
	case "direct":
		r.Matrix = cloneRows(SampleSystem)
	case "iterative":
		r.Matrix = cloneRows(SampleDominant)
		r.MaxIterations = iterative.DefaultMaxIterations
		r.Precision = iterative.DefaultPrecision
	case "ode":
		r.Equation = SampleODEEquation
		r.X0, r.Y0, r.H, r.TargetX = 0, 1, 0.2, 0.4
	}

	return r
}

// Validate reports every structural problem at once. Numeric validation
// (step sizes, tolerances, matrix shape) is left to the algorithm packages.
func (r Request) Validate() error {
	var result *multierror.Error
	family := r.Method.Family()
	if family == "" {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrUnknownMethod, r.Method))
	}
	if (family == "root" || family == "ode") && strings.TrimSpace(r.Equation) == "" {
		result = multierror.Append(result, fmt.Errorf("%w: equation is required for %s", ErrInvalidRequest, r.Method))
	}
	if family == "direct" || family == "iterative" {
		if len(r.Matrix) == 0 {
			result = multierror.Append(result, fmt.Errorf("%w: matrix is required for %s", ErrInvalidRequest, r.Method))
		}
		for i, row := range r.Matrix {
			if len(row) != len(r.Matrix)+1 {
				result = multierror.Append(result, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidRequest, i+1, len(row), len(r.Matrix)+1))
			}
		}
	}
	if r.Decimals < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: decimals must not be negative", ErrInvalidRequest))
	}

	return result.ErrorOrNil()
}

func (r Request) rootOptions() roots.Options {
	o := roots.DefaultOptions()
	o.DecimalPlaces = r.Decimals
	if r.MaxIterations > 0 {
		o.MaxIterations = r.MaxIterations
	}

	return o
}

func (r Request) linearOptions() linear.Options {
	o := linear.DefaultOptions()
	o.Precision = r.Precision

	return o
}

func (r Request) iterativeOptions() iterative.Options {
	o := iterative.DefaultOptions()
	o.Tolerance = r.Tolerance
	o.MaxIterations = r.MaxIterations
	o.Precision = r.Precision

	return o
}

func (r Request) problem() ode.Problem {
	return ode.Problem{Equation: r.Equation, X0: r.X0, Y0: r.Y0, H: r.H, TargetX: r.TargetX}
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64(nil), r...)
	}

	return out
}
