package ode

// Defaults for Options.
const (
	DefaultXVariable = "x"
	DefaultYVariable = "y"
	DefaultMaxSteps  = 100000
)

// Options configures RK2.
//
// Fields:
//   - XVariable, YVariable — names of the independent and dependent variables
//     in the equation.
//   - MaxSteps             — upper bound on round((TargetX − X0)/H).
type Options struct {
	XVariable string
	YVariable string
	MaxSteps  int
}

// DefaultOptions returns variables "x", "y" and a 100000-step cap.
func DefaultOptions() Options {
	return Options{
		XVariable: DefaultXVariable,
		YVariable: DefaultYVariable,
		MaxSteps:  DefaultMaxSteps,
	}
}
