package engine

import (
	"time"

	"github.com/katalvlaran/numtrace/expr"
	"github.com/katalvlaran/numtrace/iterative"
	"github.com/katalvlaran/numtrace/linear"
	"github.com/katalvlaran/numtrace/matrix"
	"github.com/katalvlaran/numtrace/ode"
	"github.com/katalvlaran/numtrace/roots"
	"github.com/katalvlaran/numtrace/trace"
)

// Status values reported in Response.Status besides the root finder ones
// ("converged", "exact", "not-found", "stalled").
const (
	StatusSolved       = "solved"
	StatusSingular     = "singular"
	StatusNotConverged = "not-converged"
	StatusDiverged     = "diverged"
	StatusIncomplete   = "incomplete"
)

// Response is the JSON-safe outcome of one Run. Exactly one of the result
// views is set, matching the method family.
type Response struct {
	RunID    string        `json:"run_id"`
	Method   Method        `json:"method"`
	Status   string        `json:"status"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Equation string        `json:"equation,omitempty"`

	Root      *RootView      `json:"root,omitempty"`
	Direct    *DirectView    `json:"direct,omitempty"`
	Iterative *IterativeView `json:"iterative,omitempty"`
	ODE       *ODEView       `json:"ode,omitempty"`

	Trace *trace.Trace `json:"trace"`
}

// Lines renders the trace with the method's display digits.
func (r *Response) Lines() []string {
	return r.Trace.Lines(r.Method.Digits())
}

// Heading presents the problem the way it is read out before the steps:
// "Let f(x) = x³ - x² + x - 7" for root finding, "dy/dx = x + y" for the
// ODE. Linear systems have no heading.
func (r *Response) Heading() string {
	var prefix string
	var vars []string
	switch r.Method.Family() {
	case "root":
		prefix, vars = "Let f(x) = ", []string{roots.DefaultOptions().Variable}
	case "ode":
		o := ode.DefaultOptions()
		prefix, vars = "dy/dx = ", []string{o.XVariable, o.YVariable}
	default:
		return ""
	}
	e, err := expr.Compile(r.Equation, vars...)
	if err != nil {
		return ""
	}

	return prefix + e.Pretty()
}

// RootView mirrors roots.Result.
type RootView struct {
	Found      bool           `json:"found"`
	Root       trace.Float    `json:"root"`
	Iterations int            `json:"iterations"`
	Bracket    *roots.Bracket `json:"bracket,omitempty"`
}

// DirectView mirrors linear.LUResult and linear.GaussResult.
type DirectView struct {
	L       [][]trace.Float `json:"l,omitempty"`
	U       [][]trace.Float `json:"u,omitempty"`
	Y       []trace.Float   `json:"y,omitempty"`
	Reduced [][]trace.Float `json:"reduced,omitempty"`
	X       []trace.Float   `json:"x"`
}

// IterativeView mirrors iterative.Result.
type IterativeView struct {
	X                  []trace.Float `json:"x"`
	Iterations         int           `json:"iterations"`
	Converged          bool          `json:"converged"`
	Diverged           bool          `json:"diverged"`
	DiagonallyDominant bool          `json:"diagonally_dominant"`
}

// ODEView mirrors ode.Result.
type ODEView struct {
	Trajectory [][2]trace.Float `json:"trajectory"`
	FinalX     trace.Float      `json:"final_x"`
	FinalY     trace.Float      `json:"final_y"`
	Steps      int              `json:"steps"`
	Completed  bool             `json:"completed"`
}

func rootView(res *roots.Result) *RootView {
	return &RootView{
		Found:      res.Found(),
		Root:       trace.Float(res.Root),
		Iterations: res.Iterations,
		Bracket:    res.Bracket,
	}
}

func luView(res *linear.LUResult) *DirectView {
	return &DirectView{
		L: grid(res.L),
		U: grid(res.U),
		Y: trace.Floats(res.Y),
		X: trace.Floats(res.X),
	}
}

func gaussView(res *linear.GaussResult) *DirectView {
	return &DirectView{
		Reduced: grid(res.Reduced),
		X:       trace.Floats(res.X),
	}
}

func iterativeView(res *iterative.Result) *IterativeView {
	return &IterativeView{
		X:                  trace.Floats(res.X),
		Iterations:         res.Iterations,
		Converged:          res.Converged,
		Diverged:           res.Diverged,
		DiagonallyDominant: res.DiagonallyDominant,
	}
}

func odeView(res *ode.Result) *ODEView {
	pts := make([][2]trace.Float, len(res.Trajectory))
	for i, p := range res.Trajectory {
		pts[i] = [2]trace.Float{trace.Float(p.X), trace.Float(p.Y)}
	}

	return &ODEView{
		Trajectory: pts,
		FinalX:     trace.Float(res.FinalX),
		FinalY:     trace.Float(res.FinalY),
		Steps:      res.Steps,
		Completed:  res.Completed,
	}
}

func grid(m *matrix.Dense) [][]trace.Float {
	if m == nil {
		return nil
	}

	return trace.Grid(m.ToRows())
}
