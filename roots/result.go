package roots

import (
	"fmt"

	"github.com/katalvlaran/numtrace/trace"
)

// Status is the outcome of a root search.
type Status int

const (
	// StatusNotFound: no bracket, or the iteration budget ran out.
	StatusNotFound Status = iota
	// StatusConverged: the tolerance was met.
	StatusConverged
	// StatusExact: f evaluated to exactly zero at a tested point.
	StatusExact
	// StatusStalled: the secant slope f(x1) - f(x0) was zero.
	StatusStalled
)

var statusNames = [...]string{
	StatusNotFound:  "not-found",
	StatusConverged: "converged",
	StatusExact:     "exact",
	StatusStalled:   "stalled",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return statusNames[s]
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Bracket is an interval [A, B] with f(A)·f(B) ≤ 0.
type Bracket struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Result is the outcome of one root search plus its full trace.
//
// Root is meaningful only when Found reports true; it is rounded to the
// requested decimal places. Iterations counts bisection halvings or secant
// steps. Bracket is the accepted sign-change interval (bisection only).
type Result struct {
	Method     string       `json:"method"`
	Root       float64      `json:"root"`
	Status     Status       `json:"status"`
	Iterations int          `json:"iterations"`
	Bracket    *Bracket     `json:"bracket,omitempty"`
	Trace      *trace.Trace `json:"trace"`
}

// Found reports whether Root holds an accepted root.
func (r *Result) Found() bool {
	return r != nil && (r.Status == StatusConverged || r.Status == StatusExact)
}
