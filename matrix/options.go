// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (near-zero pivots, diagonal dominance margins).
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics with a stable message when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf accepts non-finite values on ingestion.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user options left-to-right over the defaults.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
