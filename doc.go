// Package numtrace runs classical numerical methods and records every
// arithmetic step they take, so the result can be checked by hand.
//
// 🚀 What is numtrace?
//
//	A small set of deterministic solvers, each returning its answer together
//	with an ordered trace of typed steps:
//		• Root finding: bisection (with automatic bracket search), secant
//		• Direct linear systems: LU (Doolittle), Gauss elimination with partial pivoting
//		• Iterative linear systems: Jacobi, Gauss-Seidel
//		• ODE initial value problems: second-order Runge-Kutta (Heun)
//
// ✨ Why numtrace?
//
//   - Every intermediate value is recorded, with the formula and numbers that produced it
//   - Same input, same trace: no randomness, fixed loop orders, fixed rounding
//   - Traces marshal to JSON, NaN and ±Inf included
//   - Invalid input and numeric failure are distinct, errors.Is-friendly sentinels
//
// Packages:
//
//	expr/      — formula parser, evaluator and step-by-step reduction
//	trace/     — typed trace entries, JSON encoding and text rendering
//	matrix/    — Dense matrix, augmented-system helpers, rounding
//	roots/     — Bisection, Secant
//	linear/    — LU, Gauss
//	iterative/ — Jacobi, GaussSeidel
//	ode/       — RK2
//	engine/    — method-tagged requests, run IDs, logging, batch runs
//	cmd/numtrace — the command line interface
//
// Quick start:
//
//	go install github.com/katalvlaran/numtrace/cmd/numtrace@latest
//	numtrace bisect --equation "x**3 - x**2 + x - 7"
package numtrace
