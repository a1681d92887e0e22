// Package iterative solves square linear systems [A | b] with the classical
// stationary iterations Jacobi and Gauss-Seidel, recording every component
// update and every convergence test.
//
// Both start from the zero vector (or Options.Initial), round each updated
// component to Options.Precision fractional digits, and stop when the largest
// component change of a sweep drops below Options.Tolerance. Running out of
// sweeps is a normal outcome (Result.Converged == false) and the last
// estimate is still returned.
//
// A zero diagonal entry is rejected up front with ErrZeroDiagonal.
package iterative
