// Package linear solves dense square linear systems A·X = B given in
// augmented form [A | B] and records every arithmetic step.
//
// Two direct methods are provided:
//
//   - LU: Doolittle factorization A = L·U without pivoting, then forward and
//     backward substitution. Cheap to explain, but it stops on the first zero
//     U[i][i] even when the system is solvable.
//   - Gauss: elimination with partial pivoting, rounded to a fixed working
//     precision (6 fractional digits by default) so that the recorded steps
//     match what a person would write down.
//
// Both return the partial result together with an error wrapping
// matrix.ErrSingular when a pivot is zero (|p| <= Options.Epsilon). All other
// errors match ErrInvalidInput.
//
//	aug, _ := matrix.NewFromRows([][]float64{{1, 5, 1, 14}, {2, 1, 3, 13}, {3, 1, 4, 17}})
//	res, err := linear.LU(aug, linear.DefaultOptions())
//	// res.X ≈ [1 2 3]
package linear
