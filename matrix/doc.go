// Package matrix offers the dense matrix and vector primitives shared by the
// traced linear solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and deep Clone.
//   - NewFromRows for ingesting a user-supplied row-major grid, rejecting
//     ragged rows and (by default) NaN/±Inf values.
//   - Augmented-system helpers: ValidateAugmented, SplitAugmented.
//   - Kernels used by tests and callers to verify solver output: Mul, AllClose,
//     IsDiagonallyDominant, and the fixed-precision Round used by the solvers.
//
// All errors are package sentinels (see errors.go); input problems also match
// ErrInvalidInput. Numeric failure is reported with ErrSingular.
package matrix
