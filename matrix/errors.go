// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the solver packages built on top of it. All functions MUST
// return these sentinels (optionally wrapped) and tests MUST check them via
// errors.Is. No function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// matrixErrorf(op, ErrX) — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/ragged -> NaN/Inf -> dimension mismatch -> numeric (singular).

var (
	// ErrInvalidInput is the umbrella for every input-validation failure below.
	// errors.Is(err, ErrInvalidInput) holds for ErrBadShape, ErrRaggedRows,
	// ErrNaNInf, ErrDimensionMismatch, ErrNonSquare, ErrNotAugmented and ErrNilMatrix.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrBadShape is returned when requested shape is invalid (e.g., r<=0 or c<=0).
	ErrBadShape = invalid("matrix: invalid shape")

	// ErrRaggedRows indicates that rows of a row-major literal differ in length.
	ErrRaggedRows = invalid("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., AllClose on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = invalid("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = invalid("matrix: matrix is not square")

	// ErrNotAugmented signals that an n×(n+1) augmented system was required.
	ErrNotAugmented = invalid("matrix: matrix is not an augmented n×(n+1) system")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = invalid("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = invalid("matrix: nil matrix")

	// ErrSingular is returned when a (near-)zero pivot is encountered during
	// decomposition, elimination, substitution or iteration.
	ErrSingular = errors.New("matrix: singular matrix")
)

// inputError is a sentinel that also matches ErrInvalidInput.
type inputError struct{ msg string }

func invalid(msg string) error { return &inputError{msg: msg} }

func (e *inputError) Error() string { return e.msg }

// Is reports membership in the input-validation family.
func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

// Operation name constants for unified error wrapping.
const (
	opNew      = "NewFromRows"
	opMul      = "Mul"
	opAllClose = "AllClose"
	opSplit    = "SplitAugmented"
	opDominant = "IsDiagonallyDominant"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
