// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in Option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators tag a sentinel once
// ("ValidateSquare: matrix: ..."), operations wrap that once more with
// matrixErrorf ("Det: ValidateSquare: matrix: ..."), and callers match with
// errors.Is at any depth.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> square -> invertibility -> numeric policy.

var (
	// ErrDimensionMismatch indicates an inconsistent or incompatible shape:
	// an empty or ragged grid at construction, Add/Sub on different shapes,
	// or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Row/Col/Minor) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible is returned by Inverse when the determinant is zero
	// (within the configured epsilon) or the cofactor pipeline cannot
	// produce a finite result.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion under WithValidateNaNInf, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// BACKWARD-COMPATIBILITY ALIASES.
// They are semantically identical sentinels, kept for callers that learned
// the older names.

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrSingular names the same condition as ErrNotInvertible.
var ErrSingular = ErrNotInvertible // Deprecated: use ErrNotInvertible.
