// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the facades.
// This file intentionally contains ONLY domain-facing types. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is a read-only two-dimensional array of float64 values.
// Every method is side-effect free; there is no Set on purpose, matrices
// are immutable once built. Binary operations on *Dense accept any Matrix
// and take a flat-slice fast path when the operand is itself a *Dense.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
