// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success,
//    except ValidateGrid which is O(rows).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape(a,b).
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNonSquare if not square. Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < rows and 0 ≤ j < cols.
// Complexity: O(1).
func ValidateIndex(m Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateIndex: row", ErrOutOfRange)
	}
	if j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateIndex: column", ErrOutOfRange)
	}

	return nil
}

// ValidateGrid checks that a caller-supplied grid is non-empty and
// rectangular: at least one row, at least one column, and every row as long
// as the first.
//
// Errors: ErrDimensionMismatch, tagged with the offending row.
// Complexity: O(rows).
func ValidateGrid(grid [][]float64) error {
	if len(grid) == 0 {
		return validatorErrorf("ValidateGrid: no rows", ErrDimensionMismatch)
	}
	cols := len(grid[0])
	if cols == 0 {
		return validatorErrorf("ValidateGrid: no columns", ErrDimensionMismatch)
	}
	for i := 1; i < len(grid); i++ {
		if len(grid[i]) != cols {
			return validatorErrorf(
				fmt.Sprintf("ValidateGrid: row %d has %d columns, want %d", i, len(grid[i]), cols),
				ErrDimensionMismatch,
			)
		}
	}

	return nil
}

// validateTol rejects NaN/Inf tolerances and returns their absolute values.
func validateTol(rtol, atol float64) (float64, float64, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return 0, 0, validatorErrorf("validateTol", ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}

	return rtol, atol, nil
}
