// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise and product kernels of Dense:
// addition, subtraction, negation, scalar scaling, matrix multiplication and
// transpose. All binary kernels perform strict fail-fast validation and
// return clear errors on dimension mismatches.
//
// Notes:
//   - Receivers are never mutated; every kernel allocates exactly one result.
//   - Operands may be any Matrix; a *Dense operand unlocks the flat-slice path,
//     anything else is materialized once through At.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDet       = "Det"
	opMinor     = "Minor"
	opAdjugate  = "Adjugate"
	opInverse   = "Inverse"
	opAllClose  = "AllClose"
	opIdentity  = "IdentityLike"
	opFromGonum = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, b).
//   - Stage 2: single flat loop over both row-major buffers.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Add(b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := asDense(b, m.opts)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	out := make([]float64, len(m.data))
	for idx := range out { // deterministic 0..n-1
		out[idx] = m.data[idx] + db.data[idx]
	}

	return m.derive(m.r, m.c, out), nil
}

// Sub computes C = A − B, defined as A + (−B).
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) plus one O(r*c) temporary for −B.
func (m *Dense) Sub(b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := asDense(b, m.opts)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return m.Add(db.Negate())
}

// Negate returns a new matrix with every entry sign-flipped.
// Complexity: O(r*c).
func (m *Dense) Negate() *Dense {
	out := make([]float64, len(m.data))
	for idx, v := range m.data {
		out[idx] = -v
	}

	return m.derive(m.r, m.c, out)
}

// Scale returns α·m. The result is not rounded. Never fails.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	out := make([]float64, len(m.data))
	for idx, v := range m.data {
		out[idx] = v * alpha
	}

	return m.derive(m.r, m.c, out)
}

// Mul performs the matrix product C = A × B, rounded to the receiver's precision.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop accumulating Σ_k A[i,k]·B[k,j] per cell.
//   - Stage 3: round every cell to Options.Precision decimal digits.
//
// Inputs:
//   - A: receiver with shape (r × n).
//   - B: right operand with shape (n × c).
//
// Returns:
//   - *Dense: new matrix C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order; each cell sums k = 0..n-1 left to right.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b, m.opts)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := m.r, m.c, db.c
	out := make([]float64, aRows*bCols)
	var (
		i, j, k    int
		rowOffsetA int
		current    float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				current += m.data[rowOffsetA+k] * db.data[k*bCols+j]
			}
			out[i*bCols+j] = roundHalfUp(current, m.opts.precision)
		}
	}

	return m.derive(aRows, bCols, out), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result[j][i] = m[i][j]. Never fails.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() *Dense {
	rows, cols := m.r, m.c
	out := make([]float64, rows*cols)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			out[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return m.derive(cols, rows, out)
}
