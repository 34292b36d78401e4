// SPDX-License-Identifier: MIT

// Package matrix - cofactor kernels: Minor, Det, Adjugate, Inverse.
//
// Purpose:
//   - Det is an exact recursive Laplace expansion along row 0. It is
//     exponential in n and meant for small matrices; results are reproducible
//     bit-for-bit because the expansion order is fixed.
//   - Inverse is adj(A)ᵀ · (1/det A), built from the same cofactors.
//
// Dependency chain:
//
//	Det      → Minor
//	Adjugate → Minor, Det
//	Inverse  → Det, Adjugate, Transpose, Scale

package matrix

import (
	"fmt"
	"math"
)

// skipIndex returns [0, n) without x, preserving order.
func skipIndex(n, x int) []int {
	out := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != x {
			out = append(out, i)
		}
	}

	return out
}

// Minor returns the (r-1)×(c-1) matrix obtained by deleting row x and
// column y, keeping the relative order of the remaining rows and columns.
// Implementation:
//   - Stage 1: ValidateIndex(x, y).
//   - Stage 2: refuse 1-row / 1-column inputs (the minor would be empty).
//   - Stage 3: Induced(rows \ {x}, cols \ {y}).
//
// Errors:
//   - ErrOutOfRange (invalid x or y).
//   - ErrDimensionMismatch (the receiver has a single row or column).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Minor(x, y int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, x, y); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	sub, err := m.Induced(skipIndex(m.r, x), skipIndex(m.c, y))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return sub, nil
}

// Det returns the determinant of a square matrix.
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: recursive cofactor expansion (see det).
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level.
func (m *Dense) Det() (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(m)
}

// det expands along row 0:
//
//	n == 1: m[0][0]
//	n == 2: m[0][0]*m[1][1] - m[0][1]*m[1][0]
//	n >= 3: Σ_j (-1)^j · m[0][j] · det(minor(0, j)), rounded to precision.
//
// Base cases are returned unrounded; only the expansion sum is rounded.
func det(m *Dense) (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	var (
		total, sign, sub float64
		minor            *Dense
		err              error
	)
	for j := 0; j < m.c; j++ {
		sign = 1
		if j%2 == 1 {
			sign = -1
		}
		if minor, err = m.Minor(0, j); err != nil {
			return 0, err
		}
		if sub, err = det(minor); err != nil {
			return 0, err
		}
		total += sign * m.data[j] * sub
	}

	return roundHalfUp(total, m.opts.precision), nil
}

// Adjugate returns the cofactor matrix C with C[i][j] = (-1)^(i+j)·det(minor(i,j)).
// The result is NOT transposed; Inverse applies the transpose itself.
// A 1×1 matrix has the single cofactor 1.
//
// Errors:
//   - ErrNonSquare.
//
// Complexity:
//   - Time O(n^2 · n!), Space O(n^2).
func (m *Dense) Adjugate() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.r
	if n == 1 {
		return m.derive(1, 1, []float64{1}), nil
	}

	out := make([]float64, n*n)
	var (
		i, j  int
		sign  float64
		d     float64
		minor *Dense
		err   error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sign = 1
			if (i+j)%2 == 1 {
				sign = -1
			}
			if minor, err = m.Minor(i, j); err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			if d, err = minor.Det(); err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			out[i*n+j] = sign * d
		}
	}

	return m.derive(n, n, out), nil
}

// Inverse computes A⁻¹ = Adjugate(A)ᵀ · (1/det A).
// Implementation:
//   - Stage 1: ValidateSquare; a non-square input fails with ErrNonSquare and is
//     never reported as ErrNotInvertible.
//   - Stage 2: det := Det(); |det| <= Epsilon (or non-finite) ⇒ ErrNotInvertible.
//   - Stage 3: Adjugate → Transpose → Scale(1/det). Any failure in this pipeline,
//     or a non-finite entry in the result, is reported as ErrNotInvertible
//     wrapping the cause.
//
// Errors:
//   - ErrNonSquare, ErrNotInvertible.
//
// Complexity:
//   - Time O(n^2 · n!), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	d, err := m.Det()
	if err != nil {
		return nil, notInvertible(err)
	}
	if isNonFinite(d) || math.Abs(d) <= m.opts.eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", d, ErrNotInvertible))
	}

	adj, err := m.Adjugate()
	if err != nil {
		return nil, notInvertible(err)
	}
	inv := adj.Transpose().Scale(1 / d)
	for idx, v := range inv.data {
		if isNonFinite(v) {
			return nil, matrixErrorf(opInverse,
				fmt.Errorf("entry %d is %g: %w", idx, v, ErrNotInvertible))
		}
	}

	return inv, nil
}

// notInvertible reports a pipeline failure inside Inverse as ErrNotInvertible
// while keeping the cause reachable through errors.Is.
func notInvertible(cause error) error {
	return fmt.Errorf("%s: %w: %w", opInverse, ErrNotInvertible, cause)
}
