// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Dense to gonum when a caller needs a stable decomposition
//     (LU with pivoting, QR, SVD), which this package deliberately does not offer.
//   - Accept gonum matrices as input without a manual copy loop at the call site.
//
// Both directions copy: neither side ever aliases the other's storage.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a gonum *mat.Dense holding a copy of m.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Implementation:
//   - Stage 1: reject nil and empty (0×k, k×0) sources.
//   - Stage 2: copy row-major through At, honoring WithValidateNaNInf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	if rows == 0 || cols == 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", rows, cols, ErrDimensionMismatch))
	}

	o := gatherOptions(opts...)
	data := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(opFromGonum, i, j, ErrNaNInf)
			}
			data[i*cols+j] = v
		}
	}

	return &Dense{r: rows, c: cols, data: data, opts: o}, nil
}
