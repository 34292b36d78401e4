// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Guarantee immutability: no exported method writes into an existing Dense.
//     Every accessor that hands out a slice hands out a copy.
//
// Complexity quicksheet:
//   - NewFromGrid: O(r*c) copy; At: O(1); Row/Col: O(c)/O(r); Map/Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxCol    = "Col"     // method tag used in error wrappers
	ctxInduce = "Induced" // ctor/tag for Dense.Induced
	ctxGrid   = "NewFromGrid"
)

// ---------- Formatting literals  ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete, immutable row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts is the numeric policy captured at construction; derived matrices inherit it.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c), never shared
	opts Options   // precision / epsilon / ingestion policy
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve options.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols), // make() zero-fills deterministically
		opts: gatherOptions(opts...),
	}, nil
}

// NewFromGrid builds a Dense from a caller-supplied grid of rows.
// Implementation:
//   - Stage 1: ValidateGrid (non-empty, rectangular).
//   - Stage 2: resolve options; when ValidateNaNInf is on, reject non-finite cells.
//   - Stage 3: copy the grid into a fresh flat buffer.
//
// Behavior highlights:
//   - The grid is copied: later writes by the caller never reach the matrix.
//   - Shape is derived from the grid: Rows = len(grid), Cols = len(grid[0]).
//
// Errors:
//   - ErrDimensionMismatch (no rows, no columns, ragged rows).
//   - ErrNaNInf (only under WithValidateNaNInf(true)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromGrid(grid [][]float64, opts ...Option) (*Dense, error) {
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(ctxGrid, err)
	}
	o := gatherOptions(opts...)
	rows, cols := len(grid), len(grid[0])
	data := make([]float64, 0, rows*cols)
	for i, row := range grid {
		if o.validateNaNInf {
			for j, v := range row {
				if isNonFinite(v) {
					return nil, denseErrorf(ctxGrid, i, j, ErrNaNInf)
				}
			}
		}
		data = append(data, row...)
	}

	return &Dense{r: rows, c: cols, data: data, opts: o}, nil
}

// derive wraps a freshly allocated buffer as a Dense inheriting m's options.
// The buffer must be owned exclusively by the caller (never shared).
func (m *Dense) derive(rows, cols int, data []float64) *Dense {
	return &Dense{r: rows, c: cols, data: data, opts: m.opts}
}

// asDense returns m itself when it is a *Dense; otherwise it materializes the
// operand through At into a fresh Dense carrying opts.
// Complexity: O(1) fast path, O(r*c) fallback.
func asDense(m Matrix, opts Options) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			data[i*cols+j] = v
		}
	}

	return &Dense{r: rows, c: cols, data: data, opts: opts}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Options returns the numeric policy this matrix carries.
func (m *Dense) Options() Options { return m.opts }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped with
// the caller's method context and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange when indices are invalid.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Row returns a copy of row i. Writes to the returned slice never reach m.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns column j as a freshly allocated slice.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Grid returns a deep copy of the matrix as a slice of rows.
// Complexity: O(r*c).
func (m *Dense) Grid() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// flatten packs a rectangular scratch grid back into a flat row-major buffer.
func flatten(g [][]float64, rows, cols int) []float64 {
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, g[i]...)
	}

	return out
}

// String renders the matrix one row per line, values separated by single
// spaces, each row terminated by a newline. Intended for human-readable
// dumps; not a parseable format.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Equal reports whether b has the same shape as m and every element compares
// equal with ==. NaN never equals anything; 0 equals -0.
// A nil b is never equal. Complexity: O(r*c).
func (m *Dense) Equal(b Matrix) bool {
	if ValidateNotNil(b) != nil || m.r != b.Rows() || m.c != b.Cols() {
		return false
	}
	if db, ok := b.(*Dense); ok {
		for idx, v := range m.data {
			if v != db.data[idx] {
				return false
			}
		}
		return true
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = b.At(i, j); err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Map returns a new matrix whose element (i,j) is f(i,j,m[i,j]).
// Implementation:
//   - Stage 1: allocate a buffer of the same shape.
//   - Stage 2: fill it in row-major order; m is never written.
//
// Behavior highlights:
//   - Pure counterpart of an in-place Apply; the result inherits m's options.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Map(f func(i, j int, v float64) float64) *Dense {
	out := make([]float64, len(m.data))
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out[base+j] = f(i, j, m.data[base+j])
		}
	}

	return m.derive(m.r, m.c, out)
}

// Induced materializes a copy submatrix using explicit index sets.
// Implementation:
//   - Stage 1: reject empty index sets (a Dense is never empty).
//   - Stage 2: nested loops with direct offset math; bounds-check each index.
//
// Behavior highlights:
//   - Options are preserved from the base.
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//   - ErrDimensionMismatch (empty rowsIdx or colsIdx).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	rp := len(rowsIdx)
	cp := len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %dx%d: %w", ctxInduce, rp, cp, ErrDimensionMismatch)
	}

	data := make([]float64, rp*cp)
	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return m.derive(rp, cp, data), nil
}
