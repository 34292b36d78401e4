// SPDX-License-Identifier: MIT

// Package matrix - forward elimination and the rank proxy built on it.
//
// The elimination rule is fixed and intentionally not the textbook one:
//
//	prop    = m[j][j] / m[i][j]
//	m[i][k] = m[i][k] - m[j][k] / prop     for every column k
//
// Algebraically this subtracts (m[i][j]/m[j][j])·pivotRow, but the division
// order changes the floating-point bits, and Rank depends on those bits.
// Rank counts rows whose LAST entry is non-zero after triangulation; it is
// not the mathematical rank (an identity 2×2 has Rank 1).

package matrix

// Triangulate returns a row-echelon-like form of m.
// Implementation:
//   - Stage 1: copy m into a private row-sliced scratch grid.
//   - Stage 2: for each pivot column j < min(r, c):
//     if m[j][j] == 0, swap row j with the first lower row whose column j is
//     non-zero (if none, the column is skipped); then eliminate column j from
//     every lower row with a non-zero entry using the rule above.
//   - Stage 3: flatten, wrap and round to the configured precision.
//
// Behavior highlights:
//   - m is never written; the scratch grid is discarded.
//   - Non-finite values produced along the way are kept, never rejected.
//
// Complexity:
//   - Time O(min(r,c) · r · c), Space O(r*c).
func (m *Dense) Triangulate() *Dense {
	g := m.Grid()
	rows, cols := m.r, m.c
	pivots := min(rows, cols)

	var (
		i, j, k int
		prop    float64
	)
	for j = 0; j < pivots; j++ {
		if g[j][j] == 0 {
			reposition(g, j)
		}
		for i = j + 1; i < rows; i++ {
			if g[i][j] == 0 {
				continue
			}
			prop = g[j][j] / g[i][j]
			for k = 0; k < cols; k++ {
				g[i][k] = g[i][k] - g[j][k]/prop
			}
		}
	}

	return m.derive(rows, cols, flatten(g, rows, cols)).rounded()
}

// reposition swaps row j with the first row below it that has a non-zero
// entry in column j. Leaves g untouched when no such row exists.
func reposition(g [][]float64, j int) {
	for k := j + 1; k < len(g); k++ {
		if g[k][j] != 0 {
			g[j], g[k] = g[k], g[j]
			return
		}
	}
}

// Rank returns the number of rows of Triangulate() whose last column entry is
// non-zero. NaN entries count as non-zero.
// Complexity: same as Triangulate.
func (m *Dense) Rank() int {
	t := m.Triangulate()
	last := t.c - 1
	count := 0
	for i := 0; i < t.r; i++ {
		if t.data[i*t.c+last] != 0 {
			count++
		}
	}

	return count
}
