// SPDX-License-Identifier: MIT

// Package matrix - decimal rounding kernel.
//
// Purpose:
//   - Suppress floating-point accumulation noise after Mul, Det and Triangulate.
//   - Round on the decimal value a float64 prints as, not on its binary
//     expansion: 2.005 is stored as 2.00499999999999989..., yet rounds to 2.01.
//
// Rule (round-half-up):
//   - Ties round away from zero: 0.5 → 1, -0.5 → -1, 2.005 → 2.01 at 2 digits.
//   - NaN and ±Inf pass through unchanged.

package matrix

import (
	"github.com/shopspring/decimal"
)

// roundHalfUp rounds v to precision decimal digits.
// Implementation:
//   - Stage 1: non-finite values are returned as-is (decimal cannot hold them).
//   - Stage 2: decimal.NewFromFloat takes the shortest decimal that round-trips v.
//   - Stage 3: Round(places) rounds half away from zero; convert back to float64.
//
// Complexity:
//   - Time O(digits), Space O(1) amortized.
func roundHalfUp(v float64, precision int) float64 {
	if isNonFinite(v) || v == 0 {
		return v
	}

	return decimal.NewFromFloat(v).Round(int32(precision)).InexactFloat64()
}

// Round returns a new matrix with every entry rounded to precision decimal
// digits using round-half-up on the shortest decimal form of each value.
// A negative precision rounds to tens, hundreds, and so on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Round(precision int) *Dense {
	return m.Map(func(_, _ int, v float64) float64 {
		return roundHalfUp(v, precision)
	})
}

// rounded applies the matrix's configured precision.
func (m *Dense) rounded() *Dense { return m.Round(m.opts.precision) }
