// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical Dense method.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Free functions accept any Matrix; non-*Dense inputs are materialized once
//     with default options.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(rc).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols(), optionsOf(m)...)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows(), optionsOf(m)...)
}

// optionsOf replays the options a *Dense carries; other matrices get defaults.
func optionsOf(m Matrix) []Option {
	d, ok := m.(*Dense)
	if !ok {
		return nil
	}
	o := d.opts

	return []Option{func(dst *Options) { *dst = o }}
}

// lift materializes any Matrix as a *Dense (default options for non-Dense).
func lift(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return asDense(m, defaultOptions())
}

// ---------- Linear Algebra (facades map 1:1 to Dense methods) ----------

// Sum is an alias for a.Add(b): element-wise a + b.
// Complexity: O(rc).
func Sum(a, b Matrix) (*Dense, error) {
	da, err := lift(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return da.Add(b)
}

// Diff is an alias for a.Sub(b): element-wise a − b.
// Complexity: O(rc).
func Diff(a, b Matrix) (*Dense, error) {
	da, err := lift(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return da.Sub(b)
}

// Product is an alias for a.Mul(b): matrix product a × b, rounded.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) {
	da, err := lift(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return da.Mul(b)
}

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(rc).
func T(m Matrix) (*Dense, error) {
	dm, err := lift(m)
	if err != nil {
		return nil, err
	}

	return dm.Transpose(), nil
}

// ScaleBy is an alias for Scale: α*m.
// Complexity: O(rc).
func ScaleBy(m Matrix, alpha float64) (*Dense, error) {
	dm, err := lift(m)
	if err != nil {
		return nil, err
	}

	return dm.Scale(alpha), nil
}

// Det is an alias for m.Det().
// Complexity: O(n!).
func Det(m Matrix) (float64, error) {
	dm, err := lift(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return dm.Det()
}

// InverseOf is an alias for m.Inverse(): adjugate-based inverse.
// Complexity: O(n^2 · n!).
func InverseOf(m Matrix) (*Dense, error) {
	dm, err := lift(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return dm.Inverse()
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never satisfies the relation.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	rtol, atol, err := validateTol(rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := lift(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := lift(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var diff, absb float64
	for idx := range da.data {
		diff = da.data[idx] - db.data[idx]
		if diff < 0 {
			diff = -diff
		}
		absb = db.data[idx]
		if absb < 0 {
			absb = -absb
		}
		if !(diff <= atol+rtol*absb) { // NaN fails
			return false, nil
		}
	}

	return true, nil
}
