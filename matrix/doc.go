// Package matrix offers an immutable dense matrix of float64 values and the
// classic small-matrix algebra built on it.
//
// The matrix package provides:
//
//   - Dense, a row-major, bounds-checked, immutable grid (NewFromGrid, NewDense).
//   - Elementwise algebra: Add, Sub, Negate, Scale; the product Mul.
//   - Structural transforms: Transpose, Minor, Induced, Triangulate, Round.
//   - Derived properties: Det (recursive cofactor expansion), Rank, Adjugate
//     and Inverse (adjugate, transposed, scaled by 1/det).
//   - Interop with gonum (ToGonum, FromGonum) for decompositions this package
//     deliberately leaves out.
//
// Every operation returns a new matrix; none writes into its receiver or its
// operands, so a *Dense may be shared freely between goroutines.
//
// Mul, Det and Triangulate round their results to 10 decimal digits by
// default (round-half-up on the shortest decimal form; see WithPrecision).
// Det is exponential in n and intended for small matrices.
//
// Errors are package sentinels matched with errors.Is:
// ErrDimensionMismatch, ErrOutOfRange, ErrNonSquare, ErrNotInvertible.
//
// See the examples in this package for usage patterns.
package matrix
