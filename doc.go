// Package densemat is a small dense linear-algebra toolkit: an immutable
// float64 matrix with exact, reproducible small-matrix algebra.
//
// 🚀 What is inside?
//
//	matrix/    Dense type, arithmetic, transpose, minors, triangulation,
//	           determinant, rank, adjugate, inverse, decimal rounding
//	examples/  runnable demonstration of the public API
//
// ✨ Why densemat?
//
//   - Reproducible – fixed loop orders, decimal rounding after products and
//     cofactor sums, so golden values stay stable across platforms
//   - Safe – bounds-checked accessors, sentinel errors, no panics on user input
//   - Immutable – every operation returns a fresh matrix
//
// Quick example:
//
//	A, _ := matrix.NewFromGrid([][]float64{{1, 2}, {3, 4}})
//	det, _ := A.Det() // -2
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
