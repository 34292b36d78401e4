// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the kernel tests.
//   - Keep grid comparisons in one place (exact and tolerance-based).

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

// approxTol is the absolute tolerance used when comparing against gonum.
const approxTol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback path in code under test.
type hide struct{ matrix.Matrix }

// Fixture grids with known answers.
var (
	gridA = [][]float64{
		{1, -2, 2, 2},
		{0, 4, -2, 1},
		{1, -2, 4, 0},
		{1, -1, 2, 2},
	}
	gridB = [][]float64{
		{0, 1, 1, 5},
		{-2, 4, 2, 7},
		{1, 0, 2, 0.2},
		{2, 2, 3, 4.2},
	}
	gridC = [][]float64{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 2},
	}
	gridSingular = [][]float64{
		{1, 2, 3},
		{1, 2, 3},
		{4, 5, 6},
	}
)

// MustGrid builds a *Dense from grid or fails the test.
func MustGrid(t testing.TB, grid [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromGrid(grid, opts...)
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustIdentity allocates I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts that got holds exactly want (== per element, so 0 == -0).
func CompareExact(t testing.TB, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	if diff := cmp.Diff(want, got.Grid(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// CompareApprox asserts that got matches want within approxTol per element.
func CompareApprox(t testing.TB, want, got [][]float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, approxTol)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}
