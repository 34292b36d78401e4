// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Minor, Det, Adjugate and Inverse.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestMinor(t *testing.T) {
	t.Parallel()
	A := MustGrid(t, gridA)

	m, err := A.Minor(1, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, -2, 2}, {1, -2, 0}, {1, -1, 2}}, m)

	m, err = A.Minor(0, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, -2, 1}, {-2, 4, 0}, {-1, 2, 2}}, m)

	// rectangular receivers are fine
	R := MustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	m, err = R.Minor(1, 0)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, 3}}, m)
}

func TestMinor_Errors(t *testing.T) {
	t.Parallel()
	A := MustGrid(t, gridA)
	for _, xy := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		_, err := A.Minor(xy[0], xy[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}

	row := MustGrid(t, [][]float64{{1, 2, 3}})
	_, err := row.Minor(0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	col := MustGrid(t, [][]float64{{1}, {2}})
	_, err = col.Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDet_Golden(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		grid [][]float64
		want float64
	}{
		{"1x1", [][]float64{{5}}, 5},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"2x2b", [][]float64{{3, 8}, {4, 6}}, -14},
		{"C", gridC, 6},
		{"Pivot", [][]float64{{0, 2, 1}, {0, 1, 4}, {3, 0, 1}}, 21},
		{"M", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}, -3},
		{"Singular", gridSingular, 0},
		{"A", gridA, 2},
		{"B", gridB, -50.2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := MustGrid(t, tc.grid).Det()
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

func TestDet_Identity(t *testing.T) {
	t.Parallel()
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("I%d", n), func(t *testing.T) {
			d, err := MustIdentity(t, n).Det()
			require.NoError(t, err)
			require.Equal(t, 1.0, d)
		})
	}
}

func TestDet_Properties(t *testing.T) {
	t.Parallel()
	A, B := MustGrid(t, gridA), MustGrid(t, gridB)

	// det(Aᵀ) == det(A)
	for _, m := range []*matrix.Dense{A, B, MustGrid(t, gridC)} {
		d, err := m.Det()
		require.NoError(t, err)
		dt, err := m.Transpose().Det()
		require.NoError(t, err)
		assert.Equal(t, d, dt)
	}

	// det(AB) == det(A)·det(B)
	ab, err := A.Mul(B)
	require.NoError(t, err)
	d, err := ab.Det()
	require.NoError(t, err)
	assert.Equal(t, -100.4, d)
}

func TestDet_NonSquare(t *testing.T) {
	t.Parallel()
	_, err := MustDense(t, 2, 3).Det()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestAdjugate(t *testing.T) {
	t.Parallel()
	adj, err := MustGrid(t, gridC).Adjugate()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 0, -2}, {1, 3, -2}, {-3, -3, 6}}, adj)

	one, err := MustGrid(t, [][]float64{{7}}).Adjugate()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, one)

	_, err = MustDense(t, 3, 2).Adjugate()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Golden(t *testing.T) {
	t.Parallel()
	A := MustGrid(t, gridA)
	inv, err := A.Inverse()
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{12, 4, 3, -14},
		{-1, 0, 0, 1},
		{-3.5, -1, -0.5, 4},
		{-3, -1, -1, 4},
	}, inv)
}

func TestInverse_RoundTrip(t *testing.T) {
	t.Parallel()
	cases := map[string][][]float64{
		"A":    gridA,
		"B":    gridB,
		"C":    gridC,
		"M":    {{1, 2, 3}, {4, 5, 6}, {7, 8, 10}},
		"D":    {{3, 8}, {4, 6}},
		"Lift": {{4, 7}, {2, 6}},
	}
	for name, grid := range cases {
		t.Run(name, func(t *testing.T) {
			m := MustGrid(t, grid)
			inv, err := m.Inverse()
			require.NoError(t, err)
			id := MustIdentity(t, m.Rows())

			left, err := m.Mul(inv)
			require.NoError(t, err)
			require.Truef(t, left.Equal(id), "M·M⁻¹ =\n%v", left)

			right, err := inv.Mul(m)
			require.NoError(t, err)
			require.Truef(t, right.Equal(id), "M⁻¹·M =\n%v", right)
		})
	}
}

func TestInverse_1x1(t *testing.T) {
	t.Parallel()
	inv, err := MustGrid(t, [][]float64{{5}}).Inverse()
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.2}}, inv)

	_, err = MustGrid(t, [][]float64{{0}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()
	_, err := MustGrid(t, gridSingular).Inverse()
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = MustDense(t, 3, 3).Inverse()
	require.ErrorIs(t, err, matrix.ErrNotInvertible)
}

func TestInverse_NonSquareIsNotSingular(t *testing.T) {
	t.Parallel()
	_, err := MustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}}).Inverse()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.NotErrorIs(t, err, matrix.ErrNotInvertible)
}

func TestCofactorKernels_DoNotMutate(t *testing.T) {
	t.Parallel()
	A := MustGrid(t, gridA)
	_, err := A.Det()
	require.NoError(t, err)
	_, err = A.Inverse()
	require.NoError(t, err)
	_, err = A.Minor(2, 3)
	require.NoError(t, err)
	_ = A.Triangulate()
	CompareExact(t, gridA, A)
}
