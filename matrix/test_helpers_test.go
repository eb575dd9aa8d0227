// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small, deterministic fixtures shared by the container and view tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Reader to mask its concrete type, forcing the At fallback
// in kernels that otherwise take the package fast path.
type hide[T matrix.Numeric] struct{ matrix.Reader[T] }

// hideW does the same for writers.
type hideW[T matrix.Numeric] struct{ matrix.Writer[T] }

// failing is a Reader whose At fails at one cell.
type failing struct {
	r, c   int
	fi, fj int
}

func (f failing) Shape() (int, int) { return f.r, f.c }
func (f failing) Rows() int         { return f.r }
func (f failing) Cols() int         { return f.c }
func (f failing) At(i, j int) (int, error) {
	if i == f.fi && j == f.fj {
		return 0, matrix.ErrOutOfRange
	}

	return 1, nil
}

// mustDenseFrom builds a Dense from literal rows or fails the test.
func mustDenseFrom[T matrix.Numeric](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// mustGridFrom builds a Grid from literal rows or fails the test.
func mustGridFrom[T matrix.Numeric](tb testing.TB, rows [][]T) *matrix.Grid[T] {
	tb.Helper()
	g, err := matrix.NewGridFrom(rows)
	require.NoError(tb, err)

	return g
}

// fixture4 is the 4×4 matrix holding 1..16 row-major.
func fixture4(tb testing.TB) *matrix.Dense[int] {
	tb.Helper()

	return mustDenseFrom(tb, [][]int{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})
}

// requireCells compares r against want cell by cell.
func requireCells[T matrix.Numeric](tb testing.TB, want [][]T, r matrix.Reader[T]) {
	tb.Helper()
	require.Equal(tb, len(want), r.Rows(), "rows")
	for i, row := range want {
		require.Equal(tb, len(row), r.Cols(), "cols")
		for j, w := range row {
			v, err := r.At(i, j)
			require.NoError(tb, err)
			require.Equal(tb, w, v, "cell (%d,%d)", i, j)
		}
	}
}
