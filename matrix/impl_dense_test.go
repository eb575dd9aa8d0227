// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[int](-1, 5)                // attempt to create with negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[int](5, -1)                 // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseZeroShapes ensures zero-area shapes are legal.
func TestNewDenseZeroShapes(t *testing.T) {
	for _, s := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		m, err := matrix.NewDense[float64](s[0], s[1])
		require.NoError(t, err)
		rows, cols := m.Shape()
		require.Equal(t, s[0], rows)
		require.Equal(t, s[1], cols)
		require.Empty(t, m.Data())
	}
}

// TestDefaults checks NewDense fills with the zero value (the element default).
func TestDefaults(t *testing.T) {
	m, err := matrix.NewDense[int](2, 3) // 2x3 of zeros
	require.NoError(t, err)
	requireCells(t, [][]int{{0, 0, 0}, {0, 0, 0}}, m)
}

// TestNewDenseFromRagged rejects rows of different length.
func TestNewDenseFromRagged(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDenseFrom[int](nil) // empty outer slice → 0×0
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}

// TestNewDenseFromCopies ensures the constructor does not alias its input.
func TestNewDenseFromCopies(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := mustDenseFrom(t, rows)
	rows[0][0] = 99 // mutate the source after construction

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "column index out of bounds: the len is 2 but the index is 2")

	err = m.Set(2, 0, 1.23) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56) // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89)) // set element at row 1, column 2
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := fixture4(t)
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 100)) // modify the clone only

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v) // original unchanged
	require.False(t, m.Equal(clone))
}

// TestIdentity checks ones on the diagonal.
func TestIdentity(t *testing.T) {
	id, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	requireCells(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
}

// TestDenseString renders rows as bracketed lines.
func TestDenseString(t *testing.T) {
	m := mustDenseFrom(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	empty, err := matrix.NewDense[int](0, 0)
	require.NoError(t, err)
	require.Equal(t, "", empty.String())
}

// TestDenseAddSub covers the owned arithmetic and its shape checks.
func TestDenseAddSub(t *testing.T) {
	a := mustDenseFrom(t, [][]int{{1, 2}, {3, 4}})
	b := mustDenseFrom(t, [][]int{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	requireCells(t, [][]int{{11, 22}, {33, 44}}, sum)

	diff, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(a)) // (a+b)-b == a

	_, err = a.Add(fixture4(t))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.NoError(t, a.AddInPlace(b))
	requireCells(t, [][]int{{11, 22}, {33, 44}}, a)
	require.NoError(t, a.SubInPlace(b))
	requireCells(t, [][]int{{1, 2}, {3, 4}}, a)

	err = a.AddInPlace(fixture4(t)) // mismatch leaves a untouched
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	requireCells(t, [][]int{{1, 2}, {3, 4}}, a)
}

// TestDenseOwnerBlockedWhileLeased ensures the owner cannot write while a MutView lives.
func TestDenseOwnerBlockedWhileLeased(t *testing.T) {
	m := fixture4(t)
	mv, err := m.MutView()
	require.NoError(t, err)
	require.Equal(t, 1, m.Leases())

	err = m.Set(0, 0, 7)
	require.ErrorIs(t, err, matrix.ErrBorrowConflict)
	err = m.AddInPlace(fixture4(t))
	require.ErrorIs(t, err, matrix.ErrBorrowConflict)

	_, err = m.MutView() // a second whole-matrix borrow overlaps the first
	require.ErrorIs(t, err, matrix.ErrBorrowConflict)

	mv.Release()
	require.Zero(t, m.Leases())
	require.NoError(t, m.Set(0, 0, 7))
}

// TestDenseToGrid copies into an independent Grid.
func TestDenseToGrid(t *testing.T) {
	m := fixture4(t)
	g := m.ToGrid()
	require.True(t, m.Equal(g))

	require.NoError(t, g.Set(3, 3, 0))
	v, err := m.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, 16, v)
}
