// SPDX-License-Identifier: MIT
// Package matrix_test covers read-only windows: slicing, composition and
// view arithmetic.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// TestViewSlice checks shape and origin of a sub-view.
func TestViewSlice(t *testing.T) {
	m := fixture4(t)

	v, err := m.Slice(matrix.Span(1, 3), matrix.From(1))
	require.NoError(t, err)
	rows, cols := v.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	requireCells(t, [][]int{{6, 7, 8}, {10, 11, 12}}, v)

	br, bc := v.Bounds()
	require.Equal(t, matrix.Interval{Start: 1, End: 3}, br)
	require.Equal(t, matrix.Interval{Start: 1, End: 4}, bc)
}

// TestViewSliceForms exercises every range form against the 4×4 fixture.
func TestViewSliceForms(t *testing.T) {
	m := fixture4(t)
	cases := []struct {
		name       string
		rows, cols matrix.Range
		want       [][]int
	}{
		{"full", matrix.Full(), matrix.Full(), [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}},
		{"inclusive", matrix.SpanInclusive(0, 1), matrix.ToInclusive(1), [][]int{{1, 2}, {5, 6}}},
		{"tail", matrix.From(3), matrix.From(2), [][]int{{15, 16}}},
		{"single", matrix.Span(2, 3), matrix.Span(0, 1), [][]int{{9}}},
		{"empty rows", matrix.Span(2, 2), matrix.Full(), [][]int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := m.Slice(tc.rows, tc.cols)
			require.NoError(t, err)
			requireCells(t, tc.want, v)
		})
	}
}

// TestViewSliceComposition ensures nested slicing offsets add up.
func TestViewSliceComposition(t *testing.T) {
	m := fixture4(t)
	outer, err := m.Slice(matrix.From(1), matrix.From(1))
	require.NoError(t, err)
	inner, err := outer.Slice(matrix.From(1), matrix.From(1))
	require.NoError(t, err)

	v, err := inner.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 11, v) // original (2,2)

	// a range is resolved against the view, not the backing storage
	_, err = outer.Slice(matrix.Span(0, 4), matrix.Full())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// narrowing to an unchanged window is a no-op
	same, err := outer.Slice(matrix.Full(), matrix.Full())
	require.NoError(t, err)
	require.True(t, same.Equal(outer))
}

// TestViewSliceErrors covers order and bound failures with their messages.
func TestViewSliceErrors(t *testing.T) {
	m := fixture4(t)

	_, err := m.Slice(matrix.Span(0, 5), matrix.Full())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "row range end index 5 out of range for row of length 4")

	_, err = m.Slice(matrix.Full(), matrix.Span(3, 1))
	require.ErrorIs(t, err, matrix.ErrRangeOrder)
	require.Contains(t, err.Error(), "column range index starts at 3 but ends at 1")

	_, err = m.Slice(matrix.Span(-1, 2), matrix.Full())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestViewAtBounds checks indices are relative to the view, not the store.
func TestViewAtBounds(t *testing.T) {
	m := fixture4(t)
	v, err := m.Slice(matrix.To(2), matrix.To(2))
	require.NoError(t, err)

	_, err = v.At(2, 0) // exists in the backing store, outside the view
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "row index out of bounds: the len is 2 but the index is 2")
}

// TestViewAddSub adds and subtracts two windows of the same matrix.
func TestViewAddSub(t *testing.T) {
	m := fixture4(t)
	a, err := m.Slice(matrix.To(2), matrix.To(3))
	require.NoError(t, err)
	b, err := m.Slice(matrix.From(2), matrix.From(1))
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	requireCells(t, [][]int{{11, 13, 15}, {19, 21, 23}}, sum)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	requireCells(t, [][]int{{-9, -9, -9}, {-9, -9, -9}}, diff)

	wrong, err := m.Slice(matrix.To(2), matrix.To(2))
	require.NoError(t, err)
	_, err = a.Add(wrong)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestViewQuadrants splits a 4×4 into four 2×2 blocks.
func TestViewQuadrants(t *testing.T) {
	m := fixture4(t)
	q00, q01, q10, q11, err := m.View().Quadrants()
	require.NoError(t, err)
	requireCells(t, [][]int{{1, 2}, {5, 6}}, q00)
	requireCells(t, [][]int{{3, 4}, {7, 8}}, q01)
	requireCells(t, [][]int{{9, 10}, {13, 14}}, q10)
	requireCells(t, [][]int{{11, 12}, {15, 16}}, q11)

	odd, err := m.Slice(matrix.To(3), matrix.To(3))
	require.NoError(t, err)
	_, _, _, _, err = odd.Quadrants()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestViewToGridAndString materializes and renders a window.
func TestViewToGridAndString(t *testing.T) {
	m := fixture4(t)
	v, err := m.Slice(matrix.Span(1, 3), matrix.Span(1, 3))
	require.NoError(t, err)

	g := v.ToGrid()
	require.True(t, g.Equal(v))
	require.Equal(t, "[6, 7]\n[10, 11]\n", v.String())

	require.NoError(t, g.Set(0, 0, 0)) // the copy is independent
	x, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 6, x)
}

// TestViewSeesWrites confirms a view reads through to current storage.
func TestViewSeesWrites(t *testing.T) {
	m := fixture4(t)
	v, err := m.Slice(matrix.From(3), matrix.From(3))
	require.NoError(t, err)
	require.NoError(t, m.Set(3, 3, 42))

	x, err := v.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 42, x)
}
