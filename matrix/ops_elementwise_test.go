// SPDX-License-Identifier: MIT
// Package matrix_test verifies the elementwise kernels across every
// representation, including foreign readers that take the At fallback.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub_RoundTrip checks (X+Y)-Y == X across mixed representations.
func TestAddSub_RoundTrip(t *testing.T) {
	x := fixture4(t)
	y := mustGridFrom(t, [][]int{
		{3, -1, 4, 1},
		{-5, 9, 2, -6},
		{5, 3, -5, 8},
		{9, -7, 9, 3},
	})

	s, err := matrix.Add[int](x, y)
	require.NoError(t, err)
	back, err := matrix.Sub[int](s, y)
	require.NoError(t, err)
	require.True(t, matrix.Equal[int](x, back))

	// the same through the hidden (At) path
	s2, err := matrix.Sum[int](hide[int]{x}, hide[int]{y})
	require.NoError(t, err)
	require.True(t, s.Equal(s2))
	d2, err := matrix.Diff[int](s2, hide[int]{y})
	require.NoError(t, err)
	require.True(t, d2.Equal(x))
}

// TestAddSub_Errors checks nil and shape failures.
func TestAddSub_Errors(t *testing.T) {
	a := fixture4(t)
	var nilDense *matrix.Dense[int]

	_, err := matrix.Add[int](a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	small, err := matrix.NewDense[int](2, 4)
	require.NoError(t, err)
	_, err = matrix.Add[int](a, small)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "rows 4 != 2")

	_, err = matrix.Add[int](a, failing{r: 4, c: 4, fi: 2, fj: 3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "At(2,3)")
}

// TestAddInto_ForeignWriter uses the At/Set fallback for an unknown Writer.
func TestAddInto_ForeignWriter(t *testing.T) {
	dst := fixture4(t)
	w := hideW[int]{dst}

	require.NoError(t, matrix.AddInto[int](w, fixture4(t)))
	v, err := dst.At(3, 3)
	require.NoError(t, err)
	require.Equal(t, 32, v)

	require.NoError(t, matrix.SubInto[int](w, hide[int]{fixture4(t)}))
	require.True(t, dst.Equal(fixture4(t)))

	err = matrix.AddInto[int](w, mustGridFrom(t, [][]int{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// a failing source never causes a partial write
	err = matrix.AddInto[int](w, failing{r: 4, c: 4, fi: 3, fj: 3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.True(t, dst.Equal(fixture4(t)))
}

// TestAddInto_PackageWriter routes package writers through the checked path.
func TestAddInto_PackageWriter(t *testing.T) {
	m := fixture4(t)
	mv, err := m.SliceMut(matrix.To(2), matrix.To(2))
	require.NoError(t, err)
	defer mv.Release()

	require.NoError(t, matrix.AddInto[int](mv, mustGridFrom(t, [][]int{{1, 1}, {1, 1}})))
	requireCells(t, [][]int{{2, 3}, {6, 7}}, mv)

	var nilView *matrix.MutView[int]
	require.ErrorIs(t, matrix.AddInto[int](nilView, m), matrix.ErrNilMatrix)
}

// TestEqual compares across representations and handles nils.
func TestEqual(t *testing.T) {
	d := fixture4(t)
	require.True(t, matrix.Equal[int](d, d.ToGrid()))
	require.True(t, matrix.Equal[int](d, d.View()))
	require.True(t, matrix.Equal[int](hide[int]{d}, d))

	var n1 *matrix.Dense[int]
	var n2 *matrix.Grid[int]
	require.True(t, matrix.Equal[int](n1, n2))
	require.False(t, matrix.Equal[int](n1, d))

	top, err := d.Slice(matrix.To(2), matrix.Full())
	require.NoError(t, err)
	require.False(t, matrix.Equal[int](d, top))
	require.False(t, matrix.Equal[int](d, failing{r: 4, c: 4}))
}

// TestAllClose covers tolerances, NaN and infinities.
func TestAllClose(t *testing.T) {
	a := mustDenseFrom(t, [][]float64{{1, 2}, {3, math.Inf(1)}})
	b := mustDenseFrom(t, [][]float64{{1 + 1e-10, 2}, {3, math.Inf(1)}})

	ok, err := matrix.AllClose[float64](a, b, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose[float64](a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	nan := mustDenseFrom(t, [][]float64{{math.NaN(), 2}, {3, math.Inf(1)}})
	ok, err = matrix.AllClose[float64](nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose[float64](a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose[float64](a, fixture4f(t), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestZerosLike allocates a zero grid of the same shape.
func TestZerosLike(t *testing.T) {
	v, err := fixture4(t).Slice(matrix.To(3), matrix.To(1))
	require.NoError(t, err)
	z, err := matrix.ZerosLike[int](v)
	require.NoError(t, err)
	requireCells(t, [][]int{{0}, {0}, {0}}, z)

	_, err = matrix.ZerosLike[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMaterializeAndViewOf copies foreign readers and reuses package ones.
func TestMaterializeAndViewOf(t *testing.T) {
	d := fixture4(t)
	g, err := matrix.Materialize[int](hide[int]{d})
	require.NoError(t, err)
	require.True(t, g.Equal(d))

	dd, err := matrix.DenseOf[int](g)
	require.NoError(t, err)
	require.Equal(t, d.Data(), dd.Data())

	v, err := matrix.ViewOf[int](d)
	require.NoError(t, err)
	require.True(t, matrix.Overlaps[int](v, d))
	require.False(t, matrix.Overlaps[int](v, g))

	fv, err := matrix.ViewOf[int](hide[int]{d})
	require.NoError(t, err)
	require.True(t, fv.Equal(d))
	require.False(t, matrix.Overlaps[int](fv, d)) // a materialized copy

	mv, err := d.MutView()
	require.NoError(t, err)
	mv.Release()
	_, err = matrix.ViewOf[int](mv)
	require.ErrorIs(t, err, matrix.ErrViewReleased)
}

// fixture4f is the 4×4 fixture as float64.
func fixture4f(tb testing.TB) *matrix.Dense[float64] {
	tb.Helper()
	g, err := matrix.NewDense[float64](4, 4)
	require.NoError(tb, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.NoError(tb, g.Set(i, j, float64(i*4+j+1)))
		}
	}

	return g
}
