// SPDX-License-Identifier: MIT
// Package multiply_test contains shared fixtures for the multiplication tests.
//
// Purpose:
//   - Deterministic inputs only (fixed seeds), so every comparison is exact.

package multiply_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/clrs/matrix"
	"github.com/stretchr/testify/require"
)

// foreign hides the concrete type of a Reader so kernels take the At path.
type foreign[T matrix.Numeric] struct{ matrix.Reader[T] }

// shapeOnly is an n×n Reader of zeros with no storage behind it.
type shapeOnly[T matrix.Numeric] struct{ n int }

func (s shapeOnly[T]) Shape() (rows, cols int) { return s.n, s.n }
func (s shapeOnly[T]) Rows() int               { return s.n }
func (s shapeOnly[T]) Cols() int               { return s.n }
func (s shapeOnly[T]) At(i, j int) (T, error) {
	var zero T
	return zero, nil
}

// mustDenseFrom builds a Dense from literal rows or fails the test.
func mustDenseFrom[T matrix.Numeric](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// sequence returns the n×n matrix holding 1..n² in row-major order.
func sequence(tb testing.TB, n int) *matrix.Dense[int] {
	tb.Helper()
	m, err := matrix.NewDense[int](n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, i*n+j+1))
		}
	}

	return m
}

// randomInts returns an n×n matrix of small signed integers from seed.
func randomInts(tb testing.TB, n int, seed int64) *matrix.Dense[int64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[int64](n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, rng.Int63n(201)-100))
		}
	}

	return m
}

// randomFloats returns an n×n matrix with entries in [-1, 1) from seed.
func randomFloats(tb testing.TB, n int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense[float64](n, n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(tb, m.Set(i, j, 2*rng.Float64()-1))
		}
	}

	return m
}
