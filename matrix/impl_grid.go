// SPDX-License-Identifier: MIT

// Package matrix - Grid, the growable (run-time shaped) matrix.
//
// Purpose:
//   - Hold computed results whose shape is only known at run time
//     (sums of two views, Strassen scratch buffers).
//   - Storage is a sequence of row slices, each of length Cols().
//
// Policy:
//   - Shape is validated on every binary operation; mismatch → ErrDimensionMismatch.
//   - Grid is a backing store like Dense: it can be viewed, sliced and leased.

package matrix

import "fmt"

// Grid is a heap-allocated matrix stored as rows of independent slices.
type Grid[T Numeric] struct {
	rows [][]T
	c    int
	lt   leases
}

var (
	_ Writer[int]     = (*Grid[int])(nil)
	_ store[int]      = (*Grid[int])(nil)
	_ cellReader[int] = (*Grid[int])(nil)
	_ fmt.Stringer    = (*Grid[int])(nil)
)

// NewGrid allocates a rows×cols Grid of zero values. This is the standard
// way to obtain a scratch buffer whose shape was computed at run time.
//
// Errors:
//   - ErrInvalidDimensions on negative sizes.
//
// Complexity: O(rows*cols).
func NewGrid[T Numeric](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewGrid(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return newGrid[T](rows, cols), nil
}

// newGrid is the unchecked constructor used after shapes are validated.
func newGrid[T Numeric](rows, cols int) *Grid[T] {
	g := &Grid[T]{rows: make([][]T, rows), c: cols}
	for i := range g.rows {
		g.rows[i] = make([]T, cols)
	}

	return g
}

// NewGridFrom copies a rectangular [][]T into a new Grid.
//
// Errors:
//   - ErrBadShape when rows have different lengths.
func NewGridFrom[T Numeric](rows [][]T) (*Grid[T], error) {
	c := 0
	if len(rows) > 0 {
		c = len(rows[0])
	}
	g := &Grid[T]{rows: make([][]T, len(rows)), c: c}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewGridFrom: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		g.rows[i] = append([]T(nil), row...)
	}

	return g, nil
}

// copyToGrid materializes any package reader into a Grid.
func copyToGrid[T Numeric](r cellReader[T]) *Grid[T] {
	rows, cols := r.Shape()
	g := newGrid[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g.rows[i][j] = r.get(i, j)
		}
	}

	return g
}

// Rows returns the row count.
func (g *Grid[T]) Rows() int { return len(g.rows) }

// Cols returns the column count.
func (g *Grid[T]) Cols() int { return g.c }

// Shape returns (rows, cols).
func (g *Grid[T]) Shape() (rows, cols int) { return len(g.rows), g.c }

// At returns element (i, j) or ErrOutOfRange.
func (g *Grid[T]) At(i, j int) (T, error) {
	if err := checkIndex(i, j, len(g.rows), g.c); err != nil {
		var zero T
		return zero, fmt.Errorf("Grid.At(%d,%d): %w", i, j, err)
	}

	return g.rows[i][j], nil
}

// Set stores v at (i, j).
//
// Errors:
//   - ErrOutOfRange; ErrBorrowConflict while a MutView over the grid is live.
func (g *Grid[T]) Set(i, j int, v T) error {
	if err := checkIndex(i, j, len(g.rows), g.c); err != nil {
		return fmt.Errorf("Grid.Set(%d,%d): %w", i, j, err)
	}
	if err := g.lt.ownerWritable(); err != nil {
		return fmt.Errorf("Grid.Set(%d,%d): %w", i, j, err)
	}
	g.rows[i][j] = v

	return nil
}

// Row returns a copy of row i.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= len(g.rows) {
		return nil, fmt.Errorf("Grid.Row(%d): %w", i, ErrOutOfRange)
	}

	return append([]T(nil), g.rows[i]...), nil
}

// ToRows returns a deep copy as [][]T.
func (g *Grid[T]) ToRows() [][]T {
	out := make([][]T, len(g.rows))
	for i, r := range g.rows {
		out[i] = append([]T(nil), r...)
	}

	return out
}

func (g *Grid[T]) get(i, j int) T        { return g.rows[i][j] }
func (g *Grid[T]) set(i, j int, v T)     { g.rows[i][j] = v }
func (g *Grid[T]) cell(i, j int) T       { return g.rows[i][j] }
func (g *Grid[T]) setCell(i, j int, v T) { g.rows[i][j] = v }
func (g *Grid[T]) leaseTable() *leases   { return &g.lt }
func (g *Grid[T]) ready() error          { return nil }
func (g *Grid[T]) writable() error       { return g.lt.ownerWritable() }
func (g *Grid[T]) backing() (store[T], Interval, Interval) {
	return g, upTo(len(g.rows)), upTo(g.c)
}

// Leases returns the number of live mutable views over this grid.
func (g *Grid[T]) Leases() int { return g.lt.count() }

// Clone returns a deep copy with no live leases.
func (g *Grid[T]) Clone() *Grid[T] { return copyToGrid[T](g) }

// ToDense copies the grid into a row-major Dense.
func (g *Grid[T]) ToDense() *Dense[T] {
	d := &Dense[T]{r: len(g.rows), c: g.c, data: make([]T, len(g.rows)*g.c)}
	for i, r := range g.rows {
		copy(d.data[i*g.c:(i+1)*g.c], r)
	}

	return d
}

// View returns a read-only window over the whole grid.
func (g *Grid[T]) View() *View[T] {
	return &View[T]{src: g, rows: upTo(len(g.rows)), cols: upTo(g.c)}
}

// MutView returns a mutable window over the whole grid.
func (g *Grid[T]) MutView() (*MutView[T], error) {
	v, err := newMutView[T](g, nil, upTo(len(g.rows)), upTo(g.c))
	if err != nil {
		return nil, fmt.Errorf("Grid.%s: %w", ctxMutView, err)
	}

	return v, nil
}

// Slice returns a read-only view over rows×cols of the grid.
func (g *Grid[T]) Slice(rows, cols Range) (*View[T], error) {
	v, err := g.View().Slice(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Grid.%s(%v, %v): %w", ctxSlice, rows, cols, err)
	}

	return v, nil
}

// SliceMut returns a mutable view over rows×cols of the grid.
func (g *Grid[T]) SliceMut(rows, cols Range) (*MutView[T], error) {
	r, c, err := resolveWindow(rows, cols, len(g.rows), g.c)
	if err != nil {
		return nil, fmt.Errorf("Grid.%s(%v, %v): %w", ctxSliceMut, rows, cols, err)
	}
	v, err := newMutView[T](g, nil, r, c)
	if err != nil {
		return nil, fmt.Errorf("Grid.%s(%v, %v): %w", ctxSliceMut, rows, cols, err)
	}

	return v, nil
}

// Add returns g + o as a new Grid.
func (g *Grid[T]) Add(o Reader[T]) (*Grid[T], error) { return Add[T](g, o) }

// Sub returns g - o as a new Grid.
func (g *Grid[T]) Sub(o Reader[T]) (*Grid[T], error) { return Sub[T](g, o) }

// AddInPlace performs g += o. Shape is checked before any write.
func (g *Grid[T]) AddInPlace(o Reader[T]) error { return accumulate[T](opAddInPlace, g, o, false) }

// SubInPlace performs g -= o. Shape is checked before any write.
func (g *Grid[T]) SubInPlace(o Reader[T]) error { return accumulate[T](opSubInPlace, g, o, true) }

// Equal reports shape and element equality with any Reader.
func (g *Grid[T]) Equal(o Reader[T]) bool { return Equal[T](g, o) }

// String renders the grid rows.
func (g *Grid[T]) String() string { return render[T](g) }
