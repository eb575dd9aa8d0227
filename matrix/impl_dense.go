// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Serve as a backing store for no-copy View / MutView windows.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/Slice: O(1); ToGrid: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSlice    = "Slice"    // ctor tag for read-only windows
	ctxSliceMut = "SliceMut" // ctor tag for mutable windows
	ctxMutView  = "MutView"  // ctor tag for full mutable windows
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is the owned, fixed-shape matrix.
//   - r,c hold dimensions (rows, cols); fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - lt tracks live mutable views over this storage.
type Dense[T Numeric] struct {
	r, c int    // row and column counts (>=0)
	data []T    // contiguous row-major storage (len == r*c)
	lt   leases // live MutView leases
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Writer[int]     = (*Dense[int])(nil)
	_ store[int]      = (*Dense[int])(nil)
	_ cellReader[int] = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[int])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Behavior highlights:
//   - Zero-area shapes (0×0, 0×k, k×0) are legal; every operation on them is a no-op.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Numeric](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular [][]T into a new Dense.
//
// Errors:
//   - ErrBadShape when rows have different lengths.
//
// Notes:
//   - An empty outer slice yields a 0×0 matrix.
func NewDenseFrom[T Numeric](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Numeric](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if err := checkIndex(row, col, m.r, m.c); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrBorrowConflict while any MutView over this matrix is live.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.lt.ownerWritable(); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// get/set/cell/setCell are the unchecked accessors behind the fast paths.
// For an owner, relative and absolute coordinates coincide.
func (m *Dense[T]) get(i, j int) T        { return m.data[i*m.c+j] }
func (m *Dense[T]) set(i, j int, v T)     { m.data[i*m.c+j] = v }
func (m *Dense[T]) cell(i, j int) T       { return m.data[i*m.c+j] }
func (m *Dense[T]) setCell(i, j int, v T) { m.data[i*m.c+j] = v }
func (m *Dense[T]) leaseTable() *leases   { return &m.lt }
func (m *Dense[T]) ready() error          { return nil }
func (m *Dense[T]) writable() error       { return m.lt.ownerWritable() }
func (m *Dense[T]) backing() (store[T], Interval, Interval) {
	return m, upTo(m.r), upTo(m.c)
}

// Leases returns the number of live mutable views over this matrix.
func (m *Dense[T]) Leases() int { return m.lt.count() }

// Clone returns a deep copy (new buffer, no live leases).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return cp
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense[T]) String() string { return render[T](m) }

// View returns a read-only window over the whole matrix.
// Complexity: O(1).
func (m *Dense[T]) View() *View[T] {
	return &View[T]{src: m, rows: upTo(m.r), cols: upTo(m.c)}
}

// MutView returns a mutable window over the whole matrix.
//
// Errors:
//   - ErrBorrowConflict when another MutView over this matrix is live.
//
// Notes:
//   - Call Release on the returned view when done; Set on the owner fails until then.
func (m *Dense[T]) MutView() (*MutView[T], error) {
	v, err := newMutView[T](m, nil, upTo(m.r), upTo(m.c))
	if err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxMutView, err)
	}

	return v, nil
}

// Slice returns a read-only view over rows×cols of the matrix.
//
// Errors:
//   - ErrRangeOrder, ErrOutOfRange (see ValidateInterval).
//
// Complexity: O(1).
func (m *Dense[T]) Slice(rows, cols Range) (*View[T], error) {
	v, err := m.View().Slice(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%v, %v): %w", ctxSlice, rows, cols, err)
	}

	return v, nil
}

// SliceMut returns a mutable view over rows×cols of the matrix.
func (m *Dense[T]) SliceMut(rows, cols Range) (*MutView[T], error) {
	r, c, err := resolveWindow(rows, cols, m.r, m.c)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%v, %v): %w", ctxSliceMut, rows, cols, err)
	}
	v, err := newMutView[T](m, nil, r, c)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%v, %v): %w", ctxSliceMut, rows, cols, err)
	}

	return v, nil
}

// ToGrid materializes the matrix into a new Grid.
func (m *Dense[T]) ToGrid() *Grid[T] { return copyToGrid[T](m) }

// Add returns m + o as a new Dense of the same fixed shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func (m *Dense[T]) Add(o Reader[T]) (*Dense[T], error) {
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	if err := combine[T](opAdd, m, o, false, out.set); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns m - o as a new Dense of the same fixed shape.
func (m *Dense[T]) Sub(o Reader[T]) (*Dense[T], error) {
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	if err := combine[T](opSub, m, o, true, out.set); err != nil {
		return nil, err
	}

	return out, nil
}

// AddInPlace performs m += o. Shape is checked before any element is written.
func (m *Dense[T]) AddInPlace(o Reader[T]) error { return accumulate[T](opAddInPlace, m, o, false) }

// SubInPlace performs m -= o. Shape is checked before any element is written.
func (m *Dense[T]) SubInPlace(o Reader[T]) error { return accumulate[T](opSubInPlace, m, o, true) }

// Equal reports shape and element equality with any Reader.
func (m *Dense[T]) Equal(o Reader[T]) bool { return Equal[T](m, o) }

// render is the shared String implementation for every package type.
func render[T Numeric](r cellReader[T]) string {
	var b strings.Builder
	rows, cols := r.Shape()
	for i := 0; i < rows; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%v", r.get(i, j))
			if j+1 < cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
