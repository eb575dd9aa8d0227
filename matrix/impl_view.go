// SPDX-License-Identifier: MIT

// Package matrix - read-only views.
//
// Purpose:
//   - Address a rectangle [rows.Start,rows.End) × [cols.Start,cols.End) of a
//     backing store (Dense or Grid) without copying.
//   - Re-slice a view into smaller views whose intervals compose ADDITIVELY
//     onto the parent's absolute intervals (never re-resolved against raw storage).
//
// Lifetime:
//   - A View is valid while its store is alive. Reads through a View are not
//     tracked by the lease table; do not read a region through a View while a
//     MutView is writing to it.

package matrix

import "fmt"

// View is a non-owning read-only window into a Dense or a Grid.
type View[T Numeric] struct {
	src  store[T] // backing storage (not owned)
	rows Interval // absolute backing rows
	cols Interval // absolute backing cols
}

var (
	_ Reader[int]     = (*View[int])(nil)
	_ cellReader[int] = (*View[int])(nil)
	_ region[int]     = (*View[int])(nil)
	_ fmt.Stringer    = (*View[int])(nil)
)

// resolveWindow normalizes rows×cols against [0,r)×[0,c) and validates both axes.
// The returned intervals are RELATIVE to the addressed value.
func resolveWindow(rows, cols Range, r, c int) (Interval, Interval, error) {
	ri := rows.Resolve(upTo(r))
	ci := cols.Resolve(upTo(c))
	if err := ValidateInterval("row", ri, r); err != nil {
		return Interval{}, Interval{}, err
	}
	if err := ValidateInterval("column", ci, c); err != nil {
		return Interval{}, Interval{}, err
	}

	return ri, ci, nil
}

// Rows returns the view height. Complexity: O(1).
func (v *View[T]) Rows() int { return v.rows.Len() }

// Cols returns the view width. Complexity: O(1).
func (v *View[T]) Cols() int { return v.cols.Len() }

// Shape returns (height, width). Complexity: O(1).
func (v *View[T]) Shape() (rows, cols int) { return v.rows.Len(), v.cols.Len() }

// Bounds returns the absolute backing intervals addressed by the view.
func (v *View[T]) Bounds() (rows, cols Interval) { return v.rows, v.cols }

// At reads (i, j) relative to the view origin.
// MAIN DESCRIPTION:
//   - Bounds-checked against the view's own extent, not the backing storage's.
//
// Implementation:
//   - Stage 1: check 0≤i<Rows() and 0≤j<Cols().
//   - Stage 2: load src(rows.Start+i, cols.Start+j).
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View[T]) At(i, j int) (T, error) {
	if err := checkIndex(i, j, v.rows.Len(), v.cols.Len()); err != nil {
		var zero T
		return zero, fmt.Errorf("View.At(%d,%d): %w", i, j, err)
	}

	return v.src.cell(v.rows.Start+i, v.cols.Start+j), nil
}

func (v *View[T]) get(i, j int) T { return v.src.cell(v.rows.Start+i, v.cols.Start+j) }
func (v *View[T]) ready() error   { return nil }
func (v *View[T]) backing() (store[T], Interval, Interval) {
	return v.src, v.rows, v.cols
}

// Slice returns a sub-view of v.
// MAIN DESCRIPTION:
//   - Normalize against the view's own [0,Rows())×[0,Cols()), validate, then compose.
//
// Implementation:
//   - Stage 1: resolve both ranges against the view extent (resolveWindow).
//   - Stage 2: validate start ≤ end and end ≤ len on both axes.
//   - Stage 3: offset the relative intervals by the parent's absolute starts.
//
// Errors:
//   - ErrRangeOrder when a resolved start exceeds its end.
//   - ErrOutOfRange when a resolved interval leaves the view.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *View[T]) Slice(rows, cols Range) (*View[T], error) {
	r, c, err := resolveWindow(rows, cols, v.rows.Len(), v.cols.Len())
	if err != nil {
		return nil, fmt.Errorf("View.%s(%v, %v): %w", ctxSlice, rows, cols, err)
	}

	return &View[T]{
		src:  v.src,
		rows: r.Offset(v.rows.Start),
		cols: c.Offset(v.cols.Start),
	}, nil
}

// Quadrants splits an even-sized view into its four half-size blocks
// (00 top-left, 01 top-right, 10 bottom-left, 11 bottom-right).
//
// Errors:
//   - ErrDimensionMismatch when either side is odd.
func (v *View[T]) Quadrants() (q00, q01, q10, q11 *View[T], err error) {
	rh, ch, err := halves(v.rows.Len(), v.cols.Len())
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("View.Quadrants: %w", err)
	}
	// Halves of an even extent are always in range; errors are impossible below.
	q00, _ = v.Slice(To(rh), To(ch))
	q01, _ = v.Slice(To(rh), From(ch))
	q10, _ = v.Slice(From(rh), To(ch))
	q11, _ = v.Slice(From(rh), From(ch))

	return q00, q01, q10, q11, nil
}

// halves validates even extents and returns their halves.
func halves(rows, cols int) (int, int, error) {
	if rows%2 != 0 || cols%2 != 0 {
		return 0, 0, fmt.Errorf("odd extent %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}

	return rows / 2, cols / 2, nil
}

// Add returns v + o as a new Grid (a view's shape is a run-time property).
func (v *View[T]) Add(o Reader[T]) (*Grid[T], error) { return Add[T](v, o) }

// Sub returns v - o as a new Grid.
func (v *View[T]) Sub(o Reader[T]) (*Grid[T], error) { return Sub[T](v, o) }

// ToGrid materializes the view into a new, independently owned Grid.
// Complexity: O(Rows()*Cols()).
func (v *View[T]) ToGrid() *Grid[T] { return copyToGrid[T](v) }

// Equal reports shape and element equality with any Reader.
func (v *View[T]) Equal(o Reader[T]) bool { return Equal[T](v, o) }

// String renders the view rows.
func (v *View[T]) String() string { return render[T](v) }
