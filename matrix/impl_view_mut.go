// SPDX-License-Identifier: MIT

// Package matrix - mutable views.
//
// Purpose:
//   - Same addressing as View, plus write-through element mutation and
//     compound elementwise assignment (AddInPlace / SubInPlace).
//   - Exclusive by construction: each MutView holds a lease (impl_lease.go).
//
// Lifecycle:
//   - Obtain with Dense.MutView / Dense.SliceMut / Grid.* / MutView.SliceMut.
//   - Release when done. While a child from SliceMut is live, the parent is
//     frozen (reads and writes through it fail with ErrBorrowConflict).

package matrix

import "fmt"

// MutView is a non-owning, exclusive, writable window into a Dense or a Grid.
type MutView[T Numeric] struct {
	src   store[T]
	rows  Interval // absolute backing rows
	cols  Interval // absolute backing cols
	lease *lease
}

var (
	_ Writer[int]     = (*MutView[int])(nil)
	_ cellReader[int] = (*MutView[int])(nil)
	_ region[int]     = (*MutView[int])(nil)
	_ fmt.Stringer    = (*MutView[int])(nil)
)

// newMutView acquires a lease over rows×cols (absolute) of src.
func newMutView[T Numeric](src store[T], parent *lease, rows, cols Interval) (*MutView[T], error) {
	l, err := src.leaseTable().acquire(parent, rows, cols)
	if err != nil {
		return nil, err
	}

	return &MutView[T]{src: src, rows: rows, cols: cols, lease: l}, nil
}

// Rows returns the view height. Complexity: O(1).
func (v *MutView[T]) Rows() int { return v.rows.Len() }

// Cols returns the view width. Complexity: O(1).
func (v *MutView[T]) Cols() int { return v.cols.Len() }

// Shape returns (height, width). Complexity: O(1).
func (v *MutView[T]) Shape() (rows, cols int) { return v.rows.Len(), v.cols.Len() }

// Bounds returns the absolute backing intervals addressed by the view.
func (v *MutView[T]) Bounds() (rows, cols Interval) { return v.rows, v.cols }

// Release ends the exclusive borrow. Idempotent.
func (v *MutView[T]) Release() { v.lease.release() }

// Released reports whether Release has been called.
func (v *MutView[T]) Released() bool { return v.lease.released }

// Usable returns nil when the view may be read from and written through,
// ErrViewReleased after Release, and ErrBorrowConflict while a child is live.
func (v *MutView[T]) Usable() error { return v.lease.usable() }

// At reads (i, j) relative to the view origin.
//
// Errors:
//   - ErrOutOfRange, ErrViewReleased, ErrBorrowConflict (frozen by a live child).
func (v *MutView[T]) At(i, j int) (T, error) {
	var zero T
	if err := checkIndex(i, j, v.rows.Len(), v.cols.Len()); err != nil {
		return zero, fmt.Errorf("MutView.At(%d,%d): %w", i, j, err)
	}
	if err := v.lease.usable(); err != nil {
		return zero, fmt.Errorf("MutView.At(%d,%d): %w", i, j, err)
	}

	return v.src.cell(v.rows.Start+i, v.cols.Start+j), nil
}

// Set writes (i, j) through to the backing storage.
//
// Errors:
//   - ErrOutOfRange, ErrViewReleased, ErrBorrowConflict (frozen by a live child).
//
// Complexity: O(1).
func (v *MutView[T]) Set(i, j int, val T) error {
	if err := checkIndex(i, j, v.rows.Len(), v.cols.Len()); err != nil {
		return fmt.Errorf("MutView.Set(%d,%d): %w", i, j, err)
	}
	if err := v.lease.usable(); err != nil {
		return fmt.Errorf("MutView.Set(%d,%d): %w", i, j, err)
	}
	v.src.setCell(v.rows.Start+i, v.cols.Start+j, val) // write through

	return nil
}

func (v *MutView[T]) get(i, j int) T    { return v.src.cell(v.rows.Start+i, v.cols.Start+j) }
func (v *MutView[T]) set(i, j int, x T) { v.src.setCell(v.rows.Start+i, v.cols.Start+j, x) }
func (v *MutView[T]) ready() error      { return v.lease.usable() }
func (v *MutView[T]) writable() error   { return v.lease.usable() }
func (v *MutView[T]) backing() (store[T], Interval, Interval) {
	return v.src, v.rows, v.cols
}

// View returns a read-only view over the same rectangle. The result is not
// tracked by the lease table.
//
// Errors:
//   - ErrViewReleased, ErrBorrowConflict (frozen by a live child).
func (v *MutView[T]) View() (*View[T], error) {
	if err := v.lease.usable(); err != nil {
		return nil, fmt.Errorf("MutView.View: %w", err)
	}

	return v.view(), nil
}

// view is View without the lease check.
func (v *MutView[T]) view() *View[T] {
	return &View[T]{src: v.src, rows: v.rows, cols: v.cols}
}

// Slice returns a read-only sub-view (offsets compose additively).
func (v *MutView[T]) Slice(rows, cols Range) (*View[T], error) {
	if err := v.lease.usable(); err != nil {
		return nil, fmt.Errorf("MutView.%s: %w", ctxSlice, err)
	}
	sv, err := v.view().Slice(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("MutView.%s: %w", ctxSlice, err)
	}

	return sv, nil
}

// SliceMut re-borrows a sub-rectangle as a child MutView.
// MAIN DESCRIPTION:
//   - Identical composition logic to Slice, but yields an exclusive child.
//
// Implementation:
//   - Stage 1: resolve and validate ranges against the view extent.
//   - Stage 2: offset by the parent's absolute starts.
//   - Stage 3: acquire a child lease (fails on overlap with a live sibling).
//
// Behavior highlights:
//   - The parent is frozen while any child is live; disjoint siblings may coexist.
//
// Errors:
//   - ErrRangeOrder, ErrOutOfRange, ErrViewReleased, ErrBorrowConflict.
func (v *MutView[T]) SliceMut(rows, cols Range) (*MutView[T], error) {
	r, c, err := resolveWindow(rows, cols, v.rows.Len(), v.cols.Len())
	if err != nil {
		return nil, fmt.Errorf("MutView.%s(%v, %v): %w", ctxSliceMut, rows, cols, err)
	}
	child, err := newMutView[T](v.src, v.lease, r.Offset(v.rows.Start), c.Offset(v.cols.Start))
	if err != nil {
		return nil, fmt.Errorf("MutView.%s(%v, %v): %w", ctxSliceMut, rows, cols, err)
	}

	return child, nil
}

// QuadrantsMut re-borrows the four half-size blocks of an even-sized view.
// On failure every already-acquired quadrant is released.
func (v *MutView[T]) QuadrantsMut() (q00, q01, q10, q11 *MutView[T], err error) {
	rh, ch, err := halves(v.rows.Len(), v.cols.Len())
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("MutView.QuadrantsMut: %w", err)
	}

	specs := [4][2]Range{
		{To(rh), To(ch)},
		{To(rh), From(ch)},
		{From(rh), To(ch)},
		{From(rh), From(ch)},
	}
	var qs [4]*MutView[T]
	for k, s := range specs {
		if qs[k], err = v.SliceMut(s[0], s[1]); err != nil {
			for _, q := range qs[:k] {
				q.Release()
			}
			return nil, nil, nil, nil, err
		}
	}

	return qs[0], qs[1], qs[2], qs[3], nil
}

// Add returns v + o as a new Grid.
func (v *MutView[T]) Add(o Reader[T]) (*Grid[T], error) { return Add[T](v, o) }

// Sub returns v - o as a new Grid.
func (v *MutView[T]) Sub(o Reader[T]) (*Grid[T], error) { return Sub[T](v, o) }

// AddInPlace performs v += o, writing through to the backing storage.
// Shape, lease state and aliasing are all checked before the first write.
func (v *MutView[T]) AddInPlace(o Reader[T]) error {
	return accumulate[T](opAddInPlace, v, o, false)
}

// SubInPlace performs v -= o, writing through to the backing storage.
func (v *MutView[T]) SubInPlace(o Reader[T]) error {
	return accumulate[T](opSubInPlace, v, o, true)
}

// Fill writes val into every cell of the view.
func (v *MutView[T]) Fill(val T) error {
	if err := v.lease.usable(); err != nil {
		return fmt.Errorf("MutView.Fill: %w", err)
	}
	for i := v.rows.Start; i < v.rows.End; i++ {
		for j := v.cols.Start; j < v.cols.End; j++ {
			v.src.setCell(i, j, val)
		}
	}

	return nil
}

// ToGrid materializes the view into a new Grid.
// Fails like View when the lease forbids reads.
func (v *MutView[T]) ToGrid() (*Grid[T], error) {
	if err := v.lease.usable(); err != nil {
		return nil, fmt.Errorf("MutView.ToGrid: %w", err)
	}

	return copyToGrid[T](v), nil
}

// Equal reports shape and element equality with any Reader.
func (v *MutView[T]) Equal(o Reader[T]) bool { return Equal[T](v, o) }

// String renders the view rows, or the lease error when reads are not allowed.
func (v *MutView[T]) String() string {
	if err := v.lease.usable(); err != nil {
		return fmt.Sprintf("<%v>", err)
	}

	return render[T](v)
}
