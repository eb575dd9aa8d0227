// SPDX-License-Identifier: MIT

// Package matrix - lease table (aliasing discipline for mutable views).
//
// Purpose:
//   - Give MutView the exclusivity guarantees a borrow checker would give:
//     no two live mutable views over overlapping storage, no write through a
//     view that has been re-borrowed by a live child, no write through a
//     released view, no write through the owner while any lease is live.
//
// Model:
//   - Every backing store (Dense, Grid) owns one leases table.
//   - A lease records the absolute rectangle it covers and its parent lease
//     (nil when taken directly from the owner).
//   - Acquiring a lease fails when it overlaps a live lease that is not one of
//     its ancestors. Disjoint siblings (the four quadrants of one matrix) may
//     be live at the same time.
//
// Concurrency:
//   - Single-threaded by contract: tables are not synchronized.

package matrix

import "fmt"

// lease is one live exclusive borrow of a rectangle of a store.
type lease struct {
	table    *leases
	parent   *lease
	rows     Interval // absolute backing rows
	cols     Interval // absolute backing cols
	kids     []*lease // live child leases; any freezes this lease
	released bool
}

// leases is the per-store table of live leases.
type leases struct {
	live []*lease
}

// acquire registers a lease over rows×cols, derived from parent (nil = owner).
//
// Errors:
//   - ErrViewReleased when parent has already been released.
//   - ErrBorrowConflict when the rectangle overlaps a live non-ancestor lease.
//
// Complexity: O(L·depth) with L live leases; L stays tiny in practice.
func (t *leases) acquire(parent *lease, rows, cols Interval) (*lease, error) {
	if parent != nil && parent.released {
		return nil, ErrViewReleased
	}
	for _, l := range t.live {
		if parent.descendsFrom(l) {
			continue // re-borrow of an ancestor region is legal
		}
		if l.rows.overlaps(rows) && l.cols.overlaps(cols) {
			return nil, fmt.Errorf("rows %v cols %v overlap live lease rows %v cols %v: %w",
				rows, cols, l.rows, l.cols, ErrBorrowConflict)
		}
	}

	nl := &lease{table: t, parent: parent, rows: rows, cols: cols}
	t.live = append(t.live, nl)
	if parent != nil {
		parent.kids = append(parent.kids, nl)
	}

	return nl, nil
}

// descendsFrom reports whether l is anc or has anc among its ancestors.
// A nil receiver (owner-level acquisition) descends from nothing.
func (l *lease) descendsFrom(anc *lease) bool {
	for p := l; p != nil; p = p.parent {
		if p == anc {
			return true
		}
	}

	return false
}

// release drops the lease from its table, releasing live children first
// (depth-first). Idempotent.
func (l *lease) release() {
	if l == nil || l.released {
		return
	}
	for len(l.kids) > 0 {
		l.kids[len(l.kids)-1].release()
	}
	l.released = true
	if l.parent != nil {
		l.parent.kids = dropLease(l.parent.kids, l)
	}
	l.table.live = dropLease(l.table.live, l)
}

// dropLease removes x from ls, keeping the order of the rest.
func dropLease(ls []*lease, x *lease) []*lease {
	for i, y := range ls {
		if y == x {
			return append(ls[:i], ls[i+1:]...)
		}
	}

	return ls
}

// usable reports whether the lease may be read from or written through.
func (l *lease) usable() error {
	if l.released {
		return ErrViewReleased
	}
	if n := len(l.kids); n > 0 {
		return fmt.Errorf("view is re-borrowed by %d live child view(s): %w", n, ErrBorrowConflict)
	}

	return nil
}

// ownerWritable reports whether the owner may write directly.
func (t *leases) ownerWritable() error {
	if n := len(t.live); n > 0 {
		return fmt.Errorf("%d live mutable view(s): %w", n, ErrBorrowConflict)
	}

	return nil
}

// count returns the number of live leases.
func (t *leases) count() int { return len(t.live) }
