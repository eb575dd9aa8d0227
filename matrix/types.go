// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by every container and view.
// This file contains ONLY the element constraint and the capability
// interfaces (Shaper, Lengther, Reader, Writer). Errors live in errors.go,
// range normalization in ranges.go, concrete containers in impl_*.go.
package matrix

// Numeric is the element constraint for every container in this package.
// The zero value of T is the "default-valued element" used by constructors.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Shaper is the shape capability exposed by every matrix-like value.
//
// Complexity notes: all methods are O(1) and side-effect free.
type Shaper interface {
	// Shape returns (row count, column count).
	Shape() (rows, cols int)

	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}

// Lengther is the length capability of a single-dimension sequence
// (an Interval, a row of a Grid).
type Lengther interface {
	Len() int
}

// Reader is the read contract every matrix-like value satisfies: Dense, Grid,
// View and MutView all implement it, and algorithms are written against it.
type Reader[T Numeric] interface {
	Shaper

	// At returns the element at (i, j) relative to the value's own origin.
	// Returns ErrOutOfRange if i or j falls outside Shape().
	At(i, j int) (T, error)
}

// Writer extends Reader with element mutation.
type Writer[T Numeric] interface {
	Reader[T]

	// Set stores v at (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrBorrowConflict /
	// ErrViewReleased when the aliasing discipline forbids the write.
	Set(i, j int, v T) error
}

// store is the backing-storage handle shared by Dense and Grid.
// Views hold a store plus two absolute intervals; they never copy.
//
// cell/setCell take ABSOLUTE backing coordinates and perform no checks;
// callers validate against the view's intervals first.
type store[T Numeric] interface {
	Shaper
	cell(i, j int) T
	setCell(i, j int, v T)
	leaseTable() *leases
}

// cellReader is implemented by every package-owned Reader and unlocks the
// unchecked fast path in elementwise kernels once shapes are validated.
type cellReader[T Numeric] interface {
	Reader[T]
	get(i, j int) T // relative coordinates, unchecked
	ready() error   // nil when reads through the value are currently allowed
}

// region is implemented by values that address a rectangle of some store.
// Kernels use it to detect shifted self-overlap between source and target.
type region[T Numeric] interface {
	backing() (store[T], Interval, Interval)
}
