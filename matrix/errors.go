// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No exported operation panics on a caller-triggered violation:
// every contract violation is reported before any element is written.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites wrap
// with fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> range order -> index/slice bounds -> shape mismatch -> aliasing.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when row data is ragged (rows of different length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index or a slice range falls outside the
	// extent of the value it addresses.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRangeOrder indicates a normalized range whose start exceeds its end.
	ErrRangeOrder = errors.New("matrix: range start exceeds end")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf tolerance passed to AllClose.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBorrowConflict signals that a mutable view would alias storage that is
	// already exclusively leased, or that storage was written while leased.
	ErrBorrowConflict = errors.New("matrix: overlapping mutable borrow")

	// ErrViewReleased signals a read or write through a MutView after Release
	// (of the view itself or of an ancestor it was re-borrowed from).
	ErrViewReleased = errors.New("matrix: mutable view already released")
)
