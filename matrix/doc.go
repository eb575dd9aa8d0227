// Package matrix provides generic dense matrices and zero-copy views for
// divide-and-conquer linear algebra.
//
// The matrix package provides:
//
//   - Dense: an owned, fixed-shape, row-major matrix.
//   - Grid: a growable matrix stored as rows of slices, used for results whose
//     shape is only known at run time.
//   - View / MutView: rectangular windows into a Dense or a Grid that never
//     copy. Views re-slice with offsets that compose additively, so a window
//     of a window of a window still addresses the right backing cells.
//   - Range / Interval: every standard range form (a..b, a..=b, a.., ..b,
//     ..=b, ..) normalized into a half-open [start, end).
//
// Every container implements Reader (Shape + At); in-place operations accept
// any Reader of matching shape. Contract violations (shape mismatch, index or
// slice out of range, inverted range, overlapping mutable borrows) are
// reported as wrapped sentinel errors before anything is written.
//
// Mutable views hold a lease on their store: overlapping live MutViews are
// refused, a parent is frozen while a child re-borrow is live, and the owner
// cannot be written until every lease is released.
package matrix
