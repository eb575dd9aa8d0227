// SPDX-License-Identifier: MIT
// Package matrix - elementwise kernels (ew*) and their public facades.
//
// Purpose:
//   - One canonical loop for "a ± b" and "dst ±= src" shared by Dense, Grid,
//     View and MutView, so every representation honors the same contract.
//
// Contract:
//   - Shapes are validated before anything is allocated or written.
//   - Foreign Reader implementations are read completely through At before the
//     first write, so a failing At can never leave a partial result behind.
//   - Package-owned operands take the unchecked fast path (get/set).
//
// Determinism:
//   - Fixed i→j loop order everywhere.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opAllClose   = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// target is a package-owned value that can be written in place.
type target[T Numeric] interface {
	cellReader[T]
	set(i, j int, v T)
	writable() error
}

// cellsOf returns an unchecked relative accessor for r.
//
// Implementation:
//   - Stage 1: package-owned readers expose get directly (after ready()).
//   - Stage 2: foreign readers are copied through At into a flat buffer.
//
// Complexity:
//   - O(1) for package types; O(r*c) time and space for foreign readers.
func cellsOf[T Numeric](op string, r Reader[T]) (func(i, j int) T, error) {
	if cr, ok := r.(cellReader[T]); ok {
		if err := cr.ready(); err != nil {
			return nil, matrixErrorf(op, err)
		}
		return cr.get, nil
	}

	rows, cols := r.Shape()
	buf := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := r.At(i, j)
			if err != nil {
				return nil, matrixErrorf(op, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			buf[i*cols+j] = v
		}
	}

	return func(i, j int) T { return buf[i*cols+j] }, nil
}

// combine computes put(i,j, a(i,j) ± b(i,j)) over the common shape.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, reader failures; put is never called on error.
func combine[T Numeric](op string, a, b Reader[T], neg bool, put func(i, j int, v T)) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(op, err)
	}
	ga, err := cellsOf(op, a)
	if err != nil {
		return err
	}
	gb, err := cellsOf(op, b)
	if err != nil {
		return err
	}

	rows, cols := a.Shape()
	var i, j int
	if neg {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				put(i, j, ga(i, j)-gb(i, j))
			}
		}
		return nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			put(i, j, ga(i, j)+gb(i, j))
		}
	}

	return nil
}

// accumulate performs dst ±= src.
// MAIN DESCRIPTION:
//   - In-place compound assignment with every precondition checked up front.
//
// Implementation:
//   - Stage 1: src non-nil, shapes equal.
//   - Stage 2: dst writable (lease live and not frozen / owner not leased).
//   - Stage 3: reject a src that addresses a shifted, overlapping rectangle of
//     the same store (reading it would observe cells already written).
//   - Stage 4: single i→j pass.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrViewReleased, ErrBorrowConflict.
func accumulate[T Numeric](op string, dst target[T], src Reader[T], neg bool) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(op, err)
	}
	if err := dst.writable(); err != nil {
		return matrixErrorf(op, err)
	}
	if err := checkShiftedAlias[T](dst, src); err != nil {
		return matrixErrorf(op, err)
	}
	gs, err := cellsOf(op, src)
	if err != nil {
		return err
	}

	rows, cols := dst.Shape()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if neg {
				dst.set(i, j, dst.get(i, j)-gs(i, j))
			} else {
				dst.set(i, j, dst.get(i, j)+gs(i, j))
			}
		}
	}

	return nil
}

// checkShiftedAlias fails when dst and src address overlapping but not
// identical rectangles of the same backing store.
func checkShiftedAlias[T Numeric](dst, src any) error {
	dr, ok := dst.(region[T])
	if !ok {
		return nil
	}
	sr, ok := src.(region[T])
	if !ok {
		return nil
	}
	ds, drows, dcols := dr.backing()
	ss, srows, scols := sr.backing()
	if ds != ss {
		return nil
	}
	if drows == srows && dcols == scols {
		return nil // same cells: read-before-write per element is safe
	}
	if drows.overlaps(srows) && dcols.overlaps(scols) {
		return fmt.Errorf("source rows %v cols %v overlaps target rows %v cols %v: %w",
			srows, scols, drows, dcols, ErrBorrowConflict)
	}

	return nil
}

// Add returns a + b as a new Grid for any pair of shape-matching readers.
// Complexity: O(r*c).
func Add[T Numeric](a, b Reader[T]) (*Grid[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := newGrid[T](a.Shape())
	if err := combine(opAdd, a, b, false, out.set); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns a - b as a new Grid for any pair of shape-matching readers.
// Complexity: O(r*c).
func Sub[T Numeric](a, b Reader[T]) (*Grid[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	out := newGrid[T](a.Shape())
	if err := combine(opSub, a, b, true, out.set); err != nil {
		return nil, err
	}

	return out, nil
}

// AddInto performs dst += src for any Writer. Package-owned writers take the
// checked-up-front path; foreign writers are validated for shape first and
// then written through Set.
func AddInto[T Numeric](dst Writer[T], src Reader[T]) error {
	return accumulateAny(opAddInPlace, dst, src, false)
}

// SubInto performs dst -= src for any Writer.
func SubInto[T Numeric](dst Writer[T], src Reader[T]) error {
	return accumulateAny(opSubInPlace, dst, src, true)
}

// accumulateAny dispatches to accumulate or to the At/Set fallback.
func accumulateAny[T Numeric](op string, dst Writer[T], src Reader[T], neg bool) error {
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(op, err)
	}
	if t, ok := dst.(target[T]); ok {
		return accumulate(op, t, src, neg)
	}
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf(op, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(op, err)
	}
	gs, err := cellsOf(op, src)
	if err != nil {
		return err
	}

	rows, cols := dst.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cur, err := dst.At(i, j)
			if err != nil {
				return matrixErrorf(op, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if neg {
				cur -= gs(i, j)
			} else {
				cur += gs(i, j)
			}
			if err = dst.Set(i, j, cur); err != nil {
				return matrixErrorf(op, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// Equal reports whether a and b have the same shape and equal elements.
// Equality never depends on the concrete representation. Two nil values are
// equal; a nil and a non-nil value are not. A reader failure counts as unequal.
func Equal[T Numeric](a, b Reader[T]) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	ga, err := cellsOf("Equal", a)
	if err != nil {
		return false
	}
	gb, err := cellsOf("Equal", b)
	if err != nil {
		return false
	}

	rows, cols := a.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if ga(i, j) != gb(i, j) {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Time: O(r*c). Space: O(1) for package types.
func AllClose[T Numeric](a, b Reader[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ga, err := cellsOf(opAllClose, a)
	if err != nil {
		return false, err
	}
	gb, err := cellsOf(opAllClose, b)
	if err != nil {
		return false, err
	}

	rows, cols := a.Shape()
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, bv = float64(ga(i, j)), float64(gb(i, j))
			if av == bv {
				continue // covers equal infinities
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av-bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ZerosLike returns a zero Grid with the same shape as m.
func ZerosLike[T Numeric](m Shaper) (*Grid[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newGrid[T](m.Shape()), nil
}
