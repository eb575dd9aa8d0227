// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/interval checks here.
//   - Return sentinel errors wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether s is nil, including typed nil pointers hidden in the interface.
func isNil(s Shaper) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m is nil (untyped or typed nil pointer).
// Complexity: O(1).
func ValidateNotNil(m Shaper) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaper) error {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rows %d != %d", ar, br), ErrDimensionMismatch)
	}
	if ac != bc {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: cols %d != %d", ac, bc), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Shaper) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare otherwise.
func ValidateSquare(m Shaper) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if r, c := m.Shape(); r != c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", r, c), ErrNonSquare)
	}

	return nil
}

// ValidateInterval checks a resolved interval against an axis of length n:
// 0 ≤ Start, Start ≤ End (ErrRangeOrder) and End ≤ n (ErrOutOfRange).
// axis names the dimension in the message ("row" / "column").
//
// Complexity: O(1).
func ValidateInterval(axis string, iv Interval, n int) error {
	if iv.Start > iv.End {
		return validatorErrorf(
			fmt.Sprintf("ValidateInterval: %s range index starts at %d but ends at %d", axis, iv.Start, iv.End),
			ErrRangeOrder)
	}
	if iv.Start < 0 {
		return validatorErrorf(
			fmt.Sprintf("ValidateInterval: %s range start index %d is negative", axis, iv.Start),
			ErrOutOfRange)
	}
	if iv.End > n {
		return validatorErrorf(
			fmt.Sprintf("ValidateInterval: %s range end index %d out of range for %s of length %d", axis, iv.End, axis, n),
			ErrOutOfRange)
	}

	return nil
}

// checkIndex validates (i, j) against a rows×cols extent.
func checkIndex(i, j, rows, cols int) error {
	if i < 0 || i >= rows {
		return fmt.Errorf("row index out of bounds: the len is %d but the index is %d: %w", rows, i, ErrOutOfRange)
	}
	if j < 0 || j >= cols {
		return fmt.Errorf("column index out of bounds: the len is %d but the index is %d: %w", cols, j, ErrOutOfRange)
	}

	return nil
}
