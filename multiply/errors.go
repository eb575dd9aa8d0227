// SPDX-License-Identifier: MIT

package multiply

import (
	"errors"
	"fmt"
)

// ErrNotPowerOfTwo is returned when a divide-and-conquer multiply receives a
// dimension that is not an exact power of two. The wrapping message names the
// offending dimension.
var ErrNotPowerOfTwo = errors.New("multiply: dimension is not a power of two")

// Operation tags.
const (
	opNaive     = "Naive"
	opRecursive = "Recursive"
	opStrassen  = "Strassen"
	opInto      = "StrassenInto"
)

// multiplyErrorf wraps err with an operation tag. Use only when err != nil.
func multiplyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// notPowerOfTwo builds the precondition failure for dimension n.
func notPowerOfTwo(tag string, n int) error {
	return fmt.Errorf("%s: matrix dimension %d is not an exact power of 2: %w", tag, n, ErrNotPowerOfTwo)
}
