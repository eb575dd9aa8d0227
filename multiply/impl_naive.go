// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"

	"github.com/katalvlaran/clrs/matrix"
)

// Naive returns a·b computed by the textbook triple loop.
// MAIN DESCRIPTION:
//   - Works for any rectangular pair with a.Cols() == b.Rows(); it is the
//     reference every divide-and-conquer kernel is checked against.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p) for the result.
func Naive[T matrix.Numeric](a, b matrix.Reader[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, multiplyErrorf(opNaive, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, multiplyErrorf(opNaive, err)
	}
	if a.Cols() != b.Rows() {
		return nil, multiplyErrorf(opNaive,
			fmt.Errorf("inner dimensions %d != %d: %w", a.Cols(), b.Rows(), matrix.ErrDimensionMismatch))
	}

	c, err := matrix.NewDense[T](a.Rows(), b.Cols())
	if err != nil {
		return nil, multiplyErrorf(opNaive, err)
	}
	if err = naiveInto(a, b, c); err != nil {
		return nil, multiplyErrorf(opNaive, err)
	}

	return c, nil
}
