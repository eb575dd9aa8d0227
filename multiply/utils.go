// SPDX-License-Identifier: MIT

package multiply

import (
	"github.com/katalvlaran/clrs/matrix"
)

// IsPowerOfTwo reports whether n = 2^k for some k ≥ 0. Zero and negative
// values are not powers of two.
//
// Complexity: O(1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// squarePair validates two operands of a square multiply and returns their
// common dimension.
//
// Implementation:
//   - Stage 1: both non-nil.
//   - Stage 2: each square (ErrNonSquare).
//   - Stage 3: same order (ErrDimensionMismatch).
func squarePair(a, b matrix.Shaper) (int, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, err
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, err
	}
	if err := matrix.ValidateSquare(b); err != nil {
		return 0, err
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return 0, err
	}

	return a.Rows(), nil
}

// naiveInto accumulates c += a·b with the textbook i→j→k triple loop.
// Operands are read through At once into flat buffers, so a failing read
// leaves c untouched.
//
// Complexity: Time O(n·m·p), Space O(n·m + m·p).
func naiveInto[T matrix.Numeric](a, b matrix.Reader[T], c matrix.Writer[T]) error {
	n, m := a.Shape()
	p := b.Cols()
	fa, err := flatten(a)
	if err != nil {
		return err
	}
	fb, err := flatten(b)
	if err != nil {
		return err
	}

	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < p; j++ {
			cur, err := c.At(i, j)
			if err != nil {
				return err
			}
			for k = 0; k < m; k++ {
				cur += fa[i*m+k] * fb[k*p+j]
			}
			if err = c.Set(i, j, cur); err != nil {
				return err
			}
		}
	}

	return nil
}

// flatten copies r into a row-major slice.
func flatten[T matrix.Numeric](r matrix.Reader[T]) ([]T, error) {
	rows, cols := r.Shape()
	out := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := r.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}
