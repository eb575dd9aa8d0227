// SPDX-License-Identifier: MIT

package multiply

import (
	"github.com/katalvlaran/clrs/matrix"
)

// Recursive returns a·b by plain divide and conquer: eight half-size products
// per level, accumulated directly into the quadrants of the result.
// It shares Strassen's preconditions (square, equal, power-of-two order) and
// exists as the Θ(n³) recursive baseline.
//
// Complexity: Time Θ(n³), Space O(log n) views (no scratch matrices).
func Recursive[T matrix.Numeric](a, b matrix.Reader[T], opts ...Option) (*matrix.Dense[T], error) {
	return run(opRecursive, a, b, gatherOptions(opts...), recursiveInto[T])
}

// recursiveInto accumulates c += a·b.
//
// Implementation:
//   - Stage 1: n ≤ cutoff → naive triple loop.
//   - Stage 2: split a, b, c into quadrants.
//   - Stage 3: Cij += Ai0·B0j, then Cij += Ai1·B1j.
func recursiveInto[T matrix.Numeric](a, b *matrix.View[T], c *matrix.MutView[T], cutoff int) error {
	if a.Rows() <= cutoff {
		return naiveInto[T](a, b, c)
	}

	a00, a01, a10, a11, err := a.Quadrants()
	if err != nil {
		return err
	}
	b00, b01, b10, b11, err := b.Quadrants()
	if err != nil {
		return err
	}
	c00, c01, c10, c11, err := c.QuadrantsMut()
	if err != nil {
		return err
	}
	defer releaseAll(c00, c01, c10, c11)

	steps := [8]struct {
		x, y *matrix.View[T]
		dst  *matrix.MutView[T]
	}{
		{a00, b00, c00}, {a00, b01, c01}, {a10, b00, c10}, {a10, b01, c11},
		{a01, b10, c00}, {a01, b11, c01}, {a11, b10, c10}, {a11, b11, c11},
	}
	for _, st := range steps {
		if err = recursiveInto(st.x, st.y, st.dst, cutoff); err != nil {
			return err
		}
	}

	return nil
}
