// SPDX-License-Identifier: MIT

// Package multiply - Strassen's algorithm over matrix views.
//
// Purpose:
//   - Multiply two n×n matrices (n a power of two) with seven recursive
//     products per level instead of eight, giving Θ(n^lg 7) time.
//
// Layout:
//   - Operands are split into quadrants with matrix.View.Quadrants (no copies).
//   - The ten sums S1..S10 and the seven products P1..P7 live in scratch Grids
//     owned by one recursion level.
//   - Products are accumulated into the four quadrants of C, obtained through
//     MutView.QuadrantsMut, so the result is written in place.

package multiply

import (
	"fmt"
	"time"

	"github.com/katalvlaran/clrs/matrix"
)

// kernel accumulates c += a·b over square power-of-two views.
type kernel[T matrix.Numeric] func(a, b *matrix.View[T], c *matrix.MutView[T], cutoff int) error

// Strassen returns a·b for two square matrices of equal power-of-two order.
// MAIN DESCRIPTION:
//   - Validates the operands, allocates a zeroed n×n result and accumulates
//     the product into it through Strassen's recursion.
//
// Implementation:
//   - Stage 1: non-nil, square, same order.
//   - Stage 2: n == 0 returns an empty result immediately.
//   - Stage 3: n must be a power of two; checked before any recursion.
//   - Stage 4: recurse (see strassenInto).
//
// Behavior highlights:
//   - Inputs are only read; they can be any matrix.Reader (Dense, Grid, View,
//     MutView or a foreign implementation, which is materialized first).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     ErrNotPowerOfTwo (message names the dimension).
//
// Complexity:
//   - Time Θ(n^lg 7), Space Θ(n²) scratch across the recursion.
func Strassen[T matrix.Numeric](a, b matrix.Reader[T], opts ...Option) (*matrix.Dense[T], error) {
	return run(opStrassen, a, b, gatherOptions(opts...), strassenInto[T])
}

// StrassenInto accumulates c += a·b in place. c must be zeroed by the caller
// to obtain the plain product.
//
// Errors:
//   - as Strassen, plus matrix.ErrViewReleased / matrix.ErrBorrowConflict when c
//     cannot be written, and matrix.ErrBorrowConflict when a or b overlaps c.
//
// Every check happens before the first write to c.
func StrassenInto[T matrix.Numeric](a, b *matrix.View[T], c *matrix.MutView[T], opts ...Option) error {
	o := gatherOptions(opts...)
	n, err := squarePair(a, b)
	if err != nil {
		return multiplyErrorf(opInto, err)
	}
	if err = matrix.ValidateNotNil(c); err != nil {
		return multiplyErrorf(opInto, err)
	}
	if c.Rows() != n || c.Cols() != n {
		return multiplyErrorf(opInto, fmt.Errorf("target %dx%d, operands %dx%d: %w",
			c.Rows(), c.Cols(), n, n, matrix.ErrDimensionMismatch))
	}
	if n == 0 {
		return nil
	}
	if !IsPowerOfTwo(n) {
		return notPowerOfTwo(opInto, n)
	}
	if err = c.Usable(); err != nil {
		return multiplyErrorf(opInto, err)
	}
	if matrix.Overlaps[T](a, c) || matrix.Overlaps[T](b, c) {
		return multiplyErrorf(opInto, fmt.Errorf("operand aliases the target: %w", matrix.ErrBorrowConflict))
	}

	return trace(o, opInto, n, func() error { return strassenInto(a, b, c, o.cutoff) })
}

// run is the shared facade of the square divide-and-conquer kernels.
func run[T matrix.Numeric](op string, a, b matrix.Reader[T], o Options, k kernel[T]) (*matrix.Dense[T], error) {
	n, err := squarePair(a, b)
	if err != nil {
		return nil, multiplyErrorf(op, err)
	}
	if n != 0 && !IsPowerOfTwo(n) {
		return nil, notPowerOfTwo(op, n)
	}
	c, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, multiplyErrorf(op, err)
	}
	if n == 0 {
		return c, nil
	}

	av, err := matrix.ViewOf(a)
	if err != nil {
		return nil, multiplyErrorf(op, err)
	}
	bv, err := matrix.ViewOf(b)
	if err != nil {
		return nil, multiplyErrorf(op, err)
	}
	cv, err := c.MutView()
	if err != nil {
		return nil, multiplyErrorf(op, err)
	}
	defer cv.Release()

	if err = trace(o, op, n, func() error { return k(av, bv, cv, o.cutoff) }); err != nil {
		return nil, err
	}

	return c, nil
}

// trace runs fn between two debug records on the configured logger.
func trace(o Options, op string, n int, fn func() error) error {
	start := time.Now()
	o.logger.Debug("multiply start", "op", op, "n", n, "cutoff", o.cutoff)
	if err := fn(); err != nil {
		o.logger.Debug("multiply failed", "op", op, "n", n, "err", err)
		return multiplyErrorf(op, err)
	}
	o.logger.Debug("multiply done", "op", op, "n", n, "elapsed", time.Since(start))

	return nil
}

// operandPair names the two quadrant views combined into one S matrix.
type operandPair[T matrix.Numeric] struct {
	x, y *matrix.View[T]
	neg  bool
}

// update is one "dst ±= src" step of the final combination.
type update[T matrix.Numeric] struct {
	dst *matrix.MutView[T]
	src *matrix.Grid[T]
	neg bool
}

// strassenInto is one level of the recursion.
//
// Implementation:
//   - Stage 1: n ≤ cutoff → naive triple loop.
//   - Stage 2: S1..S10 from quadrant sums and differences.
//   - Stage 3: P1..P7 recursively into zeroed half-size Grids.
//   - Stage 4: C00 += P5+P4-P2+P6, C01 += P1+P2, C10 += P3+P4, C11 += P5+P1-P3-P7.
func strassenInto[T matrix.Numeric](a, b *matrix.View[T], c *matrix.MutView[T], cutoff int) error {
	n := a.Rows()
	if n <= cutoff {
		return naiveInto[T](a, b, c)
	}
	h := n / 2

	a00, a01, a10, a11, err := a.Quadrants()
	if err != nil {
		return err
	}
	b00, b01, b10, b11, err := b.Quadrants()
	if err != nil {
		return err
	}

	sums := [10]operandPair[T]{
		{b01, b11, true},  // S1
		{a00, a01, false}, // S2
		{a10, a11, false}, // S3
		{b10, b00, true},  // S4
		{a00, a11, false}, // S5
		{b00, b11, false}, // S6
		{a01, a11, true},  // S7
		{b10, b11, false}, // S8
		{a00, a10, true},  // S9
		{b00, b01, false}, // S10
	}
	var s [10]*matrix.View[T]
	for k, p := range sums {
		var g *matrix.Grid[T]
		if p.neg {
			g, err = p.x.Sub(p.y)
		} else {
			g, err = p.x.Add(p.y)
		}
		if err != nil {
			return fmt.Errorf("S%d: %w", k+1, err)
		}
		s[k] = g.View()
	}

	factors := [7][2]*matrix.View[T]{
		{a00, s[0]},  // P1
		{s[1], b11},  // P2
		{s[2], b00},  // P3
		{a11, s[3]},  // P4
		{s[4], s[5]}, // P5
		{s[6], s[7]}, // P6
		{s[8], s[9]}, // P7
	}
	var p [7]*matrix.Grid[T]
	for k, f := range factors {
		if p[k], err = product(f[0], f[1], h, cutoff, strassenInto[T]); err != nil {
			return fmt.Errorf("P%d: %w", k+1, err)
		}
	}

	c00, c01, c10, c11, err := c.QuadrantsMut()
	if err != nil {
		return err
	}
	defer releaseAll(c00, c01, c10, c11)

	return apply([]update[T]{
		{c00, p[4], false}, {c00, p[3], false}, {c00, p[1], true}, {c00, p[5], false},
		{c01, p[0], false}, {c01, p[1], false},
		{c10, p[2], false}, {c10, p[3], false},
		{c11, p[4], false}, {c11, p[0], false}, {c11, p[2], true}, {c11, p[6], true},
	})
}

// product computes x·y into a fresh zeroed h×h Grid using k.
func product[T matrix.Numeric](x, y *matrix.View[T], h, cutoff int, k kernel[T]) (*matrix.Grid[T], error) {
	g, err := matrix.NewGrid[T](h, h)
	if err != nil {
		return nil, err
	}
	gv, err := g.MutView()
	if err != nil {
		return nil, err
	}
	defer gv.Release()
	if err = k(x, y, gv, cutoff); err != nil {
		return nil, err
	}

	return g, nil
}

// apply runs the updates in order.
func apply[T matrix.Numeric](steps []update[T]) error {
	var err error
	for _, st := range steps {
		if st.neg {
			err = st.dst.SubInPlace(st.src)
		} else {
			err = st.dst.AddInPlace(st.src)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// releaseAll releases every view.
func releaseAll[T matrix.Numeric](vs ...*matrix.MutView[T]) {
	for _, v := range vs {
		v.Release()
	}
}
