// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or validation order of underlying kernels.

package matrix

// Sum is an alias for Add: element-wise a + b into a new Grid.
// Complexity: O(rc).
func Sum[T Numeric](a, b Reader[T]) (*Grid[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b into a new Grid.
// Complexity: O(rc).
func Diff[T Numeric](a, b Reader[T]) (*Grid[T], error) { return Sub(a, b) }

// Materialize copies any Reader into a new, independently owned Grid
// (an owned copy of a view; works for foreign readers too).
// Complexity: O(rc).
func Materialize[T Numeric](r Reader[T]) (*Grid[T], error) {
	if err := ValidateNotNil(r); err != nil {
		return nil, matrixErrorf("Materialize", err)
	}
	get, err := cellsOf("Materialize", r)
	if err != nil {
		return nil, err
	}
	rows, cols := r.Shape()
	g := newGrid[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g.rows[i][j] = get(i, j)
		}
	}

	return g, nil
}

// DenseOf copies any Reader into a new Dense.
// Complexity: O(rc).
func DenseOf[T Numeric](r Reader[T]) (*Dense[T], error) {
	g, err := Materialize(r)
	if err != nil {
		return nil, matrixErrorf("DenseOf", err)
	}

	return g.ToDense(), nil
}

// ViewOf returns a read-only full view for any package-owned Reader, or
// materializes a foreign Reader into a Grid and views that.
func ViewOf[T Numeric](r Reader[T]) (*View[T], error) {
	switch x := r.(type) {
	case *Dense[T]:
		return x.View(), nil
	case *Grid[T]:
		return x.View(), nil
	case *View[T]:
		return x, nil
	case *MutView[T]:
		v, err := x.View()
		if err != nil {
			return nil, matrixErrorf("ViewOf", err)
		}
		return v, nil
	}
	g, err := Materialize(r)
	if err != nil {
		return nil, matrixErrorf("ViewOf", err)
	}

	return g.View(), nil
}

// Overlaps reports whether a and b address overlapping rectangles of the same
// backing store. Foreign readers never overlap anything.
func Overlaps[T Numeric](a, b Reader[T]) bool {
	ar, ok := a.(region[T])
	if !ok || isNil(a) {
		return false
	}
	br, ok := b.(region[T])
	if !ok || isNil(b) {
		return false
	}
	as, arows, acols := ar.backing()
	bs, brows, bcols := br.backing()

	return as == bs && arows.overlaps(brows) && acols.overlaps(bcols)
}
