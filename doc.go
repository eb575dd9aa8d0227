// SPDX-License-Identifier: MIT

// Package clrs is a small library of generic two-dimensional matrices and
// divide-and-conquer multiplication.
//
// What is inside:
//
//	matrix/    — Dense and Grid containers, read-only View and exclusive
//	             MutView windows, range normalization, elementwise kernels
//	multiply/  — Strassen's algorithm, the eight-product recursive baseline
//	             and the naive triple loop
//	cmd/strassen — command-line driver: multiply YAML inputs, benchmark the
//	             algorithms, export Prometheus metrics
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFrom([][]int{{5, 6}, {7, 8}})
//	c, _ := multiply.Strassen[int](a, b)
//	fmt.Print(c)
//	// [19, 22]
//	// [43, 50]
//
// Views never copy. Slicing a view composes its offsets onto the parent's,
// so a quadrant of a quadrant addresses the original storage directly. A
// mutable view holds a lease on its rectangle: two live mutable views may not
// overlap, and a view that has been re-borrowed by a live child is frozen
// until the child is released.
//
// All operations are single-threaded and deterministic.
package clrs
