// SPDX-License-Identifier: MIT

// Package multiply implements square matrix multiplication over the matrix
// package's readers and views.
//
// What:
//
//   - Strassen: seven half-size products per level, Θ(n^lg 7).
//   - StrassenInto: the same recursion accumulating into a caller-owned MutView.
//   - Recursive: the eight-product divide-and-conquer baseline, Θ(n³).
//   - Naive: the triple loop for any compatible rectangular pair; the
//     reference the other kernels are tested against.
//
// Preconditions of the divide-and-conquer kernels:
//
//   - both operands square and of the same order n;
//   - n == 0 yields an empty result immediately;
//   - otherwise n must be a power of two, checked before any recursion
//     (ErrNotPowerOfTwo, the message names n).
//
// Options:
//
//   - WithCutoff(k): sub-problems of size ≤ k use the triple loop (default 1).
//   - WithLogger(l): debug records for each top-level call (default discards).
//
// Every kernel is single-threaded and deterministic: the same inputs always
// produce bit-identical outputs.
package multiply
