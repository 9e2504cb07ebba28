// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra core used by the
// K-matrix generator: a row-major Dense type, products, the Jacobi
// eigendecomposition of real symmetric matrices and the symmetric positive
// square root built on top of it.
//
// Conventions:
//   - Inputs are never mutated; every operation allocates its result.
//   - Failures are package sentinels (errors.go) wrapped with an operation
//     tag; match them with errors.Is.
//   - Numeric policy (epsilon, eigen tolerance, iteration cap) is passed as
//     functional options (options.go). Option constructors panic on
//     nonsensical values; algorithms never panic on user input.
//   - Loop orders are fixed (i→j→k), so results are bitwise reproducible.
package matrix
