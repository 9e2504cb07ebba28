// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels, optionally wrapped with an operation
// tag via matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0,
	// or ragged rows in NewFromRows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iterations.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNotPositiveSemiDefinite signals an eigenvalue below -eps·scale where a
	// positive square root was requested.
	ErrNotPositiveSemiDefinite = errors.New("matrix: matrix is not positive semi-definite")
)

// Operation tags for matrixErrorf.
const (
	opNew       = "NewFromRows"
	opAdd       = "Add"
	opMul       = "Mul"
	opMulTriple = "MulTriple"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opSymmetric = "Symmetrize"
	opAsymmetry = "Asymmetry"
	opEigen     = "Eigen"
	opSqrt      = "SqrtSymmetric"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
