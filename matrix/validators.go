// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden in the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	d, err := toDense(m)
	if err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	for _, v := range d.data {
		if isNonFinite(v) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks A is square and symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad
// tol, ErrAsymmetry on violation.
// Complexity: O(n^2), upper triangle only.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	if n <= 1 {
		return nil
	}
	d, err := toDense(m)
	if err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(d.data[i*n+j]-d.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// IsSymmetric reports whether m is square and symmetric within the
// configured epsilon.
func IsSymmetric(m Matrix, opts ...Option) bool {
	return ValidateSymmetric(m, gatherOptions(opts...).eps) == nil
}

// AllClose reports whether a and b agree elementwise within
// |a−b| ≤ atol + rtol·|b|. Negative tolerances are normalized to their
// absolute value. NaN equals nothing; equal infinities compare equal.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := toDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := toDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for k, x := range da.data {
		y := db.data[k]
		switch {
		case math.IsNaN(x) || math.IsNaN(y):
			return false, nil
		case math.IsInf(x, 0) || math.IsInf(y, 0):
			if x != y {
				return false, nil
			}
		case math.Abs(x-y) > atol+rtol*math.Abs(y):
			return false, nil
		}
	}

	return true, nil
}
