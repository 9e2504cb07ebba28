// SPDX-License-Identifier: MIT

package vcs

import "errors"

var (
	// ErrOrder is returned when a subspace refers to a lower subspace of the
	// irrep that has not been processed yet.
	ErrOrder = errors.New("vcs: lower subspace not yet processed")

	// ErrNonPhysical is returned when an accumulated S matrix is not positive
	// semi-definite, so K = √S does not exist.
	ErrNonPhysical = errors.New("vcs: S matrix is not positive semi-definite")

	// ErrAsymmetric is returned under WithStrictSymmetry when an accumulated S
	// matrix departs from symmetry by more than the matrix epsilon.
	ErrAsymmetric = errors.New("vcs: S matrix is not symmetric")

	// ErrNilIrrep is returned for a nil irrep.
	ErrNilIrrep = errors.New("vcs: nil irrep")

	// ErrNilCache is returned for a nil coefficient cache.
	ErrNilCache = errors.New("vcs: nil coefficient cache")

	// ErrNilCacheFactory is returned by GenerateAll when newCache is nil.
	ErrNilCacheFactory = errors.New("vcs: nil cache factory")
)
