// SPDX-License-Identifier: MIT

package sp3r

import "errors"

var (
	// ErrInvalidSigma is returned for a lowest weight that is not ordered.
	ErrInvalidSigma = errors.New("sp3r: invalid lowest weight")

	// ErrInvalidNmax is returned for a negative or odd truncation.
	ErrInvalidNmax = errors.New("sp3r: Nmax must be even and non-negative")

	// ErrDuplicateSubspace is returned when two subspaces share a label.
	ErrDuplicateSubspace = errors.New("sp3r: duplicate subspace")

	// ErrMissingSigma is returned when no subspace carries the lowest weight.
	ErrMissingSigma = errors.New("sp3r: lowest-weight subspace missing")

	// ErrEmptySubspace is returned for a subspace without states.
	ErrEmptySubspace = errors.New("sp3r: subspace has no states")
)
