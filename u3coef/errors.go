// SPDX-License-Identifier: MIT
// Package u3coef: sentinel errors.
// Callers match with errors.Is; call sites wrap with the label key and indices.

package u3coef

import "errors"

var (
	// ErrInvalidIndex is returned for a multiplicity tuple of the wrong arity or
	// with an index outside 1..max of its channel. Empty blocks reject every index.
	ErrInvalidIndex = errors.New("u3coef: multiplicity index out of range")

	// ErrNaN signals that the kernel returned NaN, which the kernel does when
	// it was not initialized.
	ErrNaN = errors.New("u3coef: kernel returned NaN (kernel not initialized?)")

	// ErrMultiplicityOverflow signals a channel maximum above su3lib.MaxK.
	ErrMultiplicityOverflow = errors.New("u3coef: multiplicity exceeds kernel buffer")

	// ErrNilKernel is returned by the direct helpers when no kernel is supplied.
	ErrNilKernel = errors.New("u3coef: nil kernel")
)
