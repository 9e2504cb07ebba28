// SPDX-License-Identifier: MIT

package u3

import (
	"cmp"
	"fmt"
)

// SU3 is an SU(3) irreducible label (λ,μ).
type SU3 struct {
	Lambda int
	Mu     int
}

// Zero is the scalar irrep (0,0).
var Zero = SU3{}

// Valid reports whether both components are non-negative.
func (x SU3) Valid() bool { return x.Lambda >= 0 && x.Mu >= 0 }

// Conjugate returns (μ,λ).
func (x SU3) Conjugate() SU3 { return SU3{Lambda: x.Mu, Mu: x.Lambda} }

// Compare orders labels by λ, then μ. It returns -1, 0 or +1.
func (x SU3) Compare(y SU3) int {
	if c := cmp.Compare(x.Lambda, y.Lambda); c != 0 {
		return c
	}

	return cmp.Compare(x.Mu, y.Mu)
}

// Less reports x < y under Compare.
func (x SU3) Less(y SU3) bool { return x.Compare(y) < 0 }

// String formats the label as "(λ,μ)".
func (x SU3) String() string { return fmt.Sprintf("(%d,%d)", x.Lambda, x.Mu) }
