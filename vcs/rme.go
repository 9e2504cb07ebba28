// SPDX-License-Identifier: MIT

package vcs

import (
	"math"

	"github.com/katalvlaran/sp3rlib/u3"
)

// BosonCreationRME returns the SU(3) reduced matrix element <np||a†||n> of
// the boson pair creation operator. It is non-zero only when np equals n
// raised by two quanta on exactly one axis and np is still ordered.
func BosonCreationRME(np, n u3.U3) float64 {
	if !np.Valid() || !n.Valid() {
		return 0
	}
	n1, n2, n3 := n.F1, n.F2, n.F3

	switch np.Sub(n) {
	case u3.U3{F1: 2}:
		return math.Sqrt((n1 + 4) * (n1 - n2 + 2) * (n1 - n3 + 3) /
			(2 * (n1 - n2 + 3) * (n1 - n3 + 4)))
	case u3.U3{F2: 2}:
		return math.Sqrt((n2 + 3) * (n1 - n2) * (n2 - n3 + 2) /
			(2 * (n1 - n2 - 1) * (n2 - n3 + 3)))
	case u3.U3{F3: 2}:
		return math.Sqrt((n3 + 2) * (n2 - n3) * (n1 - n3 + 1) /
			(2 * (n1 - n3) * (n2 - n3 - 1)))
	default:
		return 0
	}
}
