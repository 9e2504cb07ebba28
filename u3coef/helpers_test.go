// SPDX-License-Identifier: MIT

package u3coef_test

import (
	"github.com/katalvlaran/sp3rlib/u3"
	"github.com/katalvlaran/sp3rlib/u3coef"
)

func su3(l, m int) u3.SU3 { return u3.SU3{Lambda: l, Mu: m} }

var (
	x11 = su3(1, 1)
	x20 = su3(2, 0)
	x22 = su3(2, 2)

	// every channel couples twice: dims (2,2,2,2)
	uOctets = u3coef.ULabels{X1: x11, X2: x11, X: x11, X3: x11, X12: x11, X23: x11}
	// (1,1)⊗(1,1) does not contain (2,1)
	uForbidden = u3coef.ULabels{X1: x11, X2: x11, X: x11, X3: x11, X12: su3(2, 1), X23: x11}
	// dims (1,1,1,1)
	uSingle = u3coef.ULabels{X1: x20, X2: x20, X: su3(5, 1), X3: x11, X12: su3(4, 0), X23: su3(3, 1)}

	// dims (2,1,2,2)
	wMixed = u3coef.WLabels{X1: x22, L1: 2, X2: x11, L2: 1, X3: x22, L3: 2}

	// dims (2,2)
	phiOctets = u3coef.PhiLabels{X1: x11, X2: x11, X3: x11}
	// ρmax = 10 > su3lib.MaxK
	phiHuge = u3coef.PhiLabels{X1: su3(9, 9), X2: su3(9, 9), X3: su3(9, 9)}
)

// allTuples enumerates every 1-based tuple under dims, last index fastest.
func allTuples(dims []int) [][]int {
	out := [][]int{{}}
	for _, d := range dims {
		var next [][]int
		for _, prefix := range out {
			for i := 1; i <= d; i++ {
				t := append(append([]int(nil), prefix...), i)
				next = append(next, t)
			}
		}
		out = next
	}

	return out
}
