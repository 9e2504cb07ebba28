// SPDX-License-Identifier: MIT

package u3

import (
	"cmp"
	"fmt"
)

// U3 is a U(3) weight [f1,f2,f3].
// Components are float64 because Sp(3,R) lowest weights may be half-integral;
// boson raising labels are always integral.
type U3 struct {
	F1, F2, F3 float64
}

// FromSU3 builds the U(3) label with total quanta n and SU(3) part x:
//
//	f1 = (n + 2λ + μ)/3, f2 = (n − λ + μ)/3, f3 = (n − λ − 2μ)/3.
func FromSU3(n float64, x SU3) U3 {
	l, m := float64(x.Lambda), float64(x.Mu)

	return U3{
		F1: (n + 2*l + m) / 3,
		F2: (n - l + m) / 3,
		F3: (n - l - 2*m) / 3,
	}
}

// N returns the total number of quanta f1+f2+f3.
func (w U3) N() float64 { return w.F1 + w.F2 + w.F3 }

// SU3 returns the SU(3) content (f1−f2, f2−f3).
func (w U3) SU3() SU3 {
	return SU3{Lambda: int(w.F1 - w.F2), Mu: int(w.F2 - w.F3)}
}

// Valid reports whether f1 ≥ f2 ≥ f3.
func (w U3) Valid() bool { return w.F1 >= w.F2 && w.F2 >= w.F3 }

// Add returns the component-wise sum.
func (w U3) Add(d U3) U3 { return U3{F1: w.F1 + d.F1, F2: w.F2 + d.F2, F3: w.F3 + d.F3} }

// Sub returns the component-wise difference w − d.
func (w U3) Sub(d U3) U3 { return U3{F1: w.F1 - d.F1, F2: w.F2 - d.F2, F3: w.F3 - d.F3} }

// Compare orders weights lexicographically on (f1,f2,f3).
func (w U3) Compare(v U3) int {
	if c := cmp.Compare(w.F1, v.F1); c != 0 {
		return c
	}
	if c := cmp.Compare(w.F2, v.F2); c != 0 {
		return c
	}

	return cmp.Compare(w.F3, v.F3)
}

// Less reports w < v under Compare.
func (w U3) Less(v U3) bool { return w.Compare(v) < 0 }

// String formats the weight as "[f1,f2,f3]".
func (w U3) String() string { return fmt.Sprintf("[%g,%g,%g]", w.F1, w.F2, w.F3) }
