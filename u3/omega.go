// SPDX-License-Identifier: MIT

package u3

// Omega is the grading function of the K-matrix recursion for a raising
// label n coupled to the weight w:
//
//	Ω(n,w) = ½[w1(w1+2) + w2² + w3(w3−2)] − ¼[n1(n1+4) + n2(n2+2) + n3²]
func Omega(n, w U3) float64 {
	cw := w.F1*(w.F1+2) + w.F2*w.F2 + w.F3*(w.F3-2)
	cn := n.F1*(n.F1+4) + n.F2*(n.F2+2) + n.F3*n.F3

	return 0.5*cw - 0.25*cn
}
