// SPDX-License-Identifier: MIT

package u3

// OuterMultiplicity returns the number of times x3 occurs in x1 ⊗ x2.
//
// Closed form: the congruence n = λ1+λ2−λ3−μ1−μ2+μ3 must be divisible by 3;
// when the shift n/3 is negative the problem is conjugated so that the shift
// is non-negative, then the multiplicity is the size of a clipped integer range.
// Invalid labels yield 0.
func OuterMultiplicity(x1, x2, x3 SU3) int {
	if !x1.Valid() || !x2.Valid() || !x3.Valid() {
		return 0
	}
	nx := x1.Lambda + x2.Lambda - x3.Lambda - x1.Mu - x2.Mu + x3.Mu
	if nx%3 != 0 {
		return 0
	}
	shift := nx / 3

	l1, l2, m1, m2, m3 := x1.Lambda, x2.Lambda, x1.Mu, x2.Mu, x3.Mu
	if shift < 0 {
		l1, l2, m1, m2, m3 = x1.Mu, x2.Mu, x1.Lambda, x2.Lambda, x3.Lambda
		shift = -shift
	}

	n := shift + m1 + m2 - m3
	mu := min(l1-shift, m2)
	if mu < 0 {
		return 0
	}
	nu := min(l2-shift, m1)
	if nu < 0 {
		return 0
	}

	return max(min(n, nu)-max(n-mu, 0)+1, 0)
}

// KroneckerProduct enumerates x1 ⊗ x2. Each result carries ρmax in Tag and
// results are ordered by ascending (λ,μ).
func KroneckerProduct(x1, x2 SU3) []Tagged[SU3] {
	if !x1.Valid() || !x2.Valid() {
		return nil
	}
	bound := x1.Lambda + x1.Mu + x2.Lambda + x2.Mu
	var out []Tagged[SU3]
	for l := 0; l <= bound; l++ {
		for m := 0; l+m <= bound; m++ {
			x3 := SU3{Lambda: l, Mu: m}
			if rho := OuterMultiplicity(x1, x2, x3); rho > 0 {
				out = append(out, Tagged[SU3]{Irrep: x3, Tag: rho})
			}
		}
	}

	return out
}

// KroneckerProductU3 couples two U(3) labels through their SU(3) content.
// The total quanta add; every product carries ρmax in Tag. Products whose U(3)
// weight is not ordered are dropped.
func KroneckerProductU3(w, n U3) []Tagged[U3] {
	total := w.N() + n.N()
	products := KroneckerProduct(w.SU3(), n.SU3())
	out := make([]Tagged[U3], 0, len(products))
	for _, p := range products {
		v := FromSU3(total, p.Irrep)
		if !v.Valid() {
			continue
		}
		out = append(out, Tagged[U3]{Irrep: v, Tag: p.Tag})
	}

	return out
}
