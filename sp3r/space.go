// SPDX-License-Identifier: MIT

package sp3r

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sp3rlib/u3"
)

// Space is the truncated U(3) decomposition of one Sp(3,R) irrep.
type Space struct {
	sigma     u3.U3
	subspaces []Subspace
	index     map[u3.U3]int
}

// NewSpace enumerates the irrep with lowest weight sigma up to nmax raised
// quanta. For N = 0, 2, …, nmax every even raising label n with N quanta is
// coupled to sigma, and each product ω with multiplicity ρmax contributes the
// states (n, 1..ρmax) to the subspace ω.
//
// Pauli-allowed truncation of the basis is not applied.
func NewSpace(sigma u3.U3, nmax int) (*Space, error) {
	if !sigma.Valid() {
		return nil, fmt.Errorf("NewSpace %s: %w", sigma, ErrInvalidSigma)
	}
	if nmax < 0 || nmax%2 != 0 {
		return nil, fmt.Errorf("NewSpace nmax=%d: %w", nmax, ErrInvalidNmax)
	}

	states := make(map[u3.U3][]State)
	for n := 0; n <= nmax; n += 2 {
		for _, raising := range RaisingLabels(n) {
			for _, w := range u3.KroneckerProductU3(sigma, raising) {
				for rho := 1; rho <= w.Tag; rho++ {
					states[w.Irrep] = append(states[w.Irrep], State{Irrep: raising, Tag: rho})
				}
			}
		}
	}

	subspaces := make([]Subspace, 0, len(states))
	for omega, st := range states {
		subspaces = append(subspaces, NewSubspace(omega, st...))
	}

	return NewSpaceFromSubspaces(sigma, subspaces...)
}

// NewSpaceFromSubspaces assembles a space from explicit subspaces. The
// subspaces are reordered by N(ω) then label. Duplicate labels, empty
// subspaces and a missing σ subspace are rejected.
func NewSpaceFromSubspaces(sigma u3.U3, subspaces ...Subspace) (*Space, error) {
	if !sigma.Valid() {
		return nil, fmt.Errorf("NewSpaceFromSubspaces %s: %w", sigma, ErrInvalidSigma)
	}
	sp := &Space{
		sigma:     sigma,
		subspaces: slices.Clone(subspaces),
		index:     make(map[u3.U3]int, len(subspaces)),
	}
	slices.SortFunc(sp.subspaces, compareSubspaces)

	for i, s := range sp.subspaces {
		if s.Size() == 0 {
			return nil, fmt.Errorf("subspace %s: %w", s.omega, ErrEmptySubspace)
		}
		if _, dup := sp.index[s.omega]; dup {
			return nil, fmt.Errorf("subspace %s: %w", s.omega, ErrDuplicateSubspace)
		}
		sp.index[s.omega] = i
	}
	if _, ok := sp.index[sigma]; !ok {
		return nil, fmt.Errorf("sigma %s: %w", sigma, ErrMissingSigma)
	}

	return sp, nil
}

func compareSubspaces(a, b Subspace) int {
	if na, nb := a.omega.N(), b.omega.N(); na != nb {
		if na < nb {
			return -1
		}
		return 1
	}

	return a.omega.Compare(b.omega)
}

// RaisingLabels lists the boson raising labels [n1,n2,n3] with n1 ≥ n2 ≥ n3 ≥ 0,
// all even and n1+n2+n3 = n, in ascending label order. Odd or negative n
// yields nil.
func RaisingLabels(n int) []u3.U3 {
	if n < 0 || n%2 != 0 {
		return nil
	}
	var out []u3.U3
	for n3 := 0; 3*n3 <= n; n3 += 2 {
		for n2 := n3; n2 <= (n-n3)/2; n2 += 2 {
			n1 := n - n2 - n3
			out = append(out, u3.U3{F1: float64(n1), F2: float64(n2), F3: float64(n3)})
		}
	}
	slices.SortFunc(out, u3.U3.Compare)

	return out
}

// Sigma returns the lowest weight.
func (sp *Space) Sigma() u3.U3 { return sp.sigma }

// Size returns the number of subspaces.
func (sp *Space) Size() int { return len(sp.subspaces) }

// Dimension returns the total number of states over all subspaces.
func (sp *Space) Dimension() int {
	d := 0
	for _, s := range sp.subspaces {
		d += s.Size()
	}

	return d
}

// Subspace returns the i-th subspace in traversal order.
func (sp *Space) Subspace(i int) Subspace { return sp.subspaces[i] }

// Contains reports whether ω labels a subspace.
func (sp *Space) Contains(omega u3.U3) bool {
	_, ok := sp.index[omega]
	return ok
}

// Lookup returns the subspace labelled ω.
func (sp *Space) Lookup(omega u3.U3) (Subspace, bool) {
	i, ok := sp.index[omega]
	if !ok {
		return Subspace{}, false
	}

	return sp.subspaces[i], true
}

// Index returns the traversal position of ω, or -1.
func (sp *Space) Index(omega u3.U3) int {
	if i, ok := sp.index[omega]; ok {
		return i
	}

	return -1
}

// Labels returns the subspace labels in traversal order.
func (sp *Space) Labels() []u3.U3 {
	out := make([]u3.U3, len(sp.subspaces))
	for i, s := range sp.subspaces {
		out[i] = s.omega
	}

	return out
}
