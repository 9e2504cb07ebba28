// SPDX-License-Identifier: MIT

// Package u3 holds the group-label algebra shared by the coefficient and
// vector-coherent-state packages.
//
// What lives here:
//
//   - SU3: an SU(3) irreducible label (λ,μ).
//   - U3 : a U(3) weight [f1,f2,f3] with f1 ≥ f2 ≥ f3.
//   - Tagged: a label paired with an outer-multiplicity tag ρ.
//   - OuterMultiplicity / KroneckerProduct: SU(3) coupling series.
//   - BranchingMultiplicity: Elliott SU(3) ⊃ SO(3) branching count κmax.
//   - Omega: the grading function used by the K-matrix recursion.
//
// All types are small comparable values and can be used directly as map keys.
// Nothing in this package allocates beyond the returned slices.
package u3
