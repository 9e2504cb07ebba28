// SPDX-License-Identifier: MIT

// Package u3coef caches SU(3) coupling coefficients in multiplicity blocks.
//
// A coefficient is addressed by a label key (the group labels it depends on)
// and a multiplicity tuple (which of the possibly several couplings is meant).
// All coefficients sharing one key form a Block: a dense row-major array over
// the multiplicity tuple, built once from the kernel and immutable afterwards.
//
// Five families are supported:
//
//	ULabels   Racah recoupling U, indices (ρ12, ρ12,3, ρ23, ρ1,23)
//	ZLabels   recoupling Z,       indices (ρ12, ρ12,3, ρ13, ρ2,13)
//	WLabels   Wigner W,           indices (κ1, κ2, κ3, ρ)
//	PhiLabels phase Phi,          indices (ρ, ρ′)
//	U9LMLabels unitary 9-(λ,μ),   indices (ρ12, ρ34, ρ13,24, ρ13, ρ24, ρ12,34)
//
// All multiplicity indices are 1-based. Within a block the last index varies
// fastest, so for dims (d1,…,dk) the value at (i1,…,ik) sits at offset
// Σ (ic−1)·stride_c with stride_k = 1 and stride_c = stride_(c+1)·d_(c+1).
//
// Cache[L] maps label keys to blocks. Its evaluation mode is an explicit
// option: ModeCached (build once, look up afterwards) or ModeDirect (evaluate
// every request through the kernel, never store). Both return identical
// values. Caches grow monotonically and do no locking; share one across
// goroutines only read-only, or serialize access yourself.
package u3coef
