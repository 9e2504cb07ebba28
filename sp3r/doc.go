// SPDX-License-Identifier: MIT

// Package sp3r describes the U(3) structure of an Sp(3,R) irrep: the
// lowest weight σ, the U(3) subspaces ω reached by coupling σ with even boson
// raising labels n, and the ordered multiplicity-tagged states (n, ρ) that
// span each subspace.
//
// Spaces are truncated by the total number of raised quanta Nmax. Subspaces
// are ordered by N(ω) and then by label, so every subspace comes after the
// subspaces it can be lowered to by one boson pair.
package sp3r
