// SPDX-License-Identifier: MIT

// Package vcs builds the K matrices of the vector coherent state realization
// of an Sp(3,R) irrep.
//
// For every U(3) subspace ω′ of the irrep, in traversal order, the generator
// accumulates
//
//	S(ω′) = Σ_ω C1(ω′,ω) · S(ω) · C2(ω,ω′)
//
// over the subspaces ω reached from ω′ by removing one boson pair, and sets
// K(ω′) = √S(ω′). The lowest-weight subspace seeds the recursion with
// S = K = 1. The C1/C2 entries combine the grading function Ω, the boson
// creation reduced matrix elements and SU(3) recoupling U coefficients served
// by a u3coef cache.
package vcs
