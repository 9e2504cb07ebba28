// Package sp3rlib computes the SU(3) and Sp(3,R) quantities needed by
// symplectic no-core shell-model codes: multiplicity-aware blocks of SU(3)
// recoupling coefficients and the vector coherent state K matrices of
// Sp(3,R) irreps.
//
// The module is organized into subpackages:
//
//	u3/      SU(3) and U(3) labels, Kronecker products, outer and
//	         SU(3)⊃SO(3) multiplicities, the grading function Ω
//	su3lib/  boundary to the raw coefficient kernel (Evaluator, Library)
//	u3coef/  coefficient label keys, multiplicity blocks, the per-family
//	         Cache with cached/direct evaluation, observers and metrics
//	matrix/  dense matrices, Jacobi eigendecomposition, symmetric square root
//	sp3r/    U(3) subspace structure of a truncated Sp(3,R) irrep
//	vcs/     boson creation matrix elements and the K-matrix generator,
//	         single irrep or a concurrent batch
//	config/  YAML run configuration mapped onto the package options
//
// Typical flow:
//
//	kernel := su3lib.New(evaluator)
//	kernel.Init()
//	cache := u3coef.NewCache[u3coef.ULabels](kernel)
//	irrep, _ := sp3r.NewSpace(sigma, nmax)
//	km, _ := vcs.GenerateKMatrices(irrep, cache)
//	k := km.K(omega)
//
// A Cache is not safe for concurrent use; give every goroutine its own, as
// vcs.GenerateAll does.
package sp3rlib
