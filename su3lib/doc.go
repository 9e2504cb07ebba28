// SPDX-License-Identifier: MIT

// Package su3lib is the boundary to the primitive SU(3) numeric kernel.
//
// The kernel evaluates one raw recoupling (U, Z, 9-(λ,μ)), Wigner (W) or phase
// (Phi) symbol from bare group labels and multiplicity indices. How it does so is
// opaque here: callers plug an Evaluator in and this package adds the parts
// every kernel shares:
//
//   - a one-time Init, before which all values are NaN;
//   - closed-form multiplicity counts (outer and SU(3) ⊃ SO(3) branching);
//   - the per-channel buffer cap MaxK.
//
// The caching layer in package u3coef depends only on the Kernel interface.
package su3lib
