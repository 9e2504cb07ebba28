// SPDX-License-Identifier: MIT

package su3lib

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/sp3rlib/u3"
)

// MaxK is the largest multiplicity per coupling channel the kernel buffers hold.
const MaxK = 9

// Evaluator computes single raw coefficients. Implementations must be
// deterministic and free of side effects: the cache relies on it.
//
// Multiplicity indices are 1-based.
type Evaluator interface {
	// U is the Racah recoupling coefficient (1×2)×3 → 1×(2×3).
	U(x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x23 u3.SU3, r23, r1_23 int) float64
	// Z is the recoupling coefficient (1×2)×3 → 2×(1×3).
	Z(x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x13 u3.SU3, r13, r2_13 int) float64
	// W is the reduced SU(3) ⊃ SO(3) Wigner coefficient.
	W(x1 u3.SU3, k1, l1 int, x2 u3.SU3, k2, l2 int, x3 u3.SU3, k3, l3 int, rho int) float64
	// Phi is the phase picked up when the coupling order of x1 and x2 is swapped.
	Phi(x1, x2, x3 u3.SU3, r, rp int) float64
	// Unitary9LambdaMu is the unitary 9-(λ,μ) recoupling symbol
	// (x1 x2)x12,ρ12 (x3 x4)x34,ρ34 → (x1 x3)x13,ρ13 (x2 x4)x24,ρ24 at fixed x.
	Unitary9LambdaMu(x1, x2, x12 u3.SU3, r12 int, x3, x4, x34 u3.SU3, r34 int, x13, x24, x u3.SU3, r13_24, r13, r24, r12_34 int) float64
}

// Initializer is implemented by evaluators that need one-time setup
// (table generation, library blocks).
type Initializer interface {
	Init()
}

// Kernel is everything the caching layer needs from the numeric library.
type Kernel interface {
	Evaluator
	// OuterMultiplicity is ρmax for x3 ∈ x1 ⊗ x2.
	OuterMultiplicity(x1, x2, x3 u3.SU3) int
	// BranchingMultiplicity is κmax for L ∈ x.
	BranchingMultiplicity(x u3.SU3, l int) int
}

// Library wraps an Evaluator into a Kernel.
//
// Until Init has been called every coefficient method returns NaN, mirroring
// the underlying library; multiplicity counts are closed-form and always valid.
// Library is safe for concurrent use once initialized, provided the wrapped
// Evaluator is.
type Library struct {
	eval  Evaluator
	once  sync.Once
	ready atomic.Bool
}

// New wraps eval. It panics on a nil evaluator (programmer error).
func New(eval Evaluator) *Library {
	if eval == nil {
		panic("su3lib: New: nil evaluator")
	}

	return &Library{eval: eval}
}

// Init performs the one-time kernel initialization. Repeated calls are no-ops.
func (l *Library) Init() {
	l.once.Do(func() {
		if in, ok := l.eval.(Initializer); ok {
			in.Init()
		}
		l.ready.Store(true)
	})
}

// Initialized reports whether Init has run.
func (l *Library) Initialized() bool { return l.ready.Load() }

// OuterMultiplicity implements Kernel.
func (l *Library) OuterMultiplicity(x1, x2, x3 u3.SU3) int {
	return u3.OuterMultiplicity(x1, x2, x3)
}

// BranchingMultiplicity implements Kernel.
func (l *Library) BranchingMultiplicity(x u3.SU3, L int) int {
	return u3.BranchingMultiplicity(x, L)
}

// U implements Evaluator.
func (l *Library) U(x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x23 u3.SU3, r23, r1_23 int) float64 {
	if !l.ready.Load() {
		return math.NaN()
	}

	return l.eval.U(x1, x2, x, x3, x12, r12, r12_3, x23, r23, r1_23)
}

// Z implements Evaluator.
func (l *Library) Z(x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x13 u3.SU3, r13, r2_13 int) float64 {
	if !l.ready.Load() {
		return math.NaN()
	}

	return l.eval.Z(x1, x2, x, x3, x12, r12, r12_3, x13, r13, r2_13)
}

// W implements Evaluator.
func (l *Library) W(x1 u3.SU3, k1, l1 int, x2 u3.SU3, k2, l2 int, x3 u3.SU3, k3, l3 int, rho int) float64 {
	if !l.ready.Load() {
		return math.NaN()
	}

	return l.eval.W(x1, k1, l1, x2, k2, l2, x3, k3, l3, rho)
}

// Phi implements Evaluator.
func (l *Library) Phi(x1, x2, x3 u3.SU3, r, rp int) float64 {
	if !l.ready.Load() {
		return math.NaN()
	}

	return l.eval.Phi(x1, x2, x3, r, rp)
}

// Unitary9LambdaMu implements Evaluator.
func (l *Library) Unitary9LambdaMu(x1, x2, x12 u3.SU3, r12 int, x3, x4, x34 u3.SU3, r34 int, x13, x24, x u3.SU3, r13_24, r13, r24, r12_34 int) float64 {
	if !l.ready.Load() {
		return math.NaN()
	}

	return l.eval.Unitary9LambdaMu(x1, x2, x12, r12, x3, x4, x34, r34, x13, x24, x, r13_24, r13, r24, r12_34)
}
