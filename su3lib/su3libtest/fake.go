// SPDX-License-Identifier: MIT

// Package su3libtest provides a deterministic stand-in Evaluator for tests.
//
// Values are not physical except where a closed form is trivial: recoupling
// coefficients with a scalar (0,0) irrep among x1, x2, x3 are 1, the 9-(λ,μ)
// symbol with scalar x2 and x3 is 1, and Phi is the multiplicity-free phase on
// the diagonal. Every other value is a stable pseudo-random number in (−1, 1)
// derived from the arguments, so two calls with the same labels always agree
// bit for bit.
package su3libtest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/sp3rlib/su3lib"
	"github.com/katalvlaran/sp3rlib/u3"
)

// Evaluator counts every raw evaluation per family.
type Evaluator struct {
	UCalls   atomic.Int64
	ZCalls   atomic.Int64
	WCalls   atomic.Int64
	PhiCalls atomic.Int64
	U9Calls  atomic.Int64
	Inits    atomic.Int64
}

var _ su3lib.Evaluator = (*Evaluator)(nil)

// NewKernel returns an initialized Library around a fresh Evaluator.
func NewKernel() (*su3lib.Library, *Evaluator) {
	ev := &Evaluator{}
	lib := su3lib.New(ev)
	lib.Init()

	return lib, ev
}

// Init implements su3lib.Initializer.
func (e *Evaluator) Init() { e.Inits.Add(1) }

// Total returns the number of raw evaluations across all families.
func (e *Evaluator) Total() int64 {
	return e.UCalls.Load() + e.ZCalls.Load() + e.WCalls.Load() + e.PhiCalls.Load() + e.U9Calls.Load()
}

// U implements su3lib.Evaluator.
func (e *Evaluator) U(x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x23 u3.SU3, r23, r1_23 int) float64 {
	e.UCalls.Add(1)
	if x1 == u3.Zero || x2 == u3.Zero || x3 == u3.Zero {
		return 1
	}

	return pseudo('U', labels(x1, x2, x, x3, x12, x23), r12, r12_3, r23, r1_23)
}

// Z implements su3lib.Evaluator.
func (e *Evaluator) Z(x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x13 u3.SU3, r13, r2_13 int) float64 {
	e.ZCalls.Add(1)
	if x1 == u3.Zero || x2 == u3.Zero || x3 == u3.Zero {
		return 1
	}

	return pseudo('Z', labels(x1, x2, x, x3, x12, x13), r12, r12_3, r13, r2_13)
}

// W implements su3lib.Evaluator.
func (e *Evaluator) W(x1 u3.SU3, k1, l1 int, x2 u3.SU3, k2, l2 int, x3 u3.SU3, k3, l3 int, rho int) float64 {
	e.WCalls.Add(1)

	return pseudo('W', labels(x1, x2, x3), l1, l2, l3, k1, k2, k3, rho)
}

// Phi implements su3lib.Evaluator.
func (e *Evaluator) Phi(x1, x2, x3 u3.SU3, r, rp int) float64 {
	e.PhiCalls.Add(1)
	if r == rp {
		if (x1.Lambda+x1.Mu+x2.Lambda+x2.Mu-x3.Lambda-x3.Mu)%2 == 0 {
			return 1
		}
		return -1
	}

	return pseudo('P', labels(x1, x2, x3), r, rp)
}

// Unitary9LambdaMu implements su3lib.Evaluator. With x2 and x3 both scalar the
// recoupling is the identity and the symbol is 1.
func (e *Evaluator) Unitary9LambdaMu(x1, x2, x12 u3.SU3, r12 int, x3, x4, x34 u3.SU3, r34 int, x13, x24, x u3.SU3, r13_24, r13, r24, r12_34 int) float64 {
	e.U9Calls.Add(1)
	if x2 == u3.Zero && x3 == u3.Zero {
		return 1
	}

	return pseudo('9', labels(x1, x2, x12, x3, x4, x34, x13, x24, x), r12, r34, r13_24, r13, r24, r12_34)
}

func labels(xs ...u3.SU3) []int {
	out := make([]int, 0, 2*len(xs))
	for _, x := range xs {
		out = append(out, x.Lambda, x.Mu)
	}

	return out
}

// pseudo maps the arguments to a stable value in (−1, 1).
func pseudo(family byte, xs []int, idx ...int) float64 {
	buf := make([]byte, 1, 1+8*(len(xs)+len(idx)))
	buf[0] = family
	for _, v := range append(xs, idx...) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
	}
	h := xxhash.Sum64(buf)

	return float64(h>>11)/float64(1<<53)*2 - 1
}
