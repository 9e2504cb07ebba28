// SPDX-License-Identifier: MIT

package u3coef

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sp3rlib/su3lib"
	"github.com/katalvlaran/sp3rlib/u3"
)

func wrapLabels[L Labels](labels L, err error) error {
	return fmt.Errorf("%s: %w", labels, err)
}

// Direct evaluates one coefficient through the kernel without any cache.
// The index tuple is validated against the resolved multiplicities exactly as
// a block would validate it, so cached and direct paths fail identically.
func Direct[L Labels](k su3lib.Kernel, labels L, idx ...int) (float64, error) {
	if k == nil {
		return 0, ErrNilKernel
	}
	dims := labels.Multiplicity(k)
	if _, err := dims.Offset(idx); err != nil {
		return 0, wrapLabels(labels, err)
	}
	if err := dims.checkCap(); err != nil {
		return 0, wrapLabels(labels, err)
	}
	v := labels.Evaluate(k, idx)
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%s%v: %w", labels, idx, ErrNaN)
	}

	return v, nil
}

// U evaluates the recoupling coefficient U[x1 x2 x x3; x12 ρ12 ρ12,3; x23 ρ23 ρ1,23].
func U(k su3lib.Kernel, x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x23 u3.SU3, r23, r1_23 int) (float64, error) {
	return Direct(k, ULabels{X1: x1, X2: x2, X: x, X3: x3, X12: x12, X23: x23}, r12, r12_3, r23, r1_23)
}

// UCached is U through cache c.
func UCached(c *UCache, x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x23 u3.SU3, r23, r1_23 int) (float64, error) {
	return c.Get(ULabels{X1: x1, X2: x2, X: x, X3: x3, X12: x12, X23: x23}, r12, r12_3, r23, r1_23)
}

// Z evaluates the recoupling coefficient Z[x1 x2 x x3; x12 ρ12 ρ12,3; x13 ρ13 ρ2,13].
func Z(k su3lib.Kernel, x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x13 u3.SU3, r13, r2_13 int) (float64, error) {
	return Direct(k, ZLabels{X1: x1, X2: x2, X: x, X3: x3, X12: x12, X13: x13}, r12, r12_3, r13, r2_13)
}

// ZCached is Z through cache c.
func ZCached(c *ZCache, x1, x2, x, x3, x12 u3.SU3, r12, r12_3 int, x13 u3.SU3, r13, r2_13 int) (float64, error) {
	return c.Get(ZLabels{X1: x1, X2: x2, X: x, X3: x3, X12: x12, X13: x13}, r12, r12_3, r13, r2_13)
}

// W evaluates the Wigner coefficient <x1 κ1 L1; x2 κ2 L2 || x3 κ3 L3>_ρ.
func W(k su3lib.Kernel, x1 u3.SU3, k1, l1 int, x2 u3.SU3, k2, l2 int, x3 u3.SU3, k3, l3 int, rho int) (float64, error) {
	return Direct(k, WLabels{X1: x1, L1: l1, X2: x2, L2: l2, X3: x3, L3: l3}, k1, k2, k3, rho)
}

// WCached is W through cache c.
func WCached(c *WCache, x1 u3.SU3, k1, l1 int, x2 u3.SU3, k2, l2 int, x3 u3.SU3, k3, l3 int, rho int) (float64, error) {
	return c.Get(WLabels{X1: x1, L1: l1, X2: x2, L2: l2, X3: x3, L3: l3}, k1, k2, k3, rho)
}

// Phi evaluates the coupling-order phase Phi[x1 x2 x3]_{ρ,ρ′}.
func Phi(k su3lib.Kernel, x1, x2, x3 u3.SU3, r, rp int) (float64, error) {
	return Direct(k, PhiLabels{X1: x1, X2: x2, X3: x3}, r, rp)
}

// PhiCached is Phi through cache c.
func PhiCached(c *PhiCache, x1, x2, x3 u3.SU3, r, rp int) (float64, error) {
	return c.Get(PhiLabels{X1: x1, X2: x2, X3: x3}, r, rp)
}

// Unitary9LambdaMu evaluates the unitary 9-(λ,μ) symbol
// [x1 x2 x12 ρ12; x3 x4 x34 ρ34; x13 x24 x ρ13,24] with inner tags ρ13, ρ24
// and ρ12,34.
func Unitary9LambdaMu(k su3lib.Kernel, x1, x2, x12 u3.SU3, r12 int, x3, x4, x34 u3.SU3, r34 int, x13, x24, x u3.SU3, r13_24, r13, r24, r12_34 int) (float64, error) {
	l := U9LMLabels{X1: x1, X2: x2, X12: x12, X3: x3, X4: x4, X34: x34, X13: x13, X24: x24, X: x}
	return Direct(k, l, r12, r34, r13_24, r13, r24, r12_34)
}

// Unitary9LambdaMuCached is Unitary9LambdaMu through cache c.
func Unitary9LambdaMuCached(c *U9LMCache, x1, x2, x12 u3.SU3, r12 int, x3, x4, x34 u3.SU3, r34 int, x13, x24, x u3.SU3, r13_24, r13, r24, r12_34 int) (float64, error) {
	l := U9LMLabels{X1: x1, X2: x2, X12: x12, X3: x3, X4: x4, X34: x34, X13: x13, X24: x24, X: x}
	return c.Get(l, r12, r34, r13_24, r13, r24, r12_34)
}
