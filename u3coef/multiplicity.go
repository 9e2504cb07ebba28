// SPDX-License-Identifier: MIT

package u3coef

import (
	"fmt"

	"github.com/katalvlaran/sp3rlib/su3lib"
)

// Multiplicity holds the maximum index of every coupling channel of one key.
type Multiplicity []int

// Size is the number of index combinations: the product of all maxima,
// 0 when any channel is empty.
func (m Multiplicity) Size() int {
	if len(m) == 0 {
		return 0
	}
	n := 1
	for _, d := range m {
		if d <= 0 {
			return 0
		}
		n *= d
	}

	return n
}

// Allowed reports whether the labels couple at all.
func (m Multiplicity) Allowed() bool { return m.Size() > 0 }

// Strides returns row-major strides, last channel fastest.
func (m Multiplicity) Strides() []int {
	s := make([]int, len(m))
	acc := 1
	for c := len(m) - 1; c >= 0; c-- {
		s[c] = acc
		acc *= m[c]
	}

	return s
}

// Offset flattens a 1-based index tuple. It fails with ErrInvalidIndex on the
// wrong arity or an index outside 1..max.
func (m Multiplicity) Offset(idx []int) (int, error) {
	if len(idx) != len(m) {
		return 0, fmt.Errorf("%w: got %d indices, want %d", ErrInvalidIndex, len(idx), len(m))
	}
	off, stride := 0, 1
	for c := len(m) - 1; c >= 0; c-- {
		if idx[c] < 1 || idx[c] > m[c] {
			return 0, fmt.Errorf("%w: index %d = %d, max %d", ErrInvalidIndex, c, idx[c], m[c])
		}
		off += (idx[c] - 1) * stride
		stride *= m[c]
	}

	return off, nil
}

// checkCap rejects maxima the kernel buffers cannot hold.
func (m Multiplicity) checkCap() error {
	for c, d := range m {
		if d > su3lib.MaxK {
			return fmt.Errorf("%w: channel %d = %d > %d", ErrMultiplicityOverflow, c, d, su3lib.MaxK)
		}
	}

	return nil
}

// UMultiplicity resolves (ρ12max, ρ12,3max, ρ23max, ρ1,23max) for
// U[x1 x2 x x3; x12 x23]:
//
//	ρ12   : x1 ⊗ x2  → x12
//	ρ12,3 : x12 ⊗ x3 → x
//	ρ23   : x2 ⊗ x3  → x23
//	ρ1,23 : x1 ⊗ x23 → x
func UMultiplicity(k su3lib.Kernel, l ULabels) Multiplicity {
	return Multiplicity{
		k.OuterMultiplicity(l.X1, l.X2, l.X12),
		k.OuterMultiplicity(l.X12, l.X3, l.X),
		k.OuterMultiplicity(l.X2, l.X3, l.X23),
		k.OuterMultiplicity(l.X1, l.X23, l.X),
	}
}

// ZMultiplicity resolves (ρ12max, ρ12,3max, ρ13max, ρ2,13max) for
// Z[x1 x2 x x3; x12 x13].
func ZMultiplicity(k su3lib.Kernel, l ZLabels) Multiplicity {
	return Multiplicity{
		k.OuterMultiplicity(l.X1, l.X2, l.X12),
		k.OuterMultiplicity(l.X12, l.X3, l.X),
		k.OuterMultiplicity(l.X1, l.X3, l.X13),
		k.OuterMultiplicity(l.X2, l.X13, l.X),
	}
}

// WMultiplicity resolves (κ1max, κ2max, κ3max, ρmax) for <x1 L1; x2 L2 || x3 L3>.
func WMultiplicity(k su3lib.Kernel, l WLabels) Multiplicity {
	return Multiplicity{
		k.BranchingMultiplicity(l.X1, l.L1),
		k.BranchingMultiplicity(l.X2, l.L2),
		k.BranchingMultiplicity(l.X3, l.L3),
		k.OuterMultiplicity(l.X1, l.X2, l.X3),
	}
}

// PhiMultiplicity resolves (ρmax, ρmax) for Phi[x1 x2 x3]; the phase is a
// ρmax×ρmax matrix.
func PhiMultiplicity(k su3lib.Kernel, l PhiLabels) Multiplicity {
	rho := k.OuterMultiplicity(l.X1, l.X2, l.X3)

	return Multiplicity{rho, rho}
}

// U9LMMultiplicity resolves (ρ12max, ρ34max, ρ13,24max, ρ13max, ρ24max,
// ρ12,34max) for the 9-(λ,μ) symbol:
//
//	ρ12    : x1 ⊗ x2   → x12
//	ρ34    : x3 ⊗ x4   → x34
//	ρ13,24 : x13 ⊗ x24 → x
//	ρ13    : x1 ⊗ x3   → x13
//	ρ24    : x2 ⊗ x4   → x24
//	ρ12,34 : x12 ⊗ x34 → x
func U9LMMultiplicity(k su3lib.Kernel, l U9LMLabels) Multiplicity {
	return Multiplicity{
		k.OuterMultiplicity(l.X1, l.X2, l.X12),
		k.OuterMultiplicity(l.X3, l.X4, l.X34),
		k.OuterMultiplicity(l.X13, l.X24, l.X),
		k.OuterMultiplicity(l.X1, l.X3, l.X13),
		k.OuterMultiplicity(l.X2, l.X4, l.X24),
		k.OuterMultiplicity(l.X12, l.X34, l.X),
	}
}
