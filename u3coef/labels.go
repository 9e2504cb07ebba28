// SPDX-License-Identifier: MIT

package u3coef

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/sp3rlib/su3lib"
	"github.com/katalvlaran/sp3rlib/u3"
)

// Family names a coefficient family.
type Family string

// Coefficient families.
const (
	FamilyU    Family = "U"
	FamilyZ    Family = "Z"
	FamilyW    Family = "W"
	FamilyPhi  Family = "Phi"
	FamilyU9LM Family = "U9LM"
)

// Labels is a cache key: the group labels of one coefficient block.
//
// Implementations are comparable value types so that structural equality is
// map equality. Key returns the canonical integer tuple that ordering and
// hashing are derived from.
type Labels interface {
	comparable
	fmt.Stringer

	Family() Family
	Key() []int
	// Multiplicity resolves the per-channel maxima through the kernel.
	Multiplicity(k su3lib.Kernel) Multiplicity
	// Evaluate makes one raw kernel call for the 1-based index tuple idx.
	// idx must already be validated against Multiplicity.
	Evaluate(k su3lib.Kernel, idx []int) float64
}

// CompareLabels orders two keys of the same family by their canonical tuples.
func CompareLabels[L Labels](a, b L) int { return slices.Compare(a.Key(), b.Key()) }

// hashKey hashes the family tag followed by the canonical tuple.
func hashKey(f Family, key []int) uint64 {
	buf := make([]byte, 0, len(f)+8*len(key))
	buf = append(buf, string(f)...)
	for _, v := range key {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
	}

	return xxhash.Sum64(buf)
}

func appendSU3(dst []int, xs ...u3.SU3) []int {
	for _, x := range xs {
		dst = append(dst, x.Lambda, x.Mu)
	}

	return dst
}

// ---------- U ----------

// ULabels keys the Racah U coefficient U[x1 x2 x x3; x12 x23].
type ULabels struct {
	X1, X2, X, X3, X12, X23 u3.SU3
}

// Family implements Labels.
func (l ULabels) Family() Family { return FamilyU }

// Key returns (x1, x2, x, x3, x12, x23) flattened to λ,μ pairs.
func (l ULabels) Key() []int {
	return appendSU3(make([]int, 0, 12), l.X1, l.X2, l.X, l.X3, l.X12, l.X23)
}

// Compare orders keys by their canonical tuple.
func (l ULabels) Compare(o ULabels) int { return CompareLabels(l, o) }

// Hash is stable across processes and equal for structurally equal keys.
func (l ULabels) Hash() uint64 { return hashKey(FamilyU, l.Key()) }

// Multiplicity implements Labels via UMultiplicity.
func (l ULabels) Multiplicity(k su3lib.Kernel) Multiplicity { return UMultiplicity(k, l) }

// Allowed reports whether every coupling channel is non-empty.
func (l ULabels) Allowed(k su3lib.Kernel) bool { return l.Multiplicity(k).Allowed() }

// Evaluate implements Labels.
func (l ULabels) Evaluate(k su3lib.Kernel, idx []int) float64 {
	return k.U(l.X1, l.X2, l.X, l.X3, l.X12, idx[0], idx[1], l.X23, idx[2], idx[3])
}

func (l ULabels) String() string {
	return fmt.Sprintf("U[%s %s %s %s; %s %s]", l.X1, l.X2, l.X, l.X3, l.X12, l.X23)
}

// ---------- Z ----------

// ZLabels keys the recoupling coefficient Z[x1 x2 x x3; x12 x13].
type ZLabels struct {
	X1, X2, X, X3, X12, X13 u3.SU3
}

// Family implements Labels.
func (l ZLabels) Family() Family { return FamilyZ }

// Key returns (x1, x2, x, x3, x12, x13) flattened to λ,μ pairs.
func (l ZLabels) Key() []int {
	return appendSU3(make([]int, 0, 12), l.X1, l.X2, l.X, l.X3, l.X12, l.X13)
}

// Compare orders keys by their canonical tuple.
func (l ZLabels) Compare(o ZLabels) int { return CompareLabels(l, o) }

// Hash is stable across processes and equal for structurally equal keys.
func (l ZLabels) Hash() uint64 { return hashKey(FamilyZ, l.Key()) }

// Multiplicity implements Labels via ZMultiplicity.
func (l ZLabels) Multiplicity(k su3lib.Kernel) Multiplicity { return ZMultiplicity(k, l) }

// Allowed reports whether every coupling channel is non-empty.
func (l ZLabels) Allowed(k su3lib.Kernel) bool { return l.Multiplicity(k).Allowed() }

// Evaluate implements Labels.
func (l ZLabels) Evaluate(k su3lib.Kernel, idx []int) float64 {
	return k.Z(l.X1, l.X2, l.X, l.X3, l.X12, idx[0], idx[1], l.X13, idx[2], idx[3])
}

func (l ZLabels) String() string {
	return fmt.Sprintf("Z[%s %s %s %s; %s %s]", l.X1, l.X2, l.X, l.X3, l.X12, l.X13)
}

// ---------- W ----------

// WLabels keys the reduced Wigner coefficient <x1 L1; x2 L2 || x3 L3>.
type WLabels struct {
	X1 u3.SU3
	L1 int
	X2 u3.SU3
	L2 int
	X3 u3.SU3
	L3 int
}

// Family implements Labels.
func (l WLabels) Family() Family { return FamilyW }

// Key returns (x1, L1, x2, L2, x3, L3) with each SU(3) label flattened.
func (l WLabels) Key() []int {
	return []int{
		l.X1.Lambda, l.X1.Mu, l.L1,
		l.X2.Lambda, l.X2.Mu, l.L2,
		l.X3.Lambda, l.X3.Mu, l.L3,
	}
}

// Compare orders keys by their canonical tuple.
func (l WLabels) Compare(o WLabels) int { return CompareLabels(l, o) }

// Hash is stable across processes and equal for structurally equal keys.
func (l WLabels) Hash() uint64 { return hashKey(FamilyW, l.Key()) }

// Multiplicity implements Labels via WMultiplicity.
func (l WLabels) Multiplicity(k su3lib.Kernel) Multiplicity { return WMultiplicity(k, l) }

// Allowed reports whether every branching and coupling channel is non-empty.
func (l WLabels) Allowed(k su3lib.Kernel) bool { return l.Multiplicity(k).Allowed() }

// Evaluate implements Labels.
func (l WLabels) Evaluate(k su3lib.Kernel, idx []int) float64 {
	return k.W(l.X1, idx[0], l.L1, l.X2, idx[1], l.L2, l.X3, idx[2], l.L3, idx[3])
}

func (l WLabels) String() string {
	return fmt.Sprintf("W[%s %d; %s %d || %s %d]", l.X1, l.L1, l.X2, l.L2, l.X3, l.L3)
}

// ---------- Phi ----------

// PhiLabels keys the coupling-order phase Phi[x1 x2 x3].
type PhiLabels struct {
	X1, X2, X3 u3.SU3
}

// Family implements Labels.
func (l PhiLabels) Family() Family { return FamilyPhi }

// Key returns (x1, x2, x3) flattened to λ,μ pairs.
func (l PhiLabels) Key() []int { return appendSU3(make([]int, 0, 6), l.X1, l.X2, l.X3) }

// Compare orders keys by their canonical tuple.
func (l PhiLabels) Compare(o PhiLabels) int { return CompareLabels(l, o) }

// Hash is stable across processes and equal for structurally equal keys.
func (l PhiLabels) Hash() uint64 { return hashKey(FamilyPhi, l.Key()) }

// Multiplicity implements Labels via PhiMultiplicity.
func (l PhiLabels) Multiplicity(k su3lib.Kernel) Multiplicity { return PhiMultiplicity(k, l) }

// Allowed reports whether x3 occurs in x1 ⊗ x2.
func (l PhiLabels) Allowed(k su3lib.Kernel) bool { return l.Multiplicity(k).Allowed() }

// Evaluate implements Labels.
func (l PhiLabels) Evaluate(k su3lib.Kernel, idx []int) float64 {
	return k.Phi(l.X1, l.X2, l.X3, idx[0], idx[1])
}

func (l PhiLabels) String() string { return fmt.Sprintf("Phi[%s %s %s]", l.X1, l.X2, l.X3) }

// ---------- 9-(λ,μ) ----------

// U9LMLabels keys the unitary 9-(λ,μ) symbol
//
//	| x1  x2  x12 |
//	| x3  x4  x34 |
//	| x13 x24 x   |
type U9LMLabels struct {
	X1, X2, X12, X3, X4, X34, X13, X24, X u3.SU3
}

// Family implements Labels.
func (l U9LMLabels) Family() Family { return FamilyU9LM }

// Key returns the nine labels row by row, flattened to λ,μ pairs.
func (l U9LMLabels) Key() []int {
	return appendSU3(make([]int, 0, 18), l.X1, l.X2, l.X12, l.X3, l.X4, l.X34, l.X13, l.X24, l.X)
}

// Compare orders keys by their canonical tuple.
func (l U9LMLabels) Compare(o U9LMLabels) int { return CompareLabels(l, o) }

// Hash is stable across processes and equal for structurally equal keys.
func (l U9LMLabels) Hash() uint64 { return hashKey(FamilyU9LM, l.Key()) }

// Multiplicity implements Labels via U9LMMultiplicity.
func (l U9LMLabels) Multiplicity(k su3lib.Kernel) Multiplicity { return U9LMMultiplicity(k, l) }

// Allowed reports whether all six couplings of the symbol exist.
func (l U9LMLabels) Allowed(k su3lib.Kernel) bool { return l.Multiplicity(k).Allowed() }

// Evaluate implements Labels.
func (l U9LMLabels) Evaluate(k su3lib.Kernel, idx []int) float64 {
	return k.Unitary9LambdaMu(l.X1, l.X2, l.X12, idx[0], l.X3, l.X4, l.X34, idx[1],
		l.X13, l.X24, l.X, idx[2], idx[3], idx[4], idx[5])
}

func (l U9LMLabels) String() string {
	return fmt.Sprintf("U9LM[%s %s %s; %s %s %s; %s %s %s]",
		l.X1, l.X2, l.X12, l.X3, l.X4, l.X34, l.X13, l.X24, l.X)
}
