// SPDX-License-Identifier: MIT

package u3

import "fmt"

// Label is satisfied by SU3 and U3.
type Label interface {
	comparable
	fmt.Stringer
}

// Tagged pairs a label with an outer-multiplicity tag ρ.
// Depending on context Tag is either a multiplicity index (1-based) or a
// multiplicity count ρmax (KroneckerProduct results).
type Tagged[T Label] struct {
	Irrep T
	Tag   int
}

// String formats the pair as "label_ρ".
func (t Tagged[T]) String() string { return fmt.Sprintf("%s_%d", t.Irrep, t.Tag) }
