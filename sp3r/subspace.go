// SPDX-License-Identifier: MIT

package sp3r

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/sp3rlib/u3"
)

// State is one basis state of a subspace: the raising label n tagged with the
// outer-multiplicity index ρ of σ⊗n → ω.
type State = u3.Tagged[u3.U3]

// Subspace is the U(3) subspace ω of an irrep together with its states.
type Subspace struct {
	omega  u3.U3
	states []State
}

// NewSubspace returns the subspace ω spanned by states, ordered by (n, ρ).
func NewSubspace(omega u3.U3, states ...State) Subspace {
	s := Subspace{omega: omega, states: slices.Clone(states)}
	slices.SortFunc(s.states, compareStates)

	return s
}

func compareStates(a, b State) int {
	if c := a.Irrep.Compare(b.Irrep); c != 0 {
		return c
	}

	return a.Tag - b.Tag
}

// Label returns ω.
func (s Subspace) Label() u3.U3 { return s.omega }

// Size returns the number of states.
func (s Subspace) Size() int { return len(s.states) }

// State returns the i-th state (0-based).
func (s Subspace) State(i int) State { return s.states[i] }

// States returns a copy of the ordered states.
func (s Subspace) States() []State { return slices.Clone(s.states) }

func (s Subspace) String() string {
	parts := make([]string, len(s.states))
	for i, st := range s.states {
		parts[i] = st.String()
	}

	return fmt.Sprintf("%s{%s}", s.omega, strings.Join(parts, " "))
}
