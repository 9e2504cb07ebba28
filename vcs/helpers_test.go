// SPDX-License-Identifier: MIT

package vcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sp3rlib/matrix"
	"github.com/katalvlaran/sp3rlib/sp3r"
	"github.com/katalvlaran/sp3rlib/su3lib"
	"github.com/katalvlaran/sp3rlib/su3lib/su3libtest"
	"github.com/katalvlaran/sp3rlib/u3"
	"github.com/katalvlaran/sp3rlib/u3coef"
)

func w(f1, f2, f3 float64) u3.U3 { return u3.U3{F1: f1, F2: f2, F3: f3} }

func sub(omega u3.U3, ns ...u3.U3) sp3r.Subspace {
	states := make([]sp3r.State, len(ns))
	for i, n := range ns {
		states[i] = sp3r.State{Irrep: n, Tag: 1}
	}

	return sp3r.NewSubspace(omega, states...)
}

func newCache() *u3coef.UCache {
	k, _ := su3libtest.NewKernel()
	return u3coef.NewCache[u3coef.ULabels](k)
}

// scalar1x1 reads the single entry of a 1×1 matrix.
func scalar1x1(t *testing.T, m *matrix.Dense) float64 {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, 1, m.Rows())
	v, err := m.At(0, 0)
	require.NoError(t, err)

	return v
}

// reversed presents a space in reverse traversal order.
type reversed struct{ *sp3r.Space }

func (r reversed) Subspace(i int) sp3r.Subspace { return r.Space.Subspace(r.Size() - 1 - i) }

func (r reversed) Index(omega u3.U3) int {
	i := r.Space.Index(omega)
	if i < 0 {
		return i
	}

	return r.Size() - 1 - i
}

// unitU answers every U coefficient with 1 and defers the rest to the
// counting fake.
type unitU struct{ *su3libtest.Evaluator }

func (unitU) U(_, _, _, _, _ u3.SU3, _, _ int, _ u3.SU3, _, _ int) float64 { return 1 }

func newUnitUCache() *u3coef.UCache {
	k := su3lib.New(unitU{&su3libtest.Evaluator{}})
	k.Init()

	return u3coef.NewCache[u3coef.ULabels](k)
}

// at reads m[i,j] or fails the test.
func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
