// SPDX-License-Identifier: MIT

package sp3r_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sp3rlib/sp3r"
	"github.com/katalvlaran/sp3rlib/u3"
)

func w(f1, f2, f3 float64) u3.U3 { return u3.U3{F1: f1, F2: f2, F3: f3} }

func st(n u3.U3, rho int) sp3r.State { return sp3r.State{Irrep: n, Tag: rho} }

func TestRaisingLabels(t *testing.T) {
	require.Equal(t, []u3.U3{w(0, 0, 0)}, sp3r.RaisingLabels(0))
	require.Equal(t, []u3.U3{w(2, 0, 0)}, sp3r.RaisingLabels(2))
	require.Equal(t, []u3.U3{w(2, 2, 0), w(4, 0, 0)}, sp3r.RaisingLabels(4))
	require.Equal(t, []u3.U3{w(2, 2, 2), w(4, 2, 0), w(6, 0, 0)}, sp3r.RaisingLabels(6))
	require.Nil(t, sp3r.RaisingLabels(3))
	require.Nil(t, sp3r.RaisingLabels(-2))
}

func TestNewSpaceTwoShells(t *testing.T) {
	sp, err := sp3r.NewSpace(w(4, 0, 0), 2)
	require.NoError(t, err)

	require.Equal(t, w(4, 0, 0), sp.Sigma())
	require.Equal(t, []u3.U3{w(4, 0, 0), w(4, 2, 0), w(5, 1, 0), w(6, 0, 0)}, sp.Labels())
	require.Equal(t, 4, sp.Dimension())

	base := sp.Subspace(0)
	require.Equal(t, []sp3r.State{st(w(0, 0, 0), 1)}, base.States())

	top, ok := sp.Lookup(w(6, 0, 0))
	require.True(t, ok)
	require.Equal(t, 1, top.Size())
	require.Equal(t, st(w(2, 0, 0), 1), top.State(0))
	require.Equal(t, 3, sp.Index(w(6, 0, 0)))

	require.False(t, sp.Contains(w(8, 0, 0)))
	require.Equal(t, -1, sp.Index(w(8, 0, 0)))
	_, ok = sp.Lookup(w(8, 0, 0))
	require.False(t, ok)
}

// TestNewSpaceScalarSigma: a scalar lowest weight makes ω = σ + n, one state each.
func TestNewSpaceScalarSigma(t *testing.T) {
	sigma := w(10, 10, 10)
	sp, err := sp3r.NewSpace(sigma, 6)
	require.NoError(t, err)
	require.Equal(t, 1+1+2+3, sp.Size())

	for i := 0; i < sp.Size(); i++ {
		sub := sp.Subspace(i)
		require.Equal(t, 1, sub.Size())
		require.Equal(t, sub.Label(), sigma.Add(sub.State(0).Irrep))
		require.Equal(t, 1, sub.State(0).Tag)
		if i > 0 {
			require.LessOrEqual(t, sp.Subspace(i-1).Label().N(), sub.Label().N())
		}
	}
}

// TestNewSpaceMultiplicity: (1,1)⊗(2,2) holds (2,2) twice, so ω=[5,3,1]
// carries both ρ tags for n=[4,2,0].
func TestNewSpaceMultiplicity(t *testing.T) {
	sp, err := sp3r.NewSpace(w(2, 1, 0), 6)
	require.NoError(t, err)
	sub, ok := sp.Lookup(w(5, 3, 1))
	require.True(t, ok)
	require.Contains(t, sub.States(), st(w(4, 2, 0), 1))
	require.Contains(t, sub.States(), st(w(4, 2, 0), 2))
}

func TestNewSpaceHalfIntegral(t *testing.T) {
	sigma := w(5.5, 3.5, 3.5)
	sp, err := sp3r.NewSpace(sigma, 2)
	require.NoError(t, err)
	require.True(t, sp.Contains(sigma))
	require.True(t, sp.Contains(w(7.5, 3.5, 3.5)))
	require.Equal(t, 0, sp.Index(sigma))
}

func TestNewSpaceErrors(t *testing.T) {
	_, err := sp3r.NewSpace(w(0, 1, 0), 2)
	require.ErrorIs(t, err, sp3r.ErrInvalidSigma)
	_, err = sp3r.NewSpace(w(1, 0, 0), 3)
	require.ErrorIs(t, err, sp3r.ErrInvalidNmax)
	_, err = sp3r.NewSpace(w(1, 0, 0), -2)
	require.ErrorIs(t, err, sp3r.ErrInvalidNmax)
}

func TestNewSpaceFromSubspaces(t *testing.T) {
	sigma := w(4, 0, 0)
	base := sp3r.NewSubspace(sigma, st(w(0, 0, 0), 1))
	top := sp3r.NewSubspace(w(6, 0, 0), st(w(2, 0, 0), 1))

	// input order does not matter
	sp, err := sp3r.NewSpaceFromSubspaces(sigma, top, base)
	require.NoError(t, err)
	require.Equal(t, []u3.U3{sigma, w(6, 0, 0)}, sp.Labels())

	_, err = sp3r.NewSpaceFromSubspaces(sigma, base, top, top)
	require.ErrorIs(t, err, sp3r.ErrDuplicateSubspace)
	_, err = sp3r.NewSpaceFromSubspaces(sigma, top)
	require.ErrorIs(t, err, sp3r.ErrMissingSigma)
	_, err = sp3r.NewSpaceFromSubspaces(sigma, base, sp3r.NewSubspace(w(5, 1, 0)))
	require.ErrorIs(t, err, sp3r.ErrEmptySubspace)
}

func TestSubspaceOrdersStates(t *testing.T) {
	sub := sp3r.NewSubspace(w(5, 3, 1),
		st(w(4, 2, 0), 2), st(w(2, 2, 2), 1), st(w(4, 2, 0), 1))
	require.Equal(t, []sp3r.State{
		st(w(2, 2, 2), 1), st(w(4, 2, 0), 1), st(w(4, 2, 0), 2),
	}, sub.States())
	require.Equal(t, "[5,3,1]{[2,2,2]_1 [4,2,0]_1 [4,2,0]_2}", sub.String())
}
