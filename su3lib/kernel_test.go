// SPDX-License-Identifier: MIT

package su3lib_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sp3rlib/su3lib"
	"github.com/katalvlaran/sp3rlib/su3lib/su3libtest"
	"github.com/katalvlaran/sp3rlib/u3"
)

var (
	x20 = u3.SU3{Lambda: 2}
	x11 = u3.SU3{Lambda: 1, Mu: 1}
)

// TestLibraryUninitializedYieldsNaN checks the documented kernel precondition.
func TestLibraryUninitializedYieldsNaN(t *testing.T) {
	ev := &su3libtest.Evaluator{}
	lib := su3lib.New(ev)
	require.False(t, lib.Initialized())

	require.True(t, math.IsNaN(lib.U(x20, x11, x11, x20, x11, 1, 1, x11, 1, 1)))
	require.True(t, math.IsNaN(lib.Z(x20, x11, x11, x20, x11, 1, 1, x11, 1, 1)))
	require.True(t, math.IsNaN(lib.W(x20, 1, 2, x11, 1, 1, x11, 1, 1, 1)))
	require.True(t, math.IsNaN(lib.Phi(x20, x11, x11, 1, 1)))
	require.True(t, math.IsNaN(lib.Unitary9LambdaMu(x11, x11, x11, 1, x11, x11, x11, 1, x11, x11, x11, 1, 1, 1, 1)))
	require.Zero(t, ev.Total(), "evaluator must not be reached before Init")

	// multiplicities do not depend on Init
	require.Equal(t, 2, lib.OuterMultiplicity(x11, x11, x11))
	require.Equal(t, 1, lib.BranchingMultiplicity(x20, 2))
}

// TestLibraryInitOnce checks that Init is idempotent and enables evaluation.
func TestLibraryInitOnce(t *testing.T) {
	ev := &su3libtest.Evaluator{}
	lib := su3lib.New(ev)
	lib.Init()
	lib.Init()
	require.True(t, lib.Initialized())
	require.EqualValues(t, 1, ev.Inits.Load())

	v := lib.U(x20, u3.Zero, x20, x11, x20, 1, 1, x11, 1, 1)
	require.Equal(t, 1.0, v)
	require.EqualValues(t, 1, ev.UCalls.Load())
}

func TestNewNilEvaluatorPanics(t *testing.T) {
	require.Panics(t, func() { su3lib.New(nil) })
}

// TestFakeDeterministic guards the property every cache test relies on.
func TestFakeDeterministic(t *testing.T) {
	lib1, _ := su3libtest.NewKernel()
	lib2, _ := su3libtest.NewKernel()
	a := lib1.W(x11, 1, 1, x11, 1, 2, x11, 1, 2, 2)
	b := lib2.W(x11, 1, 1, x11, 1, 2, x11, 1, 2, 2)
	require.Equal(t, a, b)
	require.Greater(t, a, -1.0)
	require.Less(t, a, 1.0)
	require.NotEqual(t, a, lib1.W(x11, 1, 1, x11, 1, 2, x11, 1, 2, 1))
}
