// SPDX-License-Identifier: MIT

package u3coef_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sp3rlib/su3lib/su3libtest"
	"github.com/katalvlaran/sp3rlib/u3coef"
)

// TestCacheBuildsOnce checks the at-most-one-construction guarantee with
// lookups of several keys interleaved.
func TestCacheBuildsOnce(t *testing.T) {
	k, ev := su3libtest.NewKernel()
	stats := &u3coef.Stats{}
	c := u3coef.NewCache[u3coef.ULabels](k, u3coef.WithObserver(stats))

	for round := 0; round < 3; round++ {
		for _, idx := range allTuples([]int{2, 2, 2, 2}) {
			_, err := c.Get(uOctets, idx...)
			require.NoError(t, err)
			_, err = c.Get(uSingle, 1, 1, 1, 1)
			require.NoError(t, err)
		}
	}

	snap := stats.Snapshot()
	require.EqualValues(t, 2, snap.Builds)
	require.EqualValues(t, 2, snap.Misses)
	require.EqualValues(t, 3*16*2-2, snap.Hits)
	require.EqualValues(t, 17, snap.Values)
	require.EqualValues(t, 17, ev.UCalls.Load(), "kernel reached only while building")
	require.Equal(t, 2, c.Len())
	require.True(t, c.Contains(uOctets))
}

// TestCacheMatchesDirect checks that cached and direct modes agree everywhere.
func TestCacheMatchesDirect(t *testing.T) {
	k, _ := su3libtest.NewKernel()
	cached := u3coef.NewCache[u3coef.WLabels](k)
	directStats := &u3coef.Stats{}
	direct := u3coef.NewCache[u3coef.WLabels](k, u3coef.WithMode(u3coef.ModeDirect), u3coef.WithObserver(directStats))
	require.Equal(t, u3coef.ModeDirect, direct.Mode())

	tuples := allTuples(u3coef.WMultiplicity(k, wMixed))
	for _, idx := range tuples {
		a, err := cached.Get(wMixed, idx...)
		require.NoError(t, err)
		b, err := direct.Get(wMixed, idx...)
		require.NoError(t, err)
		require.Equal(t, a, b, "tuple %v", idx)
	}

	require.Equal(t, 1, cached.Len())
	require.Zero(t, direct.Len(), "direct mode never stores")
	require.EqualValues(t, len(tuples), directStats.Snapshot().Directs)
	require.Zero(t, directStats.Snapshot().Builds)

	// both modes reject the same bad tuple
	_, err := cached.Get(wMixed, 1, 2, 1, 1)
	require.ErrorIs(t, err, u3coef.ErrInvalidIndex)
	_, err = direct.Get(wMixed, 1, 2, 1, 1)
	require.ErrorIs(t, err, u3coef.ErrInvalidIndex)
}

// TestCacheDirectBlock checks that the block accessor in direct mode builds
// without storing.
func TestCacheDirectBlock(t *testing.T) {
	k, ev := su3libtest.NewKernel()
	c := u3coef.NewCache[u3coef.PhiLabels](k, u3coef.WithMode(u3coef.ModeDirect))

	b1, err := c.Block(phiOctets)
	require.NoError(t, err)
	b2, err := c.Block(phiOctets)
	require.NoError(t, err)
	require.Equal(t, b1.Values(), b2.Values())
	require.Zero(t, c.Len())
	require.EqualValues(t, 8, ev.PhiCalls.Load())
}

// TestCacheDisallowed checks that a forbidden key is cached as an empty block.
func TestCacheDisallowed(t *testing.T) {
	k, _ := su3libtest.NewKernel()
	c := u3coef.NewCache[u3coef.ULabels](k)

	b, err := c.Block(uForbidden)
	require.NoError(t, err)
	require.True(t, b.Empty())
	require.True(t, c.Contains(uForbidden))

	_, err = c.Get(uForbidden, 1, 1, 1, 1)
	require.ErrorIs(t, err, u3coef.ErrInvalidIndex)
	_, err = u3coef.Direct(k, uForbidden, 1, 1, 1, 1)
	require.ErrorIs(t, err, u3coef.ErrInvalidIndex)
}

// TestCacheFingerprint checks that independent caches filled alike agree bit for bit.
func TestCacheFingerprint(t *testing.T) {
	fill := func() *u3coef.UCache {
		k, _ := su3libtest.NewKernel()
		c := u3coef.NewCache[u3coef.ULabels](k)
		for _, l := range []u3coef.ULabels{uSingle, uOctets, uForbidden} {
			_, err := c.Block(l)
			require.NoError(t, err)
		}
		return c
	}
	a, b := fill(), fill()
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.Equal(t, a.Keys(), b.Keys())

	for _, key := range a.Keys() {
		ba, err := a.Block(key)
		require.NoError(t, err)
		bb, err := b.Block(key)
		require.NoError(t, err)
		require.Equal(t, ba.Values(), bb.Values())
	}

	empty := u3coef.NewCache[u3coef.ULabels](a.Kernel())
	require.NotEqual(t, a.Fingerprint(), empty.Fingerprint())
}

func TestCacheKeysSorted(t *testing.T) {
	k, _ := su3libtest.NewKernel()
	c := u3coef.NewCache[u3coef.ULabels](k)
	for _, l := range []u3coef.ULabels{uSingle, uOctets, uForbidden} {
		_, err := c.Block(l)
		require.NoError(t, err)
	}
	keys := c.Keys()
	require.Len(t, keys, 3)
	for i := 1; i < len(keys); i++ {
		require.Negative(t, keys[i-1].Compare(keys[i]))
	}
}

func TestTypedHelpers(t *testing.T) {
	k, _ := su3libtest.NewKernel()

	uc := u3coef.NewCache[u3coef.ULabels](k)
	a, err := u3coef.UCached(uc, x11, x11, x11, x11, x11, 2, 1, x11, 1, 2)
	require.NoError(t, err)
	b, err := u3coef.U(k, x11, x11, x11, x11, x11, 2, 1, x11, 1, 2)
	require.NoError(t, err)
	require.Equal(t, a, b)

	zc := u3coef.NewCache[u3coef.ZLabels](k)
	a, err = u3coef.ZCached(zc, x20, x20, su3(5, 1), x11, su3(4, 0), 1, 1, su3(3, 1), 1, 1)
	require.NoError(t, err)
	b, err = u3coef.Z(k, x20, x20, su3(5, 1), x11, su3(4, 0), 1, 1, su3(3, 1), 1, 1)
	require.NoError(t, err)
	require.Equal(t, a, b)

	wc := u3coef.NewCache[u3coef.WLabels](k)
	a, err = u3coef.WCached(wc, x22, 2, 2, x11, 1, 1, x22, 1, 2, 2)
	require.NoError(t, err)
	b, err = u3coef.W(k, x22, 2, 2, x11, 1, 1, x22, 1, 2, 2)
	require.NoError(t, err)
	require.Equal(t, a, b)

	pc := u3coef.NewCache[u3coef.PhiLabels](k)
	a, err = u3coef.PhiCached(pc, x11, x11, x11, 1, 1)
	require.NoError(t, err)
	b, err = u3coef.Phi(k, x11, x11, x11, 1, 1)
	require.NoError(t, err)
	require.Equal(t, a, b)

	nc := u3coef.NewCache[u3coef.U9LMLabels](k)
	a, err = u3coef.Unitary9LambdaMuCached(nc, x11, x11, x11, 2, x11, x11, x11, 1, x11, x11, x11, 2, 1, 2, 1)
	require.NoError(t, err)
	b, err = u3coef.Unitary9LambdaMu(k, x11, x11, x11, 2, x11, x11, x11, 1, x11, x11, x11, 2, 1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, a, b)
	_, err = u3coef.Unitary9LambdaMuCached(nc, x11, x11, x11, 3, x11, x11, x11, 1, x11, x11, x11, 1, 1, 1, 1)
	require.ErrorIs(t, err, u3coef.ErrInvalidIndex)

	_, err = u3coef.U(nil, x11, x11, x11, x11, x11, 1, 1, x11, 1, 1)
	require.ErrorIs(t, err, u3coef.ErrNilKernel)
}

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := u3coef.NewPrometheusObserver(reg, "sp3r")
	require.NoError(t, err)
	again, err := u3coef.NewPrometheusObserver(reg, "sp3r")
	require.NoError(t, err, "re-registration reuses collectors")

	k, _ := su3libtest.NewKernel()
	c := u3coef.NewCache[u3coef.ULabels](k, u3coef.WithObserver(obs))
	for i := 0; i < 3; i++ {
		_, err = c.Get(uOctets, 1, 1, 1, 1)
		require.NoError(t, err)
	}
	d := u3coef.NewCache[u3coef.ULabels](k, u3coef.WithMode(u3coef.ModeDirect), u3coef.WithObserver(again))
	_, err = d.Get(uOctets, 1, 1, 1, 1)
	require.NoError(t, err)

	expected := `
# HELP sp3r_coefficient_blocks_built_total Coefficient blocks constructed from the kernel.
# TYPE sp3r_coefficient_blocks_built_total counter
sp3r_coefficient_blocks_built_total{family="U"} 1
# HELP sp3r_coefficient_lookups_total Coefficient lookups by family and result (hit, miss, direct).
# TYPE sp3r_coefficient_lookups_total counter
sp3r_coefficient_lookups_total{family="U",result="direct"} 1
sp3r_coefficient_lookups_total{family="U",result="hit"} 2
sp3r_coefficient_lookups_total{family="U",result="miss"} 1
# HELP sp3r_coefficient_values_computed_total Raw kernel values stored into blocks.
# TYPE sp3r_coefficient_values_computed_total counter
sp3r_coefficient_values_computed_total{family="U"} 16
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestCacheLogsBuilds(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	k, _ := su3libtest.NewKernel()
	c := u3coef.NewCache[u3coef.ULabels](k, u3coef.WithLogger(logger))
	_, err := c.Get(uSingle, 1, 1, 1, 1)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "coefficient block built")
	require.Contains(t, buf.String(), "family=U")
}

func TestLabelsKeyHashCompare(t *testing.T) {
	a := u3coef.ULabels{X1: x11, X2: x20, X: x22, X3: x11, X12: x11, X23: x22}
	b := u3coef.ULabels{X23: x22, X12: x11, X3: x11, X: x22, X2: x20, X1: x11}
	require.Equal(t, a, b)
	require.Equal(t, a.Hash(), b.Hash())
	require.Zero(t, a.Compare(b))
	require.Equal(t, []int{1, 1, 2, 0, 2, 2, 1, 1, 1, 1, 2, 2}, a.Key())

	c := a
	c.X23 = su3(3, 0)
	require.NotEqual(t, a.Hash(), c.Hash())
	require.Positive(t, c.Compare(a))

	// same tuple, different family: different hash
	p := u3coef.PhiLabels{X1: x11, X2: x11, X3: x11}
	q := u3coef.ZLabels{X1: x11, X2: x11, X: x11}
	require.NotEqual(t, p.Hash(), q.Hash())

	w1 := u3coef.WLabels{X1: x11, L1: 1, X2: x11, L2: 2, X3: x11, L3: 2}
	w2 := w1
	w2.L3 = 1
	require.Positive(t, w1.Compare(w2))
	require.Equal(t, "W[(1,1) 1; (1,1) 2 || (1,1) 2]", w1.String())
}

func TestParseMode(t *testing.T) {
	m, err := u3coef.ParseMode("direct")
	require.NoError(t, err)
	require.Equal(t, u3coef.ModeDirect, m)
	require.Equal(t, "cached", u3coef.ModeCached.String())
	_, err = u3coef.ParseMode("bogus")
	require.Error(t, err)
	require.Panics(t, func() { u3coef.WithMode(u3coef.Mode(7)) })
	require.Panics(t, func() { u3coef.WithObserver(nil) })
}
