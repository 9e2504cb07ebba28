// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sp3rlib/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			for _, v := range m.Data() {
				require.Zero(t, v)
			}
		})
	}
}

func TestNewDenseBadShape(t *testing.T) {
	for _, tc := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc[0], tc[1])
		require.ErrorIs(t, err, matrix.ErrBadShape)
	}
}

func TestZerosAndIdentity(t *testing.T) {
	z := matrix.NewZeros(0)
	require.Zero(t, z.Rows())
	require.Zero(t, z.Cols())
	require.Empty(t, z.String())

	id := matrix.Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			require.Equal(t, want, MustAt(t, id, i, j))
		}
	}
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())
}

func TestNewFromRows(t *testing.T) {
	m := MustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	_, err := matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAtSetBounds(t *testing.T) {
	m := matrix.NewZeros(2)
	require.NoError(t, m.Set(1, 0, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 0))

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
}

func TestCloneAndDataAreCopies(t *testing.T) {
	m := MustRows(t, []float64{1, 2}, []float64{3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	d := m.Data()
	d[3] = 42
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}
