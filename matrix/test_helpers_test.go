// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// All fixtures are small, deterministic and finite.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sp3rlib/matrix"
)

// hide wraps any Matrix to hide its concrete type, forcing the interface
// (non-*Dense) conversion path in the code under test.
type hide struct{ matrix.Matrix }

// MustRows builds a Dense from rows or fails the test.
func MustRows(t *testing.T, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts a ≈ b elementwise.
func CompareClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}
