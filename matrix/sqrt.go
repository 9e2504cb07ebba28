// SPDX-License-Identifier: MIT

package matrix

import "math"

// SqrtSymmetric returns the unique symmetric positive semi-definite square
// root of m: V·diag(√λ)·Vᵀ from the Jacobi decomposition m = V·diag(λ)·Vᵀ.
//
// Eigenvalues in [−eps·scale, 0) are treated as round-off and clamped to 0,
// where scale = max(1, max|λ|). Anything below that window yields
// ErrNotPositiveSemiDefinite. A 0×0 input returns a 0×0 result.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry,
// ErrMatrixEigenFailed, ErrNotPositiveSemiDefinite.
func SqrtSymmetric(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}
	n := m.Rows()
	if n == 0 {
		return NewZeros(0), nil
	}

	// Eigen re-validates symmetry against its own tolerance; the input was
	// already accepted within eps, so feed it the symmetrized copy.
	sym, err := Symmetrize(m)
	if err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}
	vals, vecs, err := Eigen(sym, o.eigTol, o.maxIter)
	if err != nil {
		return nil, matrixErrorf(opSqrt, err)
	}

	scale := 1.0
	for _, l := range vals {
		scale = math.Max(scale, math.Abs(l))
	}
	roots := make([]float64, n)
	for i, l := range vals {
		switch {
		case l >= 0:
			roots[i] = math.Sqrt(l)
		case l >= -o.eps*scale:
			roots[i] = 0
		default:
			return nil, matrixErrorf(opSqrt, ErrNotPositiveSemiDefinite)
		}
	}

	// out[i,j] = Σ_k V[i,k]·√λ_k·V[j,k]
	out := NewZeros(n)
	var i, j, k int
	var acc float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += vecs.data[i*n+k] * roots[k] * vecs.data[j*n+k]
			}
			out.data[i*n+j], out.data[j*n+i] = acc, acc
		}
	}

	return out, nil
}
