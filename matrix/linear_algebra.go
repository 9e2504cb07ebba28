// SPDX-License-Identifier: MIT

package matrix

import "math"

// NormZero is the neutral element used to seed max-norm scans.
const NormZero = 0.0

// Add returns a + b as a fresh Dense. Operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for k := range out.data {
		out.data[k] = da.data[k] + db.data[k]
	}

	return out, nil
}

// Scale returns alpha·m as a fresh Dense.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := d.clone()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}

// Transpose returns mᵀ as a fresh Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := &Dense{r: d.c, c: d.r, data: make([]float64, len(d.data))}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*out.c+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Mul returns the product a·b. Zero inner dimension yields a zero matrix.
//
// Determinism: fixed i→k→j loop order; each row of the result is
// accumulated left to right.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r·n·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulDense(da, db), nil
}

func mulDense(a, b *Dense) *Dense {
	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var (
		i, k, j int
		aik     float64
		row     []float64
	)
	for i = 0; i < a.r; i++ {
		row = out.data[i*out.c : (i+1)*out.c]
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				row[j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out
}

// MulTriple returns a·b·c, evaluated left to right.
func MulTriple(a, b, c Matrix) (*Dense, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulTriple, err)
	}
	abc, err := Mul(ab, c)
	if err != nil {
		return nil, matrixErrorf(opMulTriple, err)
	}

	return abc, nil
}

// Symmetrize returns ½(m + mᵀ). m must be square.
func Symmetrize(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}
	sum, err := Add(m, mt)
	if err != nil {
		return nil, matrixErrorf(opSymmetric, err)
	}

	return Scale(sum, 0.5)
}

// Asymmetry returns max|m[i,j] − m[j,i]| / max(1, max|m[i,j]|), the
// relative departure of a square m from symmetry. 0 means exactly symmetric.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf.
func Asymmetry(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}
	if err := ValidateFinite(m); err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}
	mt, err := Transpose(m)
	if err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}
	neg, err := Scale(mt, -1)
	if err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}
	diff, err := Add(m, neg)
	if err != nil {
		return 0, matrixErrorf(opAsymmetry, err)
	}

	return maxAbs(diff) / math.Max(1, maxAbs(mt)), nil
}

func maxAbs(d *Dense) float64 {
	out := NormZero
	for _, v := range d.data {
		out = math.Max(out, math.Abs(v))
	}

	return out
}

// Eigen computes all eigenvalues and eigenvectors of a real symmetric matrix
// by cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetry within tol; copy m into A and set Q = I.
//   - Stage 2: Sweep the strict upper triangle row by row and rotate every
//     pair (p,r) with |A[p,r]| > tol. An entry too small to change either
//     diagonal element in floating point is zeroed without a rotation.
//   - Stage 3: Stop when a sweep starts with every off-diagonal entry at or
//     below tol.
//
// maxSweeps caps the number of full sweeps.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNonSquare, ErrAsymmetry (not symmetric within tol),
//     ErrMatrixEigenFailed (max off-diagonal > tol after maxSweeps sweeps).
//
// Complexity:
//   - Time O(n³) per sweep. Space O(n²).
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.clone()
	q := Identity(n)

	var (
		sweep, i, j, p, r  int     // sweep counter, loop and pivot indices
		maxOff, g          float64 // largest |A[p,r]|; scaled pivot
		app, arr, apr      float64 // pivot entries
		aip, air, qip, qir float64 // row/column temporaries
		theta, t, c, s     float64 // rotation parameters
		converged          bool
	)
	for sweep = 0; sweep <= maxSweeps; sweep++ {
		// J.1: convergence
		maxOff = NormZero
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				maxOff = math.Max(maxOff, math.Abs(a.data[i*n+j]))
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		if sweep == maxSweeps {
			break
		}

		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				app = a.data[p*n+p]
				arr = a.data[r*n+r]
				apr = a.data[p*n+r]
				if math.Abs(apr) <= tol {
					continue
				}
				g = 100 * math.Abs(apr)
				if math.Abs(app)+g == math.Abs(app) && math.Abs(arr)+g == math.Abs(arr) {
					a.data[p*n+r], a.data[r*n+p] = 0, 0
					continue
				}

				// J.2: rotation parameters
				theta = (arr - app) / (2 * apr)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				// J.3: rotate A
				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip = a.data[i*n+p]
					air = a.data[i*n+r]
					a.data[i*n+p], a.data[p*n+i] = c*aip-s*air, c*aip-s*air
					a.data[i*n+r], a.data[r*n+i] = s*aip+c*air, s*aip+c*air
				}
				a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
				a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
				a.data[p*n+r], a.data[r*n+p] = 0, 0

				// J.4: accumulate Q = Q·J
				for i = 0; i < n; i++ {
					qip = q.data[i*n+p]
					qir = q.data[i*n+r]
					q.data[i*n+p] = c*qip - s*qir
					q.data[i*n+r] = s*qip + c*qir
				}
			}
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}
