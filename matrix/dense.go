// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if an index is invalid.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if an index is invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrBadShape unless rows and cols are > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewZeros returns an n×n zero matrix. Unlike NewDense it accepts n == 0,
// which stands for the matrix over an empty subspace.
func NewZeros(n int) *Dense {
	if n < 0 {
		n = 0
	}

	return &Dense{r: n, c: n, data: make([]float64, n*n)}
}

// Identity returns the n×n identity (0×0 for n <= 0).
func Identity(n int) *Dense {
	m := NewZeros(n)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return m
}

// NewFromRows builds a Dense from a rectangular slice of rows.
// Ragged or empty input yields ErrBadShape; NaN/Inf entries yield ErrNaNInf.
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNew, denseErrorf("row", i, len(row), ErrBadShape))
		}
		for j, v := range row {
			if isNonFinite(v) {
				return nil, matrixErrorf(opNew, denseErrorf("row", i, j, ErrNaNInf))
			}
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	d := make([]float64, len(m.data))
	copy(d, m.data)

	return &Dense{r: m.r, c: m.c, data: d}
}

// Data returns a copy of the row-major backing slice.
func (m *Dense) Data() []float64 {
	d := make([]float64, len(m.data))
	copy(d, m.data)

	return d
}

// String implements fmt.Stringer, one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// toDense returns m itself when it is a *Dense, or a Dense copy otherwise.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out := NewZeros(0)
	out.r, out.c = m.Rows(), m.Cols()
	out.data = make([]float64, out.r*out.c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
