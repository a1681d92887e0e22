// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives for array-based computations.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewFromRows copies a row-major literal into a fresh Dense.
// Stage 1 (Validate): non-empty, every row the same non-zero length.
// Stage 2 (Policy): reject NaN/±Inf unless WithNoValidateNaNInf is given.
// Stage 3 (Finalize): copy values; the caller's slices are never aliased.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrRaggedRows))
		}
		for j = 0; j < c; j++ {
			v := rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf(opNew, denseErrorf("Set", i, j, ErrNaNInf))
			}
			m.data[i*c+j] = v
		}
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
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense) Row(i int) Vector {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make(Vector, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// ToRows returns the matrix as a freshly allocated row-major literal.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
