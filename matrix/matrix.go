// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package matrix provides the rank-2 specialization of the tensor
// engine: identity construction, multiplication, transpose, linear
// transform application, and cofactor-based determinant and inverse.
package matrix

import (
	"errors"
	"fmt"

	"github.com/viterin/vek"

	"github.com/tenalg/tenalg/tensor"
	"github.com/tenalg/tenalg/vector"
)

// ErrSingular is returned when the inverse of a matrix with zero
// determinant is requested.
var ErrSingular = errors.New("matrix: singular matrix")

// Matrix wraps a rank-2 tensor with shape [rows, cols]. Values are
// always rank-2 by construction, so methods never re-check the rank.
type Matrix struct {
	t *tensor.Tensor
}

// New creates a zero matrix with the given number of rows and columns.
// Returns ErrInvalidShape if either dimension is <= 0.
func New(rows, cols int) (*Matrix, error) {
	t, err := tensor.New(tensor.Shape{rows, cols})
	if err != nil {
		return nil, err
	}
	return &Matrix{t: t}, nil
}

// Identity creates an n×n matrix with 1.0 on the main diagonal.
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	data := m.t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return m, nil
}

// FromSlice creates a matrix by copying row-major data.
// The slice length must equal rows*cols.
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	t, err := tensor.FromSlice(data, tensor.Shape{rows, cols})
	if err != nil {
		return nil, err
	}
	return &Matrix{t: t}, nil
}

// FromTensor wraps an existing tensor as a matrix.
// Returns ErrInvalidShape if the tensor is not rank 2.
func FromTensor(t *tensor.Tensor) (*Matrix, error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: matrix requires rank 2, got rank %d",
			tensor.ErrInvalidShape, t.Rank())
	}
	return &Matrix{t: t}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.t.Shape()[0]
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.t.Shape()[1]
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) (float64, error) {
	return m.t.At(r, c)
}

// Set stores x at row r, column c.
func (m *Matrix) Set(x float64, r, c int) error {
	return m.t.Set(x, r, c)
}

// Tensor returns the underlying rank-2 tensor.
func (m *Matrix) Tensor() *tensor.Tensor {
	return m.t
}

// Clone creates a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{t: m.t.Clone()}
}

// Scale returns a new matrix with every element multiplied by s.
func (m *Matrix) Scale(s float64) *Matrix {
	return &Matrix{t: m.t.Scale(s)}
}

// Row returns the r-th row as a vector.
func (m *Matrix) Row(r int) (*vector.Vector, error) {
	if r < 0 || r >= m.Rows() {
		return nil, fmt.Errorf("%w: row %d out of range (rows %d)",
			tensor.ErrIndexOutOfBounds, r, m.Rows())
	}
	cols := m.Cols()
	return vector.FromSlice(m.t.Data()[r*cols : (r+1)*cols])
}

// String returns a human-readable representation of the matrix.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix[%d×%d]%v", m.Rows(), m.Cols(), m.t.Data())
}

// Mul returns the matrix product lhs * rhs.
// Requires lhs.Cols() == rhs.Rows(); the result has shape
// [lhs.Rows(), rhs.Cols()].
func Mul(lhs, rhs *Matrix) (*Matrix, error) {
	if lhs.Cols() != rhs.Rows() {
		return nil, fmt.Errorf("%w: cannot multiply %d×%d by %d×%d",
			tensor.ErrShapeMismatch, lhs.Rows(), lhs.Cols(), rhs.Rows(), rhs.Cols())
	}

	rows, cols, inner := lhs.Rows(), rhs.Cols(), lhs.Cols()
	result, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	// Transposing rhs makes its columns contiguous, so every entry is a
	// single flat dot product.
	rt := rhs.Transpose()
	ld, rd, out := lhs.t.Data(), rt.t.Data(), result.t.Data()
	for r := 0; r < rows; r++ {
		row := ld[r*inner : (r+1)*inner]
		for c := 0; c < cols; c++ {
			out[r*cols+c] = vek.Dot(row, rd[c*inner:(c+1)*inner])
		}
	}
	return result, nil
}

// Apply transforms v by m: result[r] = dot(row_r(m), v).
// Requires m.Cols() == v.Len().
func (m *Matrix) Apply(v *vector.Vector) (*vector.Vector, error) {
	if m.Cols() != v.Len() {
		return nil, fmt.Errorf("%w: cannot apply %d×%d matrix to vector of length %d",
			tensor.ErrShapeMismatch, m.Rows(), m.Cols(), v.Len())
	}

	rows, cols := m.Rows(), m.Cols()
	data, vc := m.t.Data(), v.Components()
	out := make([]float64, rows)
	for r := 0; r < rows; r++ {
		out[r] = vek.Dot(data[r*cols:(r+1)*cols], vc)
	}
	return vector.FromSlice(out)
}

// Transpose returns a new [cols, rows] matrix with
// result[c, r] = m[r, c].
func (m *Matrix) Transpose() *Matrix {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	data := m.t.Data()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[c*rows+r] = data[r*cols+c]
		}
	}

	result, err := FromSlice(out, cols, rows)
	if err != nil {
		panic(err) // Shape comes from an existing matrix
	}
	return result
}
