// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package matrix

import (
	"fmt"

	"github.com/tenalg/tenalg/tensor"
)

// requireSquare returns the order of a square matrix, or
// ErrInvalidShape for a rectangular one.
func (m *Matrix) requireSquare() (int, error) {
	if m.Rows() != m.Cols() {
		return 0, fmt.Errorf("%w: %d×%d matrix is not square",
			tensor.ErrInvalidShape, m.Rows(), m.Cols())
	}
	return m.Rows(), nil
}

// Minor returns the determinant of the (n-1)×(n-1) submatrix obtained
// by deleting the given row and column. The matrix must be square with
// n >= 2, and row/col must be in range.
func (m *Matrix) Minor(row, col int) (float64, error) {
	n, err := m.requireSquare()
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: minor requires order >= 2, got %d",
			tensor.ErrInvalidShape, n)
	}
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("%w: minor position (%d, %d) out of range for order %d",
			tensor.ErrIndexOutOfBounds, row, col, n)
	}

	sub, err := New(n-1, n-1)
	if err != nil {
		return 0, err
	}

	data, out := m.t.Data(), sub.t.Data()
	i := 0
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			out[i] = data[r*n+c]
			i++
		}
	}
	return sub.Det()
}

// Cofactor returns (-1)^(row+col) * Minor(row, col).
func (m *Matrix) Cofactor(row, col int) (float64, error) {
	minor, err := m.Minor(row, col)
	if err != nil {
		return 0, err
	}
	if (row+col)%2 != 0 {
		return -minor, nil
	}
	return minor, nil
}

// CofactorMatrix returns the matrix of all cofactors, with the same
// shape as m. For a 1×1 matrix the single cofactor is 1 (the empty
// minor has determinant 1), which makes Adjugate and Inverse total for
// every order >= 1.
func (m *Matrix) CofactorMatrix() (*Matrix, error) {
	n, err := m.requireSquare()
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return FromSlice([]float64{1}, 1, 1)
	}

	cof, err := New(n, n)
	if err != nil {
		return nil, err
	}
	out := cof.t.Data()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v, err := m.Cofactor(r, c)
			if err != nil {
				return nil, err
			}
			out[r*n+c] = v
		}
	}
	return cof, nil
}

// Adjugate returns the transpose of the cofactor matrix.
func (m *Matrix) Adjugate() (*Matrix, error) {
	cof, err := m.CofactorMatrix()
	if err != nil {
		return nil, err
	}
	return cof.Transpose(), nil
}

// Det returns the determinant of a square matrix.
//
// Order 1 is the single element, order 2 is ad - bc, and larger orders
// use Laplace expansion along column 0. Returns ErrInvalidShape for a
// rectangular matrix.
func (m *Matrix) Det() (float64, error) {
	n, err := m.requireSquare()
	if err != nil {
		return 0, err
	}

	data := m.t.Data()
	switch n {
	case 1:
		return data[0], nil
	case 2:
		return data[0]*data[3] - data[1]*data[2], nil
	}

	det := 0.0
	for r := 0; r < n; r++ {
		cof, err := m.Cofactor(r, 0)
		if err != nil {
			return 0, err
		}
		det += data[r*n] * cof
	}
	return det, nil
}

// Inverse returns the inverse of a square matrix, computed as the
// adjugate scaled by 1/det. Returns ErrSingular when the determinant
// is zero.
func (m *Matrix) Inverse() (*Matrix, error) {
	det, err := m.Det()
	if err != nil {
		return nil, err
	}
	if det == 0 {
		return nil, fmt.Errorf("%w: determinant is zero", ErrSingular)
	}

	adj, err := m.Adjugate()
	if err != nil {
		return nil, err
	}
	return adj.Scale(1 / det), nil
}
