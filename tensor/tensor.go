// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/tenalg/tenalg/internal/tensor"
)

// Type aliases for the public API

// Tensor is a dense multi-dimensional array of float64 values.
// Shape and rank are fixed at creation; only component values change.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} is a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Sentinel errors returned by tensor operations.
var (
	// ErrInvalidShape reports a shape with a non-positive dimension.
	ErrInvalidShape = tensor.ErrInvalidShape
	// ErrIndexOutOfBounds reports a multi-index with the wrong number of
	// components or a component outside its dimension's extent.
	ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds
	// ErrShapeMismatch reports binary operands of incompatible shape or length.
	ErrShapeMismatch = tensor.ErrShapeMismatch
	// ErrDivisionByZero reports a zero scalar divisor.
	ErrDivisionByZero = tensor.ErrDivisionByZero
)

// Creation functions

// New creates a zero-filled tensor with the given shape.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{3, 4})
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor with the given shape, copying data into
// the tensor's own buffer.
//
// Example:
//
//	t, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Arithmetic functions

// Add returns the element-wise sum of two tensors of equal shape.
func Add(lhs, rhs *Tensor) (*Tensor, error) {
	return tensor.Add(lhs, rhs)
}

// Sub returns the element-wise difference of two tensors of equal shape.
func Sub(lhs, rhs *Tensor) (*Tensor, error) {
	return tensor.Sub(lhs, rhs)
}

// Hadamard returns the element-wise product of two tensors of equal shape.
func Hadamard(lhs, rhs *Tensor) (*Tensor, error) {
	return tensor.Hadamard(lhs, rhs)
}

// Div returns the element-wise quotient of two tensors of equal shape.
// Zero denominators follow IEEE-754 semantics (±Inf/NaN components).
func Div(lhs, rhs *Tensor) (*Tensor, error) {
	return tensor.Div(lhs, rhs)
}

// Dot treats both tensors as flat sequences and returns the sum of
// component products. The operands must have the same total length.
func Dot(lhs, rhs *Tensor) (float64, error) {
	return tensor.Dot(lhs, rhs)
}
