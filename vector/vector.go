// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package vector provides the rank-1 specialization of the tensor
// engine: construction from literal components, Euclidean norm,
// normalization, dot and cross products.
package vector

import (
	"fmt"

	"github.com/viterin/vek"

	"github.com/tenalg/tenalg/tensor"
)

// crossLen is the only length the cross product is defined for.
const crossLen = 3

// Vector wraps a rank-1 tensor. Values are always rank-1 by
// construction, so methods never re-check the rank.
type Vector struct {
	t *tensor.Tensor
}

// New creates a zero vector of n components.
// Returns ErrInvalidShape if n <= 0.
func New(n int) (*Vector, error) {
	t, err := tensor.New(tensor.Shape{n})
	if err != nil {
		return nil, err
	}
	return &Vector{t: t}, nil
}

// FromComponents creates a 3-component vector from literal values.
func FromComponents(x, y, z float64) *Vector {
	v, err := FromSlice([]float64{x, y, z})
	if err != nil {
		panic(err) // Fixed-length construction cannot fail
	}
	return v
}

// FromSlice creates a vector by copying the given components.
// Returns ErrInvalidShape for an empty slice.
func FromSlice(components []float64) (*Vector, error) {
	t, err := tensor.FromSlice(components, tensor.Shape{len(components)})
	if err != nil {
		return nil, err
	}
	return &Vector{t: t}, nil
}

// FromTensor wraps an existing tensor as a vector.
// Returns ErrInvalidShape if the tensor is not rank 1.
func FromTensor(t *tensor.Tensor) (*Vector, error) {
	if t.Rank() != 1 {
		return nil, fmt.Errorf("%w: vector requires rank 1, got rank %d",
			tensor.ErrInvalidShape, t.Rank())
	}
	return &Vector{t: t}, nil
}

// Len returns the number of components.
func (v *Vector) Len() int {
	return v.t.NumElements()
}

// At returns the i-th component.
func (v *Vector) At(i int) (float64, error) {
	return v.t.At(i)
}

// Set stores x as the i-th component.
func (v *Vector) Set(x float64, i int) error {
	return v.t.Set(x, i)
}

// Components returns the flat component slice.
// Modifications to the returned slice modify the vector.
func (v *Vector) Components() []float64 {
	return v.t.Data()
}

// Tensor returns the underlying rank-1 tensor.
func (v *Vector) Tensor() *tensor.Tensor {
	return v.t
}

// Clone creates a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	return &Vector{t: v.t.Clone()}
}

// String returns a human-readable representation of the vector.
func (v *Vector) String() string {
	return fmt.Sprintf("Vector%v", v.t.Data())
}

// Norm returns the Euclidean norm sqrt(Σ v[i]²).
func (v *Vector) Norm() float64 {
	return vek.Norm(v.t.Data())
}

// Normalize returns a unit vector in the direction of v.
// Returns ErrDivisionByZero when the norm is zero.
func (v *Vector) Normalize() (*Vector, error) {
	n := v.Norm()
	if n == 0 {
		return nil, fmt.Errorf("%w: cannot normalize a zero vector", tensor.ErrDivisionByZero)
	}
	unit, err := v.t.DivScalar(n)
	if err != nil {
		return nil, err
	}
	return &Vector{t: unit}, nil
}

// Dot returns the dot product of two vectors of equal length.
func Dot(u, v *Vector) (float64, error) {
	return tensor.Dot(u.t, v.t)
}

// Cross returns the right-handed cross product u × v.
// Returns ErrShapeMismatch unless both operands have 3 components.
func Cross(u, v *Vector) (*Vector, error) {
	if u.Len() != crossLen || v.Len() != crossLen {
		return nil, fmt.Errorf("%w: cross product requires 3 components, got %d and %d",
			tensor.ErrShapeMismatch, u.Len(), v.Len())
	}

	a, b := u.t.Data(), v.t.Data()
	return FromComponents(
		a[1]*b[2]-a[2]*b[1],
		a[2]*b[0]-a[0]*b[2],
		a[0]*b[1]-a[1]*b[0],
	), nil
}
