// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenalg/tenalg/tensor"
)

func TestNew(t *testing.T) {
	v, err := New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 1, v.Tensor().Rank())

	_, err = New(0)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	_, err = New(-2)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestFromComponents(t *testing.T) {
	v := FromComponents(1, 2, 3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []float64{1, 2, 3}, v.Components())
}

func TestFromTensor(t *testing.T) {
	rank1, err := tensor.New(tensor.Shape{5})
	require.NoError(t, err)
	v, err := FromTensor(rank1)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())

	rank2, err := tensor.New(tensor.Shape{2, 3})
	require.NoError(t, err)
	_, err = FromTensor(rank2)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestNorm(t *testing.T) {
	v := FromComponents(3, 4, 0)
	assert.InDelta(t, 5, v.Norm(), 1e-12)

	// Norm is non-negative even for all-negative components.
	w := FromComponents(-1, -2, -2)
	assert.InDelta(t, 3, w.Norm(), 1e-12)
	assert.GreaterOrEqual(t, w.Norm(), 0.0)

	zero, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero.Norm())
}

func TestNormalize(t *testing.T) {
	v := FromComponents(3, 0, 4)
	unit, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, unit.Norm(), 1e-12)

	// Direction is preserved.
	assert.InDelta(t, 0.6, unit.Components()[0], 1e-12)
	assert.InDelta(t, 0.8, unit.Components()[2], 1e-12)

	// Input is untouched.
	assert.Equal(t, []float64{3, 0, 4}, v.Components())

	zero, err := New(3)
	require.NoError(t, err)
	_, err = zero.Normalize()
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}

func TestDot(t *testing.T) {
	u := FromComponents(1, 2, 3)
	v := FromComponents(4, 5, 6)

	got, err := Dot(u, v)
	require.NoError(t, err)
	assert.InDelta(t, 32, got, 1e-12)

	short, err := New(2)
	require.NoError(t, err)
	_, err = Dot(u, short)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestCross(t *testing.T) {
	// Right-handed basis: x × y = z.
	x := FromComponents(1, 0, 0)
	y := FromComponents(0, 1, 0)

	z, err := Cross(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, z.Components())

	// Anticommutativity: y × x = -z.
	nz, err := Cross(y, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, -1}, nz.Components())
}

func TestCrossOrthogonality(t *testing.T) {
	u := FromComponents(2, -1, 3)
	v := FromComponents(-4, 0.5, 7)

	w, err := Cross(u, v)
	require.NoError(t, err)

	du, err := Dot(w, u)
	require.NoError(t, err)
	dv, err := Dot(w, v)
	require.NoError(t, err)

	assert.InDelta(t, 0, du, 1e-9)
	assert.InDelta(t, 0, dv, 1e-9)
}

func TestCrossRequiresThreeComponents(t *testing.T) {
	u := FromComponents(1, 0, 0)
	short, err := New(2)
	require.NoError(t, err)

	_, err = Cross(u, short)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = Cross(short, u)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestNormalizeNumericalStability(t *testing.T) {
	v := FromComponents(1e-160, 1e-160, 0)
	n := v.Norm()
	if n == 0 || math.IsInf(n, 0) {
		t.Skipf("norm underflowed/overflowed: %v", n)
	}
	unit, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1, unit.Norm(), 1e-9)
}
