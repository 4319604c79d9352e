// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tenalg/tenalg/tensor"
)

// TestPublicAPI exercises the facade end to end: the aliases and
// re-exported functions must behave exactly like the engine.
func TestPublicAPI(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, a.Rank())
	assert.True(t, a.Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.Equal(t, 6, a.NumElements())

	v, err := a.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, a.Set(7, 0, 0))
	v, err = a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	b, err := tensor.New(tensor.Shape{2, 3})
	require.NoError(t, err)

	sum, err := tensor.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, a.Data(), sum.Data())

	scaled := a.Scale(2)
	first, err := scaled.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 14.0, first)

	dot, err := tensor.Dot(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 7*7+2*2+3*3+4*4+5*5+6*6, dot, 1e-9)
}

// TestSentinelErrors verifies the facade re-exports the engine's
// sentinels, so callers can match with errors.Is through either path.
func TestSentinelErrors(t *testing.T) {
	_, err := tensor.New(tensor.Shape{0})
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	a, err := tensor.New(tensor.Shape{2})
	require.NoError(t, err)

	_, err = a.At(2)
	assert.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)

	b, err := tensor.New(tensor.Shape{3})
	require.NoError(t, err)

	_, err = tensor.Add(a, b)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = a.DivScalar(0)
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}
