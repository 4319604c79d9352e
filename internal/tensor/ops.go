package tensor

import (
	"fmt"

	"github.com/viterin/vek"
)

// Arithmetic over whole tensors. All validation happens up front, so
// the vek kernels below only ever see equal-length slices.

// wrap builds a tensor around a freshly allocated kernel result,
// reusing the receiver's geometry.
func (t *Tensor) wrap(data []float64) *Tensor {
	return &Tensor{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   data,
	}
}

func requireSameShape(lhs, rhs *Tensor) error {
	if !lhs.shape.Equal(rhs.shape) {
		return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, lhs.shape, rhs.shape)
	}
	return nil
}

// Add returns the element-wise sum of two tensors of equal shape.
func Add(lhs, rhs *Tensor) (*Tensor, error) {
	if err := requireSameShape(lhs, rhs); err != nil {
		return nil, err
	}
	return lhs.wrap(vek.Add(lhs.data, rhs.data)), nil
}

// Sub returns the element-wise difference of two tensors of equal shape.
func Sub(lhs, rhs *Tensor) (*Tensor, error) {
	if err := requireSameShape(lhs, rhs); err != nil {
		return nil, err
	}
	return lhs.wrap(vek.Sub(lhs.data, rhs.data)), nil
}

// Hadamard returns the element-wise product of two tensors of equal shape.
func Hadamard(lhs, rhs *Tensor) (*Tensor, error) {
	if err := requireSameShape(lhs, rhs); err != nil {
		return nil, err
	}
	return lhs.wrap(vek.Mul(lhs.data, rhs.data)), nil
}

// Div returns the element-wise quotient of two tensors of equal shape.
// Zero denominators follow IEEE-754 semantics: the corresponding result
// component is +-Inf or NaN rather than an error.
func Div(lhs, rhs *Tensor) (*Tensor, error) {
	if err := requireSameShape(lhs, rhs); err != nil {
		return nil, err
	}
	return lhs.wrap(vek.Div(lhs.data, rhs.data)), nil
}

// Dot treats both tensors as flat sequences and returns the sum of
// component products. The operands must have the same total length.
func Dot(lhs, rhs *Tensor) (float64, error) {
	if len(lhs.data) != len(rhs.data) {
		return 0, fmt.Errorf("%w: lengths %d vs %d", ErrShapeMismatch, len(lhs.data), len(rhs.data))
	}
	return vek.Dot(lhs.data, rhs.data), nil
}

// AddScalar returns a new tensor with scalar added to every component.
func (t *Tensor) AddScalar(scalar float64) *Tensor {
	return t.wrap(vek.AddNumber(t.data, scalar))
}

// SubScalar returns a new tensor with scalar subtracted from every component.
func (t *Tensor) SubScalar(scalar float64) *Tensor {
	return t.wrap(vek.SubNumber(t.data, scalar))
}

// Scale returns a new tensor with every component multiplied by scalar.
func (t *Tensor) Scale(scalar float64) *Tensor {
	return t.wrap(vek.MulNumber(t.data, scalar))
}

// DivScalar returns a new tensor with every component divided by scalar.
// Returns ErrDivisionByZero when scalar is zero.
func (t *Tensor) DivScalar(scalar float64) (*Tensor, error) {
	if scalar == 0 {
		return nil, fmt.Errorf("%w: scalar divisor", ErrDivisionByZero)
	}
	return t.wrap(vek.DivNumber(t.data, scalar)), nil
}
