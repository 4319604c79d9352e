// Package tensor implements the dense tensor engine: a flat row-major
// float64 buffer addressed through per-axis strides, with every shape
// and index precondition checked before memory is touched.
package tensor

import "fmt"

// Tensor is a dense multi-dimensional array of float64 values.
//
// The shape and rank are fixed at creation; only component values may
// change, through Set. Every operation that produces a Tensor allocates
// a fresh one and never retains its inputs.
type Tensor struct {
	shape  Shape
	stride []int
	data   []float64
}

// New creates a zero-filled tensor with the given shape.
// Returns ErrInvalidShape if any dimension is <= 0.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, shape.NumElements()),
	}, nil
}

// FromSlice creates a tensor with the given shape, copying data into
// the tensor's own buffer. The slice length must match the shape's
// element count.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	t, err := New(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrShapeMismatch, shape, len(t.data), len(data))
	}
	copy(t.data, data)
	return t, nil
}

// Clone creates a deep copy of the tensor. The result shares nothing
// with the receiver.
func (t *Tensor) Clone() *Tensor {
	clone := &Tensor{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   make([]float64, len(t.data)),
	}
	copy(clone.data, t.data)
	return clone
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the flat row-major component slice.
// Modifications to the returned slice modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// offset converts a multi-index into a flat position, validating the
// index count against the rank and each index against its extent.
func (t *Tensor) offset(indices []int) (int, error) {
	if len(indices) != len(t.shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d",
			ErrIndexOutOfBounds, len(t.shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of range for dimension %d (size %d)",
				ErrIndexOutOfBounds, idx, i, t.shape[i])
		}
		offset += idx * t.stride[i]
	}
	return offset, nil
}

// At returns the element at the given indices.
// Returns ErrIndexOutOfBounds if the index count does not match the
// rank or any index is outside its dimension's extent.
func (t *Tensor) At(indices ...int) (float64, error) {
	off, err := t.offset(indices)
	if err != nil {
		return 0, err
	}
	return t.data[off], nil
}

// Set stores value at the given indices, with the same index
// validation as At.
func (t *Tensor) Set(value float64, indices ...int) error {
	off, err := t.offset(indices)
	if err != nil {
		return err
	}
	t.data[off] = value
	return nil
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v", t.shape)
}
