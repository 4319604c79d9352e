// Copyright 2025 The Tenalg Authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package tensor provides dense multi-dimensional float64 arrays.
//
// # Overview
//
// A Tensor is a fixed-shape, row-major array of float64 components.
// The package provides:
//   - Checked construction (every dimension must be positive)
//   - Strided element access validated against rank and extents
//   - Element-wise and scalar arithmetic producing fresh tensors
//   - A flat dot product over equal-length operands
//
// # Basic Usage
//
//	import "github.com/tenalg/tenalg/tensor"
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    b, _ := tensor.New(tensor.Shape{2, 2})
//	    sum, err := tensor.Add(a, b)
//	    if err != nil {
//	        // shapes did not match
//	    }
//	    _ = sum
//	}
//
// # Error Handling
//
// Every fallible operation returns one of the package sentinels
// (ErrInvalidShape, ErrIndexOutOfBounds, ErrShapeMismatch,
// ErrDivisionByZero), possibly wrapped with context; match them with
// errors.Is. No operation panics on user input, and no operation
// returns a partial result.
//
// Rank-1 and rank-2 specializations live in the vector and matrix
// packages.
package tensor
