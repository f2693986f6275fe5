// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides a dense float32 N-dimensional array engine.
//
// # Overview
//
// Arrays own a contiguous buffer described by a shape, per-axis strides and
// backstrides. This package provides:
//   - Creation from shapes, values, ranges and seeded random generators
//   - Reshape, transpose, expand-dims and squeeze
//   - NumPy-style broadcasting for elementwise arithmetic
//   - Dot products and batched matrix multiplication
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/tensor"
//
//	func main() {
//	    a, _ := tensor.Arange(1, 7, 1)
//	    m, _ := tensor.Reshape(a, tensor.Shape{2, 3})
//	    mt, _ := tensor.Transpose(m)
//	    p, _ := tensor.MatMul(m, mt) // Shape: (2, 2)
//	}
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules:
//
//	a, _ := tensor.New(tensor.Shape{3, 1}) // (3, 1)
//	b, _ := tensor.New(tensor.Shape{3, 4}) // (3, 4)
//	c, _ := tensor.Add(a, b)              // (3, 4)
//
// # Memory Management
//
// Every operation allocates an independent result, except ReshapeInPlace,
// which only rewrites metadata. Transpose copies the buffer and permutes
// strides, so its result is not row-major until it passes through another
// operation. Call Release when an array is no longer needed; later use of a
// released array fails with ErrReleased.
//
// # Errors
//
// Failures return a *ShapeError naming the operation, the offending shapes
// and axis. Match the kind with errors.Is:
//
//	_, err := tensor.MatMul(a, b)
//	if errors.Is(err, tensor.ErrDimensionMismatch) {
//	    // ...
//	}
package tensor
