// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Array is a dense float32 N-dimensional array.
type Array = tensor.Array

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// ShapeError describes a failed operation: its kind, the offending shapes and axis.
type ShapeError = tensor.ShapeError

// MapFunc is a unary scalar function applied elementwise.
type MapFunc = tensor.MapFunc

// Visitor receives stride traversal events.
type Visitor = tensor.Visitor

// MultiIndexTable holds every multi-index of a shape in row-major order.
type MultiIndexTable = tensor.MultiIndexTable

// LinearIndexTable maps multi-indices to flat buffer offsets.
type LinearIndexTable = tensor.LinearIndexTable

// ParallelConfig controls how loops are spread over goroutines.
type ParallelConfig = parallel.Config

// ItemSize is the size in bytes of one element.
const ItemSize = tensor.ItemSize

// Error kinds, matched with errors.Is.
var (
	ErrAllocation           = tensor.ErrAllocation
	ErrInvalidRank          = tensor.ErrInvalidRank
	ErrInvalidShape         = tensor.ErrInvalidShape
	ErrShapeMismatch        = tensor.ErrShapeMismatch
	ErrNotBroadcastable     = tensor.ErrNotBroadcastable
	ErrAxisOutOfBounds      = tensor.ErrAxisOutOfBounds
	ErrAxisNotSqueezable    = tensor.ErrAxisNotSqueezable
	ErrCannotSqueezeRankOne = tensor.ErrCannotSqueezeRankOne
	ErrDimensionMismatch    = tensor.ErrDimensionMismatch
	ErrInsufficientRank     = tensor.ErrInsufficientRank
	ErrNotContiguous        = tensor.ErrNotContiguous
	ErrInvalidPermutation   = tensor.ErrInvalidPermutation
	ErrInvalidRange         = tensor.ErrInvalidRange
	ErrIndexOutOfBounds     = tensor.ErrIndexOutOfBounds
	ErrReleased             = tensor.ErrReleased
)

// Creation functions

// New creates a zero-initialized array.
func New(shape Shape) (*Array, error) {
	return tensor.New(shape)
}

// FromValues creates an array holding a copy of values.
//
// Example:
//
//	x, err := tensor.FromValues(tensor.Shape{2, 2}, []float32{1, 2, 3, 4})
func FromValues(shape Shape, values []float32) (*Array, error) {
	return tensor.FromValues(shape, values)
}

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) (*Array, error) {
	return tensor.Zeros(shape)
}

// Full creates an array filled with value.
func Full(shape Shape, value float32) (*Array, error) {
	return tensor.Full(shape, value)
}

// Arange creates a rank-1 array from start to end (exclusive) by step.
//
// Example:
//
//	x, _ := tensor.Arange(0, 10, 1) // [0, 1, 2, ..., 9]
func Arange(start, end, step float32) (*Array, error) {
	return tensor.Arange(start, end, step)
}

// Rand creates an array of uniform values in [lo, hi) drawn from rng.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	x, _ := tensor.Rand(rng, tensor.Shape{3, 4}, 0, 1)
func Rand(rng *rand.Rand, shape Shape, lo, hi float32) (*Array, error) {
	return tensor.Rand(rng, shape, lo, hi)
}

// Shape algebra

// ShapesEqual reports whether a and b have identical shapes.
func ShapesEqual(a, b *Array) bool {
	return tensor.ShapesEqual(a, b)
}

// ResolveBroadcastShape returns the shape two operands broadcast to.
func ResolveBroadcastShape(a, b Shape) (Shape, error) {
	return tensor.ResolveBroadcastShape(a, b)
}

// CheckReshapeCompatible verifies that arr can be reshaped to shape.
func CheckReshapeCompatible(arr *Array, shape Shape) error {
	return tensor.CheckReshapeCompatible(arr, shape)
}

// MaterializeIndices returns every multi-index of shape in row-major order.
func MaterializeIndices(shape Shape) *MultiIndexTable {
	return tensor.MaterializeIndices(shape)
}

// Transforms

// Reshape returns a copy of arr with a new shape.
func Reshape(arr *Array, shape Shape) (*Array, error) {
	return tensor.Reshape(arr, shape)
}

// ReshapeInPlace changes arr's shape without touching its buffer.
func ReshapeInPlace(arr *Array, shape Shape) error {
	return tensor.ReshapeInPlace(arr, shape)
}

// Transpose permutes arr's axes; with no axes the order is reversed.
func Transpose(arr *Array, axes ...int) (*Array, error) {
	return tensor.Transpose(arr, axes...)
}

// ExpandDims inserts a size-1 axis.
func ExpandDims(arr *Array, axis int) (*Array, error) {
	return tensor.ExpandDims(arr, axis)
}

// Squeeze removes a size-1 axis.
func Squeeze(arr *Array, axis int) (*Array, error) {
	return tensor.Squeeze(arr, axis)
}

// BroadcastTo materializes arr stretched to target.
func BroadcastTo(arr *Array, target Shape) (*Array, error) {
	return tensor.BroadcastTo(arr, target)
}

// Arithmetic

// Add returns a + b with broadcasting.
func Add(a, b *Array) (*Array, error) {
	return tensor.Add(a, b)
}

// Sub returns a - b with broadcasting.
func Sub(a, b *Array) (*Array, error) {
	return tensor.Sub(a, b)
}

// Mul returns a * b with broadcasting.
func Mul(a, b *Array) (*Array, error) {
	return tensor.Mul(a, b)
}

// Div returns a / b with broadcasting.
func Div(a, b *Array) (*Array, error) {
	return tensor.Div(a, b)
}

// Negate returns -a.
func Negate(a *Array) (*Array, error) {
	return tensor.Negate(a)
}

// Scale returns a * s.
func Scale(a *Array, s float32) (*Array, error) {
	return tensor.Scale(a, s)
}

// Map returns fn applied to every element of a.
func Map(a *Array, fn MapFunc) (*Array, error) {
	return tensor.Map(a, fn)
}

// MapInPlace applies fn to every element of a in place.
func MapInPlace(a *Array, fn MapFunc) error {
	return tensor.MapInPlace(a, fn)
}

// Linear algebra

// Dot returns the inner product of two vectors as a (1,) array.
func Dot(a, b *Array) (*Array, error) {
	return tensor.Dot(a, b)
}

// MatMul performs (batched) matrix multiplication.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{5, 4, 2, 3})
//	b, _ := tensor.New(tensor.Shape{5, 4, 3, 4})
//	c, _ := tensor.MatMul(a, b) // Shape: (5, 4, 2, 4)
func MatMul(a, b *Array) (*Array, error) {
	return tensor.MatMul(a, b)
}

// Traversal

// Traverse walks a in logical order using its strides and backstrides.
func Traverse(a *Array, v Visitor) {
	tensor.Traverse(a, v)
}

// Walk calls fn with the buffer offset of every element in logical order.
func Walk(a *Array, fn func(offset int)) {
	tensor.Walk(a, fn)
}

// Configuration

// SetParallelConfig sets how elementwise loops and batched matmul use goroutines.
func SetParallelConfig(cfg ParallelConfig) {
	tensor.SetParallelConfig(cfg)
}

// SetMaxElements limits the size of a single array; n <= 0 removes the limit.
func SetMaxElements(n int) {
	tensor.SetMaxElements(n)
}

// WalkIndexed calls fn with the buffer offset and multi-index of every element in logical order.
func WalkIndexed(a *Array, fn func(offset int, index []int)) {
	tensor.WalkIndexed(a, fn)
}

// WalkRows calls fn with the buffer offsets of each innermost row in logical order.
func WalkRows(a *Array, fn func(offsets []int)) {
	tensor.WalkRows(a, fn)
}
