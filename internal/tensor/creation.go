package tensor

import (
	"fmt"
	"math/rand"
)

// Zeros creates an array filled with zeros.
func Zeros(shape Shape) (*Array, error) {
	return New(shape)
}

// Full creates an array filled with value.
func Full(shape Shape, value float32) (*Array, error) {
	arr, err := New(shape)
	if err != nil {
		return nil, err
	}
	for i := range arr.data {
		arr.data[i] = value
	}
	return arr, nil
}

// Arange creates a rank-1 array with values from start (inclusive) to end
// (exclusive) separated by step.
//
// Example:
//
//	a, _ := tensor.Arange(1, 11, 1) // [1, 2, ..., 10]
func Arange(start, end, step float32) (*Array, error) {
	if start >= end {
		return nil, &ShapeError{Op: "arange", Kind: ErrInvalidRange, Axis: noAxis,
			Detail: "start must be less than end"}
	}
	if step <= 0 {
		return nil, &ShapeError{Op: "arange", Kind: ErrInvalidRange, Axis: noAxis,
			Detail: "step must be positive"}
	}

	// Count by accumulation so the length agrees with the generated values.
	n := 0
	for curr := start; curr < end; curr += step {
		if curr+step == curr {
			return nil, &ShapeError{Op: "arange", Kind: ErrInvalidRange, Axis: noAxis,
				Detail: "step too small to advance"}
		}
		n++
	}

	arr, err := newArray("arange", Shape{n})
	if err != nil {
		return nil, err
	}
	curr := start
	for i := range arr.data {
		arr.data[i] = curr
		curr += step
	}
	return arr, nil
}

// Rand creates an array with values drawn uniformly from [lo, hi) using rng.
// A nil rng uses a source seeded with 1. lo > hi fails with ErrInvalidRange.
func Rand(rng *rand.Rand, shape Shape, lo, hi float32) (*Array, error) {
	if lo > hi {
		return nil, &ShapeError{Op: "rand", Kind: ErrInvalidRange, Axis: noAxis,
			Detail: fmt.Sprintf("lower bound %g exceeds upper bound %g", lo, hi)}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	arr, err := newArray("rand", shape)
	if err != nil {
		return nil, err
	}
	for i := range arr.data {
		arr.data[i] = lo + rng.Float32()*(hi-lo)
	}
	return arr, nil
}
