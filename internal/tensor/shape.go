package tensor

import (
	"math"
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape has at least one axis and that every
// dimension is positive.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return shapeErr("validate", ErrInvalidRank, s).withDetail("rank must be >= 1")
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return axisErr("validate", ErrInvalidShape, s, i).
				withDetail("dimension %d must be > 0", dim)
		}
		if n > math.MaxInt/dim {
			return shapeErr("validate", ErrAllocation, s).withDetail("element count overflows int")
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal: same rank and same size on every axis.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as a tuple, e.g. (2, 3, 4).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	if len(s) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ComputeStrides calculates row-major strides in element units.
// stride[i] is the product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// ShapesEqual reports whether a and b have identical shapes.
func ShapesEqual(a, b *Array) bool {
	return a.shape.Equal(b.shape)
}

// ResolveBroadcastShape implements NumPy-style broadcasting rules.
//
// Shapes are compared right to left. Two dimensions are compatible when they
// are equal or one of them is 1; missing leading dimensions count as 1.
// When the shapes are already equal, a is returned as is.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5,) + (2, 1)   → (2, 5)
//	(3, 4) + (3, 5) → ErrNotBroadcastable
func ResolveBroadcastShape(a, b Shape) (Shape, error) {
	if a.Equal(b) {
		return a, nil
	}

	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aDim := dimFromRight(a, i)
		bDim := dimFromRight(b, i)

		if aDim != bDim && aDim != 1 && bDim != 1 {
			e := shapeErr("broadcast", ErrNotBroadcastable, a, b)
			e.Axis = maxLen - 1 - i
			return nil, e.withDetail("dimension %d vs %d", aDim, bDim)
		}
		result[maxLen-1-i] = max(aDim, bDim)
	}

	return result, nil
}

// dimFromRight returns the i-th dimension counted from the last axis,
// or 1 when the shape has fewer axes.
func dimFromRight(s Shape, i int) int {
	idx := len(s) - 1 - i
	if idx < 0 {
		return 1
	}
	return s[idx]
}

// broadcastableTo reports whether src can be stretched to target without
// changing target.
func broadcastableTo(src, target Shape) bool {
	if len(src) > len(target) {
		return false
	}
	offset := len(target) - len(src)
	for i, d := range src {
		if d != 1 && d != target[offset+i] {
			return false
		}
	}
	return true
}

// CheckReshapeCompatible verifies that newShape holds exactly as many
// elements as arr.
func CheckReshapeCompatible(arr *Array, newShape Shape) error {
	if err := newShape.Validate(); err != nil {
		return err
	}
	if newShape.NumElements() != arr.size {
		return shapeErr("reshape", ErrShapeMismatch, arr.shape, newShape).
			withDetail("cannot reshape %d elements into %d", arr.size, newShape.NumElements())
	}
	return nil
}
