package tensor

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every failing operation returns a *ShapeError wrapping one of these,
// so callers can match with errors.Is.
var (
	ErrAllocation           = errors.New("allocation failure")
	ErrInvalidRank          = errors.New("invalid rank")
	ErrInvalidShape         = errors.New("invalid shape")
	ErrShapeMismatch        = errors.New("shape mismatch")
	ErrNotBroadcastable     = errors.New("shapes not broadcastable")
	ErrAxisOutOfBounds      = errors.New("axis out of bounds")
	ErrAxisNotSqueezable    = errors.New("axis not squeezable")
	ErrCannotSqueezeRankOne = errors.New("cannot squeeze rank-1 array")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
	ErrInsufficientRank     = errors.New("insufficient rank")
	ErrNotContiguous        = errors.New("array is not row-major contiguous")
	ErrInvalidPermutation   = errors.New("invalid axis permutation")
	ErrInvalidRange         = errors.New("invalid range")
	ErrIndexOutOfBounds     = errors.New("index out of bounds")
	ErrReleased             = errors.New("array has been released")
)

// noAxis marks a ShapeError that is not about a particular axis.
const noAxis = -1 << 31

// ShapeError reports which operation failed, why, and on which shapes/axis.
type ShapeError struct {
	Op     string  // Operation name (e.g. "matmul", "squeeze")
	Kind   error   // One of the Err* sentinels
	Shapes []Shape // Offending shapes, in argument order
	Axis   int     // Offending axis, or noAxis
	Detail string  // Optional free-form detail
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Op, e.Kind)
	if len(e.Shapes) > 0 {
		parts := make([]string, len(e.Shapes))
		for i, s := range e.Shapes {
			parts[i] = s.String()
		}
		fmt.Fprintf(&b, " (shapes %s)", strings.Join(parts, ", "))
	}
	if e.Axis != noAxis {
		fmt.Fprintf(&b, " (axis %d)", e.Axis)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the error kind.
func (e *ShapeError) Unwrap() error {
	return e.Kind
}

func shapeErr(op string, kind error, shapes ...Shape) *ShapeError {
	cloned := make([]Shape, len(shapes))
	for i, s := range shapes {
		cloned[i] = s.Clone()
	}
	return &ShapeError{Op: op, Kind: kind, Shapes: cloned, Axis: noAxis}
}

func axisErr(op string, kind error, shape Shape, axis int) *ShapeError {
	e := shapeErr(op, kind, shape)
	e.Axis = axis
	return e
}

func (e *ShapeError) withDetail(format string, args ...any) *ShapeError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}
