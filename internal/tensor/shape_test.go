package tensor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.shape.NumElements(), "Shape%v", tt.shape)
	}
}

func TestShapeValidation(t *testing.T) {
	for _, s := range []Shape{{1}, {3, 4}, {2, 3, 4}} {
		assert.NoError(t, s.Validate(), "Shape%v", s)
	}

	invalid := []struct {
		shape Shape
		kind  error
	}{
		{Shape{}, ErrInvalidRank},
		{Shape{0}, ErrInvalidShape},
		{Shape{3, 0}, ErrInvalidShape},
		{Shape{-1}, ErrInvalidShape},
		{Shape{3, -4}, ErrInvalidShape},
	}
	for _, tt := range invalid {
		assert.ErrorIs(t, tt.shape.Validate(), tt.kind, "Shape%v", tt.shape)
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.equal, tt.a.Equal(tt.b), "%v == %v", tt.a, tt.b)
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(3,)", Shape{3}.String())
	assert.Equal(t, "(2, 3, 4)", Shape{2, 3, 4}.String())
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{5}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{3, 1, 2, 1}, []int{2, 2, 1, 1}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.strides, tt.shape.ComputeStrides()); diff != "" {
			t.Errorf("Shape%v strides mismatch (-want +got):\n%s", tt.shape, diff)
		}
	}
}

func TestResolveBroadcastShape(t *testing.T) {
	tests := []struct {
		a, b Shape
		want Shape
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{2, 1}, Shape{2, 5}},
		{Shape{2, 1, 3}, Shape{2, 2, 3}, Shape{2, 2, 3}},
		{Shape{4, 1, 6}, Shape{5, 1}, Shape{4, 5, 6}},
		{Shape{1}, Shape{2, 3, 4}, Shape{2, 3, 4}},
	}

	for _, tt := range tests {
		got, err := ResolveBroadcastShape(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v x %v", tt.a, tt.b)

		// Commutativity.
		rev, err := ResolveBroadcastShape(tt.b, tt.a)
		require.NoError(t, err)
		assert.Equal(t, got, rev, "%v x %v reversed", tt.a, tt.b)
	}
}

func TestResolveBroadcastShape_Idempotent(t *testing.T) {
	for _, s := range []Shape{{7}, {3, 4}, {2, 1, 5}} {
		got, err := ResolveBroadcastShape(s, s)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestResolveBroadcastShape_Incompatible(t *testing.T) {
	_, err := ResolveBroadcastShape(Shape{3, 4}, Shape{3, 5})
	require.ErrorIs(t, err, ErrNotBroadcastable)

	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Axis)
	assert.Len(t, se.Shapes, 2)
	assert.Contains(t, err.Error(), "(3, 4)")
	assert.Contains(t, err.Error(), "(3, 5)")
}

func TestCheckReshapeCompatible(t *testing.T) {
	arr, err := New(Shape{2, 3, 4})
	require.NoError(t, err)

	assert.NoError(t, CheckReshapeCompatible(arr, Shape{6, 4}))
	assert.NoError(t, CheckReshapeCompatible(arr, Shape{24}))
	assert.ErrorIs(t, CheckReshapeCompatible(arr, Shape{5, 5}), ErrShapeMismatch)
	assert.ErrorIs(t, CheckReshapeCompatible(arr, Shape{}), ErrInvalidRank)
}

func TestShapesEqual(t *testing.T) {
	a, _ := New(Shape{2, 3})
	b, _ := New(Shape{2, 3})
	c, _ := New(Shape{3, 2})

	assert.True(t, ShapesEqual(a, b))
	assert.False(t, ShapesEqual(a, c))
}
