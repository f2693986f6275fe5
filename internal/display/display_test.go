package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/tensor"
)

func arange(t *testing.T, n int, shape tensor.Shape) *tensor.Array {
	t.Helper()
	a, err := tensor.Arange(1, float32(n+1), 1)
	require.NoError(t, err)
	require.NoError(t, tensor.ReshapeInPlace(a, shape))
	return a
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		shape tensor.Shape
		want  string
	}{
		{"vector", 3, tensor.Shape{3}, "[1 2 3]"},
		{"matrix", 6, tensor.Shape{2, 3}, "[[1 2 3]\n [4 5 6]]"},
		{"rank3", 8, tensor.Shape{2, 2, 2}, "[[[1 2]\n  [3 4]]\n\n [[5 6]\n  [7 8]]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(arange(t, tt.n, tt.shape), 0))
		})
	}
}

func TestFormat_Precision(t *testing.T) {
	a, err := tensor.FromValues(tensor.Shape{2}, []float32{0.5, 1.25})
	require.NoError(t, err)
	assert.Equal(t, "[0.500 1.250]", Format(a, -1))
	assert.Equal(t, "[0.50 1.25]", Format(a, 2))
}

func TestFormat_Transposed(t *testing.T) {
	tr, err := tensor.Transpose(arange(t, 6, tensor.Shape{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, "[[1 4]\n [2 5]\n [3 6]]", Format(tr, 0))
}

func TestShow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Show(&buf, arange(t, 2, tensor.Shape{2})))
	assert.Equal(t, "[1.000 2.000]\n", buf.String())
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Info(&buf, arange(t, 24, tensor.Shape{2, 3, 4})))

	out := buf.String()
	assert.Contains(t, out, "(2, 3, 4)")
	assert.Contains(t, out, "(12, 4, 1)")
	assert.Contains(t, out, "(48, 16, 4)")
	assert.Contains(t, out, "(-12, -8, -3)")
	assert.Contains(t, out, "C-contiguous")
}

func TestReleased(t *testing.T) {
	a := arange(t, 2, tensor.Shape{2})
	a.Release()

	assert.Equal(t, "[released]", Format(a, 0))
	assert.Error(t, Info(&bytes.Buffer{}, a))
}
