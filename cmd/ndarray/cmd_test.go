package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/tensor"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NDARRAY_SERIAL", "1")

	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want tensor.Shape
	}{
		{"3", tensor.Shape{3}},
		{"2,3,4", tensor.Shape{2, 3, 4}},
		{"2x3", tensor.Shape{2, 3}},
		{"(2, 3)", tensor.Shape{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseShape(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseShape_Invalid(t *testing.T) {
	_, err := parseShape("")
	assert.True(t, errors.Is(err, errShapeFlag))

	_, err = parseShape("2,a")
	assert.True(t, errors.Is(err, errShapeFlag))

	_, err = parseShape("2,0")
	assert.True(t, errors.Is(err, tensor.ErrInvalidShape))
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ndarray version "+version+"\n", out)
}

func TestShow(t *testing.T) {
	out, err := runCLI(t, "show", "--start", "1", "--end", "7", "--shape", "2,3")
	require.NoError(t, err)
	assert.Equal(t, "[[1.000 2.000 3.000]\n [4.000 5.000 6.000]]\n", out)
}

func TestShow_BadReshape(t *testing.T) {
	_, err := runCLI(t, "show", "--end", "6", "--shape", "4,2")
	assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))
}

func TestInfo_Transposed(t *testing.T) {
	out, err := runCLI(t, "info", "--shape", "2,3", "--transpose")
	require.NoError(t, err)
	assert.Contains(t, out, "(3, 2)")
	assert.Contains(t, out, "(1, 3)")
}

func TestRand_Deterministic(t *testing.T) {
	first, err := runCLI(t, "rand", "--shape", "2,2", "--seed", "7")
	require.NoError(t, err)
	second, err := runCLI(t, "rand", "--shape", "2,2", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDemos(t *testing.T) {
	out, err := runCLI(t, "demo", "add")
	require.NoError(t, err)
	assert.Contains(t, out, "(3, 1) + (1, 3) -> (3, 3)")
	assert.Contains(t, out, "[[11.000 21.000 31.000]")

	out, err = runCLI(t, "demo", "matmul")
	require.NoError(t, err)
	assert.Contains(t, out, "(2, 2, 3) @ (3, 2) -> (2, 2, 2)")

	out, err = runCLI(t, "demo", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "= 385")

	out, err = runCLI(t, "demo", "squeeze")
	require.NoError(t, err)
	assert.Equal(t, "(3, 1, 2, 1) -> (3, 1, 2) -> (3, 2)\n", out)
}

func TestEnv(t *testing.T) {
	out, err := runCLI(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "NDARRAY_SERIAL=true")
}
