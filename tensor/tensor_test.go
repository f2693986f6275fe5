// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

func TestPublicAPI_Scenarios(t *testing.T) {
	t.Run("dot of arange", func(t *testing.T) {
		a, err := tensor.Arange(1, 11, 1)
		require.NoError(t, err)
		d, err := tensor.Dot(a, a)
		require.NoError(t, err)
		assert.Equal(t, []float32{385}, d.Data())
	})

	t.Run("expand then expand", func(t *testing.T) {
		a, err := tensor.Arange(1, 4, 1)
		require.NoError(t, err)
		b, err := tensor.ExpandDims(a, -1)
		require.NoError(t, err)
		c, err := tensor.ExpandDims(b, 0)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{1, 3, 1}, c.Shape())
		assert.Equal(t, []float32{1, 2, 3}, c.Data())
	})

	t.Run("squeeze twice", func(t *testing.T) {
		a, err := tensor.New(tensor.Shape{3, 1, 2, 1})
		require.NoError(t, err)
		b, err := tensor.Squeeze(a, -1)
		require.NoError(t, err)
		c, err := tensor.Squeeze(b, 1)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3, 2}, c.Shape())
	})

	t.Run("matmul mismatch", func(t *testing.T) {
		a, _ := tensor.New(tensor.Shape{2, 3})
		b, _ := tensor.New(tensor.Shape{2, 3})
		c, err := tensor.MatMul(a, b)
		assert.Nil(t, c)
		assert.True(t, errors.Is(err, tensor.ErrDimensionMismatch))

		var se *tensor.ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "matmul", se.Op)
	})
}

func TestPublicAPI_SerialConfig(t *testing.T) {
	tensor.SetParallelConfig(tensor.ParallelConfig{Enabled: false, NumWorkers: 1})
	defer tensor.SetParallelConfig(tensor.ParallelConfig{Enabled: true, NumWorkers: 4, MinChunkSize: 64})

	a, err := tensor.Full(tensor.Shape{4, 4}, 2)
	require.NoError(t, err)
	b, err := tensor.Mul(a, a)
	require.NoError(t, err)
	for _, v := range b.Data() {
		assert.Equal(t, float32(4), v)
	}
}

func ExampleAdd() {
	col, _ := tensor.FromValues(tensor.Shape{3, 1}, []float32{1, 2, 3})
	row, _ := tensor.Transpose(col)

	sum, _ := tensor.Add(row, col)
	fmt.Println(sum.Shape(), sum.Data())
	// Output: (3, 3) [2 3 4 3 4 5 4 5 6]
}

func ExampleMatMul() {
	a, _ := tensor.New(tensor.Shape{5, 4, 2, 3})
	b, _ := tensor.New(tensor.Shape{5, 4, 3, 4})

	c, _ := tensor.MatMul(a, b)
	fmt.Println(c.Shape())
	// Output: (5, 4, 2, 4)
}

func ExampleWalk() {
	m, _ := tensor.FromValues(tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})
	mt, _ := tensor.Transpose(m)

	var logical []float32
	tensor.Walk(mt, func(off int) {
		logical = append(logical, mt.Data()[off])
	})
	fmt.Println(logical)
	// Output: [1 4 2 5 3 6]
}
