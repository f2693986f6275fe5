package tensor

import (
	"log/slog"

	"github.com/born-ml/ndarray/internal/parallel"
)

// Dot returns the inner product of two rank-1 arrays of equal length as a
// rank-1 array of shape (1,).
//
// Example:
//
//	a, _ := tensor.Arange(1, 11, 1)
//	d, _ := tensor.Dot(a, a) // [385]
func Dot(a, b *Array) (*Array, error) {
	if err := a.checkLive("dot"); err != nil {
		return nil, err
	}
	if err := b.checkLive("dot"); err != nil {
		return nil, err
	}
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return nil, shapeErr("dot", ErrDimensionMismatch, a.shape, b.shape).
			withDetail("both operands must be vectors")
	}
	if a.shape[0] != b.shape[0] {
		return nil, shapeErr("dot", ErrDimensionMismatch, a.shape, b.shape).
			withDetail("vector lengths %d and %d differ", a.shape[0], b.shape[0])
	}

	res, err := newArray("dot", Shape{1})
	if err != nil {
		return nil, err
	}

	as, bs := a.strides[0], b.strides[0]
	var sum float32
	for i := 0; i < a.shape[0]; i++ {
		sum += a.data[i*as] * b.data[i*bs]
	}
	res.data[0] = sum
	return res, nil
}

// MatMul performs matrix multiplication over the last two axes, stacked over
// any leading batch axes.
//
//	(m, n) @ (n, p)             → (m, p)
//	(..., m, n) @ (..., n, p)   → (..., m, p)
//
// Batch axes are right-aligned and broadcast: a missing or size-1 batch axis
// in one operand is reused for every index of the other. Each batch slice is
// computed with a direct triple loop addressing a and b through their own
// strides, so broadcast operands are never copied.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{5, 4, 2, 3})
//	b, _ := tensor.New(tensor.Shape{5, 4, 3, 4})
//	c, _ := tensor.MatMul(a, b) // Shape: (5, 4, 2, 4)
func MatMul(a, b *Array) (*Array, error) {
	if err := a.checkLive("matmul"); err != nil {
		return nil, err
	}
	if err := b.checkLive("matmul"); err != nil {
		return nil, err
	}

	aNdim, bNdim := len(a.shape), len(b.shape)
	if aNdim < 2 || bNdim < 2 {
		return nil, shapeErr("matmul", ErrInsufficientRank, a.shape, b.shape).
			withDetail("both operands need at least 2 dimensions")
	}

	m, n := a.shape[aNdim-2], a.shape[aNdim-1]
	k, p := b.shape[bNdim-2], b.shape[bNdim-1]
	if n != k {
		return nil, shapeErr("matmul", ErrDimensionMismatch, a.shape, b.shape).
			withDetail("inner dimensions %d and %d differ", n, k)
	}

	batchShape, err := ResolveBroadcastShape(a.shape[:aNdim-2], b.shape[:bNdim-2])
	if err != nil {
		return nil, shapeErr("matmul", ErrNotBroadcastable, a.shape, b.shape).
			withDetail("batch dimensions: %v", err)
	}

	outShape := make(Shape, 0, len(batchShape)+2)
	outShape = append(outShape, batchShape...)
	outShape = append(outShape, m, p)

	res, err := newArray("matmul", outShape)
	if err != nil {
		return nil, err
	}

	batches := MaterializeIndices(batchShape)
	aBatch := batchStrides(a, len(batchShape))
	bBatch := batchStrides(b, len(batchShape))

	slog.Debug("matmul", "a", a.shape.String(), "b", b.shape.String(),
		"out", outShape.String(), "batches", batches.Count)

	aRow, aCol := a.strides[aNdim-2], a.strides[aNdim-1]
	bRow, bCol := b.strides[bNdim-2], b.strides[bNdim-1]
	ad, bd, rd := a.data, b.data, res.data
	sliceSize := m * p

	err = parallel.Range(batches.Count, func(bi int) error {
		idx := batches.At(bi)
		aBase, bBase := 0, 0
		for r, v := range idx {
			aBase += v * aBatch[r]
			bBase += v * bBatch[r]
		}
		out := rd[bi*sliceSize : (bi+1)*sliceSize]

		for i := 0; i < m; i++ {
			for j := 0; j < p; j++ {
				var sum float32
				aOff := aBase + i*aRow
				bOff := bBase + j*bCol
				for kk := 0; kk < n; kk++ {
					sum += ad[aOff+kk*aCol] * bd[bOff+kk*bRow]
				}
				out[i*p+j] = sum
			}
		}
		return nil
	}, ParallelConfig())
	if err != nil {
		return nil, err
	}

	return res, nil
}

// batchStrides returns, for each of the result's nb batch axes, the stride
// the operand contributes. Axes the operand lacks or holds at size 1 get 0.
func batchStrides(arr *Array, nb int) []int {
	own := len(arr.shape) - 2
	out := make([]int, nb)
	for r := 0; r < nb; r++ {
		d := r - (nb - own)
		if d < 0 || arr.shape[d] == 1 {
			continue
		}
		out[r] = arr.strides[d]
	}
	return out
}
