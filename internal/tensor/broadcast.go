package tensor

import (
	"log/slog"

	"github.com/born-ml/ndarray/internal/parallel"
)

// BroadcastTo materializes arr stretched to target under broadcasting rules.
//
// Each output multi-index is mapped back to the source axis by axis: the
// leading target axes that arr lacks are ignored, and source axis d reads
// index out[prepend+d] % shape[d] scaled by the source's own stride. Size-1
// source axes therefore always contribute zero offset.
//
// Example:
//
//	a, _ := tensor.FromValues(tensor.Shape{3, 1}, []float32{1, 2, 3})
//	b, _ := tensor.BroadcastTo(a, tensor.Shape{2, 3, 4}) // Each row repeated 4 times, twice
func BroadcastTo(arr *Array, target Shape) (*Array, error) {
	if err := arr.checkLive("broadcast_to"); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if !broadcastableTo(arr.shape, target) {
		return nil, shapeErr("broadcast_to", ErrNotBroadcastable, arr.shape, target)
	}

	res, err := newArray("broadcast_to", target)
	if err != nil {
		return nil, err
	}

	if arr.shape.Equal(target) {
		arr.gatherInto(res.data)
		return res, nil
	}

	slog.Debug("materializing broadcast", "from", arr.shape.String(), "to", target.String())

	srcShape, srcStrides := arr.shape, arr.strides
	prepend := len(target) - len(srcShape)
	idx := res.Indices()

	// res is row-major, so multi-index entry e lands at offset e.
	parallel.For(res.size, func(e int) {
		out := idx.At(e)
		src := 0
		for d, dim := range srcShape {
			if dim > 1 {
				src += (out[prepend+d] % dim) * srcStrides[d]
			}
		}
		res.data[e] = arr.data[src]
	}, ParallelConfig())

	return res, nil
}
