package tensor

// Reshape returns a new row-major array with newShape holding the elements of
// arr in logical order.
//
// Example:
//
//	a, _ := tensor.Arange(1, 7, 1)
//	b, _ := tensor.Reshape(a, tensor.Shape{2, 3})
func Reshape(arr *Array, newShape Shape) (*Array, error) {
	if err := arr.checkLive("reshape"); err != nil {
		return nil, err
	}
	if err := CheckReshapeCompatible(arr, newShape); err != nil {
		return nil, err
	}

	res, err := newArray("reshape", newShape)
	if err != nil {
		return nil, err
	}
	arr.gatherInto(res.data)
	return res, nil
}

// ReshapeInPlace reinterprets arr's buffer under newShape without copying.
// Only a row-major buffer can be reinterpreted, so a permuted-stride array
// fails with ErrNotContiguous.
func ReshapeInPlace(arr *Array, newShape Shape) error {
	if err := arr.checkLive("reshape_inplace"); err != nil {
		return err
	}
	if err := CheckReshapeCompatible(arr, newShape); err != nil {
		return err
	}
	if !arr.IsRowMajor() {
		return shapeErr("reshape_inplace", ErrNotContiguous, arr.shape, newShape).
			withDetail("strides %v", arr.strides)
	}

	arr.shape = newShape.Clone()
	arr.resetMetadata()
	return nil
}

// Transpose permutes the axes of arr. With no axes the order is reversed.
//
// The result owns a copy of arr's buffer; its shape and strides are arr's
// shape and strides permuted by axes, so it reads the copy in transposed
// order. Rank-1 arrays are returned as a plain copy.
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{2, 3, 4})
//	y, _ := tensor.Transpose(x, 2, 0, 1) // Shape: (4, 2, 3)
func Transpose(arr *Array, axes ...int) (*Array, error) {
	if err := arr.checkLive("transpose"); err != nil {
		return nil, err
	}

	ndim := len(arr.shape)
	perm, err := resolvePermutation(arr.shape, axes)
	if err != nil {
		return nil, err
	}

	res := arr.Clone()
	if ndim == 1 {
		return res, nil
	}

	for i, ax := range perm {
		res.shape[i] = arr.shape[ax]
		res.strides[i] = arr.strides[ax]
	}
	res.refreshDerived()
	return res, nil
}

func resolvePermutation(shape Shape, axes []int) ([]int, error) {
	ndim := len(shape)
	if len(axes) == 0 {
		perm := make([]int, ndim)
		for i := range perm {
			perm[i] = ndim - 1 - i
		}
		return perm, nil
	}

	if len(axes) != ndim {
		return nil, shapeErr("transpose", ErrInvalidPermutation, shape).
			withDetail("got %d axes for rank %d", len(axes), ndim)
	}
	seen := make([]bool, ndim)
	perm := make([]int, ndim)
	for i, ax := range axes {
		if ax < 0 {
			ax += ndim
		}
		if ax < 0 || ax >= ndim {
			return nil, axisErr("transpose", ErrAxisOutOfBounds, shape, axes[i])
		}
		if seen[ax] {
			return nil, axisErr("transpose", ErrInvalidPermutation, shape, axes[i]).
				withDetail("axis repeated")
		}
		seen[ax] = true
		perm[i] = ax
	}
	return perm, nil
}

// ExpandDims inserts a size-1 axis at position axis.
// A negative axis counts from the end, with -1 appending after the last axis.
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{2, 3})
//	y, _ := tensor.ExpandDims(x, 1)  // Shape: (2, 1, 3)
//	z, _ := tensor.ExpandDims(x, -1) // Shape: (2, 3, 1)
func ExpandDims(arr *Array, axis int) (*Array, error) {
	if err := arr.checkLive("expand_dims"); err != nil {
		return nil, err
	}

	ndim := len(arr.shape)
	resolved := axis
	if resolved < 0 {
		resolved = ndim + axis + 1
	}
	if resolved < 0 || resolved > ndim {
		return nil, axisErr("expand_dims", ErrAxisOutOfBounds, arr.shape, axis)
	}

	newShape := make(Shape, 0, ndim+1)
	newShape = append(newShape, arr.shape[:resolved]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, arr.shape[resolved:]...)

	res, err := newArray("expand_dims", newShape)
	if err != nil {
		return nil, err
	}
	arr.gatherInto(res.data)
	return res, nil
}

// Squeeze removes axis, which must have size 1.
// A negative axis counts from the end.
//
// Example:
//
//	x, _ := tensor.New(tensor.Shape{2, 1, 3})
//	y, _ := tensor.Squeeze(x, 1)  // Shape: (2, 3)
//	z, _ := tensor.Squeeze(x, -2) // Shape: (2, 3)
func Squeeze(arr *Array, axis int) (*Array, error) {
	if err := arr.checkLive("squeeze"); err != nil {
		return nil, err
	}

	ndim := len(arr.shape)
	resolved := axis
	if resolved < 0 {
		resolved = ndim + axis
	}
	if resolved < 0 || resolved >= ndim {
		return nil, axisErr("squeeze", ErrAxisOutOfBounds, arr.shape, axis)
	}
	if ndim == 1 {
		return nil, axisErr("squeeze", ErrCannotSqueezeRankOne, arr.shape, axis)
	}
	if arr.shape[resolved] != 1 {
		return nil, axisErr("squeeze", ErrAxisNotSqueezable, arr.shape, axis).
			withDetail("dimension is %d", arr.shape[resolved])
	}

	newShape := make(Shape, 0, ndim-1)
	newShape = append(newShape, arr.shape[:resolved]...)
	newShape = append(newShape, arr.shape[resolved+1:]...)

	res, err := newArray("squeeze", newShape)
	if err != nil {
		return nil, err
	}
	arr.gatherInto(res.data)
	return res, nil
}
