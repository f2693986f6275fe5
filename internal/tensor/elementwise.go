package tensor

import (
	"github.com/born-ml/ndarray/internal/parallel"
)

// MapFunc is a unary scalar function applied elementwise.
type MapFunc func(x float32) float32

// Add returns a + b elementwise, broadcasting mismatched shapes.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{3, 1}) // (3, 1)
//	b, _ := tensor.New(tensor.Shape{3, 4}) // (3, 4)
//	c, _ := tensor.Add(a, b)              // (3, 4)
func Add(a, b *Array) (*Array, error) {
	return binaryOp("add", a, b, func(x, y float32) float32 { return x + y })
}

// Mul returns a * b elementwise, broadcasting mismatched shapes.
func Mul(a, b *Array) (*Array, error) {
	return binaryOp("mul", a, b, func(x, y float32) float32 { return x * y })
}

// Div returns a / b elementwise, broadcasting mismatched shapes.
// Division by zero follows IEEE 754.
func Div(a, b *Array) (*Array, error) {
	return binaryOp("div", a, b, func(x, y float32) float32 { return x / y })
}

// Sub returns a - b, computed as Add(a, Negate(b)).
func Sub(a, b *Array) (*Array, error) {
	neg, err := Negate(b)
	if err != nil {
		return nil, err
	}
	defer neg.Release()

	return Add(a, neg)
}

// Negate returns -a.
func Negate(a *Array) (*Array, error) {
	return Scale(a, -1)
}

// Scale returns a * s.
func Scale(a *Array, s float32) (*Array, error) {
	return Map(a, func(x float32) float32 { return s * x })
}

// Map returns a new row-major array holding fn applied to every element of a.
func Map(a *Array, fn MapFunc) (*Array, error) {
	if err := a.checkLive("map"); err != nil {
		return nil, err
	}

	res, err := newArray("map", a.shape)
	if err != nil {
		return nil, err
	}

	src := a.logicalOffsets()
	parallel.For(res.size, func(i int) {
		res.data[i] = fn(a.data[at(src, i)])
	}, ParallelConfig())

	return res, nil
}

// MapInPlace overwrites every element of a with fn applied to it.
func MapInPlace(a *Array, fn MapFunc) error {
	if err := a.checkLive("map_inplace"); err != nil {
		return err
	}

	data := a.data
	parallel.For(len(data), func(i int) {
		data[i] = fn(data[i])
	}, ParallelConfig())

	return nil
}

// binaryOp runs f over a and b. Equal shapes go straight to the loop;
// otherwise both operands are materialized to the broadcast shape first and
// released afterwards.
func binaryOp(op string, a, b *Array, f func(x, y float32) float32) (*Array, error) {
	if err := a.checkLive(op); err != nil {
		return nil, err
	}
	if err := b.checkLive(op); err != nil {
		return nil, err
	}

	if a.shape.Equal(b.shape) {
		return elementwise(op, a, b, f)
	}

	shape, err := ResolveBroadcastShape(a.shape, b.shape)
	if err != nil {
		if se, ok := err.(*ShapeError); ok {
			se.Op = op
		}
		return nil, err
	}

	af, err := BroadcastTo(a, shape)
	if err != nil {
		return nil, err
	}
	defer af.Release()

	bf, err := BroadcastTo(b, shape)
	if err != nil {
		return nil, err
	}
	defer bf.Release()

	return elementwise(op, af, bf, f)
}

func elementwise(op string, a, b *Array, f func(x, y float32) float32) (*Array, error) {
	res, err := newArray(op, a.shape)
	if err != nil {
		return nil, err
	}

	aOff, bOff := a.logicalOffsets(), b.logicalOffsets()
	ad, bd, rd := a.data, b.data, res.data
	parallel.For(res.size, func(i int) {
		rd[i] = f(ad[at(aOff, i)], bd[at(bOff, i)])
	}, ParallelConfig())

	return res, nil
}

// logicalOffsets returns the buffer offset of each element in logical order,
// or nil when that is the identity.
func (a *Array) logicalOffsets() []int {
	if a.IsRowMajor() {
		return nil
	}
	return a.LinearIndices().Offsets
}

func at(offsets []int, i int) int {
	if offsets == nil {
		return i
	}
	return offsets[i]
}
