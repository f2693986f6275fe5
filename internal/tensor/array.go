package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ItemSize is the size in bytes of one element (float32).
const ItemSize = 4

// maxElements caps a single allocation; 0 means unlimited.
var maxElements atomic.Int64

// SetMaxElements limits how many elements a single array may hold.
// Requests above the limit fail with ErrAllocation. n <= 0 removes the limit.
func SetMaxElements(n int) {
	if n < 0 {
		n = 0
	}
	maxElements.Store(int64(n))
}

// Array is a dense float32 N-dimensional array.
//
// The buffer is owned by the array. Strides and backstrides are in element
// units and are always derived from shape, except after Transpose, which
// permutes them.
type Array struct {
	data        []float32
	shape       Shape
	strides     []int
	backstrides []int
	size        int

	cOrder bool
	fOrder bool

	// Cached index tables, valid only for the current shape/strides.
	// mu guards lazy construction so concurrent readers can share an array.
	mu    sync.Mutex
	idxs  *MultiIndexTable
	lidxs *LinearIndexTable

	released bool
}

// New creates a zero-initialized array with the given shape.
// Fails with ErrInvalidRank when shape is empty.
func New(shape Shape) (*Array, error) {
	return newArray("create", shape)
}

func newArray(op string, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		if se, ok := err.(*ShapeError); ok {
			se.Op = op
		}
		return nil, err
	}

	n := shape.NumElements()
	if limit := maxElements.Load(); limit > 0 && int64(n) > limit {
		return nil, shapeErr(op, ErrAllocation, shape).
			withDetail("%d elements exceeds limit of %d", n, limit)
	}

	arr := &Array{
		data:  make([]float32, n),
		shape: shape.Clone(),
		size:  n,
	}
	arr.resetMetadata()
	return arr, nil
}

// FromValues creates an array of the given shape holding a copy of values.
func FromValues(shape Shape, values []float32) (*Array, error) {
	arr, err := New(shape)
	if err != nil {
		return nil, err
	}
	if err := arr.SetValues(values); err != nil {
		return nil, err
	}
	return arr, nil
}

// SetValues copies values into the array in logical row-major order, so
// Values returns them unchanged even when the strides are permuted.
// len(values) must equal the number of elements.
func (a *Array) SetValues(values []float32) error {
	if err := a.checkLive("from_values"); err != nil {
		return err
	}
	if len(values) != a.size {
		return shapeErr("from_values", ErrShapeMismatch, a.shape).
			withDetail("got %d values for %d elements", len(values), a.size)
	}
	if a.IsRowMajor() {
		copy(a.data, values)
		return nil
	}
	for i, off := range a.LinearIndices().Offsets {
		a.data[off] = values[i]
	}
	return nil
}

// Release frees the buffer, metadata and cached index tables.
// Any later use of the array fails with ErrReleased.
func (a *Array) Release() {
	a.data = nil
	a.shape = nil
	a.strides = nil
	a.backstrides = nil
	a.idxs = nil
	a.lidxs = nil
	a.size = 0
	a.released = true
}

// Released reports whether Release has been called.
func (a *Array) Released() bool {
	return a.released
}

func (a *Array) checkLive(op string) error {
	if a == nil || a.released {
		return &ShapeError{Op: op, Kind: ErrReleased, Axis: noAxis}
	}
	return nil
}

// resetMetadata recomputes row-major strides for the current shape and then
// every derived field.
func (a *Array) resetMetadata() {
	a.strides = a.shape.ComputeStrides()
	a.refreshDerived()
}

// refreshDerived recomputes backstrides and order flags from shape/strides
// and drops cached index tables.
func (a *Array) refreshDerived() {
	ndim := len(a.shape)
	a.backstrides = make([]int, ndim)
	for i := ndim - 1; i >= 0; i-- {
		a.backstrides[i] = -a.strides[i] * (a.shape[i] - 1)
	}
	a.cOrder = a.strides[ndim-1] == 1
	a.fOrder = a.strides[0] == 1
	a.idxs = nil
	a.lidxs = nil
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// NDim returns the number of axes.
func (a *Array) NDim() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *Array) Size() int {
	return a.size
}

// ItemSize returns the byte size of one element.
func (a *Array) ItemSize() int {
	return ItemSize
}

// Strides returns a copy of the per-axis strides in element units.
func (a *Array) Strides() []int {
	return append([]int(nil), a.strides...)
}

// ByteStrides returns the per-axis strides in bytes.
func (a *Array) ByteStrides() []int {
	out := make([]int, len(a.strides))
	for i, s := range a.strides {
		out[i] = s * ItemSize
	}
	return out
}

// Backstrides returns a copy of the per-axis backstrides in element units.
func (a *Array) Backstrides() []int {
	return append([]int(nil), a.backstrides...)
}

// Data returns the underlying buffer in memory order.
//
// WARNING: the slice aliases the array's storage.
func (a *Array) Data() []float32 {
	return a.data
}

// IsCContiguous reports whether the last axis has unit stride.
func (a *Array) IsCContiguous() bool {
	return a.cOrder
}

// IsFContiguous reports whether the first axis has unit stride.
func (a *Array) IsFContiguous() bool {
	return a.fOrder
}

// IsRowMajor reports whether walking the buffer in memory order visits the
// elements in logical row-major order. Axes of size 1 are ignored since they
// never advance.
func (a *Array) IsRowMajor() bool {
	want := a.shape.ComputeStrides()
	for i, s := range a.strides {
		if a.shape[i] != 1 && s != want[i] {
			return false
		}
	}
	return true
}

// Indices returns the multi-index table for the current shape, building it
// on first use.
func (a *Array) Indices() *MultiIndexTable {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.indicesLocked()
}

func (a *Array) indicesLocked() *MultiIndexTable {
	if a.idxs == nil {
		a.idxs = MaterializeIndices(a.shape)
	}
	return a.idxs
}

// LinearIndices returns, for every multi-index in row-major order, the flat
// buffer offset under the array's own strides.
func (a *Array) LinearIndices() *LinearIndexTable {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.lidxs == nil {
		a.lidxs = linearFromTable(a.indicesLocked(), a.strides)
	}
	return a.lidxs
}

// offset converts a multi-index into a buffer offset, checking bounds.
func (a *Array) offset(op string, indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, shapeErr(op, ErrIndexOutOfBounds, a.shape).
			withDetail("expected %d indices, got %d", len(a.shape), len(indices))
	}
	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, axisErr(op, ErrIndexOutOfBounds, a.shape, i).
				withDetail("index %d out of range for size %d", idx, a.shape[i])
		}
		off += idx * a.strides[i]
	}
	return off, nil
}

// At returns the element at the given multi-index.
//
// Example:
//
//	a, _ := tensor.New(tensor.Shape{3, 4})
//	v, err := a.At(1, 2) // Row 1, column 2
func (a *Array) At(indices ...int) (float32, error) {
	if err := a.checkLive("at"); err != nil {
		return 0, err
	}
	off, err := a.offset("at", indices)
	if err != nil {
		return 0, err
	}
	return a.data[off], nil
}

// Set stores value at the given multi-index.
func (a *Array) Set(value float32, indices ...int) error {
	if err := a.checkLive("set"); err != nil {
		return err
	}
	off, err := a.offset("set", indices)
	if err != nil {
		return err
	}
	a.data[off] = value
	return nil
}

// Clone returns a deep copy that keeps the source's strides.
// Cloning a released array yields another released array.
func (a *Array) Clone() *Array {
	if a.released {
		return &Array{released: true}
	}
	return &Array{
		data:        append([]float32(nil), a.data...),
		shape:       a.shape.Clone(),
		strides:     append([]int(nil), a.strides...),
		backstrides: append([]int(nil), a.backstrides...),
		size:        a.size,
		cOrder:      a.cOrder,
		fOrder:      a.fOrder,
	}
}

// Values returns the elements in logical row-major order as a new slice.
func (a *Array) Values() []float32 {
	out := make([]float32, a.size)
	a.gatherInto(out)
	return out
}

// gatherInto copies the elements into dst in logical row-major order.
func (a *Array) gatherInto(dst []float32) {
	if a.IsRowMajor() {
		copy(dst, a.data)
		return
	}
	i := 0
	Walk(a, func(off int) {
		dst[i] = a.data[off]
		i++
	})
}

// String returns a short description of the array.
func (a *Array) String() string {
	if a.released {
		return "Array[released]"
	}
	return fmt.Sprintf("Array[float32]%v", a.shape)
}
