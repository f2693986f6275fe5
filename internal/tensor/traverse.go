package tensor

// Visitor receives traversal events. Enter and Leave are optional and fire
// when the walk starts and finishes a block at the given depth.
type Visitor struct {
	Element func(offset int)
	Enter   func(depth int)
	Leave   func(depth int)
}

// Traverse walks every element of a in logical row-major order with a single
// running buffer offset. The offset moves by strides[depth] inside an axis and
// returns by backstrides[depth] at the axis boundary. Nesting is tracked with an
// explicit stack of remaining counts, so rank does not affect call depth.
func Traverse(a *Array, v Visitor) {
	ndim := len(a.shape)
	if ndim == 0 || a.size == 0 {
		return
	}

	shape, strides, back := a.shape, a.strides, a.backstrides
	enter := func(d int) {
		if v.Enter != nil {
			v.Enter(d)
		}
	}
	leave := func(d int) {
		if v.Leave != nil {
			v.Leave(d)
		}
	}

	remaining := make([]int, ndim)
	off := 0
	depth := 0
	enter(0)
	remaining[0] = shape[0]

	for {
		for depth < ndim-1 {
			depth++
			enter(depth)
			remaining[depth] = shape[depth]
		}

		last := ndim - 1
		v.Element(off)
		for i := 1; i < shape[last]; i++ {
			off += strides[last]
			v.Element(off)
		}
		off += back[last]
		leave(last)

		depth--
		for depth >= 0 {
			remaining[depth]--
			if remaining[depth] > 0 {
				off += strides[depth]
				break
			}
			off += back[depth]
			leave(depth)
			depth--
		}
		if depth < 0 {
			return
		}
	}
}

// Walk calls fn with the buffer offset of every element in logical order.
func Walk(a *Array, fn func(offset int)) {
	Traverse(a, Visitor{Element: fn})
}

// WalkIndexed calls fn with the buffer offset and multi-index of every
// element in logical order. index is reused between calls; copy it to keep it.
func WalkIndexed(a *Array, fn func(offset int, index []int)) {
	ndim := len(a.shape)
	index := make([]int, ndim)
	Traverse(a, Visitor{
		Enter: func(d int) {
			index[d] = 0
		},
		Element: func(off int) {
			fn(off, index)
			index[ndim-1]++
		},
		Leave: func(d int) {
			if d > 0 {
				index[d-1]++
			}
		},
	})
}

// WalkRows calls fn once per innermost row with the buffer offsets of that
// row's elements. offsets is reused between calls.
func WalkRows(a *Array, fn func(offsets []int)) {
	ndim := len(a.shape)
	if ndim == 0 {
		return
	}
	row := make([]int, 0, a.shape[ndim-1])
	Traverse(a, Visitor{
		Enter: func(d int) {
			if d == ndim-1 {
				row = row[:0]
			}
		},
		Element: func(off int) {
			row = append(row, off)
		},
		Leave: func(d int) {
			if d == ndim-1 {
				fn(row)
			}
		},
	})
}
