package tensor

// MultiIndexTable holds every multi-index of a shape in row-major order
// (last axis fastest). Entry e, axis j lives at Data[e*NDim+j].
type MultiIndexTable struct {
	Data  []int
	NDim  int
	Count int
}

// At returns the multi-index of entry e. The returned slice aliases the table.
func (t *MultiIndexTable) At(e int) []int {
	return t.Data[e*t.NDim : (e+1)*t.NDim]
}

// LinearIndexTable maps each entry of a MultiIndexTable to a flat element offset.
type LinearIndexTable struct {
	Offsets []int
}

// MaterializeIndices builds the full cartesian product of per-axis indices
// for shape using an odometer counter.
//
// An empty shape yields a single empty multi-index, which is what batched
// matmul uses when there are no batch axes.
func MaterializeIndices(shape Shape) *MultiIndexTable {
	ndim := len(shape)
	count := shape.NumElements()
	table := &MultiIndexTable{
		Data:  make([]int, count*ndim),
		NDim:  ndim,
		Count: count,
	}

	counter := make([]int, ndim)
	for e := 0; e < count; e++ {
		copy(table.Data[e*ndim:], counter)
		for j := ndim - 1; j >= 0; j-- {
			counter[j]++
			if counter[j] < shape[j] {
				break
			}
			counter[j] = 0
		}
	}

	return table
}

// MaterializeLinearIndices dots every multi-index of shape against strides.
// strides are in element units.
func MaterializeLinearIndices(shape Shape, strides []int) *LinearIndexTable {
	idx := MaterializeIndices(shape)
	return linearFromTable(idx, strides)
}

func linearFromTable(idx *MultiIndexTable, strides []int) *LinearIndexTable {
	offsets := make([]int, idx.Count)
	for e := 0; e < idx.Count; e++ {
		off := 0
		for j, v := range idx.At(e) {
			off += v * strides[j]
		}
		offsets[e] = off
	}
	return &LinearIndexTable{Offsets: offsets}
}
