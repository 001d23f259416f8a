package matrix

import (
	"sort"

	"github.com/intel/forGoParallel/parallel"
	"github.com/intel/forGoParallel/psort"
)

type tripletSorter[S Number, I Index] struct {
	primary []int
	indices []I
	values  []S
}

func (s tripletSorter[S, I]) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(tripletSorter[S, I])
	return func(i, j, len int) {
		parallel.Do(func() {
			copy(s.primary[i:i+len], src.primary[j:j+len])
		}, func() {
			copy(s.indices[i:i+len], src.indices[j:j+len])
		}, func() {
			copy(s.values[i:i+len], src.values[j:j+len])
		})
	}
}

func (s tripletSorter[S, I]) Len() int {
	return len(s.primary)
}

func (s tripletSorter[S, I]) Less(i, j int) bool {
	pi := s.primary[i]
	pj := s.primary[j]
	if pi < pj {
		return true
	}
	if pi > pj {
		return false
	}
	return s.indices[i] < s.indices[j]
}

func (s tripletSorter[S, I]) NewTemp() psort.StableSorter {
	return tripletSorter[S, I]{
		primary: make([]int, len(s.primary)),
		indices: make([]I, len(s.indices)),
		values:  make([]S, len(s.values)),
	}
}

func (s tripletSorter[S, I]) SequentialSort(i, j int) {
	sort.Stable(tripletSorter[S, I]{
		primary: s.primary[i:j],
		indices: s.indices[i:j],
		values:  s.values[i:j],
	})
}

func (s tripletSorter[S, I]) Swap(i, j int) {
	s.primary[i], s.primary[j] = s.primary[j], s.primary[i]
	s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// SortIndices sorts the indices of every group in increasing order, which
// makes element lookups logarithmic. Duplicate indices keep their relative
// order.
func (m *CompressedSparse[V, S, I]) SortIndices() {
	if m.sorted {
		return
	}
	primary := make([]int, len(m.values))
	for p := 0; p < len(m.pointers)-1; p++ {
		for k := m.pointers[p]; k < m.pointers[p+1]; k++ {
			primary[k] = p
		}
	}
	psort.StableSort(tripletSorter[S, I]{primary: primary, indices: m.indices, values: m.values})
	m.sorted = true
}

// Sorted reports whether SortIndices has been called.
func (m *CompressedSparse[V, S, I]) Sorted() bool {
	return m.sorted
}
