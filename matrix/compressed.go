package matrix

import (
	"fmt"
	"sort"

	"github.com/intel/forGoParallel/parallel"
)

// CompressedSparse is a compressed sparse row (rowMajor) or column matrix.
// The primary axis is rows for CSR and columns for CSC. Group p occupies
// pointers[p]:pointers[p+1] of indices and values; indices hold positions
// along the secondary axis. Within a group, elements keep the order they
// were built in until SortIndices is called. If a group holds the same index
// more than once, the last one wins.
type CompressedSparse[V, S Number, I Index] struct {
	nrow, ncol int
	values     []S
	indices    []I
	pointers   []int
	rowMajor   bool
	sorted     bool
}

// NewCompressedSparse takes ownership of values, indices and pointers after
// checking that they describe a valid layout.
func NewCompressedSparse[V, S Number, I Index](nrow, ncol int, values []S, indices []I, pointers []int, rowMajor bool) (*CompressedSparse[V, S, I], error) {
	if nrow < 0 || ncol < 0 {
		return nil, fmt.Errorf("%w: %v x %v", ErrShape, nrow, ncol)
	}
	if len(values) != len(indices) {
		return nil, fmt.Errorf("%w: %v values but %v indices", ErrLayout, len(values), len(indices))
	}
	primaryDim, secondaryDim := nrow, ncol
	if !rowMajor {
		primaryDim, secondaryDim = ncol, nrow
	}
	if len(pointers) != primaryDim+1 {
		return nil, fmt.Errorf("%w: expected %v pointers, got %v", ErrLayout, primaryDim+1, len(pointers))
	}
	if pointers[0] != 0 || pointers[primaryDim] != len(values) {
		return nil, fmt.Errorf("%w: pointers must run from 0 to %v", ErrLayout, len(values))
	}
	for p := 0; p < primaryDim; p++ {
		if pointers[p] > pointers[p+1] {
			return nil, fmt.Errorf("%w: pointers decrease at %v", ErrLayout, p)
		}
	}
	for k, i := range indices {
		if i < 0 || uint64(i) >= uint64(secondaryDim) {
			return nil, fmt.Errorf("%w: index %v at position %v out of range", ErrLayout, i, k)
		}
	}
	return &CompressedSparse[V, S, I]{
		nrow:     nrow,
		ncol:     ncol,
		values:   values,
		indices:  indices,
		pointers: pointers,
		rowMajor: rowMajor,
	}, nil
}

func (m *CompressedSparse[V, S, I]) NRow() int {
	return m.nrow
}

func (m *CompressedSparse[V, S, I]) NCol() int {
	return m.ncol
}

func (m *CompressedSparse[V, S, I]) Sparse() bool {
	return true
}

func (m *CompressedSparse[V, S, I]) PreferRows() bool {
	return m.rowMajor
}

// NonZeros is the number of stored elements.
func (m *CompressedSparse[V, S, I]) NonZeros() int {
	return len(m.values)
}

// Pointers is the group boundary slice; it must not be modified.
func (m *CompressedSparse[V, S, I]) Pointers() []int {
	return m.pointers
}

// Primary returns the indices and values of group p. The slices share
// storage with m and must not be modified.
func (m *CompressedSparse[V, S, I]) Primary(p int) ([]I, []S) {
	if p < 0 || p >= len(m.pointers)-1 {
		if m.rowMajor {
			panic(ErrRowAccess)
		}
		panic(ErrColAccess)
	}
	low, high := m.pointers[p], m.pointers[p+1]
	return m.indices[low:high], m.values[low:high]
}

func (m *CompressedSparse[V, S, I]) checkRow(r int) {
	if r < 0 || r >= m.nrow {
		panic(ErrRowAccess)
	}
}

func (m *CompressedSparse[V, S, I]) checkCol(c int) {
	if c < 0 || c >= m.ncol {
		panic(ErrColAccess)
	}
}

// find returns the position of the last occurrence of secondary index s in
// group p, or -1.
func (m *CompressedSparse[V, S, I]) find(p, s int) int {
	low, high := m.pointers[p], m.pointers[p+1]
	if m.sorted {
		k := low + sort.Search(high-low, func(k int) bool {
			return int(m.indices[low+k]) > s
		})
		if k > low && int(m.indices[k-1]) == s {
			return k - 1
		}
		return -1
	}
	for k := high - 1; k >= low; k-- {
		if int(m.indices[k]) == s {
			return k
		}
	}
	return -1
}

func (m *CompressedSparse[V, S, I]) At(r, c int) V {
	m.checkRow(r)
	m.checkCol(c)
	p, s := r, c
	if !m.rowMajor {
		p, s = c, r
	}
	if k := m.find(p, s); k >= 0 {
		return V(m.values[k])
	}
	return 0
}

func (m *CompressedSparse[V, S, I]) Row(r int, buf []V) []V {
	m.checkRow(r)
	out := resize(buf, m.ncol)
	if m.rowMajor {
		m.expand(r, out)
	} else {
		m.gather(r, out)
	}
	return out
}

func (m *CompressedSparse[V, S, I]) Column(c int, buf []V) []V {
	m.checkCol(c)
	out := resize(buf, m.nrow)
	if m.rowMajor {
		m.gather(c, out)
	} else {
		m.expand(c, out)
	}
	return out
}

// expand writes group p into out along the secondary axis.
func (m *CompressedSparse[V, S, I]) expand(p int, out []V) {
	zero(out)
	for k := m.pointers[p]; k < m.pointers[p+1]; k++ {
		out[int(m.indices[k])] = V(m.values[k])
	}
}

// gather collects secondary index s from every group into out.
func (m *CompressedSparse[V, S, I]) gather(s int, out []V) {
	for p := range out {
		if k := m.find(p, s); k >= 0 {
			out[p] = V(m.values[k])
		} else {
			out[p] = 0
		}
	}
}

func (m *CompressedSparse[V, S, I]) Triplets() (rows, cols []int, values []V) {
	n := len(m.values)
	rows, cols, values = make([]int, n), make([]int, n), make([]V, n)
	primary, secondary := rows, cols
	if !m.rowMajor {
		primary, secondary = cols, rows
	}
	if ngroups := len(m.pointers) - 1; ngroups > 0 && n > 0 {
		parallel.Range(0, ngroups, 0, func(low, high int) {
			for p := low; p < high; p++ {
				for k := m.pointers[p]; k < m.pointers[p+1]; k++ {
					primary[k] = p
					secondary[k] = int(m.indices[k])
					values[k] = V(m.values[k])
				}
			}
		})
	}
	return
}
