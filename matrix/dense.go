package matrix

import (
	"fmt"

	"github.com/intel/forGoParallel/parallel"
)

// Dense stores every element of a matrix in one flat slice of S, row-major
// or column-major, and reports elements as V.
type Dense[V, S Number] struct {
	nrow, ncol int
	values     []S
	rowMajor   bool
}

// NewDense takes ownership of values, which must hold nrow*ncol elements in
// the given orientation.
func NewDense[V, S Number](nrow, ncol int, values []S, rowMajor bool) (*Dense[V, S], error) {
	if nrow < 0 || ncol < 0 {
		return nil, fmt.Errorf("%w: %v x %v", ErrShape, nrow, ncol)
	}
	if len(values) != nrow*ncol {
		return nil, fmt.Errorf("%w: dense %v x %v matrix needs %v values, got %v", ErrLayout, nrow, ncol, nrow*ncol, len(values))
	}
	return &Dense[V, S]{nrow: nrow, ncol: ncol, values: values, rowMajor: rowMajor}, nil
}

func (m *Dense[V, S]) NRow() int {
	return m.nrow
}

func (m *Dense[V, S]) NCol() int {
	return m.ncol
}

func (m *Dense[V, S]) Sparse() bool {
	return false
}

func (m *Dense[V, S]) PreferRows() bool {
	return m.rowMajor
}

// Values is the underlying storage; it must not be modified.
func (m *Dense[V, S]) Values() []S {
	return m.values
}

func (m *Dense[V, S]) offset(r, c int) int {
	if r < 0 || r >= m.nrow {
		panic(ErrRowAccess)
	}
	if c < 0 || c >= m.ncol {
		panic(ErrColAccess)
	}
	if m.rowMajor {
		return r*m.ncol + c
	}
	return c*m.nrow + r
}

func (m *Dense[V, S]) At(r, c int) V {
	return V(m.values[m.offset(r, c)])
}

func (m *Dense[V, S]) Row(r int, buf []V) []V {
	if r < 0 || r >= m.nrow {
		panic(ErrRowAccess)
	}
	out := resize(buf, m.ncol)
	if m.rowMajor {
		for j, v := range m.values[r*m.ncol : (r+1)*m.ncol] {
			out[j] = V(v)
		}
	} else {
		for j := range out {
			out[j] = V(m.values[j*m.nrow+r])
		}
	}
	return out
}

func (m *Dense[V, S]) Column(c int, buf []V) []V {
	if c < 0 || c >= m.ncol {
		panic(ErrColAccess)
	}
	out := resize(buf, m.nrow)
	if m.rowMajor {
		for i := range out {
			out[i] = V(m.values[i*m.ncol+c])
		}
	} else {
		for i, v := range m.values[c*m.nrow : (c+1)*m.nrow] {
			out[i] = V(v)
		}
	}
	return out
}

func (m *Dense[V, S]) Triplets() (rows, cols []int, values []V) {
	n := len(m.values)
	rows, cols, values = make([]int, n), make([]int, n), make([]V, n)
	if n == 0 {
		return
	}
	primaryDim, secondaryDim := m.nrow, m.ncol
	primary, secondary := rows, cols
	if !m.rowMajor {
		primaryDim, secondaryDim = m.ncol, m.nrow
		primary, secondary = cols, rows
	}
	parallel.Range(0, primaryDim, 0, func(low, high int) {
		for p := low; p < high; p++ {
			for s := 0; s < secondaryDim; s++ {
				k := p*secondaryDim + s
				primary[k] = p
				secondary[k] = s
				values[k] = V(m.values[k])
			}
		}
	})
	return
}
