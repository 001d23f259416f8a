package forMatrixMarketGo

import (
	"fmt"

	"github.com/intel/forMatrixMarketGo/MatrixMarket"
	"github.com/intel/forMatrixMarketGo/matrix"
)

// denseBuilder fills the value buffer of a dense matrix from array entries,
// which arrive column by column. Column-major general matrices are appended
// in arrival order; everything else is written at its final offset.
type denseBuilder[T matrix.Number] struct {
	nrow, ncol int
	rowMajor   bool
	symmetric  bool
	scatter    bool
	filled     int
	values     []T
}

func newDenseBuilder[T matrix.Number](nrow, ncol int, rowMajor bool, symmetry MatrixMarket.Symmetry) (*denseBuilder[T], error) {
	if ncol != 0 && nrow > maxElements/ncol {
		return nil, fmt.Errorf("%w: dense %v x %v matrix too large", MatrixMarket.ErrDimensions, nrow, ncol)
	}
	b := &denseBuilder[T]{
		nrow:      nrow,
		ncol:      ncol,
		rowMajor:  rowMajor,
		symmetric: symmetry != MatrixMarket.General,
	}
	b.scatter = rowMajor || b.symmetric
	if b.scatter {
		b.values = make([]T, nrow*ncol)
	} else {
		b.values = make([]T, 0, min(nrow*ncol, maxReserve))
	}
	return b, nil
}

func (b *denseBuilder[T]) offset(r, c int) int {
	if b.rowMajor {
		return r*b.ncol + c
	}
	return c*b.nrow + r
}

func (b *denseBuilder[T]) add(row, col int, value, mirror T) error {
	if row < 1 || row > b.nrow || col < 1 || col > b.ncol {
		return fmt.Errorf("%w: (%v, %v) outside %v x %v matrix", ErrMalformedCoordinate, row, col, b.nrow, b.ncol)
	}
	b.filled++
	if !b.scatter {
		b.values = append(b.values, value)
		return nil
	}
	r, c := row-1, col-1
	b.values[b.offset(r, c)] = value
	if b.symmetric && r != c {
		b.values[b.offset(c, r)] = mirror
	}
	return nil
}

// finish returns the buffer after checking that the file listed expected
// values.
func (b *denseBuilder[T]) finish(expected int) ([]T, error) {
	if b.filled != expected {
		return nil, fmt.Errorf("%w: expected %v array values, got %v", MatrixMarket.ErrTooFewEntries, expected, b.filled)
	}
	return b.values, nil
}
