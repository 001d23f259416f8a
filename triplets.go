package forMatrixMarketGo

import (
	"fmt"
	"math"

	"github.com/intel/forMatrixMarketGo/MatrixMarket"
	"github.com/intel/forMatrixMarketGo/matrix"
)

func isFloat[T matrix.Number]() bool {
	half := 0.5
	return T(half) != 0
}

func convertInteger[T matrix.Number](v int64, strict bool) (T, error) {
	out := T(v)
	if strict && !isFloat[T]() && (int64(out) != v || (out < 0) != (v < 0)) {
		return 0, fmt.Errorf("%w: %v", ErrValueOverflow, v)
	}
	return out, nil
}

func convertReal[T matrix.Number](v float64, strict bool) (T, error) {
	out := T(v)
	if strict {
		if isFloat[T]() {
			if math.IsInf(float64(out), 0) && !math.IsInf(v, 0) {
				return 0, fmt.Errorf("%w: %v", ErrValueOverflow, v)
			}
		} else if float64(out) != v {
			return 0, fmt.Errorf("%w: %v", ErrValueOverflow, v)
		}
	}
	return out, nil
}

// entrySink receives converted entries; mirror is the value stored at the
// transposed position of a symmetric or skew-symmetric file.
type entrySink[T matrix.Number] interface {
	add(row, col int, value, mirror T) error
}

func integerEntries[T matrix.Number](sink entrySink[T], symmetry MatrixMarket.Symmetry, strict bool) func(int, int, int64) error {
	return func(row, col int, v int64) error {
		value, err := convertInteger[T](v, strict)
		if err != nil {
			return err
		}
		mirror := value
		if symmetry == MatrixMarket.SkewSymmetric && row != col {
			if mirror, err = convertInteger[T](-v, strict); err != nil {
				return err
			}
		}
		return sink.add(row, col, value, mirror)
	}
}

func realEntries[T matrix.Number](sink entrySink[T], symmetry MatrixMarket.Symmetry, strict bool) func(int, int, float64) error {
	return func(row, col int, v float64) error {
		value, err := convertReal[T](v, strict)
		if err != nil {
			return err
		}
		mirror := value
		if symmetry == MatrixMarket.SkewSymmetric && row != col {
			if mirror, err = convertReal[T](-v, strict); err != nil {
				return err
			}
		}
		return sink.add(row, col, value, mirror)
	}
}

// scanEntries runs the scan matching field. Only one of the two callbacks
// is ever active.
func scanEntries[T matrix.Number](p *MatrixMarket.Parser, sink entrySink[T], strict bool) error {
	banner := p.Banner()
	switch banner.Field {
	case MatrixMarket.Integer:
		return p.ScanInteger(integerEntries(sink, banner.Symmetry, strict))
	case MatrixMarket.Real, MatrixMarket.Double:
		return p.ScanReal(realEntries(sink, banner.Symmetry, strict))
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedField, banner.Field)
}

// maxElements bounds any buffer sized from the header alone; larger
// requests cannot be allocated.
const maxElements = 1 << 40

// maxReserve bounds the capacity reserved from a declared entry count.
// Appends grow past it when a file really holds more entries.
const maxReserve = 1 << 27

// reservation is the capacity to reserve for nlines declared entries of an
// nrow x ncol matrix, doubled for mirrored entries.
func reservation(nlines, nrow, ncol int, symmetric bool) int {
	n := min(nlines, maxReserve)
	if symmetric {
		n *= 2
	}
	if ncol == 0 || nrow <= math.MaxInt/ncol {
		n = min(n, nrow*ncol)
	}
	return n
}

// tripletAccumulator collects coordinate entries in arrival order. Primary
// indices are held in the temporary type P until compression; secondary
// indices and values are already in their final types.
//
// Symmetric and skew-symmetric files are expanded while accumulating: every
// off-diagonal entry also produces its mirror, so the compressed layout holds
// twice the declared count minus the diagonal entries.
type tripletAccumulator[P, I matrix.Index, T matrix.Number] struct {
	nrow, ncol int
	rowMajor   bool
	symmetric  bool
	primary    []P
	secondary  []I
	values     []T
}

func newTripletAccumulator[P, I matrix.Index, T matrix.Number](nrow, ncol, nlines int, rowMajor bool, symmetry MatrixMarket.Symmetry) *tripletAccumulator[P, I, T] {
	symmetric := symmetry != MatrixMarket.General
	capacity := reservation(nlines, nrow, ncol, symmetric)
	return &tripletAccumulator[P, I, T]{
		nrow:      nrow,
		ncol:      ncol,
		rowMajor:  rowMajor,
		symmetric: symmetric,
		primary:   make([]P, 0, capacity),
		secondary: make([]I, 0, capacity),
		values:    make([]T, 0, capacity),
	}
}

func (a *tripletAccumulator[P, I, T]) add(row, col int, value, mirror T) error {
	if row < 1 || row > a.nrow || col < 1 || col > a.ncol {
		return fmt.Errorf("%w: (%v, %v) outside %v x %v matrix", ErrMalformedCoordinate, row, col, a.nrow, a.ncol)
	}
	r, c := row-1, col-1
	a.push(r, c, value)
	if a.symmetric && r != c {
		a.push(c, r, mirror)
	}
	return nil
}

func (a *tripletAccumulator[P, I, T]) push(r, c int, value T) {
	if !a.rowMajor {
		r, c = c, r
	}
	a.primary = append(a.primary, P(r))
	a.secondary = append(a.secondary, I(c))
	a.values = append(a.values, value)
}

func (a *tripletAccumulator[P, I, T]) primaryDim() int {
	if a.rowMajor {
		return a.nrow
	}
	return a.ncol
}
