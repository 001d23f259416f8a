// Package matrix holds loaded matrices: dense arrays and compressed sparse
// layouts, each stored in either row or column orientation, behind a single
// read-only Matrix interface.
//
// Compressed matrices keep the order in which entries were added within
// each row or column, so element lookups scan a whole group. Call
// CompressedSparse.SortIndices once to sort every group, after which At,
// and row or column access across groups, use binary search.
package matrix

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a matrix can store or report.
type Number interface {
	constraints.Integer | constraints.Float
}

// Index is the set of types a compressed matrix can store its secondary
// indices in.
type Index interface {
	constraints.Integer
}

var (
	ErrShape     = errors.New("matrix: invalid shape")
	ErrLayout    = errors.New("matrix: inconsistent storage layout")
	ErrRowAccess = errors.New("matrix: row index out of range")
	ErrColAccess = errors.New("matrix: column index out of range")
)

// Matrix is read access to a loaded matrix, reporting elements as V
// whatever type they are stored in. Out of range indices panic with
// ErrRowAccess or ErrColAccess.
type Matrix[V Number] interface {
	NRow() int
	NCol() int

	// Sparse reports whether only structural nonzeros are stored.
	Sparse() bool

	// PreferRows reports whether row access is the cheap direction.
	PreferRows() bool

	At(row, col int) V

	// Row returns row r expanded to NCol elements, reusing buf if it is
	// large enough.
	Row(r int, buf []V) []V

	// Column returns column c expanded to NRow elements, reusing buf if it
	// is large enough.
	Column(c int, buf []V) []V

	// Triplets returns the stored elements as parallel coordinate and value
	// slices, grouped in storage order.
	Triplets() (rows, cols []int, values []V)
}

func resize[V Number](buf []V, n int) []V {
	if cap(buf) < n {
		return make([]V, n)
	}
	return buf[:n]
}

func zero[V Number](buf []V) {
	for i := range buf {
		buf[i] = 0
	}
}
