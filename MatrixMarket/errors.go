package MatrixMarket

import (
	"errors"
	"math"
)

const maxIndex = math.MaxInt

var (
	ErrBanner         = errors.New("MatrixMarket malformed banner")
	ErrDimensions     = errors.New("MatrixMarket malformed size line")
	ErrEntry          = errors.New("MatrixMarket malformed entry")
	ErrField          = errors.New("MatrixMarket field does not match scan")
	ErrTooFewEntries  = errors.New("MatrixMarket too few entries")
	ErrTooManyEntries = errors.New("MatrixMarket too many entries")
)
