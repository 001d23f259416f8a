package forMatrixMarketGo

import (
	"errors"

	"github.com/intel/forMatrixMarketGo/input"
)

var (
	ErrUnsupportedField       = errors.New("unsupported Matrix Market field type")
	ErrUnsupportedSymmetry    = errors.New("unsupported Matrix Market symmetry")
	ErrMalformedCoordinate    = errors.New("malformed Matrix Market coordinate")
	ErrValueOverflow          = errors.New("value does not fit the storage type")
	ErrIndexOverflow          = errors.New("dimension does not fit the index type")
	ErrUnknownType            = errors.New("unknown storage type")
	ErrUnsupportedCompression = input.ErrUnsupportedCompression
)
