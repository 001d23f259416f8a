package forMatrixMarketGo

import (
	"fmt"
	"math"
	"strings"

	"github.com/intel/forMatrixMarketGo/MatrixMarket"
)

// ValueType names the element type a loaded matrix stores its values in.
type ValueType int

const (
	ValueAuto ValueType = iota
	ValueInt8
	ValueInt16
	ValueInt32
	ValueInt64
	ValueUint8
	ValueUint16
	ValueUint32
	ValueUint64
	ValueFloat32
	ValueFloat64
)

var valueTypeNames = []string{"auto", "int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64", "float32", "float64"}

func (t ValueType) String() string {
	if t >= 0 && int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range valueTypeNames {
		if s == name {
			*t = ValueType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: value type %q", ErrUnknownType, text)
}

// IndexType names the integer type a compressed sparse matrix stores its
// secondary indices in. The same names describe the temporary primary
// indices held while entries are accumulated.
type IndexType int

const (
	IndexAuto IndexType = iota
	IndexUint8
	IndexUint16
	IndexUint32
	IndexUint64
	IndexInt32
	IndexInt64
)

var indexTypeNames = []string{"auto", "uint8", "uint16", "uint32", "uint64", "int32", "int64"}

func (t IndexType) String() string {
	if t >= 0 && int(t) < len(indexTypeNames) {
		return indexTypeNames[t]
	}
	return fmt.Sprintf("IndexType(%d)", int(t))
}

func (t IndexType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *IndexType) UnmarshalText(text []byte) error {
	s := strings.ToLower(string(text))
	for i, name := range indexTypeNames {
		if s == name {
			*t = IndexType(i)
			return nil
		}
	}
	return fmt.Errorf("%w: index type %q", ErrUnknownType, text)
}

// ChooseValueType returns override unless it is ValueAuto, in which case
// real and double fields are stored as float64 and integer fields as int32.
// Fields other than real, double and integer are rejected whatever the
// override.
func ChooseValueType(field MatrixMarket.Field, override ValueType) (ValueType, error) {
	var automatic ValueType
	switch field {
	case MatrixMarket.Real, MatrixMarket.Double:
		automatic = ValueFloat64
	case MatrixMarket.Integer:
		automatic = ValueInt32
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedField, field)
	}
	switch {
	case override == ValueAuto:
		return automatic, nil
	case override > ValueAuto && override <= ValueFloat64:
		return override, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnknownType, override)
}

// ChooseIndexType returns override unless it is IndexAuto, in which case it
// picks the narrowest unsigned type whose maximum is at least the size of
// the secondary dimension.
func ChooseIndexType(secondary int, override IndexType) IndexType {
	if override != IndexAuto {
		return override
	}
	return smallestIndexType(secondary)
}

// ChooseTempIndexType picks the narrowest unsigned type whose maximum is at
// least the size of the primary dimension.
func ChooseTempIndexType(primary int) IndexType {
	return smallestIndexType(primary)
}

func smallestIndexType(dim int) IndexType {
	switch {
	case uint64(dim) <= math.MaxUint8:
		return IndexUint8
	case uint64(dim) <= math.MaxUint16:
		return IndexUint16
	case uint64(dim) <= math.MaxUint32:
		return IndexUint32
	}
	return IndexUint64
}

func maxIndexValue(t IndexType) uint64 {
	switch t {
	case IndexUint8:
		return math.MaxUint8
	case IndexUint16:
		return math.MaxUint16
	case IndexUint32:
		return math.MaxUint32
	case IndexInt32:
		return math.MaxInt32
	case IndexInt64:
		return math.MaxInt64
	}
	return math.MaxUint64
}

// checkIndexType reports whether every index of a dimension of size dim
// fits t.
func checkIndexType(t IndexType, dim int) error {
	if dim > 0 && uint64(dim-1) > maxIndexValue(t) {
		return fmt.Errorf("%w: dimension %v with %v indices", ErrIndexOverflow, dim, t)
	}
	return nil
}
