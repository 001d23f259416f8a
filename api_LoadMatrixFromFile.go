package forMatrixMarketGo

import (
	"fmt"

	"github.com/intel/forMatrixMarketGo/input"
	"github.com/intel/forMatrixMarketGo/matrix"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LoadMatrixFromFile reads the Matrix Market file at path, decompressing it
// as selected by opts.Compression.
func LoadMatrixFromFile[V matrix.Number](path string, opts Options) (matrix.Matrix[V], error) {
	opts.logger().Debug("reading Matrix Market file", zap.String("path", path), zap.Stringer("compression", opts.Compression))
	f, err := input.OpenFile(path, opts.Compression, opts.bufferSize())
	if err != nil {
		return nil, err
	}
	m, err := load[V](f, opts)
	if err = multierr.Append(err, f.Close()); err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return m, nil
}

// LoadMatrixFromTextFile reads an uncompressed Matrix Market file.
func LoadMatrixFromTextFile[V matrix.Number](path string, opts Options) (matrix.Matrix[V], error) {
	opts.Compression = input.None
	return LoadMatrixFromFile[V](path, opts)
}

// LoadMatrixFromGzipFile reads a gzip-compressed Matrix Market file.
func LoadMatrixFromGzipFile[V matrix.Number](path string, opts Options) (matrix.Matrix[V], error) {
	opts.Compression = input.Gzip
	return LoadMatrixFromFile[V](path, opts)
}

// LoadMatrixFromSomeFile reads a Matrix Market file that may be compressed
// with any supported method, or not at all.
func LoadMatrixFromSomeFile[V matrix.Number](path string, opts Options) (matrix.Matrix[V], error) {
	opts.Compression = input.Auto
	return LoadMatrixFromFile[V](path, opts)
}

// LoadMatrixFromBuffer reads a Matrix Market file held in buf, decompressing
// it as selected by opts.Compression.
func LoadMatrixFromBuffer[V matrix.Number](buf []byte, opts Options) (matrix.Matrix[V], error) {
	r, err := input.FromBuffer(buf, opts.Compression, opts.bufferSize())
	if err != nil {
		return nil, err
	}
	m, err := load[V](r, opts)
	if err = multierr.Append(err, r.Close()); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadMatrixFromTextBuffer reads an uncompressed Matrix Market file held in
// buf.
func LoadMatrixFromTextBuffer[V matrix.Number](buf []byte, opts Options) (matrix.Matrix[V], error) {
	opts.Compression = input.None
	return LoadMatrixFromBuffer[V](buf, opts)
}

// LoadMatrixFromSomeBuffer reads a Matrix Market file held in buf that may
// be compressed with any supported method, or not at all.
func LoadMatrixFromSomeBuffer[V matrix.Number](buf []byte, opts Options) (matrix.Matrix[V], error) {
	opts.Compression = input.Auto
	return LoadMatrixFromBuffer[V](buf, opts)
}
