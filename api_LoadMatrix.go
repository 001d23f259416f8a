// Package forMatrixMarketGo loads Matrix Market files into in-memory
// matrices. Coordinate files become compressed sparse matrices and array
// files become dense matrices, in row or column orientation. Unless
// overridden, values are stored as float64 for real fields and int32 for
// integer fields, and sparse indices in the narrowest unsigned type that
// can address the secondary dimension.
package forMatrixMarketGo

import (
	"fmt"
	"io"

	"github.com/intel/forMatrixMarketGo/MatrixMarket"
	"github.com/intel/forMatrixMarketGo/input"
	"github.com/intel/forMatrixMarketGo/matrix"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LoadMatrix reads a Matrix Market file from r, decompressing it as
// selected by opts.Compression, and reports elements as V.
func LoadMatrix[V matrix.Number](r io.Reader, opts Options) (matrix.Matrix[V], error) {
	rc, err := input.NewReader(r, opts.Compression, opts.bufferSize())
	if err != nil {
		return nil, err
	}
	m, err := load[V](rc, opts)
	if err = multierr.Append(err, rc.Close()); err != nil {
		return nil, err
	}
	return m, nil
}

func load[V matrix.Number](r io.Reader, opts Options) (m matrix.Matrix[V], err error) {
	bufferSize := opts.bufferSize()
	if !opts.Parallel {
		return parse[V](MatrixMarket.NewParser(r, bufferSize), opts)
	}
	opts.logger().Debug("pipelining read and parse", zap.Int("bufferSize", bufferSize))
	err = input.Pipeline(r, bufferSize, func(r io.Reader) (err error) {
		m, err = parse[V](MatrixMarket.NewParser(r, bufferSize), opts)
		return
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func parse[V matrix.Number](p *MatrixMarket.Parser, opts Options) (matrix.Matrix[V], error) {
	if err := p.ScanPreamble(); err != nil {
		return nil, err
	}
	j := &loadJob{
		p:      p,
		opts:   opts,
		logger: opts.logger(),
		banner: p.Banner(),
		nrow:   p.NRows(),
		ncol:   p.NCols(),
		nlines: p.NLines(),
	}
	j.logger.Debug("Matrix Market banner",
		zap.Stringer("format", j.banner.Format),
		zap.Stringer("field", j.banner.Field),
		zap.Stringer("symmetry", j.banner.Symmetry),
		zap.Int("nrows", j.nrow),
		zap.Int("ncols", j.ncol),
		zap.Int("nlines", j.nlines))
	var err error
	if j.value, err = ChooseValueType(j.banner.Field, opts.Value); err != nil {
		return nil, err
	}
	if j.banner.Symmetry == MatrixMarket.Hermitian {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSymmetry, j.banner.Symmetry)
	}
	switch j.banner.Format {
	case MatrixMarket.Coordinate:
		return loadSparse[V](j)
	case MatrixMarket.Array:
		return loadDense[V](j)
	}
	panic("unreachable code")
}
