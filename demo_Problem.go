package forMatrixMarketGo

import (
	"time"

	"github.com/intel/forMatrixMarketGo/input"
	"github.com/intel/forMatrixMarketGo/matrix"
	"go.uber.org/zap"
)

// Problem is a matrix loaded by ReadProblem together with a summary of its
// contents.
type Problem[V matrix.Number] struct {
	Path    string
	Matrix  matrix.Matrix[V]
	Elapsed time.Duration
	Stored  int
	Sum     float64
}

// ReadProblem loads the file at path and summarizes it. Compression is
// detected from the file contents unless opts.Compression names a method;
// input.None also means detect.
func ReadProblem[V matrix.Number](path string, opts Options) (*Problem[V], error) {
	if opts.Compression == input.None {
		opts.Compression = input.Auto
	}
	logger := opts.logger().With(zap.String("path", path))
	logger.Info("reading Matrix Market file")
	tic := time.Now()
	m, err := LoadMatrixFromFile[V](path, opts)
	if err != nil {
		return nil, err
	}
	toc := time.Now()
	p := &Problem[V]{
		Path:    path,
		Matrix:  m,
		Elapsed: toc.Sub(tic),
	}
	_, _, values := m.Triplets()
	p.Stored = len(values)
	for _, v := range values {
		p.Sum += float64(v)
	}
	logger.Info("ReadProblem done",
		zap.Int("nrows", m.NRow()),
		zap.Int("ncols", m.NCol()),
		zap.Bool("sparse", m.Sparse()),
		zap.Int("stored", p.Stored),
		zap.Duration("elapsed", p.Elapsed))
	return p, nil
}
