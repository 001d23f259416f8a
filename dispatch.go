package forMatrixMarketGo

import (
	"fmt"

	"github.com/intel/forMatrixMarketGo/MatrixMarket"
	"github.com/intel/forMatrixMarketGo/matrix"
	"go.uber.org/zap"
)

// loadJob carries the state of one load from the banner to the finished
// matrix. The storage types are chosen once and turned into type
// parameters by the dispatch functions below, so no per-entry switch on a
// type tag remains.
type loadJob struct {
	p                  *MatrixMarket.Parser
	opts               Options
	logger             *zap.Logger
	banner             MatrixMarket.Banner
	nrow, ncol, nlines int
	value              ValueType
	index, temp        IndexType
}

func (j *loadJob) primaryDim() int {
	if j.opts.Row {
		return j.nrow
	}
	return j.ncol
}

func (j *loadJob) secondaryDim() int {
	if j.opts.Row {
		return j.ncol
	}
	return j.nrow
}

func loadSparse[V matrix.Number](j *loadJob) (matrix.Matrix[V], error) {
	if j.primaryDim() > maxElements {
		return nil, fmt.Errorf("%w: %v pointers too many for a %v x %v matrix", MatrixMarket.ErrDimensions, j.primaryDim()+1, j.nrow, j.ncol)
	}
	j.temp = ChooseTempIndexType(j.primaryDim())
	j.index = ChooseIndexType(j.secondaryDim(), j.opts.Index)
	if j.opts.Strict {
		if err := checkIndexType(j.index, j.secondaryDim()); err != nil {
			return nil, err
		}
	}
	j.logger.Debug("storage types",
		zap.Stringer("value", j.value),
		zap.Stringer("index", j.index),
		zap.Stringer("temporaryIndex", j.temp))
	switch j.temp {
	case IndexUint8:
		return sparseWithTemp[V, uint8](j)
	case IndexUint16:
		return sparseWithTemp[V, uint16](j)
	case IndexUint32:
		return sparseWithTemp[V, uint32](j)
	default:
		return sparseWithTemp[V, uint64](j)
	}
}

func sparseWithTemp[V matrix.Number, P matrix.Index](j *loadJob) (matrix.Matrix[V], error) {
	switch j.index {
	case IndexUint8:
		return sparseWithIndex[V, P, uint8](j)
	case IndexUint16:
		return sparseWithIndex[V, P, uint16](j)
	case IndexUint32:
		return sparseWithIndex[V, P, uint32](j)
	case IndexUint64:
		return sparseWithIndex[V, P, uint64](j)
	case IndexInt32:
		return sparseWithIndex[V, P, int32](j)
	case IndexInt64:
		return sparseWithIndex[V, P, int64](j)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownType, j.index)
}

func sparseWithIndex[V matrix.Number, P, I matrix.Index](j *loadJob) (matrix.Matrix[V], error) {
	switch j.value {
	case ValueInt8:
		return loadSparseMatrix[V, P, I, int8](j)
	case ValueInt16:
		return loadSparseMatrix[V, P, I, int16](j)
	case ValueInt32:
		return loadSparseMatrix[V, P, I, int32](j)
	case ValueInt64:
		return loadSparseMatrix[V, P, I, int64](j)
	case ValueUint8:
		return loadSparseMatrix[V, P, I, uint8](j)
	case ValueUint16:
		return loadSparseMatrix[V, P, I, uint16](j)
	case ValueUint32:
		return loadSparseMatrix[V, P, I, uint32](j)
	case ValueUint64:
		return loadSparseMatrix[V, P, I, uint64](j)
	case ValueFloat32:
		return loadSparseMatrix[V, P, I, float32](j)
	case ValueFloat64:
		return loadSparseMatrix[V, P, I, float64](j)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownType, j.value)
}

func loadSparseMatrix[V matrix.Number, P, I matrix.Index, T matrix.Number](j *loadJob) (matrix.Matrix[V], error) {
	acc := newTripletAccumulator[P, I, T](j.nrow, j.ncol, j.nlines, j.opts.Row, j.banner.Symmetry)
	if err := scanEntries[T](j.p, acc, j.opts.Strict); err != nil {
		return nil, err
	}
	pointers, indices, values := compressTriplets(acc.primaryDim(), acc.primary, acc.secondary, acc.values)
	acc.primary, acc.secondary, acc.values = nil, nil, nil
	m, err := matrix.NewCompressedSparse[V](j.nrow, j.ncol, values, indices, pointers, j.opts.Row)
	if err != nil {
		return nil, err
	}
	j.logger.Debug("compressed sparse matrix", zap.Int("nonzeros", m.NonZeros()), zap.Bool("row", j.opts.Row))
	return m, nil
}

func loadDense[V matrix.Number](j *loadJob) (matrix.Matrix[V], error) {
	j.logger.Debug("storage types", zap.Stringer("value", j.value))
	switch j.value {
	case ValueInt8:
		return loadDenseMatrix[V, int8](j)
	case ValueInt16:
		return loadDenseMatrix[V, int16](j)
	case ValueInt32:
		return loadDenseMatrix[V, int32](j)
	case ValueInt64:
		return loadDenseMatrix[V, int64](j)
	case ValueUint8:
		return loadDenseMatrix[V, uint8](j)
	case ValueUint16:
		return loadDenseMatrix[V, uint16](j)
	case ValueUint32:
		return loadDenseMatrix[V, uint32](j)
	case ValueUint64:
		return loadDenseMatrix[V, uint64](j)
	case ValueFloat32:
		return loadDenseMatrix[V, float32](j)
	case ValueFloat64:
		return loadDenseMatrix[V, float64](j)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownType, j.value)
}

func loadDenseMatrix[V, T matrix.Number](j *loadJob) (matrix.Matrix[V], error) {
	b, err := newDenseBuilder[T](j.nrow, j.ncol, j.opts.Row, j.banner.Symmetry)
	if err != nil {
		return nil, err
	}
	if err = scanEntries[T](j.p, b, j.opts.Strict); err != nil {
		return nil, err
	}
	values, err := b.finish(j.nlines)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDense[V](j.nrow, j.ncol, values, j.opts.Row)
	if err != nil {
		return nil, err
	}
	j.logger.Debug("dense matrix", zap.Int("values", len(values)), zap.Bool("row", j.opts.Row))
	return m, nil
}
