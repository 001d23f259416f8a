package forMatrixMarketGo

import (
	"math"
	"testing"

	"github.com/intel/forMatrixMarketGo/MatrixMarket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressTripletsGroupsStably(t *testing.T) {
	primary := []uint8{2, 0, 2, 1, 0, 2}
	secondary := []uint16{5, 1, 3, 4, 0, 3}
	values := []int32{10, 20, 30, 40, 50, 60}
	pointers, indices, grouped := compressTriplets(4, primary, secondary, values)
	assert.Equal(t, []int{0, 2, 3, 6, 6}, pointers)
	assert.Equal(t, []uint16{1, 0, 4, 5, 3, 3}, indices)
	assert.Equal(t, []int32{20, 50, 40, 10, 30, 60}, grouped)
}

func TestCompressTripletsEmpty(t *testing.T) {
	pointers, indices, grouped := compressTriplets[uint8, uint8, float64](3, nil, nil, nil)
	assert.Equal(t, []int{0, 0, 0, 0}, pointers)
	assert.Empty(t, indices)
	assert.Empty(t, grouped)
}

func TestTripletAccumulatorRowMajor(t *testing.T) {
	acc := newTripletAccumulator[uint8, uint16, float64](3, 4, 2, true, MatrixMarket.General)
	require.NoError(t, acc.add(1, 4, 1.5, 1.5))
	require.NoError(t, acc.add(3, 2, -2, -2))
	assert.Equal(t, []uint8{0, 2}, acc.primary)
	assert.Equal(t, []uint16{3, 1}, acc.secondary)
	assert.Equal(t, []float64{1.5, -2}, acc.values)
	assert.Equal(t, 3, acc.primaryDim())
}

func TestTripletAccumulatorColumnMajor(t *testing.T) {
	acc := newTripletAccumulator[uint8, uint16, float64](3, 4, 1, false, MatrixMarket.General)
	require.NoError(t, acc.add(1, 4, 1.5, 1.5))
	assert.Equal(t, []uint8{3}, acc.primary)
	assert.Equal(t, []uint16{0}, acc.secondary)
	assert.Equal(t, 4, acc.primaryDim())
}

func TestTripletAccumulatorMirrors(t *testing.T) {
	acc := newTripletAccumulator[uint8, uint8, int32](3, 3, 2, true, MatrixMarket.SkewSymmetric)
	assert.Equal(t, 4, cap(acc.values))
	require.NoError(t, acc.add(2, 1, 7, -7))
	require.NoError(t, acc.add(3, 3, 1, -1))
	assert.Equal(t, []uint8{1, 0, 2}, acc.primary)
	assert.Equal(t, []uint8{0, 1, 2}, acc.secondary)
	assert.Equal(t, []int32{7, -7, 1}, acc.values)
}

func TestTripletAccumulatorRejectsCoordinates(t *testing.T) {
	acc := newTripletAccumulator[uint8, uint8, int32](2, 3, 1, true, MatrixMarket.General)
	for _, c := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 4}} {
		assert.ErrorIs(t, acc.add(c[0], c[1], 1, 1), ErrMalformedCoordinate, "%v", c)
	}
	assert.Empty(t, acc.values)
}

func TestDenseBuilderColumnMajorAppends(t *testing.T) {
	b, err := newDenseBuilder[int32](2, 2, false, MatrixMarket.General)
	require.NoError(t, err)
	for i, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		require.NoError(t, b.add(c[0], c[1], int32(i+1), int32(i+1)))
	}
	values, err := b.finish(4)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2, 3, 4}, values)
}

func TestDenseBuilderRowMajorScatters(t *testing.T) {
	b, err := newDenseBuilder[int32](2, 3, true, MatrixMarket.General)
	require.NoError(t, err)
	k := int32(1)
	for c := 1; c <= 3; c++ {
		for r := 1; r <= 2; r++ {
			require.NoError(t, b.add(r, c, k, k))
			k++
		}
	}
	values, err := b.finish(6)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 3, 5, 2, 4, 6}, values)
}

func TestDenseBuilderSymmetric(t *testing.T) {
	b, err := newDenseBuilder[float64](2, 2, false, MatrixMarket.Symmetric)
	require.NoError(t, err)
	require.NoError(t, b.add(1, 1, 1, 1))
	require.NoError(t, b.add(2, 1, 2, 2))
	require.NoError(t, b.add(2, 2, 3, 3))
	values, err := b.finish(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 3}, values)
}

func TestDenseBuilderShort(t *testing.T) {
	b, err := newDenseBuilder[float64](2, 2, true, MatrixMarket.General)
	require.NoError(t, err)
	require.NoError(t, b.add(1, 1, 1, 1))
	_, err = b.finish(4)
	assert.ErrorIs(t, err, MatrixMarket.ErrTooFewEntries)
	assert.ErrorIs(t, b.add(3, 1, 1, 1), ErrMalformedCoordinate)
}

func TestReservation(t *testing.T) {
	assert.Equal(t, 4, reservation(4, 3, 3, false))
	assert.Equal(t, 8, reservation(4, 3, 3, true))
	assert.Equal(t, 9, reservation(7, 3, 3, true))
	assert.Equal(t, 4, reservation(1<<62, 2, 2, false))
	assert.Equal(t, 4, reservation(1<<62, 2, 2, true))
	assert.Equal(t, maxReserve, reservation(math.MaxInt, math.MaxInt, math.MaxInt, false))
	assert.Equal(t, 2*maxReserve, reservation(math.MaxInt, math.MaxInt, math.MaxInt, true))
}

func TestDenseBuilderTooLarge(t *testing.T) {
	_, err := newDenseBuilder[float64](1<<31, 1<<31, true, MatrixMarket.General)
	assert.ErrorIs(t, err, MatrixMarket.ErrDimensions)
}

func TestConvertInteger(t *testing.T) {
	v, err := convertInteger[int8](300, false)
	require.NoError(t, err)
	assert.Equal(t, int8(44), v)

	_, err = convertInteger[int8](300, true)
	assert.ErrorIs(t, err, ErrValueOverflow)
	_, err = convertInteger[uint32](-1, true)
	assert.ErrorIs(t, err, ErrValueOverflow)
	_, err = convertInteger[int32](math.MaxInt32+1, true)
	assert.ErrorIs(t, err, ErrValueOverflow)

	u, err := convertInteger[uint8](255, true)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u)

	f, err := convertInteger[float32](-12, true)
	require.NoError(t, err)
	assert.Equal(t, float32(-12), f)
}

func TestConvertReal(t *testing.T) {
	v, err := convertReal[int16](2.75, false)
	require.NoError(t, err)
	assert.Equal(t, int16(2), v)

	_, err = convertReal[int16](2.75, true)
	assert.ErrorIs(t, err, ErrValueOverflow)
	_, err = convertReal[float32](1e300, true)
	assert.ErrorIs(t, err, ErrValueOverflow)

	f, err := convertReal[float32](1e300, false)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(f), 1))

	i, err := convertReal[int64](-40, true)
	require.NoError(t, err)
	assert.Equal(t, int64(-40), i)
}

func TestIsFloat(t *testing.T) {
	assert.True(t, isFloat[float32]())
	assert.True(t, isFloat[float64]())
	assert.False(t, isFloat[int32]())
	assert.False(t, isFloat[uint64]())
}
