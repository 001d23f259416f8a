package forMatrixMarketGo_test

import (
	"bytes"
	"io"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/intel/forMatrixMarketGo/input"
	"github.com/intel/forMatrixMarketGo/matrix"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

type testEntry struct {
	row, col int
	value    float64
}

// testMatrix is a general matrix with unique coordinates, kept in the order
// a coordinate file lists them.
type testMatrix struct {
	nrow, ncol int
	integer    bool
	entries    []testEntry
}

func randomMatrix(rng *rand.Rand, nrow, ncol int, density float64, integer bool) *testMatrix {
	m := &testMatrix{nrow: nrow, ncol: ncol, integer: integer}
	for r := 0; r < nrow; r++ {
		for c := 0; c < ncol; c++ {
			if rng.Float64() >= density {
				continue
			}
			var v float64
			if integer {
				v = float64(rng.Intn(2001) - 1000)
			} else {
				v = math.Round(rng.NormFloat64()*1e6) / 1e3
			}
			m.entries = append(m.entries, testEntry{r, c, v})
		}
	}
	rng.Shuffle(len(m.entries), func(i, j int) {
		m.entries[i], m.entries[j] = m.entries[j], m.entries[i]
	})
	return m
}

func (m *testMatrix) field() string {
	if m.integer {
		return "integer"
	}
	return "real"
}

func (m *testMatrix) format(v float64) string {
	if m.integer {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (m *testMatrix) dense() *mat.Dense {
	d := mat.NewDense(m.nrow, m.ncol, nil)
	for _, e := range m.entries {
		d.Set(e.row, e.col, e.value)
	}
	return d
}

func (m *testMatrix) coordinate() []byte {
	var buf bytes.Buffer
	buf.WriteString("%%MatrixMarket matrix coordinate " + m.field() + " general\n")
	buf.WriteString("% generated for testing\n")
	buf.WriteString(strconv.Itoa(m.nrow) + " " + strconv.Itoa(m.ncol) + " " + strconv.Itoa(len(m.entries)) + "\n")
	for _, e := range m.entries {
		buf.WriteString(strconv.Itoa(e.row+1) + " " + strconv.Itoa(e.col+1) + " " + m.format(e.value) + "\n")
	}
	return buf.Bytes()
}

func (m *testMatrix) array() []byte {
	var buf bytes.Buffer
	buf.WriteString("%%MatrixMarket matrix array " + m.field() + " general\n")
	buf.WriteString(strconv.Itoa(m.nrow) + " " + strconv.Itoa(m.ncol) + "\n")
	d := m.dense()
	for c := 0; c < m.ncol; c++ {
		for r := 0; r < m.nrow; r++ {
			buf.WriteString(m.format(d.At(r, c)) + "\n")
		}
	}
	return buf.Bytes()
}

func compress(t *testing.T, c input.Compression, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case input.None:
		return data
	case input.Gzip:
		w = gzip.NewWriter(&buf)
	case input.Zlib:
		w = zlib.NewWriter(&buf)
	case input.LZ4:
		w = lz4.NewWriter(&buf)
	default:
		t.Fatalf("cannot compress with %v", c)
	}
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func requireEqual(t *testing.T, want *mat.Dense, got matrix.Matrix[float64]) {
	t.Helper()
	r, c := want.Dims()
	require.Equal(t, r, got.NRow())
	require.Equal(t, c, got.NCol())
	require.True(t, mat.Equal(want, matrix.AsGonum(got)), "loaded matrix differs:\n%v", mat.Formatted(matrix.AsGonum(got)))
	for i := 0; i < r; i++ {
		require.Equal(t, want.RawRowView(i), got.Row(i, nil), "row %v", i)
	}
	for j := 0; j < c; j++ {
		require.Equal(t, mat.Col(nil, j, want), got.Column(j, nil), "column %v", j)
	}
}
