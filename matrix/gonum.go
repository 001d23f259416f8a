package matrix

import "gonum.org/v1/gonum/mat"

type gonumView[V Number] struct {
	m Matrix[V]
}

// AsGonum exposes m as a gonum mat.Matrix of float64 without copying.
func AsGonum[V Number](m Matrix[V]) mat.Matrix {
	return gonumView[V]{m: m}
}

func (g gonumView[V]) Dims() (r, c int) {
	return g.m.NRow(), g.m.NCol()
}

func (g gonumView[V]) At(i, j int) float64 {
	return float64(g.m.At(i, j))
}

func (g gonumView[V]) T() mat.Matrix {
	return mat.Transpose{Matrix: g}
}

// ToGonumDense copies m into a new row-major mat.Dense. Empty matrices
// yield an empty mat.Dense.
func ToGonumDense[V Number](m Matrix[V]) *mat.Dense {
	r, c := m.NRow(), m.NCol()
	if r == 0 || c == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, r*c)
	var row []V
	for i := 0; i < r; i++ {
		row = m.Row(i, row)
		for j, v := range row {
			data[i*c+j] = float64(v)
		}
	}
	return mat.NewDense(r, c, data)
}
