package matrix

import GrB "github.com/intel/forGraphBLASGo/GrB"

// ToGraphBLAS copies the stored elements of m into a new GraphBLAS matrix.
// Dense matrices contribute every element, including zeros.
func ToGraphBLAS[V interface {
	GrB.Number
	Number
}](m Matrix[V]) (*GrB.Matrix[V], error) {
	A, err := GrB.MatrixNew[V](m.NRow(), m.NCol())
	if err != nil {
		return nil, err
	}
	rows, cols, values := m.Triplets()
	return A, A.Build(rows, cols, values, func(_, y V) V { return y })
}
