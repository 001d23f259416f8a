package forMatrixMarketGo

import "github.com/intel/forMatrixMarketGo/matrix"

// compressTriplets distributes the triplets into groups by primary index
// with one counting pass and one scatter pass. Entries of a group keep
// their input order.
func compressTriplets[P, I matrix.Index, T matrix.Number](primaryDim int, primary []P, secondary []I, values []T) (pointers []int, indices []I, grouped []T) {
	pointers = make([]int, primaryDim+1)
	for _, p := range primary {
		pointers[int(p)+1]++
	}
	for p := 1; p <= primaryDim; p++ {
		pointers[p] += pointers[p-1]
	}
	cursor := make([]int, primaryDim)
	copy(cursor, pointers[:primaryDim])
	indices = make([]I, len(secondary))
	grouped = make([]T, len(values))
	for k, p := range primary {
		pos := cursor[int(p)]
		cursor[int(p)]++
		indices[pos] = secondary[k]
		grouped[pos] = values[k]
	}
	return
}
