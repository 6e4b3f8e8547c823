// File: rank_decomposition.go
// Role: rank_decomposition(M) -> (C,F) with C*F = M over GF(2).
package gf2

// RankDecomposition computes (C, F) such that C*F = M over GF(2), with
// rank(M) = k columns in C and k rows in F; C's columns are the original
// M's pivot columns (hence independent), and F's rows are the non-zero
// rows of the reduced echelon form of M (hence a basis of rowspace(M)).
// When M is all zero (rank 0), C is a zero rows x 1 matrix and F a zero
// 1 x cols matrix, since NewMatrix rejects a zero dimension.
//
// Complexity: O(rows * cols * min(rows,cols)) for the Gauss-Jordan pass,
// plus O(rows*k + k*cols) to assemble C and F.
func RankDecomposition(m *Matrix) (c, f *Matrix, err error) {
	reduced, pivotCols := GaussReduce(m)
	k := len(pivotCols)
	if k == 0 {
		c, _ = NewMatrix(m.rows, 1)
		f, _ = NewMatrix(1, m.cols)

		return c, f, nil
	}

	c, err = NewMatrix(m.rows, k)
	if err != nil {
		return nil, nil, err
	}
	for j, col := range pivotCols {
		for i := 0; i < m.rows; i++ {
			c.Set(i, j, m.At(i, col))
		}
	}

	f, err = NewMatrix(k, m.cols)
	if err != nil {
		return nil, nil, err
	}
	row := 0
	for i := 0; i < reduced.rows && row < k; i++ {
		if isZeroRow(reduced.data[i]) {
			continue
		}
		copy(f.data[row], reduced.data[i])
		row++
	}

	return c, f, nil
}

// isZeroRow reports whether every entry of row is 0.
func isZeroRow(row []byte) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}

	return true
}

// Rank returns rank(M) over GF(2).
func Rank(m *Matrix) int {
	_, pivots := GaussReduce(m)

	return len(pivots)
}
