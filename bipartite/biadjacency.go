package bipartite

import "github.com/katalvlaran/zxsparsify/gf2"

// Biadjacency returns the |Right| x |Left| GF(2) matrix M with
// M[i,j] = 1 iff B.Right[i] is adjacent to B.Left[j] in B. If either side
// is empty, the result is an all-zero matrix whose empty dimension is 1.
func (b *BiGraph) Biadjacency() (*gf2.Matrix, error) {
	rows, cols := len(b.Right), len(b.Left)
	if rows == 0 || cols == 0 {
		return gf2.NewMatrix(maxInt(rows, 1), maxInt(cols, 1))
	}

	m, err := gf2.NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, r := range b.Right {
		for j, l := range b.Left {
			if b.G.HasEdge(r, l) {
				m.Set(i, j, 1)
			}
		}
	}

	return m, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
