package bipartite

import "github.com/katalvlaran/zxsparsify/gf2"

// ComplementCover returns the subgraph-complement cover of B: the
// biadjacency matrix M (rows=Right, cols=Left) is rank-decomposed into
// (C,F) with C*F=M, then subset i is the union of {Right[r]: C[r,i]=1}
// and {Left[c]: F[i,c]=1} — a rank-1 "complete bipartite pattern" block
// whose XOR across all i reproduces every crossing edge of B exactly once.
func (b *BiGraph) ComplementCover() ([][]string, error) {
	m, err := b.Biadjacency()
	if err != nil {
		return nil, err
	}
	c, f, err := gf2.RankDecomposition(m)
	if err != nil {
		return nil, err
	}

	rank := c.Cols()
	if len(b.Right) == 0 || len(b.Left) == 0 {
		return nil, nil
	}

	cover := make([][]string, 0, rank)
	for i := 0; i < rank; i++ {
		var subset []string
		for r, right := range b.Right {
			if c.At(r, i) == 1 {
				subset = append(subset, right)
			}
		}
		for col, left := range b.Left {
			if f.At(i, col) == 1 {
				subset = append(subset, left)
			}
		}
		cover = append(cover, subset)
	}

	return cover, nil
}
