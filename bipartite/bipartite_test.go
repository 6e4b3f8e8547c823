package bipartite_test

import (
	"testing"

	"github.com/katalvlaran/zxsparsify/bipartite"
	"github.com/katalvlaran/zxsparsify/plaingraph"
	"github.com/stretchr/testify/require"
)

// buildK33Separator builds K_{3,3} as l0,l1,l2 (left) vs c0,c1,c2 (cut),
// with an empty "right" separator side — the simplest shape New accepts.
func buildK33Separator(t *testing.T) (*plaingraph.Graph, []string, []string) {
	t.Helper()
	p := plaingraph.New()
	left := []string{"l0", "l1", "l2"}
	cut := []string{"c0", "c1", "c2"}
	for _, l := range left {
		for _, c := range cut {
			require.NoError(t, p.AddEdge(l, c))
		}
	}

	return p, left, cut
}

func TestNew_K33_AllVerticesSurvive(t *testing.T) {
	p, left, cut := buildK33Separator(t)
	b, err := bipartite.New(p, left, cut, nil)
	require.NoError(t, err)
	require.ElementsMatch(t, left, b.Left)
	require.ElementsMatch(t, cut, b.Right)
	require.Len(t, b.CrossingEdges(), 9)
}

func TestNew_EmptySeparator(t *testing.T) {
	p := plaingraph.New()
	_, err := bipartite.New(p, nil, nil, nil)
	require.ErrorIs(t, err, bipartite.ErrEmptySeparator)
}

func TestNew_DropsIsolatedVertices(t *testing.T) {
	p := plaingraph.New()
	require.NoError(t, p.AddEdge("l0", "c0"))
	require.NoError(t, p.AddVertex("l1")) // isolated, no crossing edge
	require.NoError(t, p.AddVertex("c1")) // isolated

	b, err := bipartite.New(p, []string{"l0", "l1"}, []string{"c0", "c1"}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"l0"}, b.Left)
	require.Equal(t, []string{"c0"}, b.Right)
}

func TestBiadjacency_MatchesAdjacency(t *testing.T) {
	p, left, cut := buildK33Separator(t)
	b, err := bipartite.New(p, left, cut, nil)
	require.NoError(t, err)

	m, err := b.Biadjacency()
	require.NoError(t, err)
	require.Equal(t, len(b.Right), m.Rows())
	require.Equal(t, len(b.Left), m.Cols())
	for i := range b.Right {
		for j := range b.Left {
			require.Equal(t, byte(1), m.At(i, j))
		}
	}
}

func TestMinVertexCover_CoversEveryCrossingEdge(t *testing.T) {
	p, left, cut := buildK33Separator(t)
	b, err := bipartite.New(p, left, cut, nil)
	require.NoError(t, err)

	cover, err := b.MinVertexCover()
	require.NoError(t, err)
	coverSet := make(map[string]bool, len(cover))
	for _, v := range cover {
		coverSet[v] = true
	}
	for _, e := range b.CrossingEdges() {
		require.Truef(t, coverSet[e[0]] || coverSet[e[1]], "edge %v not covered", e)
	}
}

func TestMinVertexCover_MatchingSize(t *testing.T) {
	// A 3-edge matching l0-c0, l1-c1, l2-c2 plus no other crossing edges:
	// min vertex cover must be exactly 3.
	p := plaingraph.New()
	left := []string{"l0", "l1", "l2"}
	cut := []string{"c0", "c1", "c2"}
	for i := range left {
		require.NoError(t, p.AddEdge(left[i], cut[i]))
	}
	b, err := bipartite.New(p, left, cut, nil)
	require.NoError(t, err)

	cover, err := b.MinVertexCover()
	require.NoError(t, err)
	require.Len(t, cover, 3)
}

func TestComplementCover_XORReproducesBiadjacency(t *testing.T) {
	p, left, cut := buildK33Separator(t)
	b, err := bipartite.New(p, left, cut, nil)
	require.NoError(t, err)

	cover, err := b.ComplementCover()
	require.NoError(t, err)
	require.NotEmpty(t, cover)

	m, err := b.Biadjacency()
	require.NoError(t, err)

	xor := make([][]byte, m.Rows())
	for i := range xor {
		xor[i] = make([]byte, m.Cols())
	}
	rightIdx := make(map[string]int, len(b.Right))
	for i, r := range b.Right {
		rightIdx[r] = i
	}
	leftIdx := make(map[string]int, len(b.Left))
	for j, l := range b.Left {
		leftIdx[l] = j
	}
	for _, subset := range cover {
		var rows, cols []int
		for _, v := range subset {
			if i, ok := rightIdx[v]; ok {
				rows = append(rows, i)
			}
			if j, ok := leftIdx[v]; ok {
				cols = append(cols, j)
			}
		}
		for _, i := range rows {
			for _, j := range cols {
				xor[i][j] ^= 1
			}
		}
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.Equalf(t, m.At(i, j), xor[i][j], "mismatch at (%d,%d)", i, j)
		}
	}
}

func TestComplementCover_RankTwoBiadjacency(t *testing.T) {
	// M = [[1,1,0],[1,1,0],[0,0,1]] with rows=right (r0,r1,r2), cols=left (l0,l1,l2).
	p := plaingraph.New()
	require.NoError(t, p.AddEdge("l0", "r0"))
	require.NoError(t, p.AddEdge("l1", "r0"))
	require.NoError(t, p.AddEdge("l0", "r1"))
	require.NoError(t, p.AddEdge("l1", "r1"))
	require.NoError(t, p.AddEdge("l2", "r2"))

	b, err := bipartite.New(p, []string{"l0", "l1", "l2"}, []string{"r0", "r1", "r2"}, nil)
	require.NoError(t, err)

	cover, err := b.ComplementCover()
	require.NoError(t, err)
	require.Len(t, cover, 2)
}
