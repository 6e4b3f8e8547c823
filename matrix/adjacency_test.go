package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxsparsify/matrix"
	"github.com/katalvlaran/zxsparsify/plaingraph"
)

func triangle(t *testing.T) *plaingraph.Graph {
	t.Helper()
	g := plaingraph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))

	return g
}

func TestNewAdjacencyMatrix_NilGraphRejected(t *testing.T) {
	_, err := matrix.NewAdjacencyMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestNewAdjacencyMatrix_EmptyGraphHasZeroVertices(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(plaingraph.New())
	require.NoError(t, err)
	require.Equal(t, 0, am.VertexCount())
}

func TestNewAdjacencyMatrix_StampsSymmetricEntries(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(triangle(t))
	require.NoError(t, err)
	require.Equal(t, 3, am.VertexCount())

	ab, err := am.Mat.At(am.VertexIndex["a"], am.VertexIndex["b"])
	require.NoError(t, err)
	require.Equal(t, float64(1), ab)

	ba, err := am.Mat.At(am.VertexIndex["b"], am.VertexIndex["a"])
	require.NoError(t, err)
	require.Equal(t, float64(1), ba)
}

func TestNeighbors_UnknownVertexRejected(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(triangle(t))
	require.NoError(t, err)

	_, err = am.Neighbors("z")
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestNeighbors_ReturnsAdjacentVertices(t *testing.T) {
	am, err := matrix.NewAdjacencyMatrix(triangle(t))
	require.NoError(t, err)

	nbrs, err := am.Neighbors("a")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"b", "c"}, nbrs)
}

func TestToGraph_RoundTripsEdgeSet(t *testing.T) {
	src := triangle(t)
	am, err := matrix.NewAdjacencyMatrix(src)
	require.NoError(t, err)

	out, err := am.ToGraph()
	require.NoError(t, err)
	require.Equal(t, src.Edges(), out.Edges())
}
