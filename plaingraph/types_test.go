package plaingraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdge_MirrorsBothDirections(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "a"))
	require.Equal(t, []string{"a", "b"}, g.Vertices())
}

func TestRemoveEdge(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "b"))
	g.RemoveEdge("a", "b")
	require.False(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"))
}

func TestClone_Independent(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("a", "b"))
	clone := g.Clone()
	clone.RemoveEdge("a", "b")
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, clone.HasEdge("a", "b"))
}

func TestRandomVertex_EmptyGraph(t *testing.T) {
	g := New()
	_, err := g.RandomVertex(func(n int) int { return 0 })
	require.ErrorIs(t, err, ErrEmptyGraph)
}

func TestEdges_SortedPairs(t *testing.T) {
	g := New()
	require.NoError(t, g.AddEdge("b", "a"))
	require.NoError(t, g.AddEdge("c", "a"))
	require.Equal(t, [][2]string{{"a", "b"}, {"a", "c"}}, g.Edges())
}
