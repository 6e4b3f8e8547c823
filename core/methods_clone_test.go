package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopyIndependent(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a", KindZ, big.NewRat(1, 2)))
	require.NoError(t, g.AddEdgeSmart("a", "b", EdgeHadamard))
	g.MulScalar(complex(0, 1))

	clone := g.Clone()
	require.Equal(t, g.Scalar(), clone.Scalar())
	require.Equal(t, g.EdgeCount(), clone.EdgeCount())

	require.NoError(t, clone.AddEdgeSmart("a", "b", EdgeHadamard)) // toggles off on the clone only
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 0, clone.EdgeCount())

	require.NoError(t, clone.AddToPhase("a", big.NewRat(1, 2)))
	va, _ := g.GetVertex("a")
	vc, _ := clone.GetVertex("a")
	require.NotEqual(t, va.Phase, vc.Phase)
}

func TestCloneEmpty_CarriesVerticesNotEdges(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddEdgeSmart("a", "b", EdgeHadamard))

	ce := g.CloneEmpty()
	require.Equal(t, g.VertexCount(), ce.VertexCount())
	require.Equal(t, 0, ce.EdgeCount())
}

func TestClear_PreservesConfigResetsState(t *testing.T) {
	g := NewGraph(WithLoops())
	require.NoError(t, g.AddEdgeSmart("a", "b", EdgeHadamard))
	g.MulScalar(complex(2, 0))

	g.Clear()
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, complex(1, 0), g.Scalar())
	require.True(t, g.Looped())
}
