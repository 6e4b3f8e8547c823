package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zxsparsify/core"
)

func TestBuildArtifact_CapturesPhasesEdgesScalar(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", core.KindZ, big.NewRat(1, 2)))
	require.NoError(t, g.AddVertex("b", core.KindZ, nil))
	require.NoError(t, g.AddEdgeSmart("a", "b", core.EdgePlain))
	g.MulScalar(complex(0, 1))

	a, err := buildArtifact(g, 3)
	require.NoError(t, err)
	require.Equal(t, phaseFraction{1, 2}, a.Phases["a"])
	require.Equal(t, phaseFraction{0, 1}, a.Phases["b"])
	require.Equal(t, [][2]string{{"a", "b"}}, a.Edges)
	require.Equal(t, [2]float64{0, 1}, a.Scalar)
	require.Equal(t, 3, a.Terms)
}

func TestBuildArtifact_NilGraphRejected(t *testing.T) {
	_, err := buildArtifact(nil, 1)
	require.Error(t, err)
}

func TestBuildArtifacts_TagsEachWithTermWidth(t *testing.T) {
	g1 := core.NewGraph()
	require.NoError(t, g1.AddVertex("a", core.KindZ, nil))
	g2 := core.NewGraph()
	require.NoError(t, g2.AddVertex("b", core.KindZ, nil))

	arts, err := buildArtifacts([]*core.Graph{g1, g2})
	require.NoError(t, err)
	require.Len(t, arts, 2)
	require.Equal(t, 2, arts[0].Terms)
	require.Equal(t, 2, arts[1].Terms)
}
