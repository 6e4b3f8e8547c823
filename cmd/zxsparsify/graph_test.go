package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInputGraph_KnownTopologies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g, err := buildInputGraph("complete", 4, 0, 0, rng)
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())

	g, err = buildInputGraph("cycle", 5, 0, 0, rng)
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())

	g, err = buildInputGraph("bipartite", 2, 3, 0, rng)
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
}

func TestBuildInputGraph_UnknownTopologyRejected(t *testing.T) {
	_, err := buildInputGraph("hexagon", 4, 0, 0, rand.New(rand.NewSource(1)))
	require.Error(t, err)
}
