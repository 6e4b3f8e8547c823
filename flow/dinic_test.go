package flow_test

import (
	"testing"

	"github.com/katalvlaran/zxsparsify/flow"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) *flow.Network {
	t.Helper()
	net := flow.NewNetwork()
	require.NoError(t, net.AddArc("s", "a", 3))
	require.NoError(t, net.AddArc("s", "b", 2))
	require.NoError(t, net.AddArc("a", "t", 2))
	require.NoError(t, net.AddArc("b", "t", 3))
	require.NoError(t, net.AddArc("a", "b", 1))

	return net
}

func TestDinic_MatchesPushRelabel(t *testing.T) {
	prNet := buildDiamond(t)
	res, err := flow.PushRelabel(prNet, "s", "t")
	require.NoError(t, err)

	dinicNet := buildDiamond(t)
	dinicFlow, err := flow.Dinic(dinicNet, "s", "t", flow.FlowOptions{})
	require.NoError(t, err)

	require.Equal(t, res.MaxFlow, dinicFlow)
}

func TestDinic_SourceSinkMissing(t *testing.T) {
	net := flow.NewNetwork()
	net.AddNode("s")
	_, err := flow.Dinic(net, "s", "missing", flow.FlowOptions{})
	require.ErrorIs(t, err, flow.ErrSinkNotFound)
}

func TestDinic_NoPath(t *testing.T) {
	net := flow.NewNetwork()
	net.AddNode("s")
	net.AddNode("t")
	got, err := flow.Dinic(net, "s", "t", flow.FlowOptions{})
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}
