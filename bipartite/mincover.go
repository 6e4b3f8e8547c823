package bipartite

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/zxsparsify/flow"
)

// ErrMinCutReachedSink indicates the residual source-reachable set also
// reached the sink, which the König construction's unit-capacity /
// infinite-capacity arcs should make impossible for a valid bipartite
// graph — surfaced as an invariant violation rather than silently
// producing a wrong cover.
var ErrMinCutReachedSink = errors.New("bipartite: min-cut residual set reached sink")

const (
	sourceNode = "\x00source"
	sinkNode   = "\x00sink"
)

// MinVertexCover computes a minimum vertex cover of B via the König
// max-flow reduction: unit-capacity arcs from a synthetic source to
// every B.Left vertex and from every B.Right vertex to a synthetic sink,
// infinite-capacity arcs along every crossing edge, then the cover is
// (Left members on the sink side of the min cut) union (Right members on
// the source side).
func (b *BiGraph) MinVertexCover() ([]string, error) {
	if len(b.Left) == 0 || len(b.Right) == 0 {
		return nil, nil
	}

	net := flow.NewNetwork()
	for _, l := range b.Left {
		if err := net.AddArc(sourceNode, l, 1); err != nil {
			return nil, err
		}
	}
	for _, r := range b.Right {
		if err := net.AddArc(r, sinkNode, 1); err != nil {
			return nil, err
		}
	}
	for _, e := range b.CrossingEdges() {
		if err := net.AddArc(e[0], e[1], flow.Infinite); err != nil {
			return nil, err
		}
	}

	res, err := flow.PushRelabel(net, sourceNode, sinkNode)
	if err != nil {
		return nil, fmt.Errorf("bipartite: MinVertexCover: %w", err)
	}
	if res.SourceSideSet[sinkNode] {
		return nil, ErrMinCutReachedSink
	}

	var cover []string
	for _, l := range b.Left {
		if !res.SourceSideSet[l] {
			cover = append(cover, l)
		}
	}
	for _, r := range b.Right {
		if res.SourceSideSet[r] {
			cover = append(cover, r)
		}
	}
	sort.Strings(cover)

	return cover, nil
}
