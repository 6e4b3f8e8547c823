// Package bipartite builds the bipartite induced subgraph a vertex
// separator exposes, and exposes it for min-vertex-cover (via flow) and
// complement-cover (via gf2) computation, styled after lvlath's
// matrix/adjacency.go biadjacency builders.
package bipartite

import (
	"errors"
	"sort"

	"github.com/katalvlaran/zxsparsify/plaingraph"
)

// ErrEmptySeparator indicates left, cut, and right were all empty.
var ErrEmptySeparator = errors.New("bipartite: empty separator")

// BiGraph is the bipartite subgraph induced by crossing edges between the
// larger side of a vertex separator and its cut set, with isolated
// vertices dropped. G holds only the surviving crossing edges; Left and
// Right name which original separator side each survivor came from.
type BiGraph struct {
	G     *plaingraph.Graph
	Left  []string // surviving vertices from the larger separator side
	Right []string // surviving vertices from the cut set
}

// New builds a BiGraph from plain graph p and a vertex separator
// (left, cut, right): it retains edges with exactly one endpoint in
// whichever of left/right is larger and the other endpoint in cut,
// drops isolated vertices, and records the surviving two sides.
//
// The larger separator side is always taken as L (swapping if needed),
// paired against cut to form B.
func New(p *plaingraph.Graph, left, cut, right []string) (*BiGraph, error) {
	if len(left) == 0 && len(cut) == 0 && len(right) == 0 {
		return nil, ErrEmptySeparator
	}

	bigSide := left
	if len(right) > len(left) {
		bigSide = right
	}

	bigSet := toSet(bigSide)
	cutSet := toSet(cut)

	b := &BiGraph{G: plaingraph.New()}
	leftSurvivors := make(map[string]struct{})
	rightSurvivors := make(map[string]struct{})

	for _, u := range bigSide {
		for _, v := range p.NeighborIDs(u) {
			if _, ok := cutSet[v]; !ok {
				continue
			}
			if err := b.G.AddEdge(u, v); err != nil {
				return nil, err
			}
			leftSurvivors[u] = struct{}{}
			rightSurvivors[v] = struct{}{}
		}
	}
	for c := range cutSet {
		for _, u := range p.NeighborIDs(c) {
			if _, ok := bigSet[u]; !ok {
				continue
			}
			if err := b.G.AddEdge(u, c); err != nil {
				return nil, err
			}
			leftSurvivors[u] = struct{}{}
			rightSurvivors[c] = struct{}{}
		}
	}

	b.Left = sortedKeys(leftSurvivors)
	b.Right = sortedKeys(rightSurvivors)

	return b, nil
}

// CrossingEdges returns every edge of B as (left, right) pairs, sorted.
func (b *BiGraph) CrossingEdges() [][2]string {
	leftSet := toSet(b.Left)
	var out [][2]string
	for _, e := range b.G.Edges() {
		u, v := e[0], e[1]
		if _, ok := leftSet[u]; !ok {
			u, v = v, u
		}
		out = append(out, [2]string{u, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
