// File: view.go
// Role: Non-mutating graph views.
package core

import "math/big"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex
// IDs: the result contains only vertices v where keep[v] is true, and all
// edges whose endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	out.scalar = g.Scalar()

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{
				ID:       v.ID,
				Kind:     v.Kind,
				Phase:    new(big.Rat).Set(phaseOrZero(v.Phase)),
				Metadata: v.Metadata,
			}
			out.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	for eid, e := range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Type: e.Type}
		out.edges[eid] = ne
		ensureAdjacency(out, ne.From, ne.To)
		out.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if ne.From != ne.To {
			ensureAdjacency(out, ne.To, ne.From)
			out.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	g.muEdgeAdj.RUnlock()

	return out
}
