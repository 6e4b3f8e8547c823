package flow

import "context"

// Dinic computes the maximum flow from source to sink in net using level
// graphs and blocking flows, as an independent cross-check against
// PushRelabel's result (both algorithms must agree on the same network).
//
// Complexity: O(V^2 * E) in general, O(E * sqrt(V)) on the unit-capacity
// networks the König bipartite-cover construction produces.
func Dinic(net *Network, source, sink string, opts FlowOptions) (maxFlow float64, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if !net.HasNode(source) {
		return 0, ErrSourceNotFound
	}
	if !net.HasNode(sink) {
		return 0, ErrSinkNotFound
	}

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, err
		}

		level := bfsLevels(net, source)
		if level[sink] < 0 {
			break
		}

		iter := make(map[string]int, len(level))
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := dfsDinicPush(ctx, net, level, iter, source, sink, Infinite)
			if pushed <= 0 {
				break
			}
			maxFlow += pushed
		}
	}

	return maxFlow, nil
}

// bfsLevels computes shortest-path distances (in residual-arc hops) from
// source; unreachable nodes get level -1.
func bfsLevels(net *Network, source string) map[string]int {
	level := make(map[string]int, len(net.nodes))
	for id := range net.nodes {
		level[id] = -1
	}
	level[source] = 0
	queue := []string{source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range net.adj[u] {
			if residualCap(a) > 1e-9 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}

	return level
}

// dfsDinicPush pushes flow along the level graph from u toward sink,
// bounded by available, advancing iter[u] past exhausted arcs so repeated
// calls within one blocking-flow phase never re-scan dead ends.
func dfsDinicPush(
	ctx context.Context,
	net *Network,
	level map[string]int,
	iter map[string]int,
	u, sink string,
	available float64,
) float64 {
	if err := ctx.Err(); err != nil {
		return 0
	}
	if u == sink {
		return available
	}

	adj := net.adj[u]
	for i := iter[u]; i < len(adj); i++ {
		iter[u] = i
		a := &adj[i]
		if residualCap(*a) <= 1e-9 || level[a.to] != level[u]+1 {
			continue
		}
		send := minFloat(available, residualCap(*a))
		pushed := dfsDinicPush(ctx, net, level, iter, a.to, sink, send)
		if pushed > 0 {
			a.flow += pushed
			rev := &net.adj[a.to][a.reverse]
			rev.flow -= pushed

			return pushed
		}
		iter[u] = i + 1
	}

	return 0
}
