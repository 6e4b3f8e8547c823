// Package flow implements maximum-flow and minimum-cut over a small
// directed capacitated Network, used to turn a bipartite induced subgraph
// into a minimum vertex cover via König's theorem.
//
// # Algorithms
//
//   - PushRelabel: generic FIFO active-node push-relabel. Returns both the
//     flow value and the set of nodes reachable from source in the final
//     residual graph — the s-side of the minimum cut, from which a caller
//     constructs the vertex cover directly.
//   - Dinic: level-graph + blocking-flow, run over the same Network as an
//     independent cross-check that the flow value PushRelabel reports is
//     correct.
//
// # Network construction
//
// Network is a plain directed capacitated graph over string node ids,
// independent of both core.Graph and plaingraph.Graph: callers build one
// arc at a time via AddArc, using Infinite for capacities the construction
// calls unbounded (the left-right crossing arcs of the König reduction)
// and 1 for the source/sink unit arcs that make the resulting min cut a
// vertex cover.
//
// # Errors
//
//	ErrSourceNotFound   - source node absent from the network.
//	ErrSinkNotFound     - sink node absent from the network.
//	ErrNegativeCapacity - AddArc called with a negative capacity.
package flow
