// Package anneal implements the simulated-annealing search variants that
// drive the sparsifier's per-round moves: a single-set complement
// finder, a multi-set complement finder, a pivot finder, and a
// subgraph-cut finder. All four share one Metropolis loop (Run, in
// metropolis.go) and differ only in move proposal, fitness, and how a
// committed move is materialized into diagram terms.
package anneal
