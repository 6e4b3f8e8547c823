// Package bipartite derives the bipartite graph a vertex separator
// induces and exposes its two defining operations: a minimum vertex cover
// via the König max-flow reduction (package flow) and a subgraph-
// complement cover via GF(2) rank decomposition (package gf2).
//
// # Errors
//
//	ErrEmptySeparator     - New called with all three separator parts empty.
//	ErrMinCutReachedSink  - the min-cut residual set also reached the sink,
//	                        an invariant violation for a valid bipartite
//	                        construction.
package bipartite
