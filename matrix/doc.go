// Package matrix offers a dense matrix primitive and matrix-based graph
// diagnostics.
//
// AdjacencyMatrix wraps a Dense 0/1 matrix over a plaingraph.Graph, with
// O(1) adjacency lookups and O(V^2) memory. Stats summarizes degree and
// density diagnostics over an AdjacencyMatrix, used by the driver to report
// before/after structural changes across a sparsifier run.
//
// Matrices are best for the small, dense plain-graph projections this
// package targets; nothing here is intended for large sparse graphs.
package matrix
