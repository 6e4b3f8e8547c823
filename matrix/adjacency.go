// Package matrix provides graph-aware wrappers over the core Matrix API,
// exposing high-level methods for adjacency-matrix representations of graphs.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/plaingraph"
)

// defaultReserve is the initial capacity for neighbor slices.
const defaultReserve = 8

// AdjacencyMatrix wraps a Matrix as a 0/1 graph adjacency representation.
// VertexIndex maps vertex id -> row/col in Mat. vertexByIndex provides the
// reverse lookup from column index to vertex id.
type AdjacencyMatrix struct {
	Mat           Matrix         // underlying 0/1 adjacency matrix
	VertexIndex   map[string]int // mapping of vertex id to index
	vertexByIndex []string       // reverse lookup by index
}

// NewAdjacencyMatrix constructs an AdjacencyMatrix from p.
// Stage 1 (Validate): ensure p is non-nil.
// Stage 2 (Prepare): index vertices in p's stable sorted order.
// Stage 3 (Execute): stamp each undirected edge symmetrically.
// Stage 4 (Finalize): wrap and return.
func NewAdjacencyMatrix(p *plaingraph.Graph) (*AdjacencyMatrix, error) {
	if p == nil {
		return nil, ErrGraphNil
	}

	vertices := p.Vertices()
	n := len(vertices)
	idx := make(map[string]int, n)
	for i, id := range vertices {
		idx[id] = i
	}

	mat, err := NewDense(maxInt(n, 1), maxInt(n, 1))
	if err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}

	for _, e := range p.Edges() {
		i, j := idx[e[0]], idx[e[1]]
		if err = mat.Set(i, j, 1); err != nil {
			return nil, fmt.Errorf("NewAdjacencyMatrix: Set(%d,%d): %w", i, j, err)
		}
		if err = mat.Set(j, i, 1); err != nil {
			return nil, fmt.Errorf("NewAdjacencyMatrix: Set(%d,%d): %w", j, i, err)
		}
	}

	// A zero-vertex graph still needs a well-formed 1x1 Mat; VertexCount
	// reports the true vertex count from vertexByIndex, not Mat.Rows().
	return &AdjacencyMatrix{
		Mat:           mat,
		VertexIndex:   idx,
		vertexByIndex: vertices,
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// VertexCount returns the number of vertices indexed by this matrix.
func (am *AdjacencyMatrix) VertexCount() int {
	return len(am.vertexByIndex)
}

// Neighbors returns all adjacent vertex ids reachable from u.
// Stage 1 (Validate): lookup u's row index.
// Stage 2 (Execute): scan the row for nonzero entries.
// Stage 3 (Finalize): return the collected ids.
func (am *AdjacencyMatrix) Neighbors(u string) ([]string, error) {
	srcIdx, ok := am.VertexIndex[u]
	if !ok {
		return nil, fmt.Errorf("Neighbors: unknown vertex %q: %w", u, ErrUnknownVertex)
	}

	neighbors := make([]string, 0, defaultReserve)
	for col := 0; col < am.VertexCount(); col++ {
		w, err := am.Mat.At(srcIdx, col)
		if err != nil {
			return nil, fmt.Errorf("Neighbors: At(%d,%d): %w", srcIdx, col, err)
		}
		if w == 0 {
			continue
		}
		neighbors = append(neighbors, am.vertexByIndex[col])
	}

	return neighbors, nil
}

// ToGraph reconstructs a plaingraph.Graph from this adjacency matrix.
func (am *AdjacencyMatrix) ToGraph() (*plaingraph.Graph, error) {
	g := plaingraph.New()
	for _, id := range am.vertexByIndex {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("ToGraph: AddVertex(%s): %w", id, err)
		}
	}

	for i, fromID := range am.vertexByIndex {
		for j := i + 1; j < len(am.vertexByIndex); j++ {
			w, err := am.Mat.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToGraph: At(%d,%d): %w", i, j, err)
			}
			if w == 0 {
				continue
			}
			if err = g.AddEdge(fromID, am.vertexByIndex[j]); err != nil {
				return nil, fmt.Errorf("ToGraph: AddEdge(%s,%s): %w", fromID, am.vertexByIndex[j], err)
			}
		}
	}

	return g, nil
}
