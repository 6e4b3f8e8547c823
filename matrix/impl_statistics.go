// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Summarize structural diagnostics of an adjacency matrix: degree
//     sequence, density, and degree extremes, used by the driver to report
//     before/after changes across a sparsifier run.
//
// Determinism:
//   - Fixed row-major traversal; degree sequence follows the matrix's
//     vertex index order (the plain graph's sorted vertex order).

package matrix

import "fmt"

// Stats summarizes the structural shape of an AdjacencyMatrix.
type Stats struct {
	VertexCount    int
	EdgeCount      int
	Density        float64 // 2*EdgeCount / (VertexCount*(VertexCount-1)), 0 for n<2
	MinDegree      int
	MaxDegree      int
	AverageDegree  float64
	DegreeSequence []int // indexed in am.vertexByIndex order
}

// Analyze computes Stats over am.
// Stage 1 (Validate): reject a nil matrix.
// Stage 2 (Execute): accumulate per-vertex degree from the row-major Mat.
// Stage 3 (Finalize): derive density and degree extremes.
func Analyze(am *AdjacencyMatrix) (Stats, error) {
	if am == nil || am.Mat == nil {
		return Stats{}, ErrNilMatrix
	}

	n := am.VertexCount()
	st := Stats{VertexCount: n, DegreeSequence: make([]int, n)}
	if n == 0 {
		return st, nil
	}

	st.MinDegree = n // sentinel, lowered by the first row scanned
	edgeSum := 0
	for i := 0; i < n; i++ {
		deg := 0
		for j := 0; j < n; j++ {
			w, err := am.Mat.At(i, j)
			if err != nil {
				return Stats{}, fmt.Errorf("Analyze: At(%d,%d): %w", i, j, err)
			}
			if w != 0 {
				deg++
			}
		}
		st.DegreeSequence[i] = deg
		edgeSum += deg
		if deg < st.MinDegree {
			st.MinDegree = deg
		}
		if deg > st.MaxDegree {
			st.MaxDegree = deg
		}
	}

	st.EdgeCount = edgeSum / 2
	st.AverageDegree = float64(edgeSum) / float64(n)
	if n > 1 {
		st.Density = float64(edgeSum) / float64(n*(n-1))
	}

	return st, nil
}
