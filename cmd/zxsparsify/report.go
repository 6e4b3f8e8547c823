// File: report.go
// Role: before/after structural and cost reporting, wiring matrix's
// adjacency/degree diagnostics and the sparsifier's cost metrics into the
// driver's output alongside the emitted diagram artifacts.
package main

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/matrix"
	"github.com/katalvlaran/zxsparsify/plaingraph"
)

// structuralStats is the JSON projection of matrix.Stats.
type structuralStats struct {
	VertexCount   int     `json:"vertex_count"`
	EdgeCount     int     `json:"edge_count"`
	Density       float64 `json:"density"`
	MinDegree     int     `json:"min_degree"`
	MaxDegree     int     `json:"max_degree"`
	AverageDegree float64 `json:"average_degree"`
}

// report summarizes how a run changed the diagram's plain-graph shape
// and, when the annealer tracks one, its alpha/beta-weighted cost.
type report struct {
	Before      structuralStats `json:"before"`
	After       structuralStats `json:"after"`
	InitialCost *float64        `json:"initial_cost,omitempty"`
	FinalCost   *float64        `json:"final_cost,omitempty"`
}

// plainProjection builds the plain undirected graph underlying g's
// current edge set, ignoring edge type.
func plainProjection(g *core.Graph) (*plaingraph.Graph, error) {
	p := plaingraph.New()
	for _, v := range g.Vertices() {
		if err := p.AddVertex(v); err != nil {
			return nil, fmt.Errorf("plainProjection: AddVertex(%s): %w", v, err)
		}
	}
	for _, e := range g.Edges() {
		if err := p.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("plainProjection: AddEdge(%s,%s): %w", e.From, e.To, err)
		}
	}

	return p, nil
}

// analyzeGraph projects g onto its plain graph and summarizes it via
// matrix.AdjacencyMatrix/matrix.Analyze.
func analyzeGraph(g *core.Graph) (structuralStats, error) {
	p, err := plainProjection(g)
	if err != nil {
		return structuralStats{}, err
	}

	am, err := matrix.NewAdjacencyMatrix(p)
	if err != nil {
		return structuralStats{}, fmt.Errorf("analyzeGraph: %w", err)
	}

	st, err := matrix.Analyze(am)
	if err != nil {
		return structuralStats{}, fmt.Errorf("analyzeGraph: %w", err)
	}

	return structuralStats{
		VertexCount:   st.VertexCount,
		EdgeCount:     st.EdgeCount,
		Density:       st.Density,
		MinDegree:     st.MinDegree,
		MaxDegree:     st.MaxDegree,
		AverageDegree: st.AverageDegree,
	}, nil
}

// buildReport analyzes before and after, attaching cost metrics when the
// caller has them (the sparsify mode's Result; nil for a single annealer
// call, which tracks fitness rather than the outer alpha/beta cost).
func buildReport(before, after *core.Graph, initialCost, finalCost *float64) (report, error) {
	b, err := analyzeGraph(before)
	if err != nil {
		return report{}, err
	}
	a, err := analyzeGraph(after)
	if err != nil {
		return report{}, err
	}

	return report{Before: b, After: a, InitialCost: initialCost, FinalCost: finalCost}, nil
}
