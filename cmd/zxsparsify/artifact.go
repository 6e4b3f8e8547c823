// File: artifact.go
// Role: the per-diagram JSON emission shape ({phases, edges, scalar,
// terms}) and its construction from a *core.Graph.
package main

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
)

// phaseFraction is a rational phase serialized as [numerator, denominator].
type phaseFraction [2]int64

// artifact is the JSON shape emitted per processed diagram.
type artifact struct {
	Phases map[string]phaseFraction `json:"phases"`
	Edges  [][2]string              `json:"edges"`
	Scalar [2]float64               `json:"scalar"`
	Terms  int                      `json:"terms"`
}

// buildArtifact captures g's phases, edge set, and scalar, tagging the
// result with terms (the product of term counts from every committed
// move).
func buildArtifact(g *core.Graph, terms int) (artifact, error) {
	if g == nil {
		return artifact{}, fmt.Errorf("buildArtifact: nil graph")
	}

	phases := make(map[string]phaseFraction, g.VertexCount())
	for _, id := range g.Vertices() {
		v, err := g.GetVertex(id)
		if err != nil {
			return artifact{}, fmt.Errorf("buildArtifact: GetVertex(%s): %w", id, err)
		}
		phases[id] = phaseFraction{v.Phase.Num().Int64(), v.Phase.Denom().Int64()}
	}

	edges := make([][2]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, [2]string{e.From, e.To})
	}

	scalar := g.Scalar()

	return artifact{
		Phases: phases,
		Edges:  edges,
		Scalar: [2]float64{real(scalar), imag(scalar)},
		Terms:  terms,
	}, nil
}

// buildArtifacts builds one artifact per term graph, all sharing the same
// terms count (the width of the term list itself).
func buildArtifacts(terms []*core.Graph) ([]artifact, error) {
	out := make([]artifact, 0, len(terms))
	for _, g := range terms {
		a, err := buildArtifact(g, len(terms))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
