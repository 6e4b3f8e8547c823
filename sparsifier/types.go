// File: types.go
// Role: the Sparsifier's public types — move-log entries, run options, and
// the final result.
package sparsifier

import (
	"errors"

	"github.com/katalvlaran/zxsparsify/core"
)

// ErrNonPositiveSteps indicates Options.Steps was not a positive integer.
var ErrNonPositiveSteps = errors.New("sparsifier: steps must be positive")

// MoveKind distinguishes the two move types the Sparsifier can commit.
type MoveKind uint8

const (
	// MoveComplement records a committed single-set complement move.
	MoveComplement MoveKind = iota
	// MovePivot records a committed pivot move.
	MovePivot
)

// Move is one entry in the Sparsifier's move log: either a complement on
// C, or a pivot between L and R.
type Move struct {
	Kind MoveKind
	C    []string
	L    []string
	R    []string
}

// Options configures a Sparsifier run: the subset of driver configuration
// that governs the outer loop rather than a single annealer.
type Options struct {
	Alpha, Beta      float64
	Cut              bool
	Rounds           int
	Steps            int
	MaxTemp, MinTemp float64
	Infinite         bool
}

// Result is the Sparsifier's output: the final diagram, the full move
// list, and the before/after costs and edge counts.
type Result struct {
	Graph        *core.Graph
	Moves        []Move
	InitialCost  float64
	FinalCost    float64
	InitialEdges int
	FinalEdges   int
}

// cost computes alpha*|V(g)| + beta*|E(g)|, the Sparsifier's outer cost
// function (distinct from any single annealer's internal fitness).
func cost(g *core.Graph, alpha, beta float64) float64 {
	return alpha*float64(g.VertexCount()) + beta*float64(g.EdgeCount())
}
