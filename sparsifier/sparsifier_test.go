package sparsifier

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/zxsparsify/core"
)

func singleEdgeGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	if err := g.AddVertex("v0", core.KindZ, big.NewRat(0, 1)); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddVertex("v1", core.KindZ, big.NewRat(0, 1)); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	if err := g.AddEdgeSmart("v0", "v1", core.EdgePlain); err != nil {
		t.Fatalf("AddEdgeSmart: %v", err)
	}

	return g
}

func TestRun_EmptyGraphNoMoves(t *testing.T) {
	g := core.NewGraph()
	opts := Options{Alpha: 0, Beta: 1, Cut: true, Rounds: 3, Steps: 100, MaxTemp: 10, MinTemp: 0.1}
	res, err := Run(g, opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Moves) != 0 {
		t.Fatalf("expected no moves on an empty graph, got %d", len(res.Moves))
	}
	if res.FinalEdges != 0 || res.InitialEdges != 0 {
		t.Fatalf("expected 0 edges throughout, got initial=%d final=%d", res.InitialEdges, res.FinalEdges)
	}
}

func TestRun_NonPositiveStepsRejected(t *testing.T) {
	g := core.NewGraph()
	opts := Options{Rounds: 1, Steps: 0, MaxTemp: 10, MinTemp: 0.1}
	if _, err := Run(g, opts, rand.New(rand.NewSource(1))); err != ErrNonPositiveSteps {
		t.Fatalf("expected ErrNonPositiveSteps, got %v", err)
	}
}

func TestRun_FinalCostNeverWorsensInitial(t *testing.T) {
	g := singleEdgeGraph(t)
	opts := Options{Alpha: 0, Beta: 1, Cut: true, Rounds: 3, Steps: 500, MaxTemp: 10, MinTemp: 0.01}
	res, err := Run(g, opts, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.FinalCost > res.InitialCost {
		t.Fatalf("final cost %v worse than initial cost %v", res.FinalCost, res.InitialCost)
	}
}

func TestRun_DoesNotMutateCallersGraph(t *testing.T) {
	g := singleEdgeGraph(t)
	before := g.EdgeCount()
	opts := Options{Alpha: 0, Beta: 1, Cut: true, Rounds: 3, Steps: 500, MaxTemp: 10, MinTemp: 0.01}
	if _, err := Run(g, opts, rand.New(rand.NewSource(7))); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.EdgeCount() != before {
		t.Fatalf("Run mutated the caller's graph: before=%d after=%d", before, g.EdgeCount())
	}
}

func TestRun_InfiniteModeHaltsOnNoImprovement(t *testing.T) {
	g := core.NewGraph()
	opts := Options{Alpha: 0, Beta: 1, Cut: true, Infinite: true, Steps: 50, MaxTemp: 5, MinTemp: 0.1}
	res, err := Run(g, opts, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Moves) != 0 {
		t.Fatalf("expected infinite mode to halt immediately on an empty graph, got %d moves", len(res.Moves))
	}
}
