package anneal

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/schedule"
)

// path6 builds a 6-vertex path graph a-b-c-d-e-f, giving BFSBisector a
// non-trivial interior boundary to split on.
func path6(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"a", "b", "c", "d", "e", "f"}
	for _, id := range ids {
		if err := g.AddVertex(id, core.KindZ, big.NewRat(0, 1)); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	for i := 0; i < len(ids)-1; i++ {
		if err := g.AddEdgeSmart(ids[i], ids[i+1], core.EdgePlain); err != nil {
			t.Fatalf("AddEdgeSmart: %v", err)
		}
	}

	return g
}

func TestLogBarrier_BelowCapIsMinusLog2OfSlack(t *testing.T) {
	if got, want := logBarrier(1, 10), -math.Log2(0.9); got != want {
		t.Fatalf("logBarrier(1,10) = %v, want %v", got, want)
	}
}

func TestLogBarrier_AtOrAboveCapIsLinear(t *testing.T) {
	if got, want := logBarrier(10, 10), 2000.0; got != want {
		t.Fatalf("logBarrier(10,10) = %v, want %v", got, want)
	}
	if got, want := logBarrier(20, 10), 4000.0; got != want {
		t.Fatalf("logBarrier(20,10) = %v, want %v", got, want)
	}
}

func TestPlainProjection_PreservesVerticesAndEdges(t *testing.T) {
	g := path6(t)
	p := plainProjection(g)
	if p.VertexCount() != g.VertexCount() {
		t.Fatalf("vertex count mismatch: plain=%d zx=%d", p.VertexCount(), g.VertexCount())
	}
	if len(p.Edges()) != g.EdgeCount() {
		t.Fatalf("edge count mismatch: plain=%d zx=%d", len(p.Edges()), g.EdgeCount())
	}
}

func TestSubgraphCutFinder_EmptyGraphReturnsImmediately(t *testing.T) {
	g := core.NewGraph()
	sc := NewSubgraphCutFinder(g, 200, 4, 0, nil)
	sched, err := schedule.NewGeometricSeries(5, 0.1, 50)
	if err != nil {
		t.Fatalf("NewGeometricSeries: %v", err)
	}

	out, c, fitness, sep, cover, err := sc.Anneal(RNGFromSeed(1), sched)
	if err != nil {
		t.Fatalf("Anneal: %v", err)
	}
	if out.VertexCount() != 0 || c != nil || fitness != 0 || sep != nil || cover != nil {
		t.Fatalf("expected empty no-op, got %v %v %v %v %v", out, c, fitness, sep, cover)
	}
}

func TestSubgraphCutFinder_RunsAndSnapshotsSeparatorAndCover(t *testing.T) {
	g := path6(t)
	sc := NewSubgraphCutFinder(g, 200, 8, 0, nil)
	sched, err := schedule.NewGeometricSeries(5, 0.1, 30)
	if err != nil {
		t.Fatalf("NewGeometricSeries: %v", err)
	}

	out, _, _, sep, cover, err := sc.Anneal(RNGFromSeed(3), sched)
	if err != nil {
		t.Fatalf("Anneal: %v", err)
	}
	if out.VertexCount() != 6 {
		t.Fatalf("expected 6 vertices preserved, got %d", out.VertexCount())
	}
	if sep == nil {
		t.Fatalf("expected a snapshotted separator, got nil")
	}
	if cover == nil {
		t.Fatalf("expected a snapshotted complement cover, got nil")
	}
}
