// File: subgraph_cut_finder.go
// Role: the subgraph-cut annealer: anneals a
// complement set C exactly like ComplementFinder, but scores it via the
// alpha-scorer cost model applied to the plain-graph projection's vertex
// separator and complement cover, rather than by raw vertex/edge counts.
package anneal

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/zxsparsify/alpha"
	"github.com/katalvlaran/zxsparsify/bipartite"
	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/plaingraph"
	"github.com/katalvlaran/zxsparsify/schedule"
	"github.com/katalvlaran/zxsparsify/separator"
)

// SubgraphCutFinder anneals a single vertex set C, fitness-scored by
// alpha.Score on the separator/complement-cover derived from G's current
// plain-graph projection, plus a log-barrier penalizing an oversized cover.
type SubgraphCutFinder struct {
	Imbalance  int
	MaxAllowed int
	Depth      int
	Finder     separator.Finder

	g   *core.Graph
	c   map[string]bool
	rng *rand.Rand

	bestG     *core.Graph
	bestC     map[string]bool
	lastSep   *separator.Separator
	lastCover [][]string
	bestSep   *separator.Separator
	bestCover [][]string
}

// NewSubgraphCutFinder clones g and starts with an empty complement set.
// If finder is nil, separator.BFSBisector{} is used.
func NewSubgraphCutFinder(g *core.Graph, imbalance, maxAllowed, depth int, finder separator.Finder) *SubgraphCutFinder {
	if finder == nil {
		finder = separator.BFSBisector{}
	}

	return &SubgraphCutFinder{
		Imbalance:  imbalance,
		MaxAllowed: maxAllowed,
		Depth:      depth,
		Finder:     finder,
		g:          g.Clone(),
		c:          make(map[string]bool),
	}
}

// plainProjection builds the plain undirected graph P underlying g's
// current edge set, ignoring edge type.
func plainProjection(g *core.Graph) *plaingraph.Graph {
	p := plaingraph.New()
	for _, v := range g.Vertices() {
		_ = p.AddVertex(v)
	}
	for _, e := range g.Edges() {
		_ = p.AddEdge(e.From, e.To)
	}

	return p
}

// logBarrier implements log_barrier(x,X) = 2000*x/X if x>=X else
// -log2((X-x)/X), a steep penalty once the cover size x exceeds the
// allowed cap X.
func logBarrier(x, capX int) float64 {
	if capX <= 0 {
		capX = 1
	}
	xf, capF := float64(x), float64(capX)
	if xf >= capF {
		return 2000 * xf / capF
	}

	return -math.Log2((capF - xf) / capF)
}

// fitness rebuilds P from g, finds a separator, builds the induced
// bipartite graph, computes its complement cover, and scores the result.
// Caches (sep, cover) in lastSep/lastCover for SaveBest to snapshot.
func (sc *SubgraphCutFinder) fitness() (float64, error) {
	p := plainProjection(sc.g)

	sep, err := sc.Finder.Find(p, sc.Imbalance, sc.rng.Intn)
	if err != nil {
		return 0, err
	}

	bg, err := bipartite.New(p, sep.Left, sep.Cut, sep.Right)
	if err != nil {
		return 0, err
	}
	cover, err := bg.ComplementCover()
	if err != nil {
		return 0, err
	}

	numTerms := len(cover) + sc.Depth
	score, err := alpha.Score(p.VertexCount(), len(sep.Left), len(sep.Right), len(sep.Cut), numTerms)
	if err != nil {
		return 0, err
	}

	sc.lastSep, sc.lastCover = sep, cover

	return score + logBarrier(len(cover), sc.MaxAllowed)/200, nil
}

// Anneal runs the shared Metropolis loop and returns the best
// (graph, C, fitness, separator, cover) found.
func (sc *SubgraphCutFinder) Anneal(rng *rand.Rand, sched *schedule.Series) (*core.Graph, []string, float64, *separator.Separator, [][]string, error) {
	sc.rng = rng
	if sc.g.VertexCount() == 0 {
		return sc.g, nil, 0, nil, nil, nil
	}

	hooks := Hooks{
		Propose: func(r *rand.Rand) func() {
			vertices := sc.g.Vertices()
			v := vertices[r.Intn(len(vertices))]
			toggleInSet(sc.g, sc.c, v)

			return func() { toggleInSet(sc.g, sc.c, v) }
		},
		Fitness: sc.fitness,
		SaveBest: func() {
			sc.bestG = sc.g.Clone()
			sc.bestC = cloneSet(sc.c)
			sc.bestSep = sc.lastSep
			sc.bestCover = sc.lastCover
		},
		RestoreBest: func() {
			sc.g = sc.bestG
			sc.c = sc.bestC
			sc.lastSep = sc.bestSep
			sc.lastCover = sc.bestCover
		},
	}

	best, err := Run(rng, sched, hooks)
	if err != nil {
		return nil, nil, 0, nil, nil, err
	}

	return sc.g, setMembers(sc.c), best, sc.bestSep, sc.bestCover, nil
}
