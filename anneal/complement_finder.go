// File: complement_finder.go
// Role: the single-set complement annealer ("Single-set complement finder").
package anneal

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/schedule"
)

// ComplementFinder anneals a single vertex set C⊆V(G), toggling local
// complementations, to minimize alpha*|V|+beta*|E| (plus a pending-gadget
// penalty in no-cut mode).
type ComplementFinder struct {
	Alpha, Beta float64
	Cut         bool

	g *core.Graph
	c map[string]bool

	bestG *core.Graph
	bestC map[string]bool
}

// NewComplementFinder clones g (the annealer owns its working copy)
// and starts with an empty complement set.
func NewComplementFinder(g *core.Graph, alpha, beta float64, cut bool) *ComplementFinder {
	return &ComplementFinder{
		Alpha: alpha,
		Beta:  beta,
		Cut:   cut,
		g:     g.Clone(),
		c:     make(map[string]bool),
	}
}

// fitness computes alpha*|V(G)| + beta*|E(G)| plus, in no-cut mode, the
// pending phase-gadget penalty alpha*[C!=empty] + beta*|C|.
func (cf *ComplementFinder) fitness() float64 {
	f := cf.Alpha*float64(cf.g.VertexCount()) + cf.Beta*float64(cf.g.EdgeCount())
	if !cf.Cut {
		if len(cf.c) != 0 {
			f += cf.Alpha
		}
		f += cf.Beta * float64(len(cf.c))
	}

	return f
}

// Anneal runs the shared Metropolis loop and returns the best (graph, set,
// fitness) found. On an empty graph it returns immediately (S1): there is
// no vertex to propose a toggle on.
func (cf *ComplementFinder) Anneal(rng *rand.Rand, sched *schedule.Series) (*core.Graph, []string, float64, error) {
	if cf.g.VertexCount() == 0 {
		return cf.g, nil, 0, nil
	}

	hooks := Hooks{
		Propose: func(r *rand.Rand) func() {
			vertices := cf.g.Vertices()
			v := vertices[r.Intn(len(vertices))]
			toggleInSet(cf.g, cf.c, v)

			return func() { toggleInSet(cf.g, cf.c, v) }
		},
		Fitness: func() (float64, error) { return cf.fitness(), nil },
		SaveBest: func() {
			cf.bestG = cf.g.Clone()
			cf.bestC = cloneSet(cf.c)
		},
		RestoreBest: func() {
			cf.g = cf.bestG
			cf.c = cf.bestC
		},
	}

	best, err := Run(rng, sched, hooks)
	if err != nil {
		return nil, nil, 0, err
	}

	return cf.g, setMembers(cf.c), best, nil
}

// half is the rational phase 1/2 (pi/2 radians) attached by complement moves.
var half = big.NewRat(1, 2)

// ExtractTerms materializes the committed move's diagram sum ("Terms
// extracted"): in cut mode, two graphs — G with +1/2 on C, and G
// with -1/2 on C and scalar multiplied by e^{i*pi/4}; otherwise, a single
// graph with a fresh Z-spider of phase 1/2 attached to every v in C via
// H-edges, plus +1/2 added to each v in C.
func ExtractTerms(g *core.Graph, c []string, cut bool) ([]*core.Graph, error) {
	if len(c) == 0 {
		return []*core.Graph{g.Clone()}, nil
	}

	if cut {
		plus := g.Clone()
		for _, v := range c {
			if err := plus.AddToPhase(v, half); err != nil {
				return nil, err
			}
		}

		minus := g.Clone()
		negHalf := new(big.Rat).Neg(half)
		for _, v := range c {
			if err := minus.AddToPhase(v, negHalf); err != nil {
				return nil, err
			}
		}
		minus.MulScalar(phaseEighth)

		return []*core.Graph{plus, minus}, nil
	}

	out := g.Clone()
	gadget := out.AddVertexWithPhase(core.KindZ, half)
	for _, v := range c {
		if err := out.AddEdgeSmart(gadget, v, core.EdgeHadamard); err != nil {
			return nil, err
		}
		if err := out.AddToPhase(v, half); err != nil {
			return nil, err
		}
	}

	return []*core.Graph{out}, nil
}
