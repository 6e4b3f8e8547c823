// File: complement_set_finder.go
// Role: the multi-set complement annealer ("Multi-set complement finder").
package anneal

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/schedule"
)

// ComplementSetFinder anneals k independent complement sets C1..Ck
// simultaneously, toggling one vertex of one set per move.
type ComplementSetFinder struct {
	Alpha, Beta float64
	Cut         bool

	g     *core.Graph
	sets  []map[string]bool
	bestG *core.Graph
	best  []map[string]bool
}

// NewComplementSetFinder clones g and starts with k empty sets.
func NewComplementSetFinder(g *core.Graph, alpha, beta float64, cut bool, k int) *ComplementSetFinder {
	sets := make([]map[string]bool, k)
	for i := range sets {
		sets[i] = make(map[string]bool)
	}

	return &ComplementSetFinder{Alpha: alpha, Beta: beta, Cut: cut, g: g.Clone(), sets: sets}
}

func (csf *ComplementSetFinder) fitness() float64 {
	f := csf.Alpha*float64(csf.g.VertexCount()) + csf.Beta*float64(csf.g.EdgeCount())
	if !csf.Cut {
		nonEmpty, total := 0, 0
		for _, s := range csf.sets {
			if len(s) > 0 {
				nonEmpty++
			}
			total += len(s)
		}
		f += csf.Alpha * float64(nonEmpty)
		f += csf.Beta * float64(total)
	}

	return f
}

func cloneSets(sets []map[string]bool) []map[string]bool {
	out := make([]map[string]bool, len(sets))
	for i, s := range sets {
		out[i] = cloneSet(s)
	}

	return out
}

// Anneal runs the shared Metropolis loop over the k sets and returns the
// best (graph, sets, fitness) found.
func (csf *ComplementSetFinder) Anneal(rng *rand.Rand, sched *schedule.Series) (*core.Graph, [][]string, float64, error) {
	if csf.g.VertexCount() == 0 || len(csf.sets) == 0 {
		return csf.g, nil, 0, nil
	}

	hooks := Hooks{
		Propose: func(r *rand.Rand) func() {
			vertices := csf.g.Vertices()
			idx := r.Intn(len(csf.sets))
			v := vertices[r.Intn(len(vertices))]
			toggleInSet(csf.g, csf.sets[idx], v)

			return func() { toggleInSet(csf.g, csf.sets[idx], v) }
		},
		Fitness: func() (float64, error) { return csf.fitness(), nil },
		SaveBest: func() {
			csf.bestG = csf.g.Clone()
			csf.best = cloneSets(csf.sets)
		},
		RestoreBest: func() {
			csf.g = csf.bestG
			csf.sets = csf.best
		},
	}

	best, err := Run(rng, sched, hooks)
	if err != nil {
		return nil, nil, 0, err
	}

	out := make([][]string, len(csf.sets))
	for i, s := range csf.sets {
		out[i] = setMembers(s)
	}

	return csf.g, out, best, nil
}

// ExtractSetTerms materializes the committed multi-set move: in
// cut mode, the Cartesian expansion over non-empty sets producing
// 2^(#nonempty) graphs, each independently choosing +1/2 or -1/2 on its
// set's vertices (with the e^{i*pi/4} scalar on every "-1/2" choice);
// otherwise a single graph with one phase-gadget per non-empty set.
func ExtractSetTerms(g *core.Graph, sets [][]string, cut bool) ([]*core.Graph, error) {
	var nonEmpty [][]string
	for _, s := range sets {
		if len(s) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return []*core.Graph{g.Clone()}, nil
	}

	if !cut {
		out := g.Clone()
		for _, s := range nonEmpty {
			gadget := out.AddVertexWithPhase(core.KindZ, half)
			for _, v := range s {
				if err := out.AddEdgeSmart(gadget, v, core.EdgeHadamard); err != nil {
					return nil, err
				}
				if err := out.AddToPhase(v, half); err != nil {
					return nil, err
				}
			}
		}

		return []*core.Graph{out}, nil
	}

	terms := []*core.Graph{g.Clone()}
	negHalf := new(big.Rat).Neg(half)
	for _, s := range nonEmpty {
		var next []*core.Graph
		for _, base := range terms {
			plus := base.Clone()
			for _, v := range s {
				if err := plus.AddToPhase(v, half); err != nil {
					return nil, err
				}
			}
			minus := base.Clone()
			for _, v := range s {
				if err := minus.AddToPhase(v, negHalf); err != nil {
					return nil, err
				}
			}
			minus.MulScalar(phaseEighth)
			next = append(next, plus, minus)
		}
		terms = next
	}

	return terms, nil
}
