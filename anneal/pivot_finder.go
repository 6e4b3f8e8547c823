// File: pivot_finder.go
// Role: the pivot annealer ("Pivot finder").
package anneal

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/schedule"
)

// PivotFinder anneals a disjoint pair of vertex sets (L,R), toggling
// pivot rewrites, to minimize |E(G)|.
type PivotFinder struct {
	g                   *core.Graph
	left, right         map[string]bool
	bestG               *core.Graph
	bestLeft, bestRight map[string]bool
}

// NewPivotFinder clones g and starts with both sides empty.
func NewPivotFinder(g *core.Graph) *PivotFinder {
	return &PivotFinder{g: g.Clone(), left: make(map[string]bool), right: make(map[string]bool)}
}

func sortedKeysBool(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// togglePivot flips v's membership in side, toggling the H-edge {v,u}
// for every u currently in other. other is never touched. Calling this
// twice with the same (side, other, v) is a perfect undo.
func togglePivot(g *core.Graph, side, other map[string]bool, v string) {
	for _, u := range sortedKeysBool(other) {
		_ = g.AddEdgeSmart(v, u, core.EdgeHadamard)
	}
	if side[v] {
		delete(side, v)
	} else {
		side[v] = true
	}
}

// Anneal runs the shared Metropolis loop and returns the best
// (graph, L, R, fitness) found.
func (pf *PivotFinder) Anneal(rng *rand.Rand, sched *schedule.Series) (*core.Graph, []string, []string, float64, error) {
	if pf.g.VertexCount() == 0 {
		return pf.g, nil, nil, 0, nil
	}

	hooks := Hooks{
		Propose: func(r *rand.Rand) func() {
			coinLeft := r.Intn(2) == 0
			side, other := pf.left, pf.right
			if !coinLeft {
				side, other = pf.right, pf.left
			}

			var candidates []string
			for _, v := range pf.g.Vertices() {
				if !other[v] {
					candidates = append(candidates, v)
				}
			}
			if len(candidates) == 0 {
				return func() {}
			}

			v := candidates[r.Intn(len(candidates))]
			togglePivot(pf.g, side, other, v)

			return func() { togglePivot(pf.g, side, other, v) }
		},
		Fitness: func() (float64, error) { return float64(pf.g.EdgeCount()), nil },
		SaveBest: func() {
			pf.bestG = pf.g.Clone()
			pf.bestLeft = cloneSet(pf.left)
			pf.bestRight = cloneSet(pf.right)
		},
		RestoreBest: func() {
			pf.g = pf.bestG
			pf.left = pf.bestLeft
			pf.right = pf.bestRight
		},
	}

	best, err := Run(rng, sched, hooks)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	return pf.g, setMembers(pf.left), setMembers(pf.right), best, nil
}
