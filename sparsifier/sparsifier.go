// File: sparsifier.go
// Role: the outer driver loop: each round races a complement finder
// against a pivot finder on independent clones of the current diagram,
// then commits whichever move is cheaper (accounting for its term-count
// penalty), halting once neither improves on the current cost.
package sparsifier

import (
	"math/rand"

	"github.com/katalvlaran/zxsparsify/anneal"
	"github.com/katalvlaran/zxsparsify/core"
	"github.com/katalvlaran/zxsparsify/schedule"
)

// complementPenalty and pivotPenalty are the move-level costs in log2 of
// the term count: a complement is charged 1 (a doubling of the terms),
// a pivot 2 (a quadrupling), whatever the cut mode; these are design
// constants never conflated with alpha/beta.
const (
	complementPenalty = 1
	pivotPenalty      = 2
)

// Run executes the Sparsifier loop on a clone of g0 (the caller's g0 is
// never mutated) and returns the final graph, move log, and before/after
// metrics. rng seeds independent per-round, per-annealer substreams via
// anneal.DeriveRNG so a complement round and a pivot round never share
// draws, keeping the run reproducible given (g0, opts, rng's seed).
func Run(g0 *core.Graph, opts Options, rng *rand.Rand) (*Result, error) {
	if opts.Steps <= 0 {
		return nil, ErrNonPositiveSteps
	}

	g := g0.Clone()
	result := &Result{
		InitialCost:  cost(g, opts.Alpha, opts.Beta),
		InitialEdges: g.EdgeCount(),
	}

	round := 0
	for opts.Infinite || round < opts.Rounds {
		baseline := cost(g, opts.Alpha, opts.Beta)

		complementSched, err := schedule.NewGeometricSeries(opts.MaxTemp, opts.MinTemp, opts.Steps)
		if err != nil {
			return nil, err
		}
		pivotSched, err := schedule.NewGeometricSeries(opts.MaxTemp, opts.MinTemp, opts.Steps)
		if err != nil {
			return nil, err
		}

		cf := anneal.NewComplementFinder(g, opts.Alpha, opts.Beta, opts.Cut)
		gc, cc, _, err := cf.Anneal(anneal.DeriveRNG(rng, uint64(round)*2), complementSched)
		if err != nil {
			return nil, err
		}
		costC := cost(gc, opts.Alpha, opts.Beta) + complementPenalty

		pf := anneal.NewPivotFinder(g)
		gp, lp, rp, _, err := pf.Anneal(anneal.DeriveRNG(rng, uint64(round)*2+1), pivotSched)
		if err != nil {
			return nil, err
		}
		costP := cost(gp, opts.Alpha, opts.Beta) + pivotPenalty

		if costC >= baseline && costP >= baseline {
			break
		}

		if costC <= costP {
			g = gc
			result.Moves = append(result.Moves, Move{Kind: MoveComplement, C: cc})
		} else {
			g = gp
			result.Moves = append(result.Moves, Move{Kind: MovePivot, L: lp, R: rp})
		}

		round++
	}

	result.Graph = g
	result.FinalCost = cost(g, opts.Alpha, opts.Beta)
	result.FinalEdges = g.EdgeCount()

	return result, nil
}
