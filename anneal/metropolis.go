// File: metropolis.go
// Role: the shared Metropolis simulated-annealing frame every annealer
// variant drives through its own move proposal and fitness.
package anneal

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/zxsparsify/schedule"
)

// Hooks bundles what the shared loop needs from a concrete annealer.
//
// Propose applies one random toggle to the mutable state and returns a
// closure that undoes exactly that toggle (every toggle this package
// performs is its own perfect involution, so Propose's revert is simply
// "do the same toggle again").
//
// Fitness recomputes the objective of the current state. A non-nil error
// is a numeric scorer failure: the caller must treat the just-applied
// toggle as rejected and revert it without consulting Metropolis at all.
//
// SaveBest/RestoreBest snapshot and restore whatever "best-so-far" means
// for the concrete annealer (a deep graph clone, selected-set copies, and
// any fitness-call cache such as the subgraph-cut annealer's separator).
type Hooks struct {
	Propose     func(rng *rand.Rand) (revert func())
	Fitness     func() (float64, error)
	SaveBest    func()
	RestoreBest func()
}

// Run executes the Metropolis loop over the temperatures sched
// yields, using rng for both move proposal and acceptance draws, and
// returns the best fitness observed. On return, the concrete annealer's
// state has already been restored to that best snapshot.
func Run(rng *rand.Rand, sched *schedule.Series, hooks Hooks) (float64, error) {
	fitness, err := hooks.Fitness()
	if err != nil {
		return 0, err
	}
	best := fitness
	hooks.SaveBest()

	for {
		temp, ok := sched.Next()
		if !ok {
			break
		}

		revert := hooks.Propose(rng)
		next, ferr := hooks.Fitness()
		if ferr != nil {
			revert()

			continue
		}

		delta := next - fitness
		accept := delta <= 0
		if !accept && rng.Float64() < math.Exp(-delta/temp) {
			accept = true
		}

		if accept {
			fitness = next
		} else {
			revert()
		}

		if fitness < best {
			best = fitness
			hooks.SaveBest()
		}
	}

	hooks.RestoreBest()

	return best, nil
}
