// File: graph.go
// Role: synthesizes a driver-mode input diagram via builder's topology
// constructors, since the external ZX library that would normally hand a
// diagram to this driver is a collaborator outside this repo's scope.
package main

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/zxsparsify/builder"
	"github.com/katalvlaran/zxsparsify/core"
)

// buildInputGraph dispatches to the builder constructor named by topology.
func buildInputGraph(topology string, n, n2 int, p float64, rng *rand.Rand) (*core.Graph, error) {
	bopts := []builder.BuilderOption{builder.WithRand(rng)}

	switch topology {
	case "complete":
		return builder.BuildGraph(nil, bopts, builder.Complete(n))
	case "cycle":
		return builder.BuildGraph(nil, bopts, builder.Cycle(n))
	case "path":
		return builder.BuildGraph(nil, bopts, builder.Path(n))
	case "bipartite":
		if n2 <= 0 {
			n2 = n
		}
		return builder.BuildGraph(nil, bopts, builder.CompleteBipartite(n, n2))
	case "random":
		return builder.BuildGraph(nil, bopts, builder.RandomSparse(n, p))
	default:
		return nil, fmt.Errorf("buildInputGraph: unknown topology %q", topology)
	}
}
