// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 >= 1 and n2 >= 1 (else ErrTooFewVertices).
//   - Adds left partition IDs as "{leftPrefix}{i}", i=0..n1-1.
//   - Adds right partition IDs as "{rightPrefix}{j}", j=0..n2-1.
//   - Emits every cross-pair L_i-R_j as a Plain edge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n1+n2) vertices + O(n1*n2) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return fmt.Errorf("%w: %w", ErrTooFewVertices, err)
		}

		leftIDs := makeIDs(cfg.leftPrefix, n1)
		rightIDs := makeIDs(cfg.rightPrefix, n2)

		if err := addVerticesWithIDFn(g, n1, func(i int) string { return leftIDs[i] }); err != nil {
			return fmt.Errorf("%s: %w", MethodCompleteBipartite, err)
		}
		if err := addVerticesWithIDFn(g, n2, func(j int) string { return rightIDs[j] }); err != nil {
			return fmt.Errorf("%s: %w", MethodCompleteBipartite, err)
		}

		for _, u := range leftIDs {
			for _, v := range rightIDs {
				if err := g.AddEdgeSmart(u, v, core.EdgePlain); err != nil {
					return fmt.Errorf("%s: AddEdgeSmart(%s,%s): %w", MethodCompleteBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}
