// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits Plain edges in stable order i -> (i+1)%n for i=0..n-1.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodCycle, err)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			v := cfg.idFn((i + 1) % n)
			if err := g.AddEdgeSmart(u, v, core.EdgePlain); err != nil {
				return fmt.Errorf("%s: AddEdgeSmart(%s,%s): %w", MethodCycle, u, v, err)
			}
		}

		return nil
	}
}
