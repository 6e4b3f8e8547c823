// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits Plain edges (i-1) -> i for i=1..n-1 in stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n-1) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodPath, err)
		}

		for i := 1; i < n; i++ {
			u := cfg.idFn(i - 1)
			v := cfg.idFn(i)
			if err := g.AddEdgeSmart(u, v, core.EdgePlain); err != nil {
				return fmt.Errorf("%s: AddEdgeSmart(%s,%s): %w", MethodPath, u, v, err)
			}
		}

		return nil
	}
}
