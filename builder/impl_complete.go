// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once as a Plain edge.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n^2) edges.
// Determinism: deterministic IDs via cfg.idFn; deterministic pair order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinRandomSparseVertices, ErrTooFewVertices)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
		}
		if err := addCompleteEdges(g, ids); err != nil {
			return fmt.Errorf("%s: %w", MethodComplete, err)
		}

		return nil
	}
}
