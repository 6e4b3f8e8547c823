// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model: Erdos-Renyi-like generator; include each unordered pair
// {i,j}, i<j, as a Plain edge independently with probability p.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity: O(n) vertices + O(n^2) Bernoulli trials.
// Determinism: stable trial order (i asc, inner j>i asc); deterministic
// outcomes for a fixed seed.
package builder

import (
	"fmt"

	"github.com/katalvlaran/zxsparsify/core"
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinRandomSparseVertices, ErrTooFewVertices)
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidProbability, err)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, err)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				include := p >= MaxProbability
				if cfg.rng != nil {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}

				v := cfg.idFn(j)
				if err := g.AddEdgeSmart(u, v, core.EdgePlain); err != nil {
					return fmt.Errorf("%s: AddEdgeSmart(%s,%s): %w", MethodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
