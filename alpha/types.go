// Package alpha computes the α-score diagram-sum cost bound: given a
// diagram's vertex/cut/bipartition sizes and a term count, it solves a
// transcendental balancing equation for a branching factor t∈[1,10] via
// Brent's method and returns log2(t).
package alpha

import "errors"

// ErrNoRoot indicates the residual function does not change sign on
// [1,10] — this is a scorer failure, not a bug: the caller (an annealer)
// must treat it as a rejected move, never extrapolate a root outside the
// bracket.
var ErrNoRoot = errors.New("alpha: no root on [1,10]")

// bracketLo and bracketHi are the fixed root-search interval endpoints.
const (
	bracketLo = 1.0
	bracketHi = 10.0

	// epsilon is the Brent convergence tolerance on the residual.
	epsilon = 1e-3
	// maxIter bounds the number of Brent iterations.
	maxIter = 100
)
