// Package alpha implements the alpha-subgraph-complements cost scorer:
// root-finding (Brent's method) over a transcendental balancing
// equation. See Score and ScoreImproved.
//
// # Errors
//
//	ErrNoRoot - the residual does not change sign on [1,10]; the caller
//	            (an annealer) must treat this as a rejected move.
package alpha
