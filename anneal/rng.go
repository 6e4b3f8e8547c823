// File: rng.go
// Role: deterministic RNG factory shared by all annealers, adapted from
// tsp's rng.go so that identical seeds reproduce identical move logs.
package anneal

import "math/rand"

// defaultRNGSeed is used whenever a caller passes seed==0.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand. seed==0 maps to
// defaultRNGSeed; any other seed is used verbatim.
//
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier via a
// SplitMix64-style avalanche finalizer, producing well-distributed,
// uncorrelated child seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from base and
// a stream identifier, so the Sparsifier can hand each of its per-round
// annealers (complement, pivot) a decorrelated but reproducible substream
// without advancing the others' state. If base is nil, defaultRNGSeed
// seeds the parent.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
