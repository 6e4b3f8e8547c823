package alpha

import "math"

// Score implements alpha_subgraph_complements: given the total
// vertex count n, the separator's cut size and left/right bipartition
// sizes, and the number of diagram terms T, it solves
//
//	a*ln(t) - T*ln(2) + ln1p(t^(a-b)) = 0
//
// for t in [1,10] via Brent's method (eps=1e-3, <=100 iters) and returns
// log2(t) as the cost upper bound. Returns ErrNoRoot if the residual does
// not change sign on [1,10] — the caller must treat this as a rejected
// move, not extrapolate.
func Score(n, leftSize, rightSize, cutSize, numTerms int) (float64, error) {
	a, b := exponents(n, leftSize, rightSize, cutSize)

	return solve(a, b, numTerms)
}

// ScoreImproved is the "improved" α-scorer variant: for every cover
// subset whose intersection with the cut set has size 1
// or |subset|-1, d1 is reduced by one before a/b are derived — this
// tightens the branching-factor estimate when a subset straddles the cut
// almost entirely on one side. Both variants are kept (not substituted
// for one another) so callers can A/B compare.
func ScoreImproved(n, leftSize, rightSize, cutSize, numTerms int, cover [][]string, cut []string) (float64, error) {
	cutSet := make(map[string]struct{}, len(cut))
	for _, v := range cut {
		cutSet[v] = struct{}{}
	}

	d1, d2 := dValues(n, leftSize, rightSize, cutSize)
	for _, subset := range cover {
		if len(subset) == 0 {
			continue
		}
		overlap := 0
		for _, v := range subset {
			if _, ok := cutSet[v]; ok {
				overlap++
			}
		}
		if overlap == 1 || overlap == len(subset)-1 {
			d1--
		}
	}

	a, bExp := aAndBFromD(n, d1, d2)

	return solve(a, bExp, numTerms)
}

// dValues returns (d1, d2): d1 = min(|L|,|R|) + |Cut|, d2 = max(|L|,|R|).
func dValues(n, leftSize, rightSize, cutSize int) (d1, d2 int) {
	d1 = minInt(leftSize, rightSize) + cutSize
	d2 = maxInt(leftSize, rightSize)

	return d1, d2
}

// exponents derives (a,b) directly from (n, leftSize, rightSize, cutSize).
func exponents(n, leftSize, rightSize, cutSize int) (a, b int) {
	d1, d2 := dValues(n, leftSize, rightSize, cutSize)

	return aAndBFromD(n, d1, d2)
}

// aAndBFromD derives a = n-max(d1,d2), b = n-min(d1,d2).
func aAndBFromD(n, d1, d2 int) (a, b int) {
	return n - maxInt(d1, d2), n - minInt(d1, d2)
}

// solve brackets and solves the balancing equation for the given (a,b,T),
// returning log2 of the root.
func solve(a, b, numTerms int) (float64, error) {
	af, bf, tf := float64(a), float64(b), float64(numTerms)
	const ln2 = math.Ln2

	f := func(t float64) float64 {
		return af*math.Log(t) - tf*ln2 + math.Log1p(math.Pow(t, af-bf))
	}

	t, err := brentFindRoot(f, bracketLo, bracketHi, epsilon, maxIter)
	if err != nil {
		return 0, err
	}

	return math.Log2(t), nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
