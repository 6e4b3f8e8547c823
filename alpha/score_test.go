package alpha

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func residual(a, b int, t, numTerms float64) float64 {
	return float64(a)*math.Log(t) - numTerms*math.Ln2 + math.Log1p(math.Pow(t, float64(a-b)))
}

func TestScore_ResidualWithinTolerance(t *testing.T) {
	// n=20, left=4, right=6, cut=3, T=4 => d1=min(4,6)+3=7, d2=max(4,6)=6,
	// a=20-max(7,6)=13, b=20-min(7,6)=14. a<b as required by property 8.
	got, err := Score(20, 4, 6, 3, 4)
	require.NoError(t, err)

	a, b := exponents(20, 4, 6, 3)
	require.Less(t, a, b)

	root := math.Exp2(got)
	require.LessOrEqual(t, math.Abs(residual(a, b, root, 4)), epsilon+1e-6)
}

func TestScore_NoRootOnBracket(t *testing.T) {
	// With T so small relative to a-b that the residual keeps the same
	// sign across [1,10], Score must surface ErrNoRoot rather than
	// extrapolate.
	_, err := Score(100, 1, 1, 1, 0)
	require.ErrorIs(t, err, ErrNoRoot)
}

func TestScoreImproved_ReducesD1ForQualifyingSubsets(t *testing.T) {
	cover := [][]string{{"c0", "l0"}} // overlap=1, len(subset)-1=1 -> qualifies
	cut := []string{"c0"}

	improved, err := ScoreImproved(20, 4, 6, 3, 4, cover, cut)
	require.NoError(t, err)

	plain, err := Score(20, 4, 6, 3, 4)
	require.NoError(t, err)

	require.NotEqual(t, plain, improved)
}

func TestDValues(t *testing.T) {
	d1, d2 := dValues(20, 4, 6, 3)
	require.Equal(t, 7, d1)
	require.Equal(t, 6, d2)
}
