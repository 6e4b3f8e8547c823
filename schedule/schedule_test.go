package schedule_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/zxsparsify/schedule"
	"github.com/stretchr/testify/require"
)

func TestGeometricSeries_FirstValueIsStart(t *testing.T) {
	s, err := schedule.NewGeometricSeries(3000, 0.1, 1000)
	require.NoError(t, err)

	first, ok := s.Next()
	require.True(t, ok)
	require.InDelta(t, 3000.0, first, 1e-9)
}

func TestGeometricSeries_LastValueOneStepShort(t *testing.T) {
	start, stop, steps := 3000.0, 0.1, 1000
	s, err := schedule.NewGeometricSeries(start, stop, steps)
	require.NoError(t, err)

	var last float64
	count := 0
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		last = v
		count++
	}
	require.Equal(t, steps, count)

	want := stop * math.Pow(stop/start, -1.0/float64(steps))
	require.InEpsilon(t, want, last, 1e-6)
}

func TestGeometricSeries_ExhaustsAfterSteps(t *testing.T) {
	s, err := schedule.NewGeometricSeries(10, 1, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, ok := s.Next()
		require.True(t, ok)
	}
	_, ok := s.Next()
	require.False(t, ok)
	require.Equal(t, 0, s.Remaining())
}

func TestNewGeometricSeries_InvalidArgs(t *testing.T) {
	_, err := schedule.NewGeometricSeries(1, 1, 0)
	require.ErrorIs(t, err, schedule.ErrInvalidSteps)

	_, err = schedule.NewGeometricSeries(0, 1, 10)
	require.ErrorIs(t, err, schedule.ErrNonPositiveBound)
}
