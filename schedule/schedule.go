// Package schedule provides the geometric temperature schedule consumed
// once, linearly, by each annealer's Metropolis loop.
package schedule

import (
	"errors"
	"math"
)

// ErrInvalidSteps indicates steps <= 0.
var ErrInvalidSteps = errors.New("schedule: steps must be positive")

// ErrNonPositiveBound indicates start or stop was <= 0 (ln is undefined there).
var ErrNonPositiveBound = errors.New("schedule: start and stop must be positive")

// Series is a finite, non-restartable geometric sequence of `steps`
// temperatures interpolating from start toward stop. The i-th value
// (0-indexed) is start*(stop/start)^(i/steps); implemented by advancing
// ln(t) by (ln(stop)-ln(start))/steps per step and exponentiating, so
// float64 rounding matches the advance-then-emit contract exactly.
type Series struct {
	logCurrent float64
	logStep    float64
	remaining  int
}

// NewGeometricSeries constructs a Series yielding `steps` values
// geometrically spanning [start, stop). Returns ErrInvalidSteps if
// steps<=0, ErrNonPositiveBound if start<=0 or stop<=0.
func NewGeometricSeries(start, stop float64, steps int) (*Series, error) {
	if steps <= 0 {
		return nil, ErrInvalidSteps
	}
	if start <= 0 || stop <= 0 {
		return nil, ErrNonPositiveBound
	}

	return &Series{
		logCurrent: math.Log(start),
		logStep:    (math.Log(stop) - math.Log(start)) / float64(steps),
		remaining:  steps,
	}, nil
}

// Next returns the next temperature and true, or (0, false) once all
// `steps` values have been emitted.
func (s *Series) Next() (float64, bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	t := math.Exp(s.logCurrent)
	s.logCurrent += s.logStep
	s.remaining--

	return t, true
}

// Remaining reports how many values Next will still yield.
func (s *Series) Remaining() int {
	return s.remaining
}
