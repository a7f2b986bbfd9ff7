package engine

import (
	"time"

	mn "github.com/sharnoff/multinet"
)

// CadenceStats count how often one kind of snapshot was due, split into the snapshots that were
// taken and those that were dropped because the previous one was still being presented
type CadenceStats struct {
	Taken   int64
	Dropped int64
}

// Fired returns the number of times the cadence was due
func (c CadenceStats) Fired() int64 {
	return c.Taken + c.Dropped
}

// EngineStats are the timing counters of an Engine. The Window fields cover the last complete
// statistics window; the others are totals since the Engine was created, including the rounds of
// the window that is still open.
//
// A round here is one example, evaluated by every enabled Network.
type EngineStats struct {
	Elapsed time.Duration
	Rounds  int64
	Windows int64

	WindowElapsed time.Duration
	WindowRounds  int64

	ErrorMatrix CadenceStats
	Network     CadenceStats
	Statistics  CadenceStats
}

// RoundsPerSecond returns the throughput of the last statistics window
func (s EngineStats) RoundsPerSecond() float64 {
	return perSecond(s.WindowRounds, s.WindowElapsed)
}

// AverageRoundsPerSecond returns the throughput since the Engine was created
func (s EngineStats) AverageRoundsPerSecond() float64 {
	return perSecond(s.Rounds, s.Elapsed)
}

func (s *EngineStats) cadence(c cadence) *CadenceStats {
	switch c {
	case errorMatrixCadence:
		return &s.ErrorMatrix
	case networkCadence:
		return &s.Network
	default:
		return &s.Statistics
	}
}

func perSecond(n int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// addRounds counts a finished batch towards the open window
func (e *Engine) addRounds(rounds int64, d time.Duration) {
	e.timing.Lock()
	e.timing.rounds += rounds
	e.timing.elapsed += d
	e.timing.Unlock()
}

// countCadence records whether a due snapshot was taken or dropped
func (e *Engine) countCadence(c cadence, taken bool) {
	e.timing.Lock()
	cs := e.timing.stats.cadence(c)
	if taken {
		cs.Taken++
	} else {
		cs.Dropped++
	}
	e.timing.Unlock()
}

// closeWindow ends the statistics window for the Engine and adds a point to the time series of
// every enabled Network. It runs whenever the statistics cadence fires, whether or not the
// snapshot is then dropped, so that the totals and the time series never lose a window. It must be
// called with the structural lock held.
func (e *Engine) closeWindow(now time.Time, nets []*mn.Network) {
	for _, n := range nets {
		n.Dynamic.Add(n.Stats.WindowPercentCorrect(), n.Stats.WindowAverageCost(), now)
	}

	e.timing.Lock()
	s := &e.timing.stats
	s.WindowElapsed, s.WindowRounds = e.timing.elapsed, e.timing.rounds
	s.Elapsed += e.timing.elapsed
	s.Rounds += e.timing.rounds
	s.Windows++
	e.timing.elapsed, e.timing.rounds = 0, 0
	e.timing.Unlock()
}

// Stats returns the current timing counters of the Engine
func (e *Engine) Stats() EngineStats {
	e.timing.Lock()
	defer e.timing.Unlock()

	s := e.timing.stats
	s.Elapsed += e.timing.elapsed
	s.Rounds += e.timing.rounds
	return s
}
