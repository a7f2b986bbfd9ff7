package multinet

import (
	"time"
)

// Statistics are the running counters of a Network, updated every round. A statistics window is
// the span between two statistics renders; the Window* fields only cover the current one.
type Statistics struct {
	Rounds           int64
	CorrectRounds    int64
	BackPropagations int64
	TotalCost        float64
	LastCost         float64

	WindowRounds  int64
	WindowCorrect int64
	WindowCost    float64
}

// Record counts a single round
func (s *Statistics) Record(correct bool, cost float64) {
	s.Rounds++
	s.WindowRounds++
	if correct {
		s.CorrectRounds++
		s.WindowCorrect++
	}

	s.TotalCost += cost
	s.WindowCost += cost
	s.LastCost = cost
}

// RecordBackPropagation counts a round in which back-propagation was run
func (s *Statistics) RecordBackPropagation() {
	s.BackPropagations++
}

// PercentCorrect returns the percentage of all rounds that were correct
func (s *Statistics) PercentCorrect() float64 {
	return percent(s.CorrectRounds, s.Rounds)
}

// AverageCost returns the average cost over all rounds
func (s *Statistics) AverageCost() float64 {
	return average(s.TotalCost, s.Rounds)
}

// WindowPercentCorrect returns the percentage of rounds in the current window that were correct
func (s *Statistics) WindowPercentCorrect() float64 {
	return percent(s.WindowCorrect, s.WindowRounds)
}

// WindowAverageCost returns the average cost over the current window
func (s *Statistics) WindowAverageCost() float64 {
	return average(s.WindowCost, s.WindowRounds)
}

// CloseWindow starts a new window
func (s *Statistics) CloseWindow() {
	s.WindowRounds = 0
	s.WindowCorrect = 0
	s.WindowCost = 0
}

// Reset sets every counter back to zero
func (s *Statistics) Reset() {
	*s = Statistics{}
}

// Copy returns a copy of the Statistics that can be handed to another goroutine
func (s *Statistics) Copy() *Statistics {
	c := *s
	return &c
}

func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

func average(sum float64, n int64) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Point is a single value of a time series
type Point struct {
	Value float64
	Time  time.Time
}

// DynamicStatistics are the time series of a Network, one point per statistics window
type DynamicStatistics struct {
	PercentCorrect []Point
	AverageCost    []Point
}

// Add appends one point to each series
func (d *DynamicStatistics) Add(percentCorrect, averageCost float64, t time.Time) {
	d.PercentCorrect = append(d.PercentCorrect, Point{percentCorrect, t})
	d.AverageCost = append(d.AverageCost, Point{averageCost, t})
}

// Len returns the number of points in each series
func (d *DynamicStatistics) Len() int {
	return len(d.PercentCorrect)
}

// Clone returns the series as they are now. Points are never modified once appended, so the
// clone shares the backing arrays; its capacity is cut to its length so that later appends to
// the original can never be seen through it.
func (d *DynamicStatistics) Clone() *DynamicStatistics {
	n := len(d.PercentCorrect)
	m := len(d.AverageCost)
	return &DynamicStatistics{
		PercentCorrect: d.PercentCorrect[:n:n],
		AverageCost:    d.AverageCost[:m:m],
	}
}

// Reset drops both series. Clones taken before keep their points.
func (d *DynamicStatistics) Reset() {
	d.PercentCorrect = nil
	d.AverageCost = nil
}
