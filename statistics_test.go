package multinet

import (
	"testing"
	"time"
)

func TestStatistics(t *testing.T) {
	var s Statistics
	s.Record(true, 1)
	s.Record(false, 3)

	if s.PercentCorrect() != 50 || s.AverageCost() != 2 {
		t.Errorf("got %v%% and cost %v, want 50%% and 2", s.PercentCorrect(), s.AverageCost())
	}

	s.CloseWindow()
	s.Record(true, 0.5)

	if s.WindowPercentCorrect() != 100 || s.WindowAverageCost() != 0.5 {
		t.Errorf("window: got %v%% and cost %v, want 100%% and 0.5", s.WindowPercentCorrect(), s.WindowAverageCost())
	}
	if s.Rounds != 3 || s.CorrectRounds != 2 || s.LastCost != 0.5 {
		t.Errorf("totals were changed by closing the window: %+v", s)
	}

	c := s.Copy()
	s.Reset()
	if c.Rounds != 3 || s.Rounds != 0 {
		t.Error("copy is not independent")
	}
	if s.PercentCorrect() != 0 || s.WindowAverageCost() != 0 {
		t.Error("empty statistics should report zeros")
	}
}

func TestDynamicStatisticsClone(t *testing.T) {
	var d DynamicStatistics
	now := time.Now()
	d.Add(10, 1, now)
	d.Add(20, 0.5, now.Add(time.Second))

	c := d.Clone()
	d.Add(30, 0.25, now.Add(2*time.Second))

	if c.Len() != 2 || d.Len() != 3 {
		t.Fatalf("got lengths %d and %d, want 2 and 3", c.Len(), d.Len())
	}

	// appending to the clone must not overwrite the original
	c.Add(99, 99, now)
	if d.PercentCorrect[2].Value != 30 {
		t.Error("appending to a clone changed the original")
	}

	d.Reset()
	if d.Len() != 0 || c.Len() != 3 {
		t.Error("Reset should only drop the original series")
	}
}

func TestInitValue(t *testing.T) {
	if v := Skip().Apply(4); v != 4 {
		t.Errorf("Skip replaced the value with %v", v)
	}
	if v := Some(0).Apply(4); v != 0 {
		t.Errorf("Some(0) gave %v", v)
	}
	if !Skip().IsSkip() || Some(1).IsSkip() {
		t.Error("IsSkip is wrong")
	}
}
