package engine

import (
	"time"

	"github.com/google/uuid"

	mn "github.com/sharnoff/multinet"
)

// Presenter is the rendering boundary. Present is called on the Dispatcher goroutine, never on
// the training goroutine; nothing in a Frame is changed by the Engine once it has been handed
// over, and Present must not keep references to the Frame after it returns.
type Presenter interface {
	Present(*Frame)
}

// PresenterFunc allows a function to be used as a Presenter
type PresenterFunc func(*Frame)

func (f PresenterFunc) Present(fr *Frame) {
	f(fr)
}

// Frame is one unit of rendering. Only the parts whose cadence fired are set.
type Frame struct {
	Time time.Time

	ErrorMatrices []ErrorMatrixSnapshot
	Networks      []*mn.Network
	Statistics    *StatisticsSnapshot
	Timer         *TimerSnapshot
}

// ErrorMatrixSnapshot is the buffer of a Network's error matrix pair that was swapped out. It is
// cleared once the Frame has been presented.
type ErrorMatrixSnapshot struct {
	ID     uuid.UUID
	Name   string
	Matrix *mn.ErrorMatrix
}

// StatisticsSnapshot holds the statistics of every enabled Network and of the Engine itself, as
// they were at the end of a statistics window
type StatisticsSnapshot struct {
	Networks []NetworkStatistics
	Engine   EngineStats
}

// NetworkStatistics are the copied statistics of one Network
type NetworkStatistics struct {
	ID      uuid.UUID
	Name    string
	Color   string
	Stats   *mn.Statistics
	Dynamic *mn.DynamicStatistics
}

// TimerSnapshot is sent by the ticker while the Engine is running
type TimerSnapshot struct {
	Elapsed time.Duration

	// CPU is the system-wide CPU load, in percent. It is negative if it could not be read.
	CPU float64
}

// Empty returns whether or not the Frame has nothing to present
func (f *Frame) Empty() bool {
	return f.ErrorMatrices == nil && f.Networks == nil && f.Statistics == nil && f.Timer == nil
}

// snapshot takes the parts of a Frame for the given cadence. It must be called with the
// structural lock held.
func (e *Engine) snapshot(f *Frame, c cadence) {
	nets := e.session.Enabled()

	switch c {
	case errorMatrixCadence:
		f.ErrorMatrices = make([]ErrorMatrixSnapshot, len(nets))
		for i, n := range nets {
			f.ErrorMatrices[i] = ErrorMatrixSnapshot{n.ID, n.Name, n.ErrorMatrix}
			n.ErrorMatrix = n.ErrorMatrix.Next
		}
	case networkCadence:
		f.Networks = make([]*mn.Network, len(nets))
		for i, n := range nets {
			f.Networks[i] = n.Copy()
		}
	case statisticsCadence:
		f.Statistics = &StatisticsSnapshot{
			Networks: make([]NetworkStatistics, len(nets)),
			Engine:   e.Stats(),
		}
		for i, n := range nets {
			f.Statistics.Networks[i] = NetworkStatistics{
				ID:      n.ID,
				Name:    n.Name,
				Color:   n.Color,
				Stats:   n.Stats.Copy(),
				Dynamic: n.Dynamic.Clone(),
			}
		}
	}
}
