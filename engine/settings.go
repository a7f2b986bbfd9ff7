package engine

import (
	"github.com/pkg/errors"
)

// cadence identifies one of the three kinds of render snapshot
type cadence int8

const (
	errorMatrixCadence cadence = iota
	networkCadence
	statisticsCadence

	numCadences = 3
)

func (c cadence) String() string {
	switch c {
	case errorMatrixCadence:
		return "error matrix"
	case networkCadence:
		return "network"
	case statisticsCadence:
		return "statistics"
	default:
		return "unknown"
	}
}

// Settings are the live-reloadable intervals, in rounds, between two render snapshots of each
// kind
type Settings struct {
	ErrorMatrix int `json:"error_matrix"`
	Network     int `json:"network"`
	Statistics  int `json:"statistics"`
}

// DefaultSettings returns the Settings used when none are given
func DefaultSettings() Settings {
	return Settings{
		ErrorMatrix: 500,
		Network:     2000,
		Statistics:  1000,
	}
}

// Validate returns an error if any of the intervals is not positive
func (s Settings) Validate() error {
	for c, v := range s.intervals() {
		if v < 1 {
			return errors.Errorf("Interval for %s snapshots must be positive (%d)", cadence(c), v)
		}
	}
	return nil
}

func (s Settings) intervals() [numCadences]int {
	return [numCadences]int{s.ErrorMatrix, s.Network, s.Statistics}
}

// batchSize returns the smallest of the remaining countdowns, which is the number of rounds that
// can run before any cadence has to be checked again
func batchSize(countdown [numCadences]int) int {
	b := countdown[0]
	for _, c := range countdown[1:] {
		if c < b {
			b = c
		}
	}
	return b
}
