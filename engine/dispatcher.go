package engine

import (
	"context"
)

// Priority selects the lane a unit of work is posted to
type Priority int8

const (
	Normal Priority = iota
	High
)

// Dispatcher runs posted functions one at a time on a single goroutine, standing in for the
// presentation thread. Work on the High lane is always taken before work on the Normal lane.
//
// Posting never blocks: if a lane is full, Post reports that the work was not queued.
type Dispatcher struct {
	high, normal chan func()
}

// NewDispatcher returns a Dispatcher whose lanes each hold up to 'capacity' pending functions
func NewDispatcher(capacity int) *Dispatcher {
	if capacity < 1 {
		capacity = 1
	}

	return &Dispatcher{
		high:   make(chan func(), capacity),
		normal: make(chan func(), capacity),
	}
}

// Post queues 'f' on the given lane, returning false if the lane was full
func (d *Dispatcher) Post(p Priority, f func()) bool {
	lane := d.normal
	if p == High {
		lane = d.high
	}

	select {
	case lane <- f:
		return true
	default:
		return false
	}
}

// Run executes posted functions until the context is cancelled. Functions still queued at that
// point are dropped.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		// drain the high lane first
		select {
		case <-ctx.Done():
			return
		case f := <-d.high:
			f()
			continue
		default:
		}

		select {
		case <-ctx.Done():
			return
		case f := <-d.high:
			f()
		case f := <-d.normal:
			f()
		}
	}
}
