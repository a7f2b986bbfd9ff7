// Package engine trains the Networks of a Session side by side and hands read-only snapshots of
// them to a Presenter, without ever waiting for the Presenter to finish.
//
// The training goroutine runs rounds in batches. Between two batches it checks three independent
// countdowns, one per kind of snapshot (error matrices, network copies and statistics); the size
// of each batch is the smallest remaining countdown, so every cadence fires exactly on time. A
// snapshot whose previous render is still in flight is dropped and counted, never queued.
package engine

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"

	mn "github.com/sharnoff/multinet"
)

const (
	// how long the training goroutine sleeps between checks while paused
	pauseInterval = 50 * time.Millisecond

	// how long the training goroutine yields after dispatching a render
	dispatchYield = time.Millisecond
)

// Config are the fixed options of an Engine
type Config struct {
	Settings Settings

	// CPU is the processor the training goroutine is pinned to. Negative values disable pinning.
	CPU int

	// MaxRounds stops training after that many rounds. Zero means no limit.
	MaxRounds int64

	// TickInterval is the period of the elapsed-time ticker
	TickInterval time.Duration
}

// DefaultConfig returns the Config used by the binary when nothing else is given
func DefaultConfig() Config {
	return Config{
		Settings:     DefaultSettings(),
		CPU:          -1,
		TickInterval: time.Second,
	}
}

// Engine runs the training loop of a Session. It is created with New, started once with Start
// and stopped with Stop (or by cancelling the context given to Start).
type Engine struct {
	// mu is the structural lock. It is held for every batch and every Edit, so that neither ever
	// observes a Network in the middle of the other.
	mu      sync.Mutex
	session *Session

	presenter  Presenter
	dispatcher *Dispatcher
	config     Config

	settingsMu sync.Mutex
	settings   Settings
	version    uint64

	paused   atomic.Bool
	inFlight [numCadences]atomic.Bool

	timing struct {
		sync.Mutex
		stats EngineStats

		// the open window
		elapsed time.Duration
		rounds  int64
	}

	// run guards starting and stopping; cancel is non-nil once the Engine has been started
	run struct {
		sync.Mutex
		cancel context.CancelFunc
	}
	done chan struct{}
	err  error
}

// New returns an Engine for the Session. It returns an error if the Settings are invalid or if
// the configured CPU does not exist.
func New(session *Session, presenter Presenter, config Config) (*Engine, error) {
	if session == nil {
		return nil, mn.NilArgError{Arg: "Session"}
	} else if presenter == nil {
		return nil, mn.NilArgError{Arg: "Presenter"}
	}

	if err := config.Settings.Validate(); err != nil {
		return nil, err
	} else if config.MaxRounds < 0 {
		return nil, errors.Errorf("MaxRounds must not be negative (%d)", config.MaxRounds)
	}

	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}

	if config.CPU >= 0 {
		n, err := cpu.Counts(true)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to count processors\n")
		} else if config.CPU >= n {
			return nil, errors.Errorf("Can't pin to CPU %d; there are only %d", config.CPU, n)
		}
	}

	return &Engine{
		session:    session,
		presenter:  presenter,
		dispatcher: NewDispatcher(numCadences),
		config:     config,
		settings:   config.Settings,
		version:    1,
		done:       make(chan struct{}),
	}, nil
}

// Start launches the training goroutine, the ticker and the presentation goroutine. It returns
// an error if the Engine was already started or if no Network is enabled.
func (e *Engine) Start(ctx context.Context) error {
	e.run.Lock()
	defer e.run.Unlock()

	if e.run.cancel != nil {
		return errors.Errorf("Engine has already been started")
	}

	e.mu.Lock()
	if e.session.Master() == nil {
		e.mu.Unlock()
		return mn.ErrNoMaster
	}
	e.session.prepare()
	enabled := len(e.session.Enabled())
	e.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	e.run.cancel = cancel

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		e.dispatcher.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		e.tick(ctx)
	}()

	go func() {
		err := e.train(ctx)
		cancel()
		wg.Wait()

		if err != nil {
			log.Errorf("Training stopped: %v", err)
		}

		s := e.Stats()
		log.Infof("Engine stopped after %d rounds; dropped frames: error matrix %d, network %d, statistics %d",
			s.Rounds, s.ErrorMatrix.Dropped, s.Network.Dropped, s.Statistics.Dropped)

		e.err = err
		close(e.done)
	}()

	log.Infof("Engine started with %d enabled networks", enabled)
	return nil
}

// Stop cancels training and waits for every goroutine of the Engine to finish. It returns the
// error that ended training, if any.
func (e *Engine) Stop() error {
	e.run.Lock()
	cancel := e.run.cancel
	e.run.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	return e.Wait()
}

// Wait blocks until training has ended, returning the error that ended it, if any. The error of
// a failed round is returned as is; the Engine never retries.
func (e *Engine) Wait() error {
	<-e.done
	return e.err
}

// Done returns a channel that is closed once training has ended
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Pause suspends training after the current batch, without cancelling it
func (e *Engine) Pause() {
	e.paused.Store(true)
}

// Resume continues training after Pause
func (e *Engine) Resume() {
	e.paused.Store(false)
}

// Paused returns whether or not training is paused
func (e *Engine) Paused() bool {
	return e.paused.Load()
}

// SetSettings replaces the snapshot intervals. The training goroutine picks them up before its
// next batch and restarts all countdowns.
func (e *Engine) SetSettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	e.settingsMu.Lock()
	e.settings = s
	e.version++
	e.settingsMu.Unlock()

	log.Infof("Snapshot intervals changed to %d/%d/%d", s.ErrorMatrix, s.Network, s.Statistics)
	return nil
}

// Settings returns the current snapshot intervals
func (e *Engine) Settings() Settings {
	s, _ := e.loadSettings()
	return s
}

func (e *Engine) loadSettings() (Settings, uint64) {
	e.settingsMu.Lock()
	defer e.settingsMu.Unlock()
	return e.settings, e.version
}

// Edit runs 'f' with exclusive access to the Session, between two batches. All structural
// changes to a running Session (rebuilding, restarting or randomizing Networks, toggling them,
// changing their parameters) must go through Edit.
func (e *Engine) Edit(f func(*Session) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := f(e.session); err != nil {
		return err
	}

	e.session.refresh()
	return nil
}

// train is the body of the training goroutine
func (e *Engine) train(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if e.config.CPU >= 0 {
		if err := setAffinity(e.config.CPU); err != nil {
			log.Warnf("Failed to pin training to CPU %d: %v", e.config.CPU, err)
		}
	}

	var settings Settings
	var version uint64
	var countdown [numCadences]int
	var total int64

	for {
		if ctx.Err() != nil {
			return nil
		}

		if e.paused.Load() {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pauseInterval):
			}
			continue
		}

		if s, v := e.loadSettings(); v != version {
			settings, version = s, v
			countdown = s.intervals()
		}

		batch := batchSize(countdown)
		if e.config.MaxRounds > 0 {
			remaining := e.config.MaxRounds - total
			if remaining <= 0 {
				return nil
			} else if int64(batch) > remaining {
				batch = int(remaining)
			}
		}

		frame, taken, err := e.runBatch(batch, settings, &countdown)
		if err == mn.ErrNoMaster {
			// every network was disabled through Edit; wait as if paused
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(pauseInterval):
			}
			continue
		} else if err != nil {
			return err
		}
		total += int64(batch)

		if frame != nil {
			e.dispatch(ctx, frame, taken)
			time.Sleep(dispatchYield)
		}
	}
}

// runBatch runs one batch under the structural lock, then takes the snapshots that are due
func (e *Engine) runBatch(batch int, settings Settings, countdown *[numCadences]int) (*Frame, []cadence, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session.Master() == nil {
		return nil, nil, mn.ErrNoMaster
	}

	start := time.Now()
	if err := e.session.runBatch(batch); err != nil {
		return nil, nil, err
	}
	now := time.Now()
	e.addRounds(int64(batch), now.Sub(start))

	nets := e.session.Enabled()
	intervals := settings.intervals()

	var frame *Frame
	var taken []cadence

	for i := range countdown {
		countdown[i] -= batch
		if countdown[i] > 0 {
			continue
		}

		c := cadence(i)
		countdown[i] = intervals[i]

		if c == statisticsCadence {
			e.closeWindow(now, nets)
		}

		if e.inFlight[i].Load() {
			e.countCadence(c, false)
		} else {
			e.countCadence(c, true)
			e.inFlight[i].Store(true)

			if frame == nil {
				frame = &Frame{Time: now}
			}
			e.snapshot(frame, c)
			taken = append(taken, c)
		}

		if c == statisticsCadence {
			for _, n := range nets {
				n.Stats.CloseWindow()
			}
		}
	}

	return frame, taken, nil
}

// dispatch posts the Frame to the presentation goroutine. Once the Presenter has returned, the
// swapped-out error matrices are cleared for their next turn and the cadences are released.
func (e *Engine) dispatch(ctx context.Context, f *Frame, taken []cadence) {
	render := func(present bool) {
		if present && ctx.Err() == nil {
			e.presenter.Present(f)
		}

		for _, em := range f.ErrorMatrices {
			em.Matrix.Clear()
		}

		for _, c := range taken {
			e.inFlight[c].Store(false)
		}
	}

	// there are never more frames in flight than cadences, which is the capacity of the lane
	if !e.dispatcher.Post(High, func() { render(true) }) {
		render(false)
	}
}
