package engine

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// tick periodically presents the elapsed training time and the CPU load on the Normal lane. It
// stays quiet while the Engine is paused.
func (e *Engine) tick(ctx context.Context) {
	t := time.NewTicker(e.config.TickInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if e.paused.Load() {
				continue
			}

			load := -1.0
			if v, err := cpu.Percent(0, false); err == nil && len(v) > 0 {
				load = v[0]
			}

			f := &Frame{
				Time:  now,
				Timer: &TimerSnapshot{Elapsed: e.Stats().Elapsed, CPU: load},
			}

			// a full lane means the presenter is behind; this tick is simply skipped
			e.dispatcher.Post(Normal, func() {
				if ctx.Err() == nil {
					e.presenter.Present(f)
				}
			})
		}
	}
}
