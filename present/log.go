package present

import (
	"github.com/gofiber/fiber/v2/log"

	"github.com/sharnoff/multinet/engine"
)

// LogPresenter writes a short summary of every statistics snapshot to the log. Everything else is
// only logged at debug level.
type LogPresenter struct{}

func (LogPresenter) Present(f *engine.Frame) {
	if s := f.Statistics; s != nil {
		for _, n := range s.Networks {
			log.Infof("%-12s %8d rounds  %6.2f%% correct (window %6.2f%%)  cost %.4f",
				n.Name, n.Stats.Rounds, n.Stats.PercentCorrect(), n.Stats.WindowPercentCorrect(), n.Stats.WindowAverageCost())
		}
		log.Infof("%.0f rounds/s, dropped frames %d/%d/%d", s.Engine.RoundsPerSecond(),
			s.Engine.ErrorMatrix.Dropped, s.Engine.Network.Dropped, s.Engine.Statistics.Dropped)
	}

	for _, em := range f.ErrorMatrices {
		log.Debugf("%s: error matrix over %d examples, accuracy %.3f", em.Name, em.Matrix.Count, em.Matrix.Accuracy())
	}

	if f.Timer != nil {
		log.Debugf("elapsed %v, cpu %.1f%%", f.Timer.Elapsed, f.Timer.CPU)
	}
}

// Multi sends every Frame to each of its Presenters, in order. Empty Frames are not sent.
type Multi []engine.Presenter

func (m Multi) Present(f *engine.Frame) {
	if f.Empty() {
		return
	}

	for _, p := range m {
		p.Present(f)
	}
}
