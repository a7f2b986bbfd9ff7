package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2/log"

	mn "github.com/sharnoff/multinet"
	_ "github.com/sharnoff/multinet/activations"
	_ "github.com/sharnoff/multinet/backprop"
	"github.com/sharnoff/multinet/climanager"
	"github.com/sharnoff/multinet/config"
	_ "github.com/sharnoff/multinet/costfuncs"
	_ "github.com/sharnoff/multinet/distributions"
	"github.com/sharnoff/multinet/engine"
	_ "github.com/sharnoff/multinet/initializers"
	"github.com/sharnoff/multinet/present"
	_ "github.com/sharnoff/multinet/randomizers"
	_ "github.com/sharnoff/multinet/tasks"
)

func main() {
	x, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level, _ := x.Level()
	log.SetLevel(level)

	session, err := x.Session()
	if err != nil {
		log.Fatalf("Failed to set up session: %v", err)
	}

	presenters := present.Multi{present.LogPresenter{}}

	var hub *present.Hub
	if x.Addr != "" {
		hub = present.NewHub()
		presenters = append(presenters, hub)
	}

	e, err := engine.New(session, presenters, x.EngineConfig())
	if err != nil {
		log.Fatalf("Failed to set up engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = e.Start(ctx); err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}

	if hub != nil {
		go func() {
			if err := hub.Listen(x.Addr); err != nil {
				log.Errorf("Frame hub stopped: %v", err)
			}
		}()
	}

	go func() {
		if err := climanager.Run(ctx, os.Stdin, commands(e)); err != nil {
			log.Warnf("Console stopped: %v", err)
		}
	}()

	err = e.Wait()
	if hub != nil {
		hub.Shutdown()
	}

	if err != nil {
		log.Errorf("Session failed: %v", err)
		os.Exit(1)
	}
}

func commands(e *engine.Engine) climanager.Commands {
	return climanager.Commands{
		Pause:       e.Pause,
		Resume:      e.Resume,
		SetCadences: e.SetSettings,
		Restart: func() error {
			return e.Edit(func(s *engine.Session) error { return s.Restart() })
		},
		Randomize: func() error {
			return e.Edit(func(s *engine.Session) error {
				s.Randomize()
				return nil
			})
		},
		Reset: func() error {
			return e.Edit(func(s *engine.Session) error {
				s.ResetStatistics()
				return nil
			})
		},
		Rebuild: func() error {
			return e.Edit(func(s *engine.Session) error { return s.Rebuild() })
		},
		SetEnabled: func(name string, enabled bool) error {
			return e.Edit(func(s *engine.Session) error { return s.SetEnabled(name, enabled) })
		},
		Stats: func() string { return summary(e) },
		Quit: func() {
			e.Stop()
		},
		Out: os.Stdout,
	}
}

func summary(e *engine.Engine) string {
	var b strings.Builder

	st := e.Stats()
	fmt.Fprintf(&b, "%d rounds in %v (%.0f/s)", st.Rounds, st.Elapsed, st.AverageRoundsPerSecond())
	if e.Paused() {
		b.WriteString(", paused")
	}

	e.Edit(func(s *engine.Session) error {
		for _, n := range s.Networks {
			state := "off"
			if n.Enabled {
				state = "on"
			}
			fmt.Fprintf(&b, "\n  %-12s %-3s %6.2f%% correct, cost %.4f, %s", n.Name, state,
				n.Stats.PercentCorrect(), n.Stats.AverageCost(), describe(n))
		}
		return nil
	})

	return b.String()
}

// describe lists the sizes of the layers of a network, such as "2+b/4+b/2"
func describe(n *mn.Network) string {
	parts := make([]string, len(n.Layers))
	for i, l := range n.Layers {
		size := l.Size()
		if l.Bias {
			parts[i] = fmt.Sprintf("%d+b", size-1)
		} else {
			parts[i] = fmt.Sprint(size)
		}
	}
	return strings.Join(parts, "/")
}
