// Package climanager reads console commands that control a running engine
package climanager

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sharnoff/multinet/engine"
)

// Commands are the actions the console can trigger. Any of them may be left nil, in which case
// the matching command reports that it is not available.
type Commands struct {
	Pause       func()
	Resume      func()
	SetCadences func(engine.Settings) error
	Restart     func() error
	Randomize   func() error
	SetEnabled  func(name string, enabled bool) error

	// Reset clears the statistics; Rebuild builds the networks again from their descriptors
	Reset   func() error
	Rebuild func() error

	// Quit is called when the user quits
	Quit func()

	// Stats returns a summary of the current state, printed by the command "stats"
	Stats func() string

	// Out is where replies are written. Nil discards them.
	Out io.Writer
}

const help = `commands:
  pause | resume
  cadence <error matrix> <network> <statistics>
  restart | randomize | rebuild
  reset
  enable <network> | disable <network>
  stats
  quit | q
`

// errQuit is returned by exec when the user quits
var errQuit = errors.New("quit")

// Run reads one command per line from 'r' until the user quits, the input runs out or the
// context is cancelled. Errors from the commands themselves are printed, not returned.
func Run(ctx context.Context, r io.Reader, cmds Commands) error {
	if cmds.Out == nil {
		cmds.Out = io.Discard
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			if err != nil {
				return errors.Wrapf(err, "Failed to read commands\n")
			}
			return nil
		case line := <-lines:
			if err := cmds.exec(line); err == errQuit {
				if cmds.Quit != nil {
					cmds.Quit()
				}
				return nil
			} else if err != nil {
				fmt.Fprintf(cmds.Out, "error: %v\n", err)
			}
		}
	}
}

func (c Commands) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	unavailable := errors.Errorf("%q is not available", fields[0])

	switch fields[0] {
	case "quit", "q":
		return errQuit
	case "help", "h", "?":
		fmt.Fprint(c.Out, help)
	case "pause":
		if c.Pause == nil {
			return unavailable
		}
		c.Pause()
		fmt.Fprintln(c.Out, "paused")
	case "resume":
		if c.Resume == nil {
			return unavailable
		}
		c.Resume()
		fmt.Fprintln(c.Out, "resumed")
	case "cadence":
		if c.SetCadences == nil {
			return unavailable
		}

		v, err := ints(fields[1:], 3)
		if err != nil {
			return err
		}
		return c.SetCadences(engine.Settings{ErrorMatrix: v[0], Network: v[1], Statistics: v[2]})
	case "restart":
		if c.Restart == nil {
			return unavailable
		}
		return c.Restart()
	case "randomize":
		if c.Randomize == nil {
			return unavailable
		}
		return c.Randomize()
	case "reset":
		if c.Reset == nil {
			return unavailable
		}
		return c.Reset()
	case "rebuild":
		if c.Rebuild == nil {
			return unavailable
		}
		return c.Rebuild()
	case "enable", "disable":
		if c.SetEnabled == nil {
			return unavailable
		} else if len(fields) != 2 {
			return errors.Errorf("usage: %s <network>", fields[0])
		}
		return c.SetEnabled(fields[1], fields[0] == "enable")
	case "stats":
		if c.Stats == nil {
			return unavailable
		}
		fmt.Fprintln(c.Out, c.Stats())
	default:
		return errors.Errorf("unknown command %q (try \"help\")", fields[0])
	}

	return nil
}

// ints parses exactly 'n' positive integers
func ints(fields []string, n int) ([]int, error) {
	if len(fields) != n {
		return nil, errors.Errorf("expected %d integers, got %d", n, len(fields))
	}

	v := make([]int, n)
	for i, f := range fields {
		var err error
		if v[i], err = strconv.Atoi(f); err != nil {
			return nil, errors.Errorf("%q is not an integer", f)
		} else if v[i] < 1 {
			return nil, errors.Errorf("%d must be positive", v[i])
		}
	}
	return v, nil
}
