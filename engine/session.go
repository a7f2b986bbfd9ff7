package engine

import (
	"github.com/pkg/errors"

	mn "github.com/sharnoff/multinet"
	"github.com/sharnoff/multinet/utils"
)

// Session is the set of Networks being trained together on one Task. A Session is not safe for
// concurrent use; while an Engine is running, it must only be changed through Engine.Edit.
type Session struct {
	Task              mn.Task
	Distribution      mn.Distribution
	DistributionParam float64

	// Networks are all Networks of the Session, enabled or not, in display order
	Networks []*mn.Network

	// the enabled Networks, of which the first is the master
	enabled []*mn.Network
	sample  func() float64
}

// NewSession builds a Network for each descriptor. The Distribution drives the samples the Task
// draws for each example.
func NewSession(task mn.Task, dist mn.Distribution, param float64, specs []mn.NetworkSpec) (*Session, error) {
	if task == nil {
		return nil, mn.NilArgError{Arg: "Task"}
	} else if dist == nil {
		return nil, mn.NilArgError{Arg: "Distribution"}
	}

	s := &Session{
		Task:              task,
		Distribution:      dist,
		DistributionParam: param,
	}
	s.sample = func() float64 {
		return s.Distribution.Do(s.DistributionParam)
	}

	if err := s.Reset(specs); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset replaces every Network of the Session with one built from the matching descriptor.
// A Network whose name and shape are unchanged keeps its values where the descriptor asks
// for them to be skipped.
//
// If any descriptor fails to build, the Session is left unchanged.
func (s *Session) Reset(specs []mn.NetworkSpec) error {
	prev := make(map[string]*mn.Network, len(s.Networks))
	for _, n := range s.Networks {
		prev[n.Name] = n
	}

	nets := make([]*mn.Network, len(specs))
	for i, spec := range specs {
		n, err := mn.Build(spec, s.Task.Classes(), prev[spec.Name])
		if err != nil {
			return errors.Wrapf(err, "Failed to build network %d (%q)\n", i, spec.Name)
		}
		nets[i] = n
	}

	if err := check(s.Task, nets); err != nil {
		return err
	}

	s.Networks = nets
	s.prepare()
	return nil
}

// Restart restores every Network from the copy taken when it was built, with fresh statistics
func (s *Session) Restart() error {
	nets := make([]*mn.Network, len(s.Networks))
	for i, n := range s.Networks {
		var err error
		if nets[i], err = n.Restart(); err != nil {
			return errors.Wrapf(err, "Failed to restart network %d\n", i)
		}
	}

	s.Networks = nets
	s.prepare()
	return nil
}

// Randomize re-initializes the weights of every Network with its Randomizer. The Networks are
// independent, so they are randomized in parallel.
func (s *Session) Randomize() {
	utils.MultiThread(0, len(s.Networks), func(i int) {
		s.Networks[i].Randomize()
	}, 1, 1)

	s.prepare()
}

// Master returns the Network that the Task writes each example into, or nil if no Network is
// enabled
func (s *Session) Master() *mn.Network {
	if len(s.enabled) == 0 {
		return nil
	}
	return s.enabled[0]
}

// Enabled returns the Networks that take part in training, master first
func (s *Session) Enabled() []*mn.Network {
	return s.enabled
}

// Find returns the Network with the given name, or nil
func (s *Session) Find(name string) *mn.Network {
	for _, n := range s.Networks {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// check returns an error if the Task can't drive the enabled Networks. Followers copy the targets
// of the master, so they must use the same target values.
func check(task mn.Task, nets []*mn.Network) error {
	var master *mn.Network
	for _, n := range nets {
		if !n.Enabled {
			continue
		}

		if master == nil {
			master = n
			if master.NumInputs() != task.InputCount() {
				return mn.SizeMismatchError{Expected: task.InputCount(), Got: master.NumInputs(), Of: "input layer of " + master.Name}
			}
		} else if err := n.CheckExampleShape(master); err != nil {
			return err
		} else if n.TargetLow != master.TargetLow || n.TargetHigh != master.TargetHigh {
			return errors.Errorf("Targets of %s (%v/%v) differ from those of the master %s (%v/%v)",
				n.Name, n.TargetLow, n.TargetHigh, master.Name, master.TargetLow, master.TargetHigh)
		}
	}

	return nil
}

// refresh finds the enabled Networks
func (s *Session) refresh() {
	s.enabled = nil
	for _, n := range s.Networks {
		if n.Enabled {
			s.enabled = append(s.enabled, n)
		}
	}
}

// prepare refreshes the enabled Networks and starts a new run of their back-propagation states.
// It must be called whenever the set of Networks or their states change.
func (s *Session) prepare() {
	s.refresh()
	for _, n := range s.enabled {
		n.BackPropagationState().PrepareForRun()
	}
}

// SetEnabled enables or disables the named Network. Only a Network that is being enabled starts a
// new run of its back-propagation state; the others are left as they are.
func (s *Session) SetEnabled(name string, enabled bool) error {
	n := s.Find(name)
	if n == nil {
		return errors.Errorf("No network named %q", name)
	}

	old := n.Enabled
	n.Enabled = enabled
	if err := check(s.Task, s.Networks); err != nil {
		n.Enabled = old
		return err
	}

	s.refresh()
	if enabled && !old {
		n.BackPropagationState().PrepareForRun()
	}
	return nil
}

// Specs returns the descriptors the Networks were built from, with their current enabled flags
func (s *Session) Specs() []mn.NetworkSpec {
	specs := make([]mn.NetworkSpec, len(s.Networks))
	for i, n := range s.Networks {
		specs[i] = n.Spec()
		specs[i].Enabled = n.Enabled
	}
	return specs
}

// Rebuild builds every Network again from its descriptor, keeping the values the descriptors
// ask to skip
func (s *Session) Rebuild() error {
	return s.Reset(s.Specs())
}

// ResetStatistics clears the statistics of every Network
func (s *Session) ResetStatistics() {
	for _, n := range s.Networks {
		n.ResetStatistics()
	}
}

// runBatch runs 'rounds' rounds on every enabled Network
func (s *Session) runBatch(rounds int) error {
	master := s.Master()
	if master == nil {
		return mn.ErrNoMaster
	}

	for _, n := range s.enabled {
		n.BackPropagationState().PrepareForLoop()
	}

	for r := 0; r < rounds; r++ {
		if err := s.round(master); err != nil {
			return err
		}
	}

	for _, n := range s.enabled {
		n.BackPropagationState().OnAfterLoopFinished()
	}

	return nil
}

// round generates one example and evaluates it on every enabled Network, in order
func (s *Session) round(master *mn.Network) error {
	if _, err := s.Task.Next(master, s.sample); err != nil {
		return errors.Wrapf(err, "Task failed to generate an example\n")
	}

	for _, n := range s.enabled[1:] {
		n.CopyExampleFrom(master)
	}

	for _, n := range s.enabled {
		bp := n.BackPropagationState()
		bp.PrepareForRound()

		n.FeedForward()
		predicted := n.PredictedClass()
		correct := predicted == n.TargetClass

		n.Stats.Record(correct, n.CurrentCost())
		n.ErrorMatrix.Add(n.TargetClass, predicted)

		bp.OnError(!correct)
		if bp.NeedsBackPropagation() {
			n.BackPropagate()
			n.Stats.RecordBackPropagation()
		}
	}

	return nil
}
