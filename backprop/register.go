// Package backprop registers the strategies that decide, round by round, whether a Network runs
// back-propagation. Each strategy is a shared value; the decisions are made by the per-Network
// states they create.
package backprop

import (
	mn "github.com/sharnoff/multinet"
)

func init() {
	mn.MustRegister(mn.BackPropagationFamily, "Always", "Back-propagates every round.", Always())
	mn.MustRegister(mn.BackPropagationFamily, "Never", "Never back-propagates.", Never())
	mn.MustRegister(mn.BackPropagationFamily, "InErrorRound", "Back-propagates only in rounds with a wrong prediction.", InErrorRound())
	mn.MustRegister(mn.BackPropagationFamily, "InCorrectRound", "Back-propagates only in rounds with a correct prediction.", InCorrectRound())
	mn.MustRegister(mn.BackPropagationFamily, "UntilNoErrorInLoop", "Back-propagates every round until a whole batch was predicted correctly.", UntilNoErrorInLoop())
}

// hooks is embedded by every state to provide the hooks it doesn't use
type hooks struct{}

func (hooks) PrepareForRun()       {}
func (hooks) PrepareForLoop()      {}
func (hooks) PrepareForRound()     {}
func (hooks) OnError(bool)         {}
func (hooks) OnAfterLoopFinished() {}
