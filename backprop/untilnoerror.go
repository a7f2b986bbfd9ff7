package backprop

import (
	mn "github.com/sharnoff/multinet"
)

type untilNoError int8

// UntilNoErrorInLoop returns the strategy that back-propagates every round until one full batch
// is predicted without error. Any later error turns it back on from the following batch.
func UntilNoErrorInLoop() untilNoError {
	return untilNoError(0)
}

func (u untilNoError) NewState() mn.BackPropagationState {
	return new(untilNoErrorState)
}

type untilNoErrorState struct {
	hooks
	needed   bool
	anyError bool
}

func (s *untilNoErrorState) PrepareForRun() {
	s.needed = true
}

func (s *untilNoErrorState) PrepareForLoop() {
	s.anyError = false
}

func (s *untilNoErrorState) OnError(isError bool) {
	s.anyError = s.anyError || isError
}

func (s *untilNoErrorState) NeedsBackPropagation() bool {
	return s.needed
}

func (s *untilNoErrorState) OnAfterLoopFinished() {
	s.needed = s.anyError
}
