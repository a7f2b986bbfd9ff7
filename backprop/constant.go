package backprop

import (
	mn "github.com/sharnoff/multinet"
)

type constant bool

// Always returns the strategy that back-propagates every round
func Always() constant {
	return constant(true)
}

// Never returns the strategy that never back-propagates
func Never() constant {
	return constant(false)
}

// NewState returns a state that gives the same answer every round
func (c constant) NewState() mn.BackPropagationState {
	return constantState{c: bool(c)}
}

type constantState struct {
	hooks
	c bool
}

func (s constantState) NeedsBackPropagation() bool {
	return s.c
}
