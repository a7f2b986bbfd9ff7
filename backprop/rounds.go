package backprop

import (
	mn "github.com/sharnoff/multinet"
)

type inRound struct {
	onError bool
}

// InErrorRound returns the strategy that back-propagates in exactly the rounds whose prediction
// was wrong
func InErrorRound() inRound {
	return inRound{onError: true}
}

// InCorrectRound returns the strategy that back-propagates in exactly the rounds whose
// prediction was correct
func InCorrectRound() inRound {
	return inRound{onError: false}
}

func (r inRound) NewState() mn.BackPropagationState {
	return &roundState{onError: r.onError}
}

type roundState struct {
	hooks
	onError bool
	needed  bool
}

func (s *roundState) PrepareForRound() {
	s.needed = false
}

func (s *roundState) OnError(isError bool) {
	s.needed = isError == s.onError
}

func (s *roundState) NeedsBackPropagation() bool {
	return s.needed
}
