package multinet

// ActivationFunction maps the raw (pre-activation) input of a Neuron to its activation. The
// parameter is the per-Neuron value chosen in the topology; functions that don't take a
// parameter ignore it.
type ActivationFunction interface {
	Do(x, param float64) float64

	// Derivative of Do with respect to the raw input x.
	Derivative(x, param float64) float64
}

// CostFunction measures how far the output layer of a Network is from its targets
type CostFunction interface {
	// Do returns the total cost over the output Neurons of the Network
	Do(net *Network) float64

	// Derivative returns the direction in which the activation of the output Neuron at index
	// 'neuron' (an index into Network.Neurons) should move to reduce the cost.
	Derivative(net *Network, neuron int) float64
}

// Initializer produces the starting value of a single weight or activation. Returning Skip()
// leaves the existing value untouched.
type Initializer interface {
	Do(param float64) InitValue
}

// Distribution produces a single sample, usually in [0, 1), used by Tasks to generate example
// inputs.
type Distribution interface {
	Do(param float64) float64
}

// Randomizer re-initializes every weight of a Network at once
type Randomizer interface {
	Randomize(net *Network, param float64)
}

// BackPropagationStrategy decides, round by round, whether a Network should run
// back-propagation. The strategy itself is a shared singleton; all decision state lives in the
// BackPropagationState it creates, one per Network.
type BackPropagationStrategy interface {
	NewState() BackPropagationState
}

// BackPropagationState is the per-Network decision state of a BackPropagationStrategy. The
// engine calls its methods in a fixed order:
//
//	PrepareForRun (session start)
//	PrepareForLoop (each batch)
//	PrepareForRound, OnError, NeedsBackPropagation (each round)
//	OnAfterLoopFinished (each batch)
type BackPropagationState interface {
	PrepareForRun()
	PrepareForLoop()
	PrepareForRound()
	OnError(isError bool)
	NeedsBackPropagation() bool
	OnAfterLoopFinished()
}

// Task produces one labeled example per round, writing it into the input activations and
// output targets of the master Network.
type Task interface {
	// Classes returns the display names of the classes, in the order of the output Neurons
	Classes() []string

	// InputCount is the number of non-bias input Neurons the Task writes to
	InputCount() int

	// Next writes the next example into 'net' and returns the index of the target class. The
	// function 'sample' draws from the Distribution chosen for the session.
	Next(net *Network, sample func() float64) (int, error)
}

// ParamDefaulter may be implemented by any strategy that has a meaningful default parameter.
// Strategies without it default to 0.
type ParamDefaulter interface {
	DefaultParam() float64
}
