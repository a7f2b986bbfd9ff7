package multinet

import (
	"github.com/pkg/errors"
)

// InputLayer returns the first layer of the Network
func (net *Network) InputLayer() Layer {
	return net.Layers[0]
}

// OutputLayer returns the last layer of the Network
func (net *Network) OutputLayer() Layer {
	return net.Layers[len(net.Layers)-1]
}

// NumInputs returns the number of non-bias Neurons in the input layer
func (net *Network) NumInputs() int {
	in := net.InputLayer()
	if in.Bias {
		return in.Size() - 1
	}
	return in.Size()
}

// NumOutputs returns the number of Neurons in the output layer, which is the number of classes
func (net *Network) NumOutputs() int {
	return net.OutputLayer().Size()
}

// SetInput sets the activation of the non-bias input Neuron at index i
func (net *Network) SetInput(i int, value float64) {
	net.Neurons[net.Layers[0].First+i].Activation = value
}

// SetTargetClass sets the targets of the output Neurons for the given class, using one-hot
// encoding with TargetHigh and TargetLow.
func (net *Network) SetTargetClass(class int) error {
	out := net.OutputLayer()
	if class < 0 || class >= out.Size() {
		return errors.Errorf("Target class %d out of range [0, %d)", class, out.Size())
	}

	for i := out.First; i < out.End; i++ {
		if i-out.First == class {
			net.Neurons[i].Target = net.TargetHigh
		} else {
			net.Neurons[i].Target = net.TargetLow
		}
	}

	net.TargetClass = class
	return nil
}

// CheckExampleShape returns an error if the example of 'master' can't be copied into the Network
func (net *Network) CheckExampleShape(master *Network) error {
	if net.NumInputs() != master.NumInputs() {
		return SizeMismatchError{master.NumInputs(), net.NumInputs(), "input layer of " + net.Name}
	} else if net.NumOutputs() != master.NumOutputs() {
		return SizeMismatchError{master.NumOutputs(), net.NumOutputs(), "output layer of " + net.Name}
	}
	return nil
}

// CopyExampleFrom copies the input activations, output targets and target class of 'master'
// verbatim, so that both Networks see the identical example. The shapes are assumed to have been
// checked with CheckExampleShape.
func (net *Network) CopyExampleFrom(master *Network) {
	from, to := master.InputLayer().First, net.InputLayer().First
	for i := 0; i < net.NumInputs(); i++ {
		net.Neurons[to+i].Activation = master.Neurons[from+i].Activation
	}

	from, to = master.OutputLayer().First, net.OutputLayer().First
	for i := 0; i < net.NumOutputs(); i++ {
		net.Neurons[to+i].Target = master.Neurons[from+i].Target
	}

	net.TargetClass = master.TargetClass
}

// BackPropagationState returns the per-Network state of the back-propagation strategy
func (net *Network) BackPropagationState() BackPropagationState {
	return net.bp
}

// Randomize re-initializes all weights with the Network's Randomizer. If there is none, the
// weights are re-initialized by the per-Neuron initializers instead.
func (net *Network) Randomize() {
	if net.Randomizer == nil {
		net.initialize()
		return
	}

	net.Randomizer.Randomize(net, net.RandomizerParam)
}

// ResetStatistics clears the statistics, the time series and the error matrix buffer being
// written. The other buffer is either clear already or still being presented; it is cleared once
// the presentation is done.
func (net *Network) ResetStatistics() {
	net.Stats.Reset()
	net.Dynamic.Reset()
	net.ErrorMatrix.Clear()
}

// Copy returns a structural deep copy of the Network: its layers, Neurons, Weights and
// configuration. Strategies are shared, since they are stateless. The copy has no error matrix,
// statistics, back-propagation state or Backup; it is meant to be read, not trained.
func (net *Network) Copy() *Network {
	c := *net

	c.Layers = make([]Layer, len(net.Layers))
	copy(c.Layers, net.Layers)
	c.Neurons = make([]Neuron, len(net.Neurons))
	copy(c.Neurons, net.Neurons)
	c.Weights = make([]Weight, len(net.Weights))
	copy(c.Weights, net.Weights)

	c.ErrorMatrix = nil
	c.Stats = nil
	c.Dynamic = nil
	c.bp = nil
	c.Backup = nil
	c.outs = make([]float64, len(net.outs))

	return &c
}

// Restart returns a new trainable Network restored from the Backup taken at build time, with
// fresh statistics and back-propagation state. The error matrix classes are kept.
func (net *Network) Restart() (*Network, error) {
	if net.Backup == nil {
		return nil, errors.Errorf("Network %q has no backup to restart from", net.Name)
	}

	r := net.Backup.Copy()
	r.ErrorMatrix = NewErrorMatrixPair(net.ErrorMatrix.Classes)
	r.Stats = new(Statistics)
	r.Dynamic = new(DynamicStatistics)
	r.bp = r.BackPropagation.NewState()
	r.Backup = net.Backup
	r.Enabled = net.Enabled

	return r, nil
}
