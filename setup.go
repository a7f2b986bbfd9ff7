package multinet

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveParam returns the given parameter, or the default of the strategy if it is nil
func resolveParam(f Family, strategy, what string, p *float64) (float64, error) {
	if p == nil {
		return DefaultParam(f, strategy)
	}

	if err := checkParam(what, *p); err != nil {
		return 0, err
	}

	return *p, nil
}

func orDefault(name, def string) string {
	if name == "" {
		return def
	}
	return name
}

// Build constructs a Network from its descriptor. 'classes' are the names of the classes of the
// Task the Network will be trained on; the output layer must have one Neuron per class.
//
// If 'prev' is not nil and has exactly the same shape as the descriptor, values whose initializer
// returns Skip are carried over from it, as is its ID. Otherwise skipped values start at zero.
//
// All strategy names are resolved here, once. Unknown names return type UnknownStrategyError;
// unusable numeric parameters return type ParamError.
func Build(spec NetworkSpec, classes []string, prev *Network) (*Network, error) {
	if len(spec.Layers) < 2 {
		return nil, ErrNoLayers
	}

	if err := checkParam("learning rate", spec.LearningRate); err != nil {
		return nil, err
	}

	for i, l := range spec.Layers {
		if l.Size < 1 {
			return nil, errors.Errorf("Layer %d must have size >= 1 (%d)", i, l.Size)
		} else if len(l.Neurons) != 0 && len(l.Neurons) != l.Size {
			return nil, SizeMismatchError{l.Size, len(l.Neurons), "neuron descriptors of layer"}
		}
	}

	out := spec.Layers[len(spec.Layers)-1]
	if out.Bias {
		return nil, errors.Errorf("Output layer cannot have a bias neuron")
	} else if classes != nil && out.Size != len(classes) {
		return nil, SizeMismatchError{len(classes), out.Size, "output layer"}
	}

	net := &Network{
		ID:                      uuid.New(),
		Name:                    spec.Name,
		Color:                   spec.Color,
		Enabled:                 spec.Enabled,
		LearningRate:            spec.LearningRate,
		InputInitial0:           spec.InputInitial0,
		InputInitial1:           spec.InputInitial1,
		TargetLow:               spec.TargetLow,
		TargetHigh:              1,
		AdjustFirstLayerWeights: spec.AdjustFirstLayerWeights,
		spec:                    spec,
	}

	var err error

	costName := orDefault(spec.Cost, DefaultCost)
	if net.Cost, err = ResolveCost(costName); err != nil {
		return nil, err
	}

	bpName := orDefault(spec.BackPropagation, DefaultBackPropagation)
	if net.BackPropagation, err = ResolveBackPropagation(bpName); err != nil {
		return nil, err
	}
	net.bp = net.BackPropagation.NewState()

	if spec.Randomizer != "" {
		if net.Randomizer, err = ResolveRandomizer(spec.Randomizer); err != nil {
			return nil, err
		}
		if net.RandomizerParam, err = resolveParam(RandomizerFamily, spec.Randomizer, "randomizer parameter", spec.RandomizerParam); err != nil {
			return nil, err
		}
	}

	if err = net.makeLayers(); err != nil {
		return nil, err
	}

	if prev != nil && prev.sameShape(net) {
		net.ID = prev.ID
		net.carryValues(prev)
	}

	net.initialize()

	if classes == nil {
		classes = make([]string, out.Size)
	}
	net.ErrorMatrix = NewErrorMatrixPair(classes)
	net.Stats = new(Statistics)
	net.Dynamic = new(DynamicStatistics)
	net.outs = make([]float64, out.Size)

	net.Backup = net.Copy()
	return net, nil
}

// makeLayers allocates the arenas and resolves the per-Neuron strategies
func (net *Network) makeLayers() error {
	var numNeurons, numWeights, prevSize int
	for i, l := range net.spec.Layers {
		size := l.Size
		if l.Bias {
			size++
		}

		numNeurons += size
		if i > 0 {
			numWeights += l.Size * prevSize
		}
		prevSize = size
	}

	net.Layers = make([]Layer, len(net.spec.Layers))
	net.Neurons = make([]Neuron, 0, numNeurons)
	net.Weights = make([]Weight, 0, numWeights)

	for li, ls := range net.spec.Layers {
		layer := Layer{ID: li, First: len(net.Neurons), Bias: ls.Bias}

		var prev Layer
		if li > 0 {
			prev = net.Layers[li-1]
		}

		for i := 0; i < ls.Size; i++ {
			ns := ls.Neuron
			if len(ls.Neurons) != 0 {
				ns = ls.Neurons[i].merge(ls.Neuron)
			}

			n, err := resolveNeuron(ns)
			if err != nil {
				return errors.Wrapf(err, "Can't build neuron %d of layer %d\n", i, li)
			}

			n.ID = i
			n.Layer = li

			if li > 0 {
				n.FirstWeight = len(net.Weights)
				for from := prev.First; from < prev.End; from++ {
					net.Weights = append(net.Weights, Weight{ID: from - prev.First, From: from})
				}
				n.EndWeight = len(net.Weights)
			}

			net.Neurons = append(net.Neurons, n)
		}

		if ls.Bias {
			net.Neurons = append(net.Neurons, Neuron{
				ID:         ls.Size,
				Layer:      li,
				IsBias:     true,
				Activation: 1,
				Label:      "bias",
			})
		}

		layer.End = len(net.Neurons)
		net.Layers[li] = layer
	}

	return nil
}

func resolveNeuron(ns NeuronSpec) (Neuron, error) {
	var n Neuron
	var err error

	act := orDefault(ns.Activation, DefaultActivation)
	if n.Function, err = ResolveActivation(act); err != nil {
		return n, err
	}
	if n.FunctionParam, err = resolveParam(ActivationFamily, act, "activation parameter", ns.ActivationParam); err != nil {
		return n, err
	}

	actInit := orDefault(ns.ActivationInit, DefaultActivationInit)
	if n.ActivationInit, err = ResolveInitializer(actInit); err != nil {
		return n, err
	}
	if n.ActivationInitParam, err = resolveParam(InitializerFamily, actInit, "activation initializer parameter", ns.ActivationInitParam); err != nil {
		return n, err
	}

	wInit := orDefault(ns.WeightsInit, DefaultWeightsInit)
	if n.WeightsInit, err = ResolveInitializer(wInit); err != nil {
		return n, err
	}
	if n.WeightsInitParam, err = resolveParam(InitializerFamily, wInit, "weights initializer parameter", ns.WeightsInitParam); err != nil {
		return n, err
	}

	n.Label = ns.Label
	return n, nil
}

// sameShape returns whether or not the two Networks have the same layers, Neurons and Weights
func (net *Network) sameShape(other *Network) bool {
	if len(net.Layers) != len(other.Layers) || len(net.Neurons) != len(other.Neurons) || len(net.Weights) != len(other.Weights) {
		return false
	}

	for i := range net.Layers {
		if net.Layers[i] != other.Layers[i] {
			return false
		}
	}

	return true
}

// carryValues copies activations and weights from a Network of the same shape
func (net *Network) carryValues(prev *Network) {
	for i := range net.Neurons {
		if !net.Neurons[i].IsBias {
			net.Neurons[i].Activation = prev.Neurons[i].Activation
		}
	}

	for i := range net.Weights {
		net.Weights[i].Value = prev.Weights[i].Value
	}
}

// initialize runs the chosen initializers over every activation and weight
func (net *Network) initialize() {
	for i := range net.Neurons {
		n := &net.Neurons[i]
		if n.IsBias {
			continue
		}

		n.Activation = n.ActivationInit.Do(n.ActivationInitParam).Apply(n.Activation)

		for w := n.FirstWeight; w < n.EndWeight; w++ {
			net.Weights[w].Value = n.WeightsInit.Do(n.WeightsInitParam).Apply(net.Weights[w].Value)
		}
	}
}

// Spec returns the descriptor the Network was built from
func (net *Network) Spec() NetworkSpec {
	return net.spec
}
