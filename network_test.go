package multinet_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	mn "github.com/sharnoff/multinet"
	_ "github.com/sharnoff/multinet/activations"
	_ "github.com/sharnoff/multinet/backprop"
	_ "github.com/sharnoff/multinet/costfuncs"
	_ "github.com/sharnoff/multinet/initializers"
	_ "github.com/sharnoff/multinet/randomizers"
)

var classes = []string{"a", "b"}

func spec() mn.NetworkSpec {
	return mn.NetworkSpec{
		Name:                    "net",
		Enabled:                 true,
		LearningRate:            0.5,
		AdjustFirstLayerWeights: true,
		Layers: []mn.LayerSpec{
			{Size: 2, Bias: true},
			{Size: 3, Bias: true, Neuron: mn.NeuronSpec{Activation: "Tanh"}},
			{Size: 2},
		},
	}
}

func build(t *testing.T, s mn.NetworkSpec) *mn.Network {
	net, err := mn.Build(s, classes, nil)
	if err != nil {
		t.Fatal(err)
	}
	return net
}

func TestBuildShape(t *testing.T) {
	net := build(t, spec())

	if len(net.Layers) != 3 || len(net.Neurons) != 3+4+2 {
		t.Fatalf("got %d layers and %d neurons, want 3 and 9", len(net.Layers), len(net.Neurons))
	}

	// every non-input, non-bias neuron has one weight per neuron of the previous layer
	for li := 1; li < len(net.Layers); li++ {
		prev := net.Layers[li-1]
		l := net.Layers[li]
		for i := l.First; i < l.End; i++ {
			n := net.Neurons[i]
			if n.IsBias {
				if n.NumWeights() != 0 || n.Activation != 1 {
					t.Errorf("bias neuron of layer %d has %d weights and activation %v", li, n.NumWeights(), n.Activation)
				}
				continue
			}

			if n.NumWeights() != prev.Size() {
				t.Errorf("neuron %d of layer %d has %d weights, want %d", n.ID, li, n.NumWeights(), prev.Size())
			}
			for w := n.FirstWeight; w < n.EndWeight; w++ {
				if from := net.Weights[w].From; from < prev.First || from >= prev.End {
					t.Errorf("weight %d comes from neuron %d outside the previous layer", w, from)
				}
			}
		}
	}

	if net.NumInputs() != 2 || net.NumOutputs() != 2 {
		t.Errorf("got %d inputs and %d outputs", net.NumInputs(), net.NumOutputs())
	}
	if net.Backup == nil || net.ErrorMatrix == nil || net.ErrorMatrix.Next == net.ErrorMatrix {
		t.Error("network is missing its backup or error matrix pair")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		change func(*mn.NetworkSpec)
		check  func(error) bool
	}{
		{"unknown activation", func(s *mn.NetworkSpec) { s.Layers[1].Neuron.Activation = "Sine" }, func(err error) bool {
			e, ok := errors.Cause(err).(mn.UnknownStrategyError)
			return ok && e.Family == mn.ActivationFamily
		}},
		{"unknown cost", func(s *mn.NetworkSpec) { s.Cost = "Cubic" }, func(err error) bool {
			_, ok := errors.Cause(err).(mn.UnknownStrategyError)
			return ok
		}},
		{"nan parameter", func(s *mn.NetworkSpec) { s.Layers[1].Neuron.ActivationParam = mn.Param(math.NaN()) }, func(err error) bool {
			_, ok := errors.Cause(err).(mn.ParamError)
			return ok
		}},
		{"infinite learning rate", func(s *mn.NetworkSpec) { s.LearningRate = math.Inf(1) }, func(err error) bool {
			_, ok := errors.Cause(err).(mn.ParamError)
			return ok
		}},
		{"output size", func(s *mn.NetworkSpec) { s.Layers[2].Size = 3 }, func(err error) bool {
			_, ok := errors.Cause(err).(mn.SizeMismatchError)
			return ok
		}},
		{"one layer", func(s *mn.NetworkSpec) { s.Layers = s.Layers[:1] }, func(err error) bool {
			return err == mn.ErrNoLayers
		}},
		{"output bias", func(s *mn.NetworkSpec) { s.Layers[2].Bias = true }, func(err error) bool {
			return err != nil
		}},
	}

	for _, test := range tests {
		s := spec()
		test.change(&s)
		if _, err := mn.Build(s, classes, nil); !test.check(err) {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
	}
}

func TestPerNeuronDescriptors(t *testing.T) {
	s := spec()
	s.Layers[1].Neurons = []mn.NeuronSpec{
		{Activation: "ReLU", ActivationParam: mn.Param(2)},
		{Label: "plain"},
		{WeightsInit: "Constant", WeightsInitParam: mn.Param(0.5)},
	}

	net := build(t, s)
	hidden := net.Layers[1]

	relu := net.Neurons[hidden.First]
	if relu.FunctionParam != 2 || relu.Function.Do(3, relu.FunctionParam) != 6 {
		t.Error("per-neuron activation was not used")
	}

	plain := net.Neurons[hidden.First+1]
	if plain.Label != "plain" || plain.Function.Do(0, 0) != 0 {
		t.Error("layer default activation (Tanh) was not kept for an empty descriptor")
	}

	c := net.Neurons[hidden.First+2]
	for w := c.FirstWeight; w < c.EndWeight; w++ {
		if net.Weights[w].Value != 0.5 {
			t.Errorf("weight %d = %v, want 0.5", w, net.Weights[w].Value)
		}
	}

	s.Layers[1].Neurons = s.Layers[1].Neurons[:2]
	if _, err := mn.Build(s, classes, nil); err == nil {
		t.Error("expected an error for a descriptor count that does not match the size")
	}
}

func TestSkipCarriesValues(t *testing.T) {
	s := spec()
	prev := build(t, s)
	prev.Weights[0].Value = 42

	s.Layers[1].Neuron.WeightsInit = "Skip"
	s.Layers[2].Neuron.WeightsInit = "Skip"
	net, err := mn.Build(s, classes, prev)
	if err != nil {
		t.Fatal(err)
	}

	if net.Weights[0].Value != 42 || net.ID != prev.ID {
		t.Error("skipped weights were not carried over from a network of the same shape")
	}

	s.Layers[1].Size = 4
	net, err = mn.Build(s, classes, prev)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range net.Weights {
		if w.Value != 0 {
			t.Fatalf("weight %d = %v; skipped weights of a new shape must start at 0", i, w.Value)
		}
	}
}

func TestFeedForward(t *testing.T) {
	s := mn.NetworkSpec{
		Name:         "linear",
		Enabled:      true,
		LearningRate: 0.1,
		Layers: []mn.LayerSpec{
			{Size: 2, Bias: true},
			{Size: 2, Neuron: mn.NeuronSpec{Activation: "Identity", WeightsInit: "Constant", WeightsInitParam: mn.Param(0.5)}},
		},
	}
	net := build(t, s)

	net.SetInput(0, 1)
	net.SetInput(1, 3)
	net.Weights[0].Value = 2 // first output gets 2*1 + 0.5*3 + 0.5*1
	net.FeedForward()

	out := net.OutputLayer()
	if a := net.Neurons[out.First].Activation; a != 4 {
		t.Errorf("first output = %v, want 4", a)
	}
	if a := net.Neurons[out.First+1].Activation; a != 2.5 {
		t.Errorf("second output = %v, want 2.5", a)
	}
	if net.PredictedClass() != 0 {
		t.Error("predicted class is not the highest output")
	}

	if err := net.SetTargetClass(1); err != nil {
		t.Fatal(err)
	}
	// (0 - 4)^2 + (1 - 2.5)^2
	if c := net.CurrentCost(); c != 18.25 {
		t.Errorf("cost = %v, want 18.25", c)
	}
	if err := net.SetTargetClass(2); err == nil {
		t.Error("expected an error for a class out of range")
	}
}

func TestBackPropagateLowersCost(t *testing.T) {
	net := build(t, spec())

	net.SetInput(0, 0.3)
	net.SetInput(1, 0.8)
	if err := net.SetTargetClass(1); err != nil {
		t.Fatal(err)
	}

	net.FeedForward()
	before := net.CurrentCost()
	for i := 0; i < 20; i++ {
		net.BackPropagate()
		net.FeedForward()
	}

	if after := net.CurrentCost(); after >= before {
		t.Errorf("cost went from %v to %v", before, after)
	}
}

func TestFrozenFirstLayer(t *testing.T) {
	s := spec()
	s.AdjustFirstLayerWeights = false
	net := build(t, s)

	hidden := net.Layers[1]
	first := net.Neurons[hidden.First].FirstWeight
	last := net.Neurons[hidden.End-2].EndWeight
	frozen := make([]float64, last-first)
	for i := range frozen {
		frozen[i] = net.Weights[first+i].Value
	}

	net.SetInput(0, 1)
	net.SetInput(1, 1)
	net.SetTargetClass(0)
	net.FeedForward()
	net.BackPropagate()

	for i := range frozen {
		if net.Weights[first+i].Value != frozen[i] {
			t.Fatal("weights into the first hidden layer changed")
		}
	}
}

func TestCopyAndRestart(t *testing.T) {
	net := build(t, spec())
	original := net.Weights[0].Value

	c := net.Copy()
	c.Weights[0].Value = original + 1
	c.Neurons[0].Activation = 7
	if net.Weights[0].Value != original || net.Neurons[0].Activation == 7 {
		t.Error("copy shares its arenas with the original")
	}
	if c.Stats != nil || c.ErrorMatrix != nil || c.Backup != nil {
		t.Error("copy should not carry training state")
	}

	net.Weights[0].Value = original + 5
	net.Stats.Record(true, 1)
	net.ErrorMatrix.Add(0, 0)
	net.Enabled = false

	r, err := net.Restart()
	if err != nil {
		t.Fatal(err)
	}
	if r.Weights[0].Value != original {
		t.Errorf("restart gave weight %v, want %v", r.Weights[0].Value, original)
	}
	if r.Stats.Rounds != 0 || r.ErrorMatrix.Count != 0 || r.ErrorMatrix.Next.Next != r.ErrorMatrix {
		t.Error("restart did not start with fresh statistics")
	}
	if r.Enabled || r.BackPropagationState() == nil {
		t.Error("restart did not keep the enabled flag or create a back-propagation state")
	}
}

func TestCopyExample(t *testing.T) {
	master := build(t, spec())
	s := spec()
	s.Layers[1].Size = 7
	other := build(t, s)

	if err := other.CheckExampleShape(master); err != nil {
		t.Fatal(err)
	}

	master.SetInput(0, 0.1)
	master.SetInput(1, 0.9)
	master.SetTargetClass(1)
	other.CopyExampleFrom(master)

	for i := 0; i < 2; i++ {
		if other.Neurons[i].Activation != master.Neurons[i].Activation {
			t.Errorf("input %d was not copied", i)
		}
	}
	mo, oo := master.OutputLayer(), other.OutputLayer()
	for i := 0; i < 2; i++ {
		if other.Neurons[oo.First+i].Target != master.Neurons[mo.First+i].Target {
			t.Errorf("target %d was not copied", i)
		}
	}
	if other.TargetClass != 1 {
		t.Error("target class was not copied")
	}

	s.Layers[0].Size = 3
	if err := build(t, s).CheckExampleShape(master); err == nil {
		t.Error("expected an error for a different input layer")
	}
}

func TestRandomize(t *testing.T) {
	s := spec()
	s.Randomizer = "Constant"
	s.RandomizerParam = mn.Param(0.125)
	net := build(t, s)

	net.Randomize()
	for i, w := range net.Weights {
		if w.Value != 0.125 {
			t.Fatalf("weight %d = %v, want 0.125", i, w.Value)
		}
	}
}
