package tasks

import (
	"testing"

	"github.com/pkg/errors"

	mn "github.com/sharnoff/multinet"
	_ "github.com/sharnoff/multinet/activations"
	_ "github.com/sharnoff/multinet/backprop"
	_ "github.com/sharnoff/multinet/costfuncs"
	_ "github.com/sharnoff/multinet/initializers"
)

func network(t *testing.T, task mn.Task, inputs int) *mn.Network {
	spec := mn.NetworkSpec{
		Name:          "test",
		Enabled:       true,
		LearningRate:  0.1,
		InputInitial0: -1,
		InputInitial1: 1,
		Layers: []mn.LayerSpec{
			{Size: inputs, Bias: true},
			{Size: len(task.Classes())},
		},
	}

	net, err := mn.Build(spec, task.Classes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return net
}

// fixed returns a sample function giving the values in order
func fixed(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestQuadrants(t *testing.T) {
	tests := []struct {
		x, y  float64
		class int
	}{
		{0.1, 0.1, 0},
		{0.9, 0.1, 1},
		{0.1, 0.9, 2},
		{0.9, 0.9, 3},
		{0.5, 0.5, 3},
	}

	task := Quadrants()
	net := network(t, task, task.InputCount())

	for _, test := range tests {
		class, err := task.Next(net, fixed(test.x, test.y))
		if err != nil {
			t.Fatal(err)
		}
		if class != test.class || net.TargetClass != test.class {
			t.Errorf("(%v, %v): got class %d (target %d), want %d", test.x, test.y, class, net.TargetClass, test.class)
		}

		in := net.InputLayer()
		if net.Neurons[in.First].Activation != test.x || net.Neurons[in.First+1].Activation != test.y {
			t.Errorf("(%v, %v): inputs were not written", test.x, test.y)
		}
	}
}

func TestCircle(t *testing.T) {
	task := Circle()
	net := network(t, task, 2)

	if class, _ := task.Next(net, fixed(0.5, 0.6)); class != 0 {
		t.Errorf("center: got class %d, want 0", class)
	}
	if class, _ := task.Next(net, fixed(0.0, 0.0)); class != 1 {
		t.Errorf("corner: got class %d, want 1", class)
	}

	out := net.OutputLayer()
	if net.Neurons[out.First].Target != net.TargetLow || net.Neurons[out.First+1].Target != net.TargetHigh {
		t.Error("targets are not one-hot for class 1")
	}
}

func TestXor(t *testing.T) {
	tests := []struct {
		a, b  float64
		class int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	task := Xor()
	net := network(t, task, 2)

	for _, test := range tests {
		class, err := task.Next(net, fixed(test.a, test.b))
		if err != nil {
			t.Fatal(err)
		}
		if class != test.class {
			t.Errorf("%v xor %v: got %d, want %d", test.a, test.b, class, test.class)
		}

		want := func(v float64) float64 {
			if v >= 0.5 {
				return net.InputInitial1
			}
			return net.InputInitial0
		}
		in := net.InputLayer()
		if net.Neurons[in.First].Activation != want(test.a) || net.Neurons[in.First+1].Activation != want(test.b) {
			t.Errorf("%v xor %v: inputs were not set to the binary values", test.a, test.b)
		}
	}
}

func TestWrongInputSize(t *testing.T) {
	task := Xor()
	net := network(t, task, 3)

	_, err := task.Next(net, fixed(0))
	if _, ok := errors.Cause(err).(mn.SizeMismatchError); !ok {
		t.Errorf("expected SizeMismatchError, got %v", err)
	}
}
