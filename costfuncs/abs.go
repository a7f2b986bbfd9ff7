package costfuncs

import (
	"math"

	mn "github.com/sharnoff/multinet"
)

type abs int8

// Abs returns the Absolute Value cost function, which implements multinet.CostFunction.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) Do(net *mn.Network) float64 {
	var sum float64
	each(net, func(i int) {
		sum += math.Abs(net.Neurons[i].Target - net.Neurons[i].Activation)
	})

	return sum
}

func (a abs) Derivative(net *mn.Network, neuron int) float64 {
	n := net.Neurons[neuron]
	if n.Target == n.Activation {
		return 0
	}
	return math.Copysign(1, n.Target-n.Activation)
}
