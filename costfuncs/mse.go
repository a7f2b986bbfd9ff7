package costfuncs

import (
	mn "github.com/sharnoff/multinet"
)

type mse int8

// MSE returns the squared error cost function, which implements multinet.CostFunction. The cost
// is summed, not averaged, over the output Neurons.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) Do(net *mn.Network) float64 {
	var sum float64
	each(net, func(i int) {
		d := net.Neurons[i].Target - net.Neurons[i].Activation
		sum += d * d
	})

	return sum
}

func (m mse) Derivative(net *mn.Network, neuron int) float64 {
	n := net.Neurons[neuron]
	return n.Target - n.Activation
}
