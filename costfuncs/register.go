package costfuncs

import (
	mn "github.com/sharnoff/multinet"
)

func init() {
	mn.MustRegister(mn.CostFamily, "MeanSquaredError", "Sum of (target - activation)^2 over the output layer.", MSE())
	mn.MustRegister(mn.CostFamily, "Absolute", "Sum of |target - activation| over the output layer.", Abs())
	mn.MustRegister(mn.CostFamily, "Huber", "Squared error near the target, absolute error beyond 1.", Huber(1))
}

// each calls f with the index of every output Neuron
func each(net *mn.Network, f func(i int)) {
	out := net.OutputLayer()
	for i := out.First; i < out.End; i++ {
		f(i)
	}
}
