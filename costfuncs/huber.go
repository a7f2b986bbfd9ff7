package costfuncs

import (
	"math"

	mn "github.com/sharnoff/multinet"
)

type huber struct {
	δ float64
}

// Huber returns the Huber Loss Function, which implements multinet.CostFunction. δ controls the
// bounds of the transition between MSE and Absolute Value.
func Huber(δ float64) huber {
	return huber{δ}
}

func (h huber) Do(net *mn.Network) float64 {
	var sum float64
	each(net, func(i int) {
		d := math.Abs(net.Neurons[i].Target - net.Neurons[i].Activation)
		if d <= h.δ {
			sum += 0.5 * d * d
		} else {
			sum += h.δ*d - 0.5*h.δ*h.δ
		}
	})

	return sum
}

func (h huber) Derivative(net *mn.Network, neuron int) float64 {
	n := net.Neurons[neuron]
	d := n.Target - n.Activation
	if !(d < -h.δ || d > h.δ) {
		return d
	}
	return h.δ * math.Copysign(1, d)
}
