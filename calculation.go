package multinet

import (
	"gonum.org/v1/gonum/floats"
)

// FeedForward updates the activations of every non-input layer from the input activations. Bias
// Neurons are left at 1.
func (net *Network) FeedForward() {
	for li := 1; li < len(net.Layers); li++ {
		l := net.Layers[li]

		for i := l.First; i < l.End; i++ {
			n := &net.Neurons[i]
			if n.IsBias {
				continue
			}

			var sum float64
			for _, w := range net.Weights[n.FirstWeight:n.EndWeight] {
				sum += w.Value * net.Neurons[w.From].Activation
			}

			n.Input = sum
			n.Activation = n.Function.Do(sum, n.FunctionParam)
		}
	}
}

// PredictedClass returns the index of the output Neuron with the highest activation. Ties go to
// the lowest index.
func (net *Network) PredictedClass() int {
	out := net.OutputLayer()
	for i := out.First; i < out.End; i++ {
		net.outs[i-out.First] = net.Neurons[i].Activation
	}

	return floats.MaxIdx(net.outs)
}

// CurrentCost returns the cost of the current outputs, as given by the Network's CostFunction
func (net *Network) CurrentCost() float64 {
	return net.Cost.Do(net)
}

// BackPropagate runs a single step of gradient descent for the current example. FeedForward must
// have been run first.
//
// All error terms are computed before any weight is changed.
func (net *Network) BackPropagate() {
	last := len(net.Layers) - 1

	out := net.Layers[last]
	for i := out.First; i < out.End; i++ {
		n := &net.Neurons[i]
		n.delta = net.Cost.Derivative(net, i) * n.Function.Derivative(n.Input, n.FunctionParam)
	}

	for li := last - 1; li >= 1; li-- {
		l := net.Layers[li]
		for i := l.First; i < l.End; i++ {
			net.Neurons[i].delta = 0
		}

		next := net.Layers[li+1]
		for i := next.First; i < next.End; i++ {
			d := &net.Neurons[i]
			if d.IsBias {
				continue
			}

			for _, w := range net.Weights[d.FirstWeight:d.EndWeight] {
				net.Neurons[w.From].delta += w.Value * d.delta
			}
		}

		for i := l.First; i < l.End; i++ {
			n := &net.Neurons[i]
			if n.IsBias {
				n.delta = 0
				continue
			}

			n.delta *= n.Function.Derivative(n.Input, n.FunctionParam)
		}
	}

	for li := last; li >= 1; li-- {
		if li == 1 && !net.AdjustFirstLayerWeights {
			continue
		}

		l := net.Layers[li]
		for i := l.First; i < l.End; i++ {
			n := &net.Neurons[i]
			if n.IsBias {
				continue
			}

			step := net.LearningRate * n.delta
			for w := n.FirstWeight; w < n.EndWeight; w++ {
				net.Weights[w].Value += step * net.Neurons[net.Weights[w].From].Activation
			}
		}
	}
}
