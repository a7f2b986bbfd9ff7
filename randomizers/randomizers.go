package randomizers

import (
	"math"

	mn "github.com/sharnoff/multinet"
	in "github.com/sharnoff/multinet/initializers"
)

// perWeight is a Randomizer that draws every weight independently of its position
type perWeight func(param float64) float64

func (f perWeight) DefaultParam() float64 {
	return 1
}

func (f perWeight) Randomize(net *mn.Network, param float64) {
	for i := range net.Weights {
		net.Weights[i].Value = f(param)
	}
}

func flat(param float64) float64 {
	return in.FlatRandom(param)
}

func centered(param float64) float64 {
	return in.Centered(param)
}

func gauss(param float64) float64 {
	return in.Normal(0, param).Gen()
}

func gaussAbs(param float64) float64 {
	return math.Abs(gauss(param))
}

func constant(param float64) float64 {
	return param
}

func uniformUnit() float64 {
	return in.Uniform(-1, 1).Gen()
}

func gaussUnit() float64 {
	return in.Normal(0, 1).Gen()
}

// fanIn scales a unit sample by param * sqrt(gain / fan-in), where the fan-in is the number of
// incoming weights of the Neuron
type fanIn struct {
	unit func() float64
	gain float64
}

func (f fanIn) DefaultParam() float64 {
	return 1
}

func (f fanIn) Randomize(net *mn.Network, param float64) {
	for _, n := range net.Neurons {
		count := n.NumWeights()
		if count == 0 {
			continue
		}

		scale := param * math.Sqrt(f.gain/float64(count))
		for w := n.FirstWeight; w < n.EndWeight; w++ {
			net.Weights[w].Value = scale * f.unit()
		}
	}
}

// wave gives every weight a deterministic value that depends only on its layer, the Neuron that
// owns it and its own position. Neighbouring weights get different values, so symmetric Neurons
// never start out identical.
type wave struct{}

func (w wave) DefaultParam() float64 {
	return 1
}

func (w wave) Randomize(net *mn.Network, param float64) {
	for _, n := range net.Neurons {
		for i := n.FirstWeight; i < n.EndWeight; i++ {
			wt := net.Weights[i]

			phase := float64(n.Layer) + float64(n.ID+1)*float64(wt.ID+1)/float64(n.NumWeights()+1)
			net.Weights[i].Value = param * math.Cos(phase*math.Pi)
		}
	}
}
