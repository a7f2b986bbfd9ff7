package tasks

import (
	mn "github.com/sharnoff/multinet"
)

type xor int8

// Xor returns the task with two binary inputs. An input is on when its sample is at least 0.5;
// the values written are the InputInitial0 and InputInitial1 of the network.
func Xor() xor {
	return xor(0)
}

func (x xor) Classes() []string {
	return []string{"0", "1"}
}

func (x xor) InputCount() int {
	return 2
}

func (x xor) Next(net *mn.Network, sample func() float64) (int, error) {
	a, b := sample() >= 0.5, sample() >= 0.5

	value := func(on bool) float64 {
		if on {
			return net.InputInitial1
		}
		return net.InputInitial0
	}

	class := 0
	if a != b {
		class = 1
	}

	return write(net, class, value(a), value(b))
}
