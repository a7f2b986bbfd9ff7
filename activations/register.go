package activations

import (
	mn "github.com/sharnoff/multinet"
)

func init() {
	list := []struct {
		name, desc string
		f          mn.ActivationFunction
	}{
		{"Identity", "Passes the raw input through unchanged.", Identity()},
		{"LogisticSigmoid", "1 / (1 + e^-x), in (0, 1).", LogisticSigmoid()},
		{"SymmetricSigmoid", "2 / (1 + e^-x) - 1, in (-1, 1).", SymmetricSigmoid()},
		{"Softsign", "x / (1 + |x|), in (-1, 1).", Softsign()},
		{"Tanh", "Hyperbolic tangent, in (-1, 1).", Tanh()},
		{"ReLU", "max(0, x) scaled by the parameter (slope, default 1).", ReLU()},
		{"StepConstant", "+param for positive input, -param for negative (magnitude, default 1).", StepConstant()},
	}

	for _, a := range list {
		mn.MustRegister(mn.ActivationFamily, a.name, a.desc, a.f)
	}
}
