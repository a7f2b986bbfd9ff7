// logistics.go contains the sigmoid-shaped activation functions:
// * LogisticSigmoid
// * SymmetricSigmoid
// * Softsign
// * Tanh
package activations

import (
	"math"
)

// ****************************************
// LogisticSigmoid
// ****************************************

type logistic int8

// LogisticSigmoid returns the standard logistic function, with outputs in (0, 1)
func LogisticSigmoid() logistic {
	return logistic(0)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func (t logistic) Do(x, param float64) float64 {
	return sigmoid(x)
}

func (t logistic) Derivative(x, param float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}

// ****************************************
// SymmetricSigmoid
// ****************************************

type symmetric int8

// SymmetricSigmoid returns the logistic function stretched to (-1, 1)
func SymmetricSigmoid() symmetric {
	return symmetric(0)
}

func (t symmetric) Do(x, param float64) float64 {
	return 2*sigmoid(x) - 1
}

func (t symmetric) Derivative(x, param float64) float64 {
	s := sigmoid(x)
	return 2 * s * (1 - s)
}

// ****************************************
// Softsign
// ****************************************

type softsign int8

// Softsign returns x / (1 + |x|), which approaches its bounds more slowly than Tanh
func Softsign() softsign {
	return softsign(0)
}

func (t softsign) Do(x, param float64) float64 {
	return x / (1 + math.Abs(x))
}

func (t softsign) Derivative(x, param float64) float64 {
	d := 1 + math.Abs(x)
	return 1 / (d * d)
}

// ****************************************
// Tanh
// ****************************************

type tanh int8

// Tanh returns the hyperbolic tangent activation function
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) Do(x, param float64) float64 {
	return math.Tanh(x)
}

func (t tanh) Derivative(x, param float64) float64 {
	th := math.Tanh(x)
	return 1 - th*th
}
