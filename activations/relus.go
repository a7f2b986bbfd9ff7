package activations

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the rectified linear unit. The parameter is the slope of the positive side.
func ReLU() relu {
	return relu(0)
}

func (t relu) DefaultParam() float64 {
	return 1
}

func (t relu) Do(x, param float64) float64 {
	if x > 0 {
		return param * x
	}
	return 0
}

func (t relu) Derivative(x, param float64) float64 {
	if x > 0 {
		return param
	}
	return 0
}

// ****************************************
// StepConstant
// ****************************************

type step int8

// StepConstant returns a step function with outputs of +param, 0 and -param. Its derivative is
// taken to be 1 everywhere, so that errors still pass through it during back-propagation.
func StepConstant() step {
	return step(0)
}

func (t step) DefaultParam() float64 {
	return 1
}

func (t step) Do(x, param float64) float64 {
	switch {
	case x > 0:
		return param
	case x < 0:
		return -param
	default:
		return 0
	}
}

func (t step) Derivative(x, param float64) float64 {
	return 1
}
