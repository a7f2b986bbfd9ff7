package multinet

import (
	"math"
)

// InitValue is the result of an Initializer: either a value to set, or an instruction to leave
// whatever is already there.
type InitValue struct {
	value float64
	set   bool
}

// Some returns an InitValue that sets the given value
func Some(v float64) InitValue {
	return InitValue{v, true}
}

// Skip returns an InitValue that leaves the existing value unchanged
func Skip() InitValue {
	return InitValue{}
}

// IsSkip returns whether or not the existing value should be kept
func (v InitValue) IsSkip() bool {
	return !v.set
}

// Get returns the value and whether it should be applied
func (v InitValue) Get() (float64, bool) {
	return v.value, v.set
}

// Apply returns the value to store, given the one currently stored
func (v InitValue) Apply(current float64) float64 {
	if !v.set {
		return current
	}
	return v.value
}

// checkParam returns type ParamError if the value can't be used as a strategy parameter
func checkParam(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ParamError{name, v}
	}
	return nil
}
