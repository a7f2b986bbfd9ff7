// Package tasks registers the example generators that networks are trained on. Each task writes
// one example per round into the input layer of the master network and sets its target class.
package tasks

import (
	mn "github.com/sharnoff/multinet"
)

func init() {
	mn.MustRegister(mn.TaskFamily, "Quadrants", "A point in the unit square, classified by its quadrant.", Quadrants())
	mn.MustRegister(mn.TaskFamily, "Circle", "A point in the unit square, inside or outside of a circle around its center.", Circle())
	mn.MustRegister(mn.TaskFamily, "Xor", "Two binary inputs; the class is their exclusive or.", Xor())
}

// write checks the input layer and sets the inputs and the target class of 'net'
func write(net *mn.Network, class int, inputs ...float64) (int, error) {
	if net.NumInputs() != len(inputs) {
		return 0, mn.SizeMismatchError{Expected: len(inputs), Got: net.NumInputs(), Of: "input layer of " + net.Name}
	}

	for i, v := range inputs {
		net.SetInput(i, v)
	}

	if err := net.SetTargetClass(class); err != nil {
		return 0, err
	}
	return class, nil
}
