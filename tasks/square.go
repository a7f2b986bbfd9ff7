package tasks

import (
	mn "github.com/sharnoff/multinet"
)

type quadrants int8

// Quadrants returns the task with inputs (x, y) and classes for the four quadrants of the unit
// square, counted from the lower left
func Quadrants() quadrants {
	return quadrants(0)
}

func (q quadrants) Classes() []string {
	return []string{"LowerLeft", "LowerRight", "UpperLeft", "UpperRight"}
}

func (q quadrants) InputCount() int {
	return 2
}

func (q quadrants) Next(net *mn.Network, sample func() float64) (int, error) {
	x, y := sample(), sample()

	var class int
	if x >= 0.5 {
		class++
	}
	if y >= 0.5 {
		class += 2
	}

	return write(net, class, x, y)
}

// the radius of the circle, around (0.5, 0.5)
const radius float64 = 0.35

type circle int8

// Circle returns the task with inputs (x, y) whose class tells if the point lies within a circle
// of radius 0.35 around the center of the unit square
func Circle() circle {
	return circle(0)
}

func (c circle) Classes() []string {
	return []string{"Inside", "Outside"}
}

func (c circle) InputCount() int {
	return 2
}

func (c circle) Next(net *mn.Network, sample func() float64) (int, error) {
	x, y := sample(), sample()

	dx, dy := x-0.5, y-0.5
	class := 0
	if dx*dx+dy*dy > radius*radius {
		class = 1
	}

	return write(net, class, x, y)
}
