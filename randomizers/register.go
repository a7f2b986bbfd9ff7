// Package randomizers registers the strategies that re-initialize every weight of a Network at
// once. The parameter of each is a scale, defaulting to 1.
package randomizers

import (
	mn "github.com/sharnoff/multinet"
)

func init() {
	list := []struct {
		name, desc string
		r          mn.Randomizer
	}{
		{"FlatRandom", "param * U[0, 1).", perWeight(flat)},
		{"GaussNormal", "Normal around 0 with sd param.", perWeight(gauss)},
		{"GaussNormalAbs", "Absolute value of a normal around 0 with sd param.", perWeight(gaussAbs)},
		{"Centered", "Uniform over [-param/2, param/2).", perWeight(centered)},
		{"WaveProgress", "Cosine wave over the position of each weight, with amplitude param.", wave{}},
		{"Xavier", "Uniform over [-1, 1), scaled by param * sqrt(1/fan-in).", fanIn{uniformUnit, 1}},
		{"GaussXavier", "Standard normal, scaled by param * sqrt(1/fan-in).", fanIn{gaussUnit, 1}},
		{"HeEtAl", "Uniform over [-1, 1), scaled by param * sqrt(2/fan-in).", fanIn{uniformUnit, 2}},
		{"GaussHeEtAl", "Standard normal, scaled by param * sqrt(2/fan-in).", fanIn{gaussUnit, 2}},
		{"Constant", "Sets every weight to param.", perWeight(constant)},
	}

	for _, r := range list {
		mn.MustRegister(mn.RandomizerFamily, r.name, r.desc, r.r)
	}
}
