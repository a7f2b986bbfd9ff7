package initializers

import (
	mn "github.com/sharnoff/multinet"
)

func init() {
	list := []struct {
		name, desc string
		i          mn.Initializer
	}{
		{"Skip", "Leaves the existing value unchanged.", Skip()},
		{"None", "Sets the value to 0.", None()},
		{"Constant", "Sets the value to the parameter.", Constant()},
		{"FlatRandom", "param * U[0, 1).", Flat()},
		{"Centered", "Uniform over [-param/2, param/2).", Center()},
		{"GaussNormal", "Normal around param (sd 0.17), wrapped into [0, 1).", Gauss()},
		{"GaussNormalInverted", "Densest at 1; normal with sd param, reflected.", GaussInverted()},
		{"GaussianInverted2", "Densest at 0 and 1; normal with sd param, reflected.", GaussInverted2()},
	}

	for _, in := range list {
		mn.MustRegister(mn.InitializerFamily, in.name, in.desc, in.i)
	}
}
