// Package distributions registers the random sources that tasks draw their example inputs from
package distributions

import (
	mn "github.com/sharnoff/multinet"
	in "github.com/sharnoff/multinet/initializers"
)

type dist struct {
	f   func(float64) float64
	def float64
}

func (d dist) Do(param float64) float64 {
	return d.f(param)
}

func (d dist) DefaultParam() float64 {
	return d.def
}

func constant(param float64) float64 {
	return param
}

func init() {
	mn.MustRegister(mn.DistributionFamily, "Constant", "Always gives the parameter.", dist{constant, 0.5})
	mn.MustRegister(mn.DistributionFamily, "FlatRandom", "param * U[0, 1).", dist{in.FlatRandom, 1})
	mn.MustRegister(mn.DistributionFamily, "GaussNormal", "Normal around param (sd 0.17), wrapped into [0, 1).", dist{in.GaussNormal, 0.5})
	mn.MustRegister(mn.DistributionFamily, "GaussNormalInverted", "Densest at 1; normal with sd param, reflected.", dist{in.GaussNormalInverted, 0.17})
}
