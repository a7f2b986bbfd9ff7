package initializers

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread over [lower, upper)
func Uniform(lower, upper float64) uniform {
	return uniform{lower, upper}
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u uniform) Gen() float64 {
	return rand.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution
func Normal(mean, sd float64) normal {
	return normal{mean, sd}
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n normal) Gen() float64 {
	return distuv.Normal{Mu: n.µ, Sigma: n.σ}.Rand()
}

// Wrap maps any value into [0, 1) by dropping its integer part
func Wrap(v float64) float64 {
	r := v - math.Floor(v)
	if r >= 1 {
		// tiny negative values round up to 1
		return 0
	}
	return r
}

// Reflect folds any value into [0, 1], bouncing off both bounds like a mirror
func Reflect(v float64) float64 {
	r := math.Mod(math.Abs(v), 2)
	if r > 1 {
		r = 2 - r
	}
	return r
}

// The functions below are the shared math behind the initializers, the distributions and the
// randomizers.

// FlatRandom returns param * U[0, 1)
func FlatRandom(param float64) float64 {
	return param * rand.Float64()
}

// Centered returns a value spread uniformly over [-param/2, param/2)
func Centered(param float64) float64 {
	return -param/2 + param*rand.Float64()
}

// the standard deviation of GaussNormal, whose parameter is the mean
const gaussSD float64 = 0.17

// GaussNormal returns a normal sample around 'mean' with a standard deviation of 0.17, wrapped
// into [0, 1)
func GaussNormal(mean float64) float64 {
	return Wrap(Normal(mean, gaussSD).Gen())
}

// GaussNormalInverted returns a sample that is densest at 1, falling off as a normal distribution
// with standard deviation 'sd' reflected into [0, 1]
func GaussNormalInverted(sd float64) float64 {
	return 1 - Reflect(Normal(0, sd).Gen())
}

// GaussianInverted2 returns a sample that is densest at both 0 and 1, each side falling off as a
// normal distribution with standard deviation 'sd' reflected into [0, 0.5]
func GaussianInverted2(sd float64) float64 {
	r := Reflect(Normal(0, sd).Gen()) / 2
	if rand.Intn(2) == 0 {
		return r
	}
	return 1 - r
}
