package initializers

import (
	mn "github.com/sharnoff/multinet"
)

type skip int8

// Skip returns the Initializer that never changes anything
func Skip() skip {
	return skip(0)
}

func (s skip) Do(param float64) mn.InitValue {
	return mn.Skip()
}

type none int8

// None returns the Initializer that always gives 0
func None() none {
	return none(0)
}

func (n none) Do(param float64) mn.InitValue {
	return mn.Some(0)
}

type constant int8

// Constant returns the Initializer that gives its parameter
func Constant() constant {
	return constant(0)
}

func (c constant) Do(param float64) mn.InitValue {
	return mn.Some(param)
}

type flat int8

// Flat returns the Initializer behind FlatRandom
func Flat() flat {
	return flat(0)
}

func (f flat) DefaultParam() float64 {
	return 1
}

func (f flat) Do(param float64) mn.InitValue {
	return mn.Some(FlatRandom(param))
}

type center int8

// Center returns the Initializer behind Centered
func Center() center {
	return center(0)
}

func (c center) DefaultParam() float64 {
	return 1
}

func (c center) Do(param float64) mn.InitValue {
	return mn.Some(Centered(param))
}

type gauss int8

// Gauss returns the Initializer behind GaussNormal. Its parameter is the mean.
func Gauss() gauss {
	return gauss(0)
}

func (g gauss) DefaultParam() float64 {
	return 0.5
}

func (g gauss) Do(param float64) mn.InitValue {
	return mn.Some(GaussNormal(param))
}

type gaussInverted int8

// GaussInverted returns the Initializer behind GaussNormalInverted. Its parameter is the
// standard deviation.
func GaussInverted() gaussInverted {
	return gaussInverted(0)
}

func (g gaussInverted) DefaultParam() float64 {
	return gaussSD
}

func (g gaussInverted) Do(param float64) mn.InitValue {
	return mn.Some(GaussNormalInverted(param))
}

type gaussInverted2 int8

// GaussInverted2 returns the Initializer behind GaussianInverted2. Its parameter is the
// standard deviation.
func GaussInverted2() gaussInverted2 {
	return gaussInverted2(0)
}

func (g gaussInverted2) DefaultParam() float64 {
	return gaussSD
}

func (g gaussInverted2) Do(param float64) mn.InitValue {
	return mn.Some(GaussianInverted2(param))
}
