package multinet

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrRegisterWrongType = Error{"Type is not recognized"}
	ErrRegisterNilValue  = Error{"Registered value is nil"}
	ErrDuplicateName     = Error{"Name is already registered"}
	ErrNoLayers          = Error{"Network must have at least an input and an output layer"}
	ErrNoMaster          = Error{"No enabled network to act as master"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ Arg string }

func (err NilArgError) Error() string {
	return err.Arg + " is nil"
}

// UnknownStrategyError is returned when a name is looked up in a family that has no strategy
// registered under it.
type UnknownStrategyError struct {
	Family Family
	Name   string
}

func (err UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy name %q in family %s", err.Name, err.Family)
}

// ParamError indicates that a numeric parameter was not usable (NaN, infinite, or out of
// range). Skipped initialization is never reported as a ParamError; see InitValue.
type ParamError struct {
	Name  string
	Value float64
}

func (err ParamError) Error() string {
	return fmt.Sprintf("invalid value for %s (%v)", err.Name, err.Value)
}

// UnsupportedError is returned when a strategy is asked to do something it does not implement.
type UnsupportedError struct {
	Strategy, Operation string
}

func (err UnsupportedError) Error() string {
	return fmt.Sprintf("%s does not support %s", err.Strategy, err.Operation)
}

// SizeMismatchError documents a layer whose size does not match what is expected of it
type SizeMismatchError struct {
	Expected, Got int
	Of            string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("size mismatch for %s: expected %d, got %d", err.Of, err.Expected, err.Got)
}
