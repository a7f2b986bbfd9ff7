package multinet

import (
	"sync"

	"github.com/pkg/errors"
)

// Family identifies one group of interchangeable strategies
type Family int8

const (
	ActivationFamily Family = iota
	CostFamily
	InitializerFamily
	DistributionFamily
	RandomizerFamily
	BackPropagationFamily
	TaskFamily
)

func (f Family) String() string {
	switch f {
	case ActivationFamily:
		return "activation"
	case CostFamily:
		return "cost"
	case InitializerFamily:
		return "initializer"
	case DistributionFamily:
		return "distribution"
	case RandomizerFamily:
		return "randomizer"
	case BackPropagationFamily:
		return "back-propagation"
	case TaskFamily:
		return "task"
	default:
		return "unknown"
	}
}

// NoDescription is what Describe returns for strategies registered without one
const NoDescription string = "No description."

type entry struct {
	name         string
	description  string
	value        interface{}
	defaultParam float64
}

// the registry keeps declaration order in 'ordered' for enumeration and 'byName' for lookup
var registry = struct {
	sync.RWMutex
	ordered map[Family][]*entry
	byName  map[Family]map[string]*entry
}{
	ordered: make(map[Family][]*entry),
	byName:  make(map[Family]map[string]*entry),
}

// fits returns whether or not the value implements the interface of the given family
func fits(f Family, v interface{}) bool {
	switch f {
	case ActivationFamily:
		_, ok := v.(ActivationFunction)
		return ok
	case CostFamily:
		_, ok := v.(CostFunction)
		return ok
	case InitializerFamily:
		_, ok := v.(Initializer)
		return ok
	case DistributionFamily:
		_, ok := v.(Distribution)
		return ok
	case RandomizerFamily:
		_, ok := v.(Randomizer)
		return ok
	case BackPropagationFamily:
		_, ok := v.(BackPropagationStrategy)
		return ok
	case TaskFamily:
		_, ok := v.(Task)
		return ok
	}

	return false
}

// Register adds a strategy to the given family. Registration is expected to happen from the
// init() functions of the strategy packages; the order of calls is the order List returns.
//
// Register returns ErrRegisterNilValue if v is nil, ErrRegisterWrongType if v does not implement
// the interface for the family, and ErrDuplicateName if the name is already taken.
func Register(f Family, name, description string, v interface{}) error {
	if v == nil {
		return ErrRegisterNilValue
	} else if !fits(f, v) {
		return errors.Wrapf(ErrRegisterWrongType, "Can't register %q as %s", name, f)
	} else if name == "" {
		return errors.Errorf("Can't register %s with empty name", f)
	}

	registry.Lock()
	defer registry.Unlock()

	if registry.byName[f] == nil {
		registry.byName[f] = make(map[string]*entry)
	}

	if _, ok := registry.byName[f][name]; ok {
		return errors.Wrapf(ErrDuplicateName, "Can't register %q as %s", name, f)
	}

	e := &entry{name: name, description: description, value: v}
	if d, ok := v.(ParamDefaulter); ok {
		e.defaultParam = d.DefaultParam()
	}

	registry.byName[f][name] = e
	registry.ordered[f] = append(registry.ordered[f], e)
	return nil
}

// MustRegister calls Register, but panics instead of returning an error
func MustRegister(f Family, name, description string, v interface{}) {
	if err := Register(f, name, description, v); err != nil {
		panic(err)
	}
}

func lookup(f Family, name string) (*entry, error) {
	registry.RLock()
	e, ok := registry.byName[f][name]
	registry.RUnlock()

	if !ok {
		return nil, UnknownStrategyError{f, name}
	}

	return e, nil
}

// Resolve returns the strategy registered under the given family and name. If there is none,
// type UnknownStrategyError is returned.
func Resolve(f Family, name string) (interface{}, error) {
	e, err := lookup(f, name)
	if err != nil {
		return nil, err
	}

	return e.value, nil
}

// List returns the names of all strategies in the family, in the order they were registered
func List(f Family) []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, len(registry.ordered[f]))
	for i, e := range registry.ordered[f] {
		names[i] = e.name
	}

	return names
}

// Describe returns the description given at registration, or NoDescription
func Describe(f Family, name string) string {
	e, err := lookup(f, name)
	if err != nil || e.description == "" {
		return NoDescription
	}

	return e.description
}

// DefaultParam returns the default parameter of the named strategy, or 0 if it has none
func DefaultParam(f Family, name string) (float64, error) {
	e, err := lookup(f, name)
	if err != nil {
		return 0, err
	}

	return e.defaultParam, nil
}

// The typed lookups below are what the rest of the package uses at build time; the hot path only
// ever sees the resolved values.

func ResolveActivation(name string) (ActivationFunction, error) {
	v, err := Resolve(ActivationFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(ActivationFunction), nil
}

func ResolveCost(name string) (CostFunction, error) {
	v, err := Resolve(CostFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(CostFunction), nil
}

func ResolveInitializer(name string) (Initializer, error) {
	v, err := Resolve(InitializerFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(Initializer), nil
}

func ResolveDistribution(name string) (Distribution, error) {
	v, err := Resolve(DistributionFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(Distribution), nil
}

func ResolveRandomizer(name string) (Randomizer, error) {
	v, err := Resolve(RandomizerFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(Randomizer), nil
}

func ResolveBackPropagation(name string) (BackPropagationStrategy, error) {
	v, err := Resolve(BackPropagationFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(BackPropagationStrategy), nil
}

func ResolveTask(name string) (Task, error) {
	v, err := Resolve(TaskFamily, name)
	if err != nil {
		return nil, err
	}
	return v.(Task), nil
}
