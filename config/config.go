// Package config loads the description of an experiment: the task, the networks and how the
// engine should run them. A JSON file gives the experiment; environment variables (optionally
// from a .env file) override the settings that change between machines.
package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	mn "github.com/sharnoff/multinet"
	"github.com/sharnoff/multinet/engine"
)

// Environment variables that override the experiment file
const (
	EnvConfig   string = "MULTINET_CONFIG"
	EnvAddr     string = "MULTINET_ADDR"
	EnvLogLevel string = "MULTINET_LOG_LEVEL"
	EnvAffinity string = "MULTINET_AFFINITY"
)

// Experiment is everything needed to set up a Session and an Engine
type Experiment struct {
	Task              string   `json:"task"`
	Distribution      string   `json:"distribution"`
	DistributionParam *float64 `json:"distribution_param,omitempty"`

	Cadences  engine.Settings `json:"cadences"`
	CPU       int             `json:"cpu"`
	MaxRounds int64           `json:"max_rounds,omitempty"`

	LogLevel string `json:"log_level"`

	// Addr is where the frame hub listens. Empty disables the hub.
	Addr string `json:"addr,omitempty"`

	Networks []mn.NetworkSpec `json:"networks"`
}

// Default returns the experiment used when no file is given: Xor, learned by two networks that
// only differ in their hidden activation function
func Default() Experiment {
	net := func(name, color, activation string) mn.NetworkSpec {
		return mn.NetworkSpec{
			Name:                    name,
			Color:                   color,
			Enabled:                 true,
			LearningRate:            0.3,
			InputInitial1:           1,
			AdjustFirstLayerWeights: true,
			Layers: []mn.LayerSpec{
				{Size: 2, Bias: true},
				{Size: 4, Bias: true, Neuron: mn.NeuronSpec{Activation: activation}},
				{Size: 2},
			},
		}
	}

	return Experiment{
		Task:         "Xor",
		Distribution: "FlatRandom",
		Cadences:     engine.DefaultSettings(),
		CPU:          -1,
		LogLevel:     "info",
		Networks: []mn.NetworkSpec{
			net("sigmoid", "#1f77b4", "LogisticSigmoid"),
			net("tanh", "#ff7f0e", "Tanh"),
		},
	}
}

// Load reads an experiment file. Fields missing from the file keep their defaults.
func Load(path string) (Experiment, error) {
	x := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return x, errors.Wrapf(err, "Failed to read experiment file\n")
	}

	// networks in the file replace the default ones entirely
	x.Networks = nil
	if err = json.Unmarshal(data, &x); err != nil {
		return x, errors.Wrapf(err, "Failed to parse experiment file %s\n", path)
	}

	return x, x.Validate()
}

// FromEnv loads the .env files (the default ".env" if none are given; missing files are
// ignored), then the experiment file named by MULTINET_CONFIG if it is set, and finally applies
// the remaining environment overrides.
func FromEnv(envFiles ...string) (Experiment, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return Experiment{}, errors.Wrapf(err, "Failed to load %s\n", f)
		}
	}

	x := Default()
	if path := os.Getenv(EnvConfig); path != "" {
		var err error
		if x, err = Load(path); err != nil {
			return x, err
		}
	}

	if v, ok := os.LookupEnv(EnvAddr); ok {
		x.Addr = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		x.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvAffinity); ok {
		cpu, err := strconv.Atoi(v)
		if err != nil {
			return x, errors.Errorf("%s must be an integer (%q)", EnvAffinity, v)
		}
		x.CPU = cpu
	}

	return x, x.Validate()
}

// Validate checks everything that can be checked without building the networks
func (x Experiment) Validate() error {
	if err := x.Cadences.Validate(); err != nil {
		return err
	} else if _, err := x.Level(); err != nil {
		return err
	} else if len(x.Networks) == 0 {
		return errors.Errorf("Experiment has no networks")
	} else if x.MaxRounds < 0 {
		return errors.Errorf("max_rounds must not be negative (%d)", x.MaxRounds)
	}

	return nil
}

// Level returns the log level named by LogLevel
func (x Experiment) Level() (log.Level, error) {
	switch strings.ToLower(x.LogLevel) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "", "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	default:
		return log.LevelInfo, errors.Errorf("Unknown log level %q", x.LogLevel)
	}
}

// Session resolves the task and the distribution and builds every network. Unknown strategy
// names are returned as type multinet.UnknownStrategyError, wrapped.
func (x Experiment) Session() (*engine.Session, error) {
	task, err := mn.ResolveTask(x.Task)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to set up task\n")
	}

	dist, err := mn.ResolveDistribution(x.Distribution)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to set up distribution\n")
	}

	param, err := mn.DefaultParam(mn.DistributionFamily, x.Distribution)
	if err != nil {
		return nil, err
	} else if x.DistributionParam != nil {
		param = *x.DistributionParam
	}

	return engine.NewSession(task, dist, param, x.Networks)
}

// EngineConfig returns the Config for the Engine running the experiment
func (x Experiment) EngineConfig() engine.Config {
	c := engine.DefaultConfig()
	c.Settings = x.Cadences
	c.CPU = x.CPU
	c.MaxRounds = x.MaxRounds
	return c
}
