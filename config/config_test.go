package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/errors"

	mn "github.com/sharnoff/multinet"
	_ "github.com/sharnoff/multinet/activations"
	_ "github.com/sharnoff/multinet/backprop"
	_ "github.com/sharnoff/multinet/costfuncs"
	_ "github.com/sharnoff/multinet/distributions"
	_ "github.com/sharnoff/multinet/initializers"
	_ "github.com/sharnoff/multinet/randomizers"
	_ "github.com/sharnoff/multinet/tasks"
)

const experiment = `{
	"task": "Quadrants",
	"distribution": "GaussNormal",
	"cadences": {"error_matrix": 10, "network": 20, "statistics": 30},
	"log_level": "debug",
	"networks": [
		{
			"name": "wide",
			"enabled": true,
			"learning_rate": 0.2,
			"randomizer": "Xavier",
			"target_low": -1,
			"layers": [
				{"size": 2, "bias": true},
				{"size": 8, "bias": true, "neuron": {"activation": "Tanh"}},
				{"size": 4, "neuron": {"activation": "SymmetricSigmoid"}}
			]
		}
	]
}`

func write(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	x, err := Load(write(t, "experiment.json", experiment))
	if err != nil {
		t.Fatal(err)
	}

	if x.Task != "Quadrants" || x.Cadences.Statistics != 30 || len(x.Networks) != 1 {
		t.Errorf("file was not read correctly: %+v", x)
	}
	if x.CPU != -1 {
		t.Errorf("missing cpu should keep the default -1, got %d", x.CPU)
	}
	if lvl, _ := x.Level(); lvl != log.LevelDebug {
		t.Errorf("got log level %v, want debug", lvl)
	}

	s, err := x.Session()
	if err != nil {
		t.Fatal(err)
	}
	if n := s.Networks[0]; n.TargetLow != -1 || n.NumOutputs() != 4 {
		t.Error("network was not built from the file")
	}
}

func TestUnknownStrategy(t *testing.T) {
	x := Default()
	x.Networks[0].Layers[1].Neuron.Activation = "Sinusoid"

	_, err := x.Session()
	e, ok := errors.Cause(err).(mn.UnknownStrategyError)
	if !ok {
		t.Fatalf("expected UnknownStrategyError, got %v", err)
	}
	if e.Family != mn.ActivationFamily || e.Name != "Sinusoid" {
		t.Errorf("got %+v", e)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		change func(*Experiment)
	}{
		{"zero cadence", func(x *Experiment) { x.Cadences.Network = 0 }},
		{"bad log level", func(x *Experiment) { x.LogLevel = "loud" }},
		{"no networks", func(x *Experiment) { x.Networks = nil }},
		{"negative rounds", func(x *Experiment) { x.MaxRounds = -1 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default experiment is invalid: %v", err)
	}

	for _, test := range tests {
		x := Default()
		test.change(&x)
		if x.Validate() == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, write(t, "experiment.json", experiment))
	t.Setenv(EnvLogLevel, "warn")

	env := write(t, ".env", EnvAddr+"=:9123\n"+EnvAffinity+"=0\n")
	t.Cleanup(func() {
		os.Unsetenv(EnvAddr)
		os.Unsetenv(EnvAffinity)
	})

	x, err := FromEnv(env, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}

	if x.Task != "Quadrants" {
		t.Error("experiment file from the environment was not loaded")
	}
	if x.Addr != ":9123" || x.CPU != 0 {
		t.Errorf("overrides from .env were not applied: addr %q, cpu %d", x.Addr, x.CPU)
	}
	if x.LogLevel != "warn" {
		t.Errorf("got log level %q, want warn", x.LogLevel)
	}

	c := x.EngineConfig()
	if c.Settings != x.Cadences || c.CPU != 0 {
		t.Errorf("engine config does not match the experiment: %+v", c)
	}
}
