// Package config provides the simulator configuration, loaded from YAML.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the simulator configuration.
type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Log       LogConfig       `yaml:"log"`
}

// SimulatorConfig controls how the controller is driven on the host.
type SimulatorConfig struct {
	// TickMs is the length of one countdown step. 1000 runs in real time.
	TickMs int `yaml:"tick_ms" default:"1000" validate:"gte=1,lte=10000"`
	// PauseMs is slept between a status report and the next phase.
	PauseMs int `yaml:"pause_ms" validate:"gte=0,lte=10000"`
	// MaxPhases stops the run after that many phases; 0 runs until interrupted.
	MaxPhases uint64 `yaml:"max_phases"`
	Color     *bool  `yaml:"color" default:"true"`
	Label     string `yaml:"label" default:"traffic light running" validate:"required"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn warning error"`
	Output string `yaml:"output" default:"stdout"`
}

// Tick returns the countdown step length.
func (s SimulatorConfig) Tick() time.Duration {
	return time.Duration(s.TickMs) * time.Millisecond
}

// Pause returns the pause between phases.
func (s SimulatorConfig) Pause() time.Duration {
	return time.Duration(s.PauseMs) * time.Millisecond
}

// ColorEnabled reports whether the terminal output is coloured.
func (s SimulatorConfig) ColorEnabled() bool {
	return s.Color == nil || *s.Color
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// Load loads configuration from a YAML file. An empty path yields the
// defaults. Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	}

	if err := cfg.overrideFromEnv(); err != nil {
		return nil, err
	}

	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() error {
	if v := os.Getenv("TRAFFICSIM_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid TRAFFICSIM_TICK_MS %q", v)
		}
		c.Simulator.TickMs = ms
	}
	if v := os.Getenv("TRAFFICSIM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}
	return nil
}
