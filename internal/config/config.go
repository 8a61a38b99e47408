// Package config loads run configuration from YAML files. CLI flags take
// precedence over file values; file values take precedence over scenario
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/lander/internal/lander"
)

const (
	DefaultDuration = 300.0
	DefaultDataDir  = ".lander"
)

type Config struct {
	Scenario  int       `yaml:"scenario"`
	Duration  float64   `yaml:"duration"`
	DataDir   string    `yaml:"data_dir"`
	Overrides Overrides `yaml:"overrides"`
}

// Overrides optionally replace per-scenario initial flags. Nil fields leave
// the scenario defaults untouched.
type Overrides struct {
	Autopilot          *bool    `yaml:"autopilot"`
	StabilizedAttitude *bool    `yaml:"stabilized_attitude"`
	Fuel               *float64 `yaml:"fuel"`
}

func DefaultConfig() *Config {
	return &Config{
		Duration: DefaultDuration,
		DataDir:  DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %f", c.Duration)
	}
	if f := c.Overrides.Fuel; f != nil && (*f < 0 || *f > 1) {
		return fmt.Errorf("config: fuel must be in [0,1], got %f", *f)
	}
	return nil
}

// Apply writes the configured overrides onto a freshly initialized state.
func (c *Config) Apply(s *lander.State) {
	if c.Overrides.Autopilot != nil {
		s.AutopilotEnabled = *c.Overrides.Autopilot
	}
	if c.Overrides.StabilizedAttitude != nil {
		s.StabilizedAttitude = *c.Overrides.StabilizedAttitude
	}
	if c.Overrides.Fuel != nil {
		s.Fuel = *c.Overrides.Fuel
	}
}
