package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/integrators"
	"github.com/san-kum/thermsim/internal/physics"
	"github.com/san-kum/thermsim/internal/sim"
)

const (
	DefaultKp       = 2.0
	DefaultKi       = 1.0
	DefaultKd       = 0.05
	DefaultLogLevel = "info"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Gains      control.Gains    `yaml:"gains"`
	Simulation SimulationConfig `yaml:"simulation"`
	Plant      PlantConfig      `yaml:"plant"`
	LogLevel   string           `yaml:"log_level"`
}

type SimulationConfig struct {
	Dt          float64      `yaml:"dt"`
	Duration    float64      `yaml:"duration"`
	InitialTemp float64      `yaml:"initial_temp"`
	Schedule    sim.Schedule `yaml:"schedule"`
	Integrator  string       `yaml:"integrator"`
}

type PlantConfig struct {
	Ambient      float64 `yaml:"ambient"`
	High         float64 `yaml:"high"`
	Low          float64 `yaml:"low"`
	HeatTransfer float64 `yaml:"heat_transfer"`
}

func DefaultConfig() *Config {
	return &Config{
		Gains: control.Gains{
			Prop:  DefaultKp,
			Integ: DefaultKi,
			Deriv: DefaultKd,
		},
		Simulation: SimulationConfig{
			Dt:         sim.DefaultDt,
			Duration:   sim.DefaultDuration,
			Schedule:   sim.DefaultSchedule(),
			Integrator: integrators.Default,
		},
		Plant: PlantConfig{
			Ambient:      physics.DefaultAmbient,
			High:         physics.DefaultHigh,
			Low:          physics.DefaultLow,
			HeatTransfer: physics.DefaultHeatTransfer,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load overlays the YAML file at path on the defaults and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
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

// Validate checks the simulation section. Gains are left to the driver so
// the interactive prompt can report them separately.
func (c *Config) Validate() error {
	if err := c.SimConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Plant.Low > c.Plant.High {
		return fmt.Errorf("%w: plant low %g above high %g", ErrInvalidConfig, c.Plant.Low, c.Plant.High)
	}
	return nil
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:          c.Simulation.Dt,
		Duration:    c.Simulation.Duration,
		InitialTemp: c.Simulation.InitialTemp,
		Schedule:    c.Simulation.Schedule,
		Integrator:  c.Simulation.Integrator,
		Plant: physics.Thermal{
			Ambient:      c.Plant.Ambient,
			High:         c.Plant.High,
			Low:          c.Plant.Low,
			HeatTransfer: c.Plant.HeatTransfer,
		},
	}
}
