package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avens-io/floatplane/internal/autopilot"
	"github.com/avens-io/floatplane/internal/flight"
)

const (
	DefaultDt       = 1.0 / 60.0
	DefaultDuration = 60.0
)

type Config struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`

	// Takeoff selects the lift policy: "pitch_gated" (default) or
	// "unconditional" (the superseded variant, kept for comparison).
	Takeoff string `yaml:"takeoff"`

	// CompensatedSmoothing makes the momentum EMAs frame-rate
	// independent instead of the historical fixed-per-tick blend.
	CompensatedSmoothing bool `yaml:"compensated_smoothing"`

	WaterSize float64 `yaml:"water_size"`

	Spawn SpawnConfig `yaml:"spawn"`

	// Plan is an inline flight plan; PlanFile points at a yaml plan on
	// disk. PlanFile wins when both are set.
	Plan     []autopilot.Step `yaml:"plan"`
	PlanFile string           `yaml:"plan_file"`

	Autopilot AutopilotConfig `yaml:"autopilot"`
}

type SpawnConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Z          float64 `yaml:"z"`
	Speed      float64 `yaml:"speed"`
	PitchDeg   float64 `yaml:"pitch_deg"`
	HeadingDeg float64 `yaml:"heading_deg"`
}

type AutopilotConfig struct {
	HoldAltitude bool    `yaml:"hold_altitude"`
	Altitude     float64 `yaml:"altitude"`
	HoldHeading  bool    `yaml:"hold_heading"`
	HeadingDeg   float64 `yaml:"heading_deg"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		Takeoff:   "pitch_gated",
		WaterSize: flight.WaterSize,
		Spawn:     SpawnConfig{Y: 0.1, Speed: flight.MinSpeed},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
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
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	if c.WaterSize <= 0 {
		return fmt.Errorf("water_size must be positive, got %f", c.WaterSize)
	}
	if _, err := c.TakeoffPolicy(); err != nil {
		return err
	}
	if c.Spawn.Speed != 0 && (c.Spawn.Speed < flight.MinSpeed || c.Spawn.Speed > flight.MaxSpeed) {
		return fmt.Errorf("spawn speed %.1f outside [%.0f, %.0f]",
			c.Spawn.Speed, flight.MinSpeed, flight.MaxSpeed)
	}
	return nil
}

func (c *Config) TakeoffPolicy() (flight.TakeoffPolicy, error) {
	switch c.Takeoff {
	case "", "pitch_gated":
		return flight.TakeoffPitchGated, nil
	case "unconditional":
		return flight.TakeoffUnconditional, nil
	default:
		return 0, fmt.Errorf("unknown takeoff policy: %s", c.Takeoff)
	}
}

// Options builds the pipeline options. Call Validate first.
func (c *Config) Options() flight.Options {
	opts := flight.DefaultOptions()
	policy, err := c.TakeoffPolicy()
	if err == nil {
		opts.Takeoff = policy
	}
	opts.CompensatedSmoothing = c.CompensatedSmoothing
	opts.BoundsRadius = c.WaterSize * 0.8
	return opts
}
