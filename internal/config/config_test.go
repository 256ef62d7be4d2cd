package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avens-io/floatplane/internal/autopilot"
	"github.com/avens-io/floatplane/internal/flight"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Dt != DefaultDt || cfg.Duration != DefaultDuration {
		t.Error("default tick parameters are off")
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dt", func(c *Config) { c.Dt = 0 }},
		{"negative duration", func(c *Config) { c.Duration = -1 }},
		{"zero water size", func(c *Config) { c.WaterSize = 0 }},
		{"unknown takeoff", func(c *Config) { c.Takeoff = "catapult" }},
		{"spawn speed too slow", func(c *Config) { c.Spawn.Speed = 10 }},
		{"spawn speed too fast", func(c *Config) { c.Spawn.Speed = 90 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSpawnSpeedZeroMeansDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn.Speed = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero spawn speed is the unset sentinel: %v", err)
	}
}

func TestTakeoffPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    flight.TakeoffPolicy
		wantErr bool
	}{
		{"", flight.TakeoffPitchGated, false},
		{"pitch_gated", flight.TakeoffPitchGated, false},
		{"unconditional", flight.TakeoffUnconditional, false},
		{"catapult", 0, true},
	}

	for _, tt := range tests {
		cfg := &Config{Takeoff: tt.in}
		got, err := cfg.TakeoffPolicy()
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("%q: got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOptionsCarryConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Takeoff = "unconditional"
	cfg.CompensatedSmoothing = true
	cfg.WaterSize = 1000

	opts := cfg.Options()
	if opts.Takeoff != flight.TakeoffUnconditional {
		t.Error("takeoff policy not carried")
	}
	if !opts.CompensatedSmoothing {
		t.Error("compensated smoothing not carried")
	}
	if opts.BoundsRadius != 800 {
		t.Errorf("bounds radius should track water size, got %f", opts.BoundsRadius)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flight.yaml")

	cfg := DefaultConfig()
	cfg.Duration = 12
	cfg.Takeoff = "unconditional"
	cfg.Spawn = SpawnConfig{Y: 80, Speed: 60, PitchDeg: -5, HeadingDeg: 90}
	cfg.Plan = []autopilot.Step{{At: 1, Duration: 3, Hold: []string{"throttle-up"}}}

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Duration != 12 || loaded.Takeoff != "unconditional" {
		t.Errorf("run parameters did not roundtrip: %+v", loaded)
	}
	if loaded.Spawn != cfg.Spawn {
		t.Errorf("spawn did not roundtrip: %+v", loaded.Spawn)
	}
	if len(loaded.Plan) != 1 || loaded.Plan[0].Hold[0] != "throttle-up" {
		t.Errorf("plan did not roundtrip: %+v", loaded.Plan)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("duration: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// A partial file only overrides what it names.
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Duration != 5 {
		t.Errorf("explicit duration lost: %f", loaded.Duration)
	}
	if loaded.Dt != DefaultDt || loaded.WaterSize != flight.WaterSize {
		t.Errorf("unnamed keys should keep their defaults: %+v", loaded)
	}
}

func TestLoadRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("dt: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestPresetsValidateAndResolve(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Fatal("expected built-in presets")
	}

	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if cfg == nil {
				t.Fatal("listed preset should resolve")
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset must validate: %v", err)
			}
			if _, err := autopilot.NewPlan(cfg.Plan); err != nil {
				t.Errorf("preset plan must resolve: %v", err)
			}
		})
	}
}

func TestGetPresetUnknown(t *testing.T) {
	if GetPreset("barrel-roll") != nil {
		t.Error("unknown preset should be nil")
	}
}
