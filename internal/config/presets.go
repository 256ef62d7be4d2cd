package config

import (
	"sort"

	"github.com/avens-io/floatplane/internal/autopilot"
	"github.com/avens-io/floatplane/internal/flight"
)

// Presets are known-interesting starting situations for headless runs and
// the interactive cockpit.
var Presets = map[string]*Config{
	// At rest on calm water, idle throttle. Exercises the stop cascade
	// down into sailing mode.
	"glassy": {
		Dt: DefaultDt, Duration: 30, Takeoff: "pitch_gated",
		WaterSize: flight.WaterSize,
		Spawn:     SpawnConfig{Y: 0.1, Speed: flight.MinSpeed},
	},

	// Airborne at full speed with the throttle pinned; good for bank and
	// bounds behaviour.
	"overspeed": {
		Dt: DefaultDt, Duration: 60, Takeoff: "pitch_gated",
		WaterSize: flight.WaterSize,
		Spawn:     SpawnConfig{Y: 120, Speed: flight.MaxSpeed},
		Plan: []autopilot.Step{
			{At: 0, Duration: 60, Hold: []string{"throttle-up"}},
		},
	},

	// Descending toward the surface nose down; lands hard enough to
	// trigger the impact bounce.
	"splashdown": {
		Dt: DefaultDt, Duration: 45, Takeoff: "pitch_gated",
		WaterSize: flight.WaterSize,
		Spawn:     SpawnConfig{Y: 40, Speed: 60, PitchDeg: -10},
	},

	// A full circuit: throttle up on the water, rotate, climb, turn,
	// then ease off and settle back down.
	"circuit": {
		Dt: DefaultDt, Duration: 120, Takeoff: "pitch_gated",
		WaterSize: flight.WaterSize,
		Spawn:     SpawnConfig{Y: 0.1, Speed: flight.MinSpeed},
		Plan: []autopilot.Step{
			{At: 0, Duration: 40, Hold: []string{"throttle-up"}},
			{At: 8, Duration: 14, Hold: []string{"pitch-up"}},
			{At: 30, Duration: 10, Hold: []string{"roll-left"}},
			{At: 55, Duration: 30, Hold: []string{"throttle-down"}},
			// Stick forward to drop the nose for the descent.
			{At: 70, Duration: 8, Hold: []string{"pitch-up"}},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
