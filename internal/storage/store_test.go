package storage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/avens-io/floatplane/internal/flight"
	"github.com/avens-io/floatplane/internal/sim"
)

func sampleResult(steps int) *sim.Result {
	result := &sim.Result{
		Metrics:    map[string]float64{"peak_altitude": 42.5, "water_time": 0.25},
		StepsTaken: steps,
	}
	for i := 0; i < steps; i++ {
		result.Telemetry = append(result.Telemetry, flight.Telemetry{
			Time:     float64(i) / 60,
			Speed:    25 + float64(i),
			Altitude: float64(i) * 2,
			OnWater:  i == 0,
			Position: mgl64.Vec3{float64(i), 0, -float64(i)},
		})
	}
	return result
}

func TestSaveAndLoadRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	cfg := sim.Config{Dt: 1.0 / 60.0, Duration: 30}
	runID, err := store.Save("glassy", "pitch_gated", 1500, cfg, sampleResult(5))
	if err != nil {
		t.Fatal(err)
	}

	meta, err := store.LoadMetadata(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.ID != runID || meta.Preset != "glassy" || meta.Takeoff != "pitch_gated" {
		t.Errorf("metadata did not roundtrip: %+v", meta)
	}
	if meta.Steps != 5 || meta.WaterSize != 1500 {
		t.Errorf("run shape did not roundtrip: %+v", meta)
	}
	if meta.Metrics["peak_altitude"] != 42.5 {
		t.Errorf("metrics did not roundtrip: %v", meta.Metrics)
	}

	channels, err := store.LoadTelemetry(runID)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range Channels {
		if len(channels[name]) != 5 {
			t.Errorf("channel %s: expected 5 rows, got %d", name, len(channels[name]))
		}
	}
	if channels["speed"][2] != 27 {
		t.Errorf("speed channel wrong, got %f", channels["speed"][2])
	}
	if channels["on_water"][0] != 1 || channels["on_water"][1] != 0 {
		t.Errorf("on_water flag should encode as 1/0, got %v", channels["on_water"][:2])
	}
	if channels["z"][3] != -3 {
		t.Errorf("position z wrong, got %f", channels["z"][3])
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	cfg := sim.Config{Dt: 1.0 / 60.0, Duration: 1}
	first, err := store.Save("", "pitch_gated", 1500, cfg, sampleResult(1))
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Save("", "unconditional", 1500, cfg, sampleResult(1))
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("back-to-back saves must get distinct run IDs")
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("expected newest first, got %s then %s", runs[0].ID, runs[1].ID)
	}
}

func TestListEmptyStore(t *testing.T) {
	store := New(t.TempDir())

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadMetadataMissingRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.LoadMetadata("flight_0"); err == nil {
		t.Error("expected an error for a missing run")
	}
}
