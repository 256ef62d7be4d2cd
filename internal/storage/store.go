// Package storage persists headless runs: a metadata.json per run plus the
// per-tick telemetry as CSV. Runs are telemetry logs, not saved flight
// state; nothing here is ever loaded back into a live simulation.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/avens-io/floatplane/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Takeoff   string             `json:"takeoff"`
	WaterSize float64            `json:"water_size"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Channels are the telemetry columns written to and read from the CSV, in
// order.
var Channels = []string{
	"time", "speed", "altitude", "pitch_deg", "yaw_deg", "roll_deg",
	"bank_deg", "on_water", "impact_bounce", "x", "z",
}

// Save writes one run and returns its ID. IDs carry nanosecond resolution
// so runs saved back to back, as compare does, never collide.
func (s *Store) Save(preset, takeoff string, waterSize float64, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("flight_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: time.Now(),
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		Takeoff:   takeoff,
		WaterSize: waterSize,
		Steps:     result.StepsTaken,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "telemetry.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(Channels); err != nil {
		return "", err
	}

	for _, tele := range result.Telemetry {
		onWater := 0.0
		if tele.OnWater {
			onWater = 1.0
		}
		row := []float64{
			tele.Time, tele.Speed, tele.Altitude, tele.PitchDeg,
			tele.YawDeg, tele.RollDeg, tele.BankDeg, onWater,
			tele.ImpactBounce, tele.Position.X(), tele.Position.Z(),
		}
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return runID, w.Error()
}

// List returns the metadata of every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTelemetry reads a run's telemetry back as named channels.
func (s *Store) LoadTelemetry(runID string) (map[string][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "telemetry.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("run %s: empty telemetry", runID)
	}

	header := records[0]
	channels := make(map[string][]float64, len(header))
	for _, name := range header {
		channels[name] = make([]float64, 0, len(records)-1)
	}

	for _, rec := range records[1:] {
		for i, field := range rec {
			if i >= len(header) {
				break
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: bad value %q: %w", runID, field, err)
			}
			channels[header[i]] = append(channels[header[i]], v)
		}
	}
	return channels, nil
}
