package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avens-io/floatplane/internal/analysis"
	"github.com/avens-io/floatplane/internal/autopilot"
	"github.com/avens-io/floatplane/internal/config"
	"github.com/avens-io/floatplane/internal/export"
	"github.com/avens-io/floatplane/internal/flight"
	"github.com/avens-io/floatplane/internal/metrics"
	"github.com/avens-io/floatplane/internal/sim"
	"github.com/avens-io/floatplane/internal/storage"
	"github.com/avens-io/floatplane/internal/tui"
	"github.com/avens-io/floatplane/internal/world"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	takeoff    string
	planFile   string
	channel    string
	outFile    string
	svgSize    int
	topK       int
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	rootCmd := &cobra.Command{
		Use:   "floatplane",
		Short: "seaplane flight and water dynamics simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFly(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".floatplane", "run data directory")

	flyCmd := &cobra.Command{
		Use:   "fly",
		Short: "interactive cockpit",
		RunE:  runFly,
	}
	flyCmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	flyCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless scripted run",
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration override")
	runCmd.Flags().StringVar(&takeoff, "takeoff", "", "takeoff policy override")
	runCmd.Flags().StringVar(&planFile, "plan", "", "flight plan file (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a telemetry channel",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&channel, "channel", "altitude", "telemetry channel")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "dominant oscillation frequencies of a channel",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&channel, "channel", "bank_deg", "telemetry channel")
	analyzeCmd.Flags().IntVar(&topK, "top", 5, "number of peaks")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "dump run metadata and telemetry as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the top-down flight track as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "track.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "image size in px")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run both takeoff policies side by side",
		RunE:  comparePolicies,
	}
	compareCmd.Flags().StringVar(&preset, "preset", "circuit", "preset to compare under")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(flyCmd, runCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportSVGCmd, compareCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file, and flag overrides.
func resolveConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if dt > 0 {
		cfg.Dt = dt
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if takeoff != "" {
		cfg.Takeoff = takeoff
	}
	if planFile != "" {
		cfg.PlanFile = planFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// assemble builds a fresh world, plane, and control source from the config.
func assemble(cfg *config.Config) (*sim.Runner, error) {
	spawn := cfg.Spawn
	body := world.SpawnBody(
		mgl64.Vec3{spawn.X, spawn.Y, spawn.Z},
		mgl64.DegToRad(spawn.PitchDeg),
		mgl64.DegToRad(spawn.HeadingDeg),
	)
	w, err := world.New(cfg.WaterSize, body)
	if err != nil {
		return nil, err
	}

	plane := flight.NewPlane(body, cfg.Options())
	if spawn.Speed > 0 {
		plane.State.Speed = spawn.Speed
		plane.State.Momentum = body.Forward().Mul(spawn.Speed)
	}

	var source sim.Source
	switch {
	case cfg.Autopilot.HoldAltitude || cfg.Autopilot.HoldHeading:
		ap := autopilot.New(plane)
		if cfg.Autopilot.HoldAltitude {
			ap.HoldAltitude(cfg.Autopilot.Altitude)
		}
		if cfg.Autopilot.HoldHeading {
			ap.HoldHeading(mgl64.DegToRad(cfg.Autopilot.HeadingDeg))
		}
		source = ap
	case cfg.PlanFile != "":
		plan, err := autopilot.LoadPlan(cfg.PlanFile)
		if err != nil {
			return nil, err
		}
		source = plan
	case len(cfg.Plan) > 0:
		plan, err := autopilot.NewPlan(cfg.Plan)
		if err != nil {
			return nil, err
		}
		source = plan
	default:
		source = autopilot.None{}
	}

	runner := sim.New(plane, w, source)
	runner.AddMetric(metrics.NewWaterTime())
	runner.AddMetric(metrics.NewPeakAltitude())
	runner.AddMetric(metrics.NewControlEffort())
	runner.AddMetric(metrics.NewHardLandings())
	return runner, nil
}

func runFly(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	return tui.Run(cfg)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	runner, err := assemble(cfg)
	if err != nil {
		return err
	}

	simCfg := sim.Config{Dt: cfg.Dt, Duration: cfg.Duration, ValidateState: true}
	logger.Info("starting run", "preset", preset, "dt", cfg.Dt, "duration", cfg.Duration)

	result, err := runner.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		logger.Warn("run aborted early", "error", e)
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(preset, cfg.Takeoff, cfg.WaterSize, simCfg, result)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", runID, "steps", result.StepsTaken)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "run\t%s\n", runID)
	for name, value := range result.Metrics {
		fmt.Fprintf(w, "%s\t%.3f\n", name, value)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTAKEOFF\tSTEPS\tWATER%\tPEAK ALT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%.1f\n",
			r.ID, r.Preset, r.Takeoff, r.Steps,
			r.Metrics["water_time"]*100, r.Metrics["peak_altitude"])
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	channels, err := store.LoadTelemetry(args[0])
	if err != nil {
		return err
	}
	data, ok := channels[channel]
	if !ok {
		return fmt.Errorf("unknown channel %q (have: %v)", channel, storage.Channels)
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(90),
		asciigraph.Caption(fmt.Sprintf("%s — %s", args[0], channel)),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	channels, err := store.LoadTelemetry(args[0])
	if err != nil {
		return err
	}
	data, ok := channels[channel]
	if !ok {
		return fmt.Errorf("unknown channel %q (have: %v)", channel, storage.Channels)
	}

	peaks := analysis.DominantFrequencies(data, meta.Dt, topK)
	if len(peaks) == 0 {
		fmt.Println("not enough samples")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "FREQ (Hz)\tPOWER\n")
	for _, p := range peaks {
		fmt.Fprintf(w, "%.3f\t%.1f\n", p.Frequency, p.Power)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	channels, err := store.LoadTelemetry(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"metadata":  meta,
		"telemetry": channels,
	})
}

func exportSVG(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.LoadMetadata(args[0])
	if err != nil {
		return err
	}
	channels, err := store.LoadTelemetry(args[0])
	if err != nil {
		return err
	}

	xs, zs := channels["x"], channels["z"]
	points := make([]export.TrackPoint, 0, len(xs))
	for i := range xs {
		if i < len(zs) {
			points = append(points, export.TrackPoint{X: xs[i], Z: zs[i]})
		}
	}

	waterSize := meta.WaterSize
	if waterSize <= 0 {
		waterSize = flight.WaterSize
	}
	svg := export.TrackToSVG(points, waterSize, svgSize)
	if svg == "" {
		return fmt.Errorf("run %s has no track to export", args[0])
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func comparePolicies(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig()
	if err != nil {
		return err
	}

	variants := make([]sim.Variant, 0, 2)
	for _, policy := range []string{"pitch_gated", "unconditional"} {
		cfg := *base
		cfg.Takeoff = policy
		cfgCopy := cfg
		variants = append(variants, sim.Variant{
			Name: policy,
			Build: func() *sim.Runner {
				runner, err := assemble(&cfgCopy)
				if err != nil {
					logger.Error("assemble failed", "policy", cfgCopy.Takeoff, "error", err)
					os.Exit(1)
				}
				return runner
			},
		})
	}

	simCfg := sim.Config{Dt: base.Dt, Duration: base.Duration, ValidateState: true}
	results, err := sim.Compare(context.Background(), variants, simCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "POLICY\tWATER%\tPEAK ALT\tEFFORT\tHARD LANDINGS")
	for _, v := range variants {
		r := results[v.Name]
		fmt.Fprintf(w, "%s\t%.0f\t%.1f\t%.1f\t%.0f\n", v.Name,
			r.Metrics["water_time"]*100, r.Metrics["peak_altitude"],
			r.Metrics["control_effort"], r.Metrics["hard_landings"])
	}
	return w.Flush()
}
