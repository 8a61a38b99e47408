package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/lander/internal/config"
	"github.com/san-kum/lander/internal/lander"
	"github.com/san-kum/lander/internal/metrics"
	"github.com/san-kum/lander/internal/scenario"
	"github.com/san-kum/lander/internal/sim"
	"github.com/san-kum/lander/internal/storage"
	"github.com/san-kum/lander/internal/viz"
)

var (
	dataDir    string
	duration   float64
	configFile string
	autopilot  bool
	attitude   bool
	fuel       float64
	noSave     bool
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lander",
		Short: "Mars lander descent simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "simulated duration (s)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().BoolVar(&autopilot, "autopilot", false, "enable the descent autopilot")
	runCmd.Flags().BoolVar(&attitude, "attitude", false, "hold attitude")
	runCmd.Flags().Float64Var(&fuel, "fuel", 1.0, "initial fuel fraction")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list scenario presets",
		RunE:  listScenarios,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run trajectory to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live telemetry",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().BoolVar(&autopilot, "autopilot", false, "enable the descent autopilot")
	liveCmd.Flags().Float64Var(&fuel, "fuel", 1.0, "initial fuel fraction")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, scenariosCmd, listCmd, plotCmd, exportJSONCmd, exportCSVCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// prepareState merges scenario defaults, config file and CLI flags (in that
// precedence order, flags winning) into a run-ready state.
func prepareState(cmd *cobra.Command, args []string) (*lander.State, *scenario.Scenario, *config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	id := cfg.Scenario
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("scenario id must be an integer: %q", args[0])
		}
		id = parsed
	}

	sc, err := scenario.Get(id)
	if err != nil {
		return nil, nil, nil, err
	}

	st := sc.InitState()
	cfg.Apply(st)

	if cmd.Flags().Changed("autopilot") {
		st.AutopilotEnabled = autopilot
	}
	if cmd.Flags().Changed("attitude") {
		st.StabilizedAttitude = attitude
	}
	if cmd.Flags().Changed("fuel") {
		if fuel < 0 || fuel > 1 {
			return nil, nil, nil, fmt.Errorf("fuel must be in [0,1], got %f", fuel)
		}
		st.Fuel = fuel
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}

	return st, sc, cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	st, sc, cfg, err := prepareState(cmd, args)
	if err != nil {
		return err
	}

	simulator := sim.New(lander.NewMarsEnvironment())
	simulator.AddMetric(metrics.NewOrbitalEnergyDrift())
	simulator.AddMetric(metrics.NewPeakDescentRate())
	simulator.AddMetric(metrics.NewFuelUsed())
	simulator.AddMetric(metrics.NewControlEffort())

	runCfg := sim.DefaultConfig()
	runCfg.Duration = cfg.Duration

	fmt.Printf("running scenario %d: %s\n", sc.ID, sc.Description)
	start := time.Now()

	result, err := simulator.Run(context.Background(), st, runCfg)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("outcome: %s\n", result.Outcome)
	fmt.Printf("steps: %d (%.1f s simulated)\n", result.StepsTaken, float64(result.StepsTaken)*st.Dt)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if noSave {
		return nil
	}

	store := storage.New(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(sc.ID, sc.Description, st.Dt, cfg.Duration, st.AutopilotEnabled, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func listScenarios(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTION\tAUTOPILOT\tATTITUDE")

	for id := 0; id < scenario.NumSlots; id++ {
		sc, err := scenario.Get(id)
		if err != nil {
			fmt.Fprintf(w, "%d\t(reserved)\t\t\n", id)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\n", sc.ID, sc.Description, sc.AutopilotEnabled, sc.StabilizedAttitude)
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tOUTCOME\tSTEPS\tAUTOPILOT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d %s\t%s\t%s\t%d\t%v\n",
			run.ID,
			run.Scenario,
			run.Description,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Outcome,
			run.Steps,
			run.Autopilot,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %d %s\n", meta.Scenario, meta.Description)
	fmt.Printf("outcome: %s, samples: %d\n\n", meta.Outcome, len(samples))

	traces := []struct {
		caption string
		value   func(s sim.Sample) float64
	}{
		{"altitude (m)", func(s sim.Sample) float64 { return s.Altitude }},
		{"descent rate (m/s)", func(s sim.Sample) float64 { return s.DescentRate }},
		{"throttle", func(s sim.Sample) float64 { return s.Throttle }},
		{"fuel", func(s sim.Sample) float64 { return s.Fuel }},
	}

	for _, trace := range traces {
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = trace.value(s)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(trace.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, samples)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	samples, err := store.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "altitude", "descent_rate", "speed", "throttle", "fuel", "parachute"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Altitude, 'f', 6, 64),
			strconv.FormatFloat(s.DescentRate, 'f', 6, 64),
			strconv.FormatFloat(s.Speed, 'f', 6, 64),
			strconv.FormatFloat(s.Throttle, 'f', 6, 64),
			strconv.FormatFloat(s.Fuel, 'f', 6, 64),
			strconv.Itoa(int(s.Parachute)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	st, sc, cfg, err := prepareState(cmd, args)
	if err != nil {
		return err
	}

	runCfg := sim.DefaultConfig()
	runCfg.Duration = cfg.Duration

	m := viz.NewModel(st, lander.NewMarsEnvironment(), runCfg, sc.Description, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
