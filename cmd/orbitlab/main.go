package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smahesh/orbitlab/internal/analysis"
	"github.com/smahesh/orbitlab/internal/config"
	"github.com/smahesh/orbitlab/internal/export"
	"github.com/smahesh/orbitlab/internal/metrics"
	"github.com/smahesh/orbitlab/internal/sim"
	"github.com/smahesh/orbitlab/internal/storage"
	"github.com/smahesh/orbitlab/internal/tui"
	"github.com/smahesh/orbitlab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	tmax       float64
	gm         float64
	workers    int
	mass       float64
	radius     float64
	configFile string
	preset     string
	svgPath    string
	svgSize    int
	bodyIndex  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "central-force orbital mechanics lab",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orbitlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and store the trajectories",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored orbits in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index for radius/energy charts")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON, or SVG with --svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "write orbit paths as SVG to this file")
	exportCmd.Flags().IntVar(&svgSize, "size", 800, "SVG edge length in pixels")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate orbital period from a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&bodyIndex, "body", 0, "body index to analyze")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or print one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "energy-drift convergence table over a range of timesteps",
		RunE:  sweepDt,
	}
	sweepCmd.Flags().Float64Var(&tmax, "time", 2.0, "simulated duration")
	sweepCmd.Flags().Float64Var(&gm, "gm", config.FourPiSquared, "gravitational parameter")
	sweepCmd.Flags().Float64Var(&mass, "mass", 0.1, "body mass")
	sweepCmd.Flags().Float64Var(&radius, "radius", 1.0, "circular orbit radius")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, analyzeCmd, liveCmd, presetsCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&tmax, "time", config.DefaultTmax, "simulated duration")
	cmd.Flags().Float64Var(&gm, "gm", config.FourPiSquared, "gravitational parameter")
	cmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel step workers")
	cmd.Flags().Float64Var(&mass, "mass", 0.1, "body mass (single-body default setup)")
	cmd.Flags().Float64Var(&radius, "radius", 1.0, "circular orbit radius (single-body default setup)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset configuration name")
}

// resolveConfig merges preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Bodies = []config.BodyConfig{{Mass: mass, Circular: true, Radius: radius}}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Tmax = tmax
	}
	if cmd.Flags().Changed("gm") {
		cfg.GM = gm
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("mass") || cmd.Flags().Changed("radius") {
		cfg.Bodies = []config.BodyConfig{{Mass: mass, Circular: true, Radius: radius}}
	}

	return cfg, nil
}

func defaultMetrics(cfg *config.Config) []sim.Metric {
	field := cfg.Field()
	return []sim.Metric{
		metrics.NewEnergy(field),
		metrics.NewEnergyDrift(field),
		metrics.NewRadialRange(),
		metrics.NewAngularMomentum(),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	bodies, err := cfg.GetBodies()
	if err != nil {
		return err
	}

	field := cfg.Field()
	s := sim.New(field)
	for _, m := range defaultMetrics(cfg) {
		s.AddMetric(m)
	}

	simCfg := sim.Config{
		Dt:            cfg.Dt,
		Tmax:          cfg.Tmax,
		Workers:       cfg.Workers,
		ValidateState: true,
	}

	result, err := s.Run(context.Background(), bodies, simCfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.GM, simCfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %d bodies, %d steps (dt=%g, tmax=%g)\n",
		runID, len(bodies), result.StepsTaken, cfg.Dt, cfg.Tmax)
	fmt.Printf("energy drift: %.3e\n", result.EnergyDrift)

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s: %.6g\n", name, result.Metrics[name])
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tBODIES\tSTEPS\tDT\tDRIFT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%g\t%.2e\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.NumBodies, r.Steps, r.Dt, r.Drift)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trajectories, _, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}
	if len(trajectories) == 0 {
		return fmt.Errorf("run %s has no trajectories", args[0])
	}

	view := viz.NewOrbitView(28, 1.0)
	view.FitExtent(trajectories)
	view.Plot(trajectories)
	fmt.Println(viz.TitleStyle.Render(fmt.Sprintf("run %s — orbit paths", meta.ID)))
	fmt.Print(view.String())

	if bodyIndex < 0 || bodyIndex >= len(trajectories) {
		return fmt.Errorf("body index %d out of range (%d bodies)", bodyIndex, len(trajectories))
	}
	tr := trajectories[bodyIndex]
	fmt.Println()
	fmt.Println(viz.RadiusChart(tr, 80, 10))
	fmt.Println()
	fmt.Println(viz.EnergyChart(tr, meta.Field(), 80, 10))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	if svgPath != "" {
		trajectories, _, err := st.LoadTrajectories(args[0])
		if err != nil {
			return err
		}
		svg := export.TrajectoriesToSVG(trajectories, svgSize)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trajectories, _, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}
	if bodyIndex < 0 || bodyIndex >= len(trajectories) {
		return fmt.Errorf("body index %d out of range (%d bodies)", bodyIndex, len(trajectories))
	}

	tr := trajectories[bodyIndex]
	xs, _ := tr.Positions()

	period, err := analysis.EstimatePeriod(xs, meta.Dt)
	if err != nil {
		return err
	}
	fmt.Printf("body %d estimated period: %.4f\n", bodyIndex, period)

	// For a near-circular orbit the Kepler period at the mean radius is
	// the cross-check.
	radii := tr.Radii()
	mean := 0.0
	for _, r := range radii {
		mean += r
	}
	mean /= float64(len(radii))
	fmt.Printf("kepler period at mean radius %.4f: %.4f\n", mean, meta.Field().Period(mean))

	fmt.Println()
	fmt.Println(viz.SpectrumChart(analysis.PowerSpectrum(xs), 80, 12))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	bodies, err := cfg.GetBodies()
	if err != nil {
		return err
	}
	steps := int(cfg.Tmax / cfg.Dt)
	return tui.RunLive(cfg.Field(), bodies, cfg.Dt, steps)
}

func showPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		names := config.ListPresets()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	p := config.GetPreset(args[0])
	if p == nil {
		return fmt.Errorf("unknown preset: %s", args[0])
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func sweepDt(cmd *cobra.Command, args []string) error {
	dts := []float64{0.01, 0.005, 0.002, 0.001, 0.0005}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tENERGY DRIFT\tDRIFT/DT^2")

	for _, d := range dts {
		cfg := &config.Config{
			GM: gm, Dt: d, Tmax: tmax, Workers: 1,
			Bodies: []config.BodyConfig{{Mass: mass, Circular: true, Radius: radius}},
		}
		bodies, err := cfg.GetBodies()
		if err != nil {
			return err
		}

		s := sim.New(cfg.Field())
		result, err := s.Run(context.Background(), bodies, sim.Config{
			Dt: d, Tmax: tmax, Workers: 1, ValidateState: true,
		})
		if err != nil {
			return err
		}

		// Velocity-Verlet drift scales as dt^2, so this column should be
		// roughly constant down the table.
		fmt.Fprintf(w, "%g\t%d\t%.3e\t%.3f\n",
			d, result.StepsTaken, result.EnergyDrift, result.EnergyDrift/(d*d))
	}

	return w.Flush()
}
