package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/strukt-dev/strukt/internal/config"
	"github.com/strukt-dev/strukt/internal/report"
	"github.com/strukt-dev/strukt/internal/scene"
	"github.com/strukt-dev/strukt/internal/storage"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/tui"
)

var (
	dataDir    string
	configFile string
	fixFloat   bool
	magnitude  float64
	noSave     bool
	showPlot   bool
	// sweep range
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	// svg output
	svgOut    string
	svgWidth  int
	svgHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strukt",
		Short: "structural stress and support sandbox",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".strukt", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "engine tuning file (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [scene]",
		Short: "run a stress simulation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().BoolVar(&fixFloat, "fix", false, "reposition floating bodies before running")
	runCmd.Flags().Float64Var(&magnitude, "magnitude", -1, "override force magnitude")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot per-body stress ratios")

	checkCmd := &cobra.Command{
		Use:   "check [scene]",
		Short: "validate the support graph",
		Args:  cobra.ExactArgs(1),
		RunE:  checkScene,
	}
	checkCmd.Flags().BoolVar(&fixFloat, "fix", false, "reposition floating bodies")

	sweepCmd := &cobra.Command{
		Use:   "sweep [scene]",
		Short: "plot max stress ratio over a magnitude range",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepMagnitude,
	}
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "starting magnitude")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 10, "ending magnitude")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 50, "number of samples")

	liveCmd := &cobra.Command{
		Use:   "live [scene]",
		Short: "interactive force explorer",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range scene.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [scene]",
		Short: "export a stress-colored elevation view",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVar(&svgOut, "out", "elevation.svg", "output file")
	svgCmd.Flags().IntVar(&svgWidth, "width", 640, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 480, "image height")
	svgCmd.Flags().BoolVar(&fixFloat, "fix", false, "reposition floating bodies before rendering")

	legendCmd := &cobra.Command{
		Use:   "legend",
		Short: "show the stress color ramp",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(report.Legend())
		},
	}

	rootCmd.AddCommand(runCmd, checkCmd, sweepCmd, liveCmd, presetsCmd, listCmd, exportCmd, svgCmd, legendCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScene resolves a preset name or a yaml file path.
func loadScene(arg string) (*scene.Scene, error) {
	if s := scene.GetPreset(arg); s != nil {
		return s, nil
	}
	s, err := scene.Load(arg)
	if err != nil {
		return nil, fmt.Errorf("scene %q is neither a preset (%v) nor a readable file: %w",
			arg, scene.ListPresets(), err)
	}
	return s, nil
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	bodies, force, err := s.Build()
	if err != nil {
		return err
	}
	if force == nil {
		return fmt.Errorf("scene %q declares no force", args[0])
	}
	if magnitude >= 0 {
		force.Magnitude = magnitude
	}

	checker := cfg.Checker()
	rep := checker.Validate(bodies)
	report.Validation(os.Stdout, rep)
	if !rep.Valid && fixFloat {
		moved := checker.Fix(bodies)
		fmt.Printf("repositioned %d bodies\n", len(moved))
		rep = checker.Validate(bodies)
		if !rep.Valid {
			// Can happen for support cycles at equal height; report, don't retry.
			fmt.Printf("warning: %d bodies still unsupported after fix: %v\n",
				len(rep.Floating), rep.Floating)
		}
	}

	res := cfg.Engine().Run(bodies, *force)

	fmt.Println()
	report.Summary(os.Stdout, res)
	fmt.Println()
	report.Table(os.Stdout, bodies, res)
	if showPlot {
		fmt.Println()
		fmt.Println(report.RatioPlot(res))
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sceneName(s, args[0]), cfg.ForceScale, cfg.SupportEpsilon, *force, bodies, res)
	if err != nil {
		return err
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func sceneName(s *scene.Scene, arg string) string {
	if s.Name != "" {
		return s.Name
	}
	return arg
}

func checkScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	bodies, _, err := s.Build()
	if err != nil {
		return err
	}

	checker := cfg.Checker()
	rep := checker.Validate(bodies)
	report.Validation(os.Stdout, rep)
	if rep.Valid || !fixFloat {
		return nil
	}

	moved := checker.Fix(bodies)
	for _, i := range moved {
		fmt.Printf("body %d -> y=%.3f\n", i, bodies[i].Position.Y)
	}
	rep = checker.Validate(bodies)
	report.Validation(os.Stdout, rep)
	return nil
}

func sweepMagnitude(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	bodies, force, err := s.Build()
	if err != nil {
		return err
	}
	if force == nil {
		return fmt.Errorf("scene %q declares no force", args[0])
	}
	if sweepSteps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", sweepSteps)
	}
	if sweepTo <= sweepFrom {
		return fmt.Errorf("empty sweep range [%v, %v]", sweepFrom, sweepTo)
	}

	engine := cfg.Engine()
	mags := make([]float64, sweepSteps)
	ratios := make([]float64, sweepSteps)
	failAt := -1.0
	for i := 0; i < sweepSteps; i++ {
		f := *force
		f.Magnitude = sweepFrom + (sweepTo-sweepFrom)*float64(i)/float64(sweepSteps-1)
		res := engine.Run(bodies, f)
		mags[i] = f.Magnitude
		ratios[i] = res.MaxRatio
		if failAt < 0 && res.FailedBodies > 0 {
			failAt = f.Magnitude
		}
	}

	fmt.Println(report.SweepPlot(mags, ratios))
	if failAt >= 0 {
		fmt.Printf("first failure at magnitude %.4f\n", failAt)
	} else {
		fmt.Println("no failures in range")
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	bodies, force, err := s.Build()
	if err != nil {
		return err
	}
	f := stress.Force{Magnitude: 1}
	if force != nil {
		f = *force
	}
	return tui.Run(sceneName(s, args[0]), bodies, f, cfg.Engine())
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tscene\ttime\tbodies\tfailed\tmax ratio")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%.4f\n",
			r.ID, r.Scene, r.Timestamp.Format("2006-01-02 15:04:05"),
			r.TotalBodies, r.FailedBodies, r.MaxStressRatio)
	}
	return tw.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Meta(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := loadScene(args[0])
	if err != nil {
		return err
	}
	bodies, force, err := s.Build()
	if err != nil {
		return err
	}
	if fixFloat {
		cfg.Checker().Fix(bodies)
	}

	var res *stress.Result
	if force != nil {
		res = cfg.Engine().Run(bodies, *force)
	}
	svg := report.ElevationSVG(bodies, res, svgWidth, svgHeight)
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", svgOut)
	return nil
}
