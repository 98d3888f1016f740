package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/daelab/internal/config"
	"github.com/san-kum/daelab/internal/dae"
	"github.com/san-kum/daelab/internal/freq"
	"github.com/san-kum/daelab/internal/store"
	"github.com/san-kum/daelab/internal/tui"
	"github.com/san-kum/daelab/internal/viz"
)

var (
	configFile string
	frequency  float64
	startExp   float64
	endExp     float64
	numPoints  int
	plotWidth  int
	plotHeight int
	csvPath    string
	jsonPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "daelab",
		Short: "linear DAE regularity analysis and frequency response lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [preset]",
		Short: "show a system's matrices and classification",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showInfo,
	}
	infoCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")

	evalCmd := &cobra.Command{
		Use:   "eval [preset]",
		Short: "evaluate the transfer matrix at one frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE:  evalResponse,
	}
	evalCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")
	evalCmd.Flags().Float64Var(&frequency, "freq", 1.0, "angular frequency w (rad/s), evaluated at s = jw")

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "sweep the frequency response and export it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepResponse,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")
	sweepCmd.Flags().Float64Var(&startExp, "start", config.DefaultStartExp, "start decade (10^start rad/s)")
	sweepCmd.Flags().Float64Var(&endExp, "end", config.DefaultEndExp, "end decade (10^end rad/s)")
	sweepCmd.Flags().IntVar(&numPoints, "points", config.DefaultPoints, "number of log-spaced samples")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write sweep to CSV file")
	sweepCmd.Flags().StringVar(&jsonPath, "json", "", "write sweep to JSON file")

	bodeCmd := &cobra.Command{
		Use:   "bode [preset]",
		Short: "render a terminal Bode plot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  bodePlot,
	}
	bodeCmd.Flags().StringVar(&configFile, "config", "", "system definition file (yaml)")
	bodeCmd.Flags().Float64Var(&startExp, "start", config.DefaultStartExp, "start decade")
	bodeCmd.Flags().Float64Var(&endExp, "end", config.DefaultEndExp, "end decade")
	bodeCmd.Flags().IntVar(&numPoints, "points", config.DefaultPoints, "number of samples")
	bodeCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	bodeCmd.Flags().IntVar(&plotHeight, "height", 8, "plot height per panel")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in example systems",
		RunE:  listPresets,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive Bode explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(infoCmd, evalCmd, sweepCmd, bodeCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getSystem resolves the system from --config, a preset name argument, or
// the default preset, in that order.
func getSystem(args []string) (*dae.System, *config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	case len(args) > 0:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	default:
		cfg = config.GetPreset("lowpass")
	}

	sys, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return sys, cfg, nil
}

func showInfo(cmd *cobra.Command, args []string) error {
	sys, _, err := getSystem(args)
	if err != nil {
		return err
	}
	fmt.Println(sys)
	return nil
}

func evalResponse(cmd *cobra.Command, args []string) error {
	sys, _, err := getSystem(args)
	if err != nil {
		return err
	}

	s := complex(0, frequency)
	h, err := sys.Evaluate(s)
	if err != nil {
		return err
	}
	mag, phase, err := freq.Response(sys, s)
	if err != nil {
		return err
	}

	fmt.Printf("H(j%g) for %s:\n\n", frequency, sys.Label())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OUT\tIN\tRE\tIM\tMAG (dB)\tPHASE (deg)")
	p, m := h.Dims()
	for i := 0; i < p; i++ {
		for j := 0; j < m; j++ {
			z := h.At(i, j)
			fmt.Fprintf(w, "%d\t%d\t%.6g\t%.6g\t%.4f\t%.4f\n",
				i+1, j+1, real(z), imag(z), mag.At(i, j), phase.At(i, j))
		}
	}
	return w.Flush()
}

func sweepResponse(cmd *cobra.Command, args []string) error {
	sys, _, err := getSystem(args)
	if err != nil {
		return err
	}

	sw, err := freq.ResponseRange(sys, startExp, endExp, numPoints)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d samples, %.3g .. %.3g rad/s\n",
		sys.Label(), len(sw.Freqs), sw.Freqs[0], sw.Freqs[len(sw.Freqs)-1])

	if csvPath != "" {
		if err := store.ExportCSV(csvPath, sw); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := store.ExportJSON(jsonPath, sys.Label(), sw); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	return nil
}

func bodePlot(cmd *cobra.Command, args []string) error {
	sys, _, err := getSystem(args)
	if err != nil {
		return err
	}

	bp := viz.NewBodePlot()
	if err := bp.AddSystem(sys, viz.LineStyle{}); err != nil {
		return err
	}
	fig, err := bp.Render(viz.SweepSpec{StartExp: startExp, EndExp: endExp, Points: numPoints}, plotWidth, plotHeight)
	if err != nil {
		return err
	}
	fmt.Println(fig)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLABEL\tDIMS\tODE\tREGULAR")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		sys, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\tinvalid: %v\t\t\n", name, cfg.Label, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d, %d in, %d out\t%v\t%v\n",
			name, cfg.Label,
			sys.NumEquations(), sys.NumStates(), sys.NumInputs(), sys.NumOutputs(),
			sys.IsODE(), sys.IsRegular())
	}
	return w.Flush()
}
