package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-logr/logr"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/shuffle"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	count      int
	seed       int64
	delay      time.Duration
	configFile string
	preset     string
	logLevel   string
	logFile    string
	theme      string
	// frame command
	stepIndex int
	outFile   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sortviz",
		Short:        "step-by-step sorting visualizer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, nil)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.IntVar(&count, "count", config.DefaultCount, "number of bars")
	pf.Int64Var(&seed, "seed", 0, "shuffle seed (0 picks one from the clock)")
	pf.DurationVar(&delay, "delay", 0, "delay between steps (0 uses the algorithm default)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "animate a sort in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlay,
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "run a sort headless and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}

	frameCmd := &cobra.Command{
		Use:   "frame [algorithm]",
		Short: "render one step of a sort as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFrame,
	}
	frameCmd.Flags().IntVar(&stepIndex, "step", 0, "step to render (0 is the shuffled array)")
	frameCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm]...",
		Short: "run several algorithms on the same input and compare metrics",
		RunE:  runCompare,
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range experiment.NewRegistry().List() {
				alg := sorting.Algorithm(name)
				fmt.Fprintf(out, "  %-10s %s\n", name, sorting.DefaultDelay(alg))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOUNT\tDELAY")
			for _, name := range config.ListPresets() {
				p := config.GetPreset("", name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, p.Count, p.StepDelay())
			}
			w.Flush()
		},
	}

	rootCmd.AddCommand(playCmd, runCmd, frameCmd, compareCmd, algorithmsCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 {
			loaded.Algorithm = args[0]
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Count = count
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("delay") {
		cfg.Delay = delay
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	alg, err := sorting.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	cfg.Algorithm = string(alg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to --log-file when set, otherwise to fallback.
func newLogger(cfg *config.Config, fallback io.Writer) (logr.Logger, func(), error) {
	if logFile == "" {
		log, err := logging.NewWithWriter(cfg.LogLevel, fallback)
		return log, func() {}, err
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logr.Logger{}, nil, err
	}
	log, err := logging.NewWithWriter(cfg.LogLevel, f)
	if err != nil {
		f.Close()
		return logr.Logger{}, nil, err
	}
	return log, func() { f.Close() }, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	// bubbletea owns the terminal, so logs only go to a file
	log, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := []player.Option{
		player.WithCount(cfg.Count),
		player.WithSeed(cfg.Seed),
		player.WithLogger(log),
	}
	if cfg.Delay > 0 {
		opts = append(opts, player.WithDelay(cfg.Delay))
	}
	p, err := player.New(sorting.Algorithm(cfg.Algorithm), opts...)
	if err != nil {
		return err
	}

	log.Info("starting player", "algorithm", cfg.Algorithm, "count", cfg.Count, "seed", cfg.Seed)
	return viz.Run(p, metrics.NewObserver(metrics.Default()...), viz.GetTheme(cfg.Theme))
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	exp := experiment.New(experiment.Config{
		Algorithm: cfg.Algorithm,
		Count:     cfg.Count,
		Seed:      cfg.Seed,
	}, nil)
	for _, m := range metrics.Default() {
		exp.AddMetric(m)
	}

	log.V(1).Info("running headless", "algorithm", cfg.Algorithm, "count", cfg.Count, "seed", cfg.Seed)
	start := time.Now()
	result, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s sort of %d values (seed %d)\n", result.Algorithm, cfg.Count, cfg.Seed)
	fmt.Fprintf(out, "initial: %s\n", joinInts(result.Initial))
	fmt.Fprintf(out, "final:   %s\n", joinInts(result.Final))
	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "playback at %s per step: ~%s\n", cfg.StepDelay(), playbackTime(result, cfg.StepDelay()))

	fmt.Fprintln(out, "\nmetrics:")
	for _, m := range metrics.Default() {
		fmt.Fprintf(out, "  %-12s %.0f\n", m.Name(), result.Metrics[m.Name()])
	}

	if len(result.Inversions) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(result.Inversions,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("inversions per step")))
	}
	return nil
}

// playbackTime estimates the wall time of an animated run. Fast-forward
// steps are scheduled without delay.
func playbackTime(r *experiment.Result, d time.Duration) time.Duration {
	var total time.Duration
	for _, s := range r.Steps {
		if !s.FastForward {
			total += d
		}
	}
	return total
}

func runFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()
	result, err := experiment.New(experiment.Config{
		Algorithm: cfg.Algorithm,
		Count:     cfg.Count,
		Seed:      cfg.Seed,
	}, nil).Run(ctx)
	if err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Theme)
	layout := render.Layout{Width: cfg.Frame.Width, Height: cfg.Frame.Height}
	frame := th.Palette().Bars(result.StepAt(stepIndex), layout)

	out := cmd.OutOrStdout()
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return export.WriteSVG(out, frame, string(th.Border))
}

func runCompare(cmd *cobra.Command, args []string) error {
	algs := make([]string, 0, len(args))
	for _, a := range args {
		alg, err := sorting.ParseAlgorithm(a)
		if err != nil {
			return err
		}
		algs = append(algs, string(alg))
	}
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	values, err := shuffle.NewShuffler(cfg.Seed).Permutation(cfg.Count)
	if err != nil {
		return err
	}
	results, err := experiment.NewEnsemble(nil, algs, nil).Run(cmd.Context(), values)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d values (seed %d): %s\n\n", cfg.Count, cfg.Seed, joinInts(values))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSTEPS\tCOMPARISONS\tWRITES\tPLAYBACK")
	for _, r := range results {
		d := sorting.DefaultDelay(sorting.Algorithm(r.Algorithm))
		if cfg.Delay > 0 {
			d = cfg.Delay
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%s\n", r.Algorithm,
			r.Metrics["steps"], r.Metrics["comparisons"], r.Metrics["writes"], playbackTime(r, d))
	}
	return w.Flush()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
