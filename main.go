package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-gol/model"
)

var (
	configFile  string
	sleep       float64
	generations int
	plain       bool
	autoRestart bool
	aliveMarker string
	pattern     string
	stepCount   int
	statsCount  int
	// generate
	width   int
	height  int
	density float64
	seed    int64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and their flags
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gol",
		Short:         "Conway's Game of Life on a finite grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	simulateCmd := &cobra.Command{
		Use:     "simulate [file]",
		Short:   "run a board in the terminal until interrupted",
		Example: "  gol simulate sample_worlds/oscillator-blinking.gol --sleep 0.4",
		Args:    cobra.MaximumNArgs(1),
		RunE:    runSimulate,
	}
	simulateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or json)")
	simulateCmd.Flags().Float64Var(&sleep, "sleep", 0.4, "seconds between generations")
	simulateCmd.Flags().IntVar(&generations, "generations", 0, "stop after this many generations (0 runs forever)")
	simulateCmd.Flags().BoolVar(&plain, "plain", false, "draw with plain escape codes instead of the interactive view")
	simulateCmd.Flags().BoolVar(&autoRestart, "auto-restart", false, "reload the board when it stagnates")
	simulateCmd.Flags().StringVar(&aliveMarker, "alive", "x", "board character for a living cell")
	simulateCmd.Flags().StringVar(&pattern, "pattern", "", "simulate a built-in pattern instead of a file")

	stepCmd := &cobra.Command{
		Use:   "step [file]",
		Short: "print the board after a number of generations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStep,
	}
	stepCmd.Flags().IntVarP(&stepCount, "generations", "n", 1, "number of generations to advance")
	stepCmd.Flags().StringVar(&aliveMarker, "alive", "x", "board character for a living cell")
	stepCmd.Flags().StringVar(&pattern, "pattern", "", "use a built-in pattern instead of a file")

	statsCmd := &cobra.Command{
		Use:   "stats [file...]",
		Short: "plot the population of one or more boards over a number of generations",
		Args:  cobra.ArbitraryArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVarP(&statsCount, "generations", "n", 100, "number of generations to advance")
	statsCmd.Flags().StringVar(&aliveMarker, "alive", "x", "board character for a living cell")
	statsCmd.Flags().StringVar(&pattern, "pattern", "", "use a built-in pattern instead of a file")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "print a random or built-in board",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVar(&width, "width", 60, "board width")
	generateCmd.Flags().IntVar(&height, "height", 30, "board height")
	generateCmd.Flags().Float64Var(&density, "density", 0.15, "probability of a living cell")
	generateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	generateCmd.Flags().StringVar(&pattern, "pattern", "", "print a built-in pattern ("+strings.Join(model.PatternNames(), ", ")+")")

	rootCmd.AddCommand(simulateCmd, stepCmd, statsCmd, generateCmd)
	return rootCmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	title, load, err := boardLoader(args, cfg.AliveRune())
	if err != nil {
		return err
	}

	if cfg.Interactive {
		return runInteractive(title, cfg, load)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runPlain(ctx, os.Stdout, title, cfg, load)
}

func runStep(cmd *cobra.Command, args []string) error {
	if stepCount < 0 {
		return fmt.Errorf("generations must not be negative, got %d", stepCount)
	}
	marker, err := markerRune(aliveMarker)
	if err != nil {
		return err
	}
	_, load, err := boardLoader(args, marker)
	if err != nil {
		return err
	}
	grid, err := load()
	if err != nil {
		return err
	}

	for range stepCount {
		grid.Evolve()
	}
	fmt.Fprint(cmd.OutOrStdout(), grid.String())
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsCount < 1 {
		return fmt.Errorf("generations must be positive, got %d", statsCount)
	}
	marker, err := markerRune(aliveMarker)
	if err != nil {
		return err
	}
	titles, loaders, err := boardLoaders(args, marker)
	if err != nil {
		return err
	}
	runs, err := collectPopulations(titles, loaders, statsCount)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	series := make([][]float64, len(runs))
	for i, run := range runs {
		series[i] = run.population
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d. %s (%dx%d)", i+1, run.title, run.width, run.height)))
	}
	fmt.Fprintln(out, asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("population over %d generations", statsCount)),
	))

	for _, run := range runs {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render(run.title))
		printSummary(out, run.population)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if pattern != "" {
		board, ok := model.Pattern(pattern)
		if !ok {
			return fmt.Errorf("unknown pattern: %s (available: %v)", pattern, model.PatternNames())
		}
		grid, err := model.Parse(board)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), strings.TrimPrefix(grid.String(), "\n"))
		return nil
	}

	if width < 1 || height < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", width, height)
	}
	if density < 0 || density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %v", density)
	}
	fmt.Fprint(cmd.OutOrStdout(), model.RandomBoard(width, height, density, rand.New(rand.NewSource(seed))))
	return nil
}
