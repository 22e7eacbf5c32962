package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/runner"
	"github.com/sheikhrachel/go-gol/tui"
	"github.com/sheikhrachel/go-gol/utils"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// loadRunConfig merges the config file, if any, with explicitly set flags
func loadRunConfig(cmd *cobra.Command) (utils.Config, error) {
	cfg := utils.DefaultConfig()
	if configFile != "" {
		loaded, err := utils.LoadConfig(configFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("sleep") {
		cfg.FrameDelay = time.Duration(sleep * float64(time.Second))
	}
	if configFile == "" || flags.Changed("generations") {
		cfg.MaxGenerations = generations
	}
	if flags.Changed("auto-restart") {
		cfg.AutoRestart = autoRestart
	}
	if flags.Changed("alive") {
		cfg.AliveMarker = aliveMarker
	}
	if flags.Changed("plain") {
		cfg.Interactive = !plain
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "[loadRunConfig] invalid options")
	}
	return cfg, nil
}

func markerRune(marker string) (rune, error) {
	runes := []rune(marker)
	if len(runes) != 1 {
		return 0, errors.Errorf("alive marker must be a single character, got %q", marker)
	}
	if unicode.IsSpace(runes[0]) {
		return 0, errors.Errorf("alive marker must not be whitespace, got %q", marker)
	}
	return runes[0], nil
}

// boardLoaders resolves the board sources named by the file arguments or the
// --pattern flag. Boards are read again on every call so a restart starts
// from the original text.
func boardLoaders(args []string, marker rune) ([]string, []runner.Loader, error) {
	switch {
	case pattern != "" && len(args) > 0:
		return nil, nil, errors.New("pass either a board file or --pattern, not both")
	case pattern != "":
		board, ok := model.Pattern(pattern)
		if !ok {
			return nil, nil, errors.Errorf("unknown pattern: %s (available: %v)", pattern, model.PatternNames())
		}
		return []string{pattern}, []runner.Loader{func() (*model.Grid, error) {
			return model.Parse(board, model.WithAliveMarker(model.DefaultAliveMarker))
		}}, nil
	case len(args) == 0:
		return nil, nil, errors.New("a board file or --pattern is required")
	}

	opt := model.WithAliveMarker(marker)
	titles := make([]string, len(args))
	loaders := make([]runner.Loader, len(args))
	for i, path := range args {
		titles[i] = filepath.Base(path)
		loaders[i] = func() (*model.Grid, error) {
			return model.LoadGrid(path, opt)
		}
	}
	return titles, loaders, nil
}

// boardLoader resolves a single board source
func boardLoader(args []string, marker rune) (string, runner.Loader, error) {
	titles, loaders, err := boardLoaders(args, marker)
	if err != nil {
		return "", nil, err
	}
	return titles[0], loaders[0], nil
}

func runInteractive(title string, cfg utils.Config, load runner.Loader) error {
	sim, err := runner.New(title, nil, cfg, load)
	if err != nil {
		return err
	}
	return tui.Run(tui.NewModel(title, sim, cfg))
}

// bannerDelay is how long the game information stays up before the first frame
var bannerDelay = 2 * time.Second

// runPlain draws frames with escape codes on w until ctx is cancelled or the
// generation limit is reached
func runPlain(ctx context.Context, w io.Writer, title string, cfg utils.Config, load runner.Loader) error {
	screen := model.NewTerminalRenderer(w)
	sim, err := runner.New(title, screen, cfg, load)
	if err != nil {
		return err
	}

	displayGameInfo(w, title, sim.Grid(), cfg)
	select {
	case <-ctx.Done():
		return nil
	case <-time.After(bannerDelay):
	}

	screen.HideCursor()
	defer func() {
		screen.ShowCursor()
		screen.Refresh()
	}()

	if err := sim.Run(ctx); err != nil {
		return err
	}

	if ctx.Err() != nil {
		fmt.Fprintln(w, "\nShutting down gracefully...")
	}
	stats := sim.Stats()
	fmt.Fprintf(w, "Final stats: %d generations in %.1f seconds\n", sim.Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(w, "Average: %.1f gen/sec, %.1f avg population\n", stats.GenerationsPerSecond, stats.AveragePopulation)
	return nil
}

// boardRun is the population history of one board
type boardRun struct {
	title      string
	width      int
	height     int
	population []float64
}

// collectPopulations evolves every board on its own goroutine, each with
// its own grid, and returns the runs in argument order
func collectPopulations(titles []string, loaders []runner.Loader, generations int) ([]boardRun, error) {
	runs := make([]boardRun, len(loaders))

	var eg errgroup.Group
	for i, load := range loaders {
		eg.Go(func() error {
			grid, err := load()
			if err != nil {
				return err
			}
			runs[i] = boardRun{
				title:      titles[i],
				width:      grid.GetWidth(),
				height:     grid.GetHeight(),
				population: populationSeries(grid, generations),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, title string, grid *model.Grid, cfg utils.Config) {
	fmt.Fprintln(w, headerStyle.Render("Game of Life · "+title))
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	fmt.Fprintf(w, "Frame delay: %v | Auto restart: %v\n", cfg.FrameDelay, cfg.AutoRestart)
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
}

// populationSeries returns the population of the starting board and each of
// the following generations
func populationSeries(grid *model.Grid, generations int) []float64 {
	population := make([]float64, 0, generations+1)
	population = append(population, float64(grid.CountLivingCells()))
	for range generations {
		population = append(population, float64(grid.Evolve().CountLivingCells()))
	}
	return population
}

func printSummary(w io.Writer, population []float64) {
	lowest, highest, total := population[0], population[0], 0.0
	for _, p := range population {
		lowest = min(lowest, p)
		highest = max(highest, p)
		total += p
	}

	rows := [][2]string{
		{"Start", fmt.Sprintf("%.0f", population[0])},
		{"Final", fmt.Sprintf("%.0f", population[len(population)-1])},
		{"Min", fmt.Sprintf("%.0f", lowest)},
		{"Max", fmt.Sprintf("%.0f", highest)},
		{"Mean", fmt.Sprintf("%.1f", total/float64(len(population)))},
	}
	for _, row := range rows {
		fmt.Fprintln(w, labelStyle.Render(row[0])+row[1])
	}
}
