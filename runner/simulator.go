package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

// ErrNoScreen is returned when drawing a simulator created without a screen
var ErrNoScreen = errors.New("simulator has no screen")

// Loader rebuilds the starting board, used when the simulation restarts
type Loader func() (*model.Grid, error)

// Simulator draws generations of a grid on a screen, one frame per generation
type Simulator struct {
	title  string
	screen model.Screen
	config utils.Config
	load   Loader

	grid       *model.Grid
	generation int
	restarts   int
	stats      *utils.Stats
	cycles     *utils.CycleDetector
}

// New creates a simulator for the board produced by load. The screen may be
// nil when frames are drawn elsewhere; Run and Draw then return ErrNoScreen.
func New(title string, screen model.Screen, config utils.Config, load Loader) (*Simulator, error) {
	grid, err := load()
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to load board")
	}
	return &Simulator{
		title:  title,
		screen: screen,
		config: config,
		load:   load,
		grid:   grid,
		stats:  utils.NewStats(config.HistorySize),
		cycles: utils.NewCycleDetector(),
	}, nil
}

// Grid returns the grid being simulated
func (s *Simulator) Grid() *model.Grid {
	return s.grid
}

// Generation returns the number of generations advanced so far
func (s *Simulator) Generation() int {
	return s.generation
}

// Stats returns the running statistics
func (s *Simulator) Stats() *utils.Stats {
	return s.stats
}

// Restarts returns how many times the board was reloaded after stagnating
func (s *Simulator) Restarts() int {
	return s.restarts
}

// Run renders, advances and sleeps until ctx is cancelled or the generation
// limit is reached. A cancelled context is not an error.
func (s *Simulator) Run(ctx context.Context) error {
	lastFrame := time.Now()
	for {
		frameStart := time.Now()
		s.Record(frameStart.Sub(lastFrame))
		lastFrame = frameStart

		if err := s.Draw(); err != nil {
			return err
		}

		if s.Done() {
			return nil
		}

		if err := s.Step(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.config.FrameDelay):
		}
	}
}

// Record updates the statistics for the current generation
func (s *Simulator) Record(frameDuration time.Duration) {
	s.stats.Update(s.generation, s.grid.CountLivingCells(), frameDuration)
}

// Done reports whether the generation limit has been reached
func (s *Simulator) Done() bool {
	return s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations
}

// Status describes the current board as Active, Stagnant or Extinct
func (s *Simulator) Status() string {
	switch {
	case s.grid.CountLivingCells() == 0:
		return "Extinct"
	case s.cycles.StagnantCount() > 0:
		return "Stagnant"
	default:
		return "Active"
	}
}

// Restart reloads the starting board
func (s *Simulator) Restart() error {
	grid, err := s.load()
	if err != nil {
		return errors.Wrap(err, "[Restart] failed to reload board")
	}
	s.grid = grid
	s.cycles.Reset()
	s.restarts++
	return nil
}

// Step advances one generation, reloading the board if it has stagnated
// for too long and auto restart is enabled
func (s *Simulator) Step() error {
	if s.cycles.Observe(s.grid.Current().Hash()) &&
		s.config.AutoRestart &&
		s.cycles.StagnantCount() >= s.config.StagnationThreshold {
		if err := s.Restart(); err != nil {
			return err
		}
		s.generation++
		return nil
	}

	s.grid.Evolve()
	s.generation++
	return nil
}

// Draw writes the current frame to the screen
func (s *Simulator) Draw() error {
	if s.screen == nil {
		return errors.WithStack(ErrNoScreen)
	}
	s.screen.Clear()
	s.screen.SetPos(1, 0)
	s.screen.AddStr(fmt.Sprintf("Running Game of Life simulation on %s - press <ctrl> + c to stop", s.title))
	s.screen.SetPos(2, 0)
	s.screen.AddStr(s.grid.Render(s.config.AliveGlyph, s.config.DeadGlyph))
	s.screen.AddStr(s.statusLine())
	if err := s.screen.Refresh(); err != nil {
		return errors.Wrap(err, "[Draw] failed to refresh screen")
	}
	return nil
}

func (s *Simulator) statusLine() string {
	return fmt.Sprintf("\nGen: %d | Living: %d | Avg Pop: %.1f | Status: %s\n",
		s.generation, s.grid.CountLivingCells(), s.stats.AveragePopulation, s.Status())
}
