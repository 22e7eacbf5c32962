package runner

import (
	"context"
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

type recordingScreen struct {
	frames  []string
	current strings.Builder
	calls   []string
}

func (r *recordingScreen) Clear() {
	r.calls = append(r.calls, "clear")
	r.current.Reset()
}

func (r *recordingScreen) SetPos(row, col int) {
	r.calls = append(r.calls, "setpos")
}

func (r *recordingScreen) AddStr(s string) {
	r.calls = append(r.calls, "addstr")
	r.current.WriteString(s)
}

func (r *recordingScreen) Refresh() error {
	r.calls = append(r.calls, "refresh")
	r.frames = append(r.frames, r.current.String())
	return nil
}

func patternLoader(t *testing.T, name string) Loader {
	board, ok := model.Pattern(name)
	if !ok {
		t.Fatalf("unknown pattern %s", name)
	}
	return func() (*model.Grid, error) {
		return model.Parse(board)
	}
}

func testConfig() utils.Config {
	cfg := utils.DefaultConfig()
	cfg.FrameDelay = 0
	return cfg
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	g := NewWithT(t)
	screen := &recordingScreen{}
	cfg := testConfig()
	cfg.MaxGenerations = 3

	sim, err := New("blinker", screen, cfg, patternLoader(t, "blinker"))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(sim.Run(context.Background())).To(Succeed())
	g.Expect(sim.Generation()).To(Equal(3))
	g.Expect(screen.frames).To(HaveLen(4))
	g.Expect(screen.frames[0]).To(ContainSubstring("Running Game of Life simulation on blinker"))
	g.Expect(screen.frames[0]).To(Equal(strings.Replace(screen.frames[2], "Gen: 2", "Gen: 0", 1)))
	g.Expect(screen.frames[1]).NotTo(Equal(screen.frames[0]))
	g.Expect(screen.calls[:5]).To(Equal([]string{"clear", "setpos", "addstr", "setpos", "addstr"}))
}

func TestRunStopsOnCancel(t *testing.T) {
	g := NewWithT(t)
	screen := &recordingScreen{}
	cfg := testConfig()
	cfg.FrameDelay = time.Hour

	sim, err := New("block", screen, cfg, patternLoader(t, "block"))
	g.Expect(err).NotTo(HaveOccurred())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g.Expect(sim.Run(ctx)).To(Succeed())
	g.Expect(screen.frames).To(HaveLen(1))
}

func TestStepRestartsStagnantBoard(t *testing.T) {
	g := NewWithT(t)
	cfg := testConfig()
	cfg.AutoRestart = true
	cfg.StagnationThreshold = 2

	loads := 0
	board, _ := model.Pattern("block")
	load := func() (*model.Grid, error) {
		loads++
		return model.Parse(board)
	}

	sim, err := New("block", &recordingScreen{}, cfg, load)
	g.Expect(err).NotTo(HaveOccurred())

	for i := 0; i < 4; i++ {
		g.Expect(sim.Step()).To(Succeed())
	}
	g.Expect(sim.Restarts()).To(Equal(1))
	g.Expect(loads).To(Equal(2))
	g.Expect(sim.Generation()).To(Equal(4))
}

func TestStepWithoutAutoRestartKeepsEvolving(t *testing.T) {
	g := NewWithT(t)
	sim, err := New("block", &recordingScreen{}, testConfig(), patternLoader(t, "block"))
	g.Expect(err).NotTo(HaveOccurred())

	for i := 0; i < 10; i++ {
		g.Expect(sim.Step()).To(Succeed())
	}
	g.Expect(sim.Restarts()).To(BeZero())
	g.Expect(sim.Grid().CountLivingCells()).To(Equal(4))
}

func TestNewPropagatesLoadErrors(t *testing.T) {
	g := NewWithT(t)
	_, err := New("empty", &recordingScreen{}, testConfig(), func() (*model.Grid, error) {
		return model.Parse("")
	})
	g.Expect(errors.Cause(err)).To(MatchError(model.ErrEmptyBoard))
}

func TestRunWithoutScreen(t *testing.T) {
	g := NewWithT(t)
	sim, err := New("block", nil, testConfig(), patternLoader(t, "block"))
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(sim.Step()).To(Succeed())
	g.Expect(sim.Run(context.Background())).To(MatchError(ErrNoScreen))
	g.Expect(sim.Draw()).To(MatchError(ErrNoScreen))
}
