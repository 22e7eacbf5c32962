package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/sheikhrachel/go-gol/runner"
	"github.com/sheikhrachel/go-gol/utils"
)

const (
	minFrameDelay = 10 * time.Millisecond
	maxFrameDelay = 5 * time.Second
)

type TickMsg time.Time

// Model is the bubbletea model driving a simulation in the terminal
type Model struct {
	title     string
	sim       *runner.Simulator
	config    utils.Config
	delay     time.Duration
	running   bool
	lastFrame time.Time
	err       error
}

// NewModel wraps a simulator for interactive display
func NewModel(title string, sim *runner.Simulator, config utils.Config) Model {
	sim.Record(0)
	return Model{
		title:     title,
		sim:       sim,
		config:    config,
		delay:     config.FrameDelay,
		running:   true,
		lastFrame: time.Now(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles key presses and advances the simulation on every tick
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance()
			}
		case "r":
			if err := m.sim.Restart(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "+", "=":
			m.delay = max(m.delay/2, minFrameDelay)
		case "-", "_":
			m.delay = min(m.delay*2, maxFrameDelay)
		}
	case TickMsg:
		if m.running && !m.sim.Done() {
			m.advance()
		}
		if m.err != nil {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance() {
	now := time.Now()
	if err := m.sim.Step(); err != nil {
		m.err = err
		return
	}
	m.sim.Record(now.Sub(m.lastFrame))
	m.lastFrame = now
}

// Err returns the error that stopped the simulation, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("simulation failed: %v", m.err)) + "\n"
	}

	board := boardStyle.Render(m.renderBoard())
	panel := statsStyle.Render(m.renderStats())

	var b strings.Builder
	b.WriteString(titleStyle.Render("Game of Life · " + m.title))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, panel))
	b.WriteString("\n")

	if history := m.sim.Stats().PopulationHistory(); len(history) > 1 {
		graph := asciigraph.Plot(history,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("population"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause • n step • r restart • +/- speed • q quit"))
	return b.String()
}

func (m Model) renderBoard() string {
	alive := aliveStyle.Render(m.config.AliveGlyph)
	dead := deadStyle.Render(m.config.DeadGlyph)

	rows := m.sim.Grid().Rows()
	lines := make([]string, len(rows))
	for y, row := range rows {
		cells := make([]string, len(row))
		for x, isAlive := range row {
			if isAlive {
				cells[x] = alive
			} else {
				cells[x] = dead
			}
		}
		lines[y] = strings.Join(cells, " ")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStats() string {
	status := m.sim.Status()
	if !m.running {
		status = "Paused"
	}
	stats := m.sim.Stats()

	rows := [][2]string{
		{"Generation", fmt.Sprintf("%d", m.sim.Generation())},
		{"Living", fmt.Sprintf("%d", m.sim.Grid().CountLivingCells())},
		{"Avg Pop", fmt.Sprintf("%.1f", stats.AveragePopulation)},
		{"Gen/sec", fmt.Sprintf("%.1f", stats.GenerationsPerSecond)},
		{"Delay", m.delay.String()},
		{"Restarts", fmt.Sprintf("%d", m.sim.Restarts())},
		{"Status", statusStyle[status].Render(status)},
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = labelStyle.Render(row[0]) + valueStyle.Render(row[1])
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive program and blocks until the user quits
func Run(m Model) error {
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
