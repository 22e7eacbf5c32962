package model

import (
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// DefaultAliveMarker is the board character denoting a living cell
const DefaultAliveMarker = 'x'

// Grid holds the live generation of a rectangular world. Width and height
// are fixed when the board is parsed.
type Grid struct {
	width   int
	height  int
	current *WorldState
}

// ParseOption customises how a board description is read
type ParseOption func(*parseOptions)

type parseOptions struct {
	aliveMarker rune
}

// WithAliveMarker sets the character treated as a living cell
func WithAliveMarker(marker rune) ParseOption {
	return func(o *parseOptions) {
		o.aliveMarker = marker
	}
}

// Parse builds a grid from a textual board. Whitespace inside rows is
// ignored and blank rows are dropped; every remaining row must have the
// same length. A whitespace alive marker is rejected since whitespace is
// stripped before cells are read.
func Parse(input string, opts ...ParseOption) (*Grid, error) {
	options := parseOptions{aliveMarker: DefaultAliveMarker}
	for _, opt := range opts {
		opt(&options)
	}
	if unicode.IsSpace(options.aliveMarker) {
		return nil, errors.Wrapf(ErrInvalidMarker, "[Parse] marker %q", options.aliveMarker)
	}

	rows := boardRows(input)
	if len(rows) == 0 {
		return nil, errors.WithStack(ErrEmptyBoard)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.WithStack(&MalformedBoardError{Row: i, Want: width, Got: len(row)})
		}
	}

	state := newWorldStateWithCapacity(width * len(rows))
	for r, row := range rows {
		for c, char := range row {
			cell := NewCell(Position{Row: r, Column: c}, char == options.aliveMarker)
			state.add(cell)
			state.linkNeighbours(cell)
		}
	}

	return &Grid{
		width:   width,
		height:  len(rows),
		current: state,
	}, nil
}

// NewGridFromReader parses a board read in full from r
func NewGridFromReader(r io.Reader, opts ...ParseOption) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGridFromReader] failed to read board")
	}
	return Parse(string(data), opts...)
}

// LoadGrid parses the board stored in the file at path
func LoadGrid(path string, opts ...ParseOption) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to read file: %+v", path)
	}

	grid, err := Parse(string(data), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadGrid] failed to parse board from file: %+v", path)
	}
	return grid, nil
}

// boardRows splits input into rows with all whitespace removed, skipping empty rows
func boardRows(input string) [][]rune {
	var rows [][]rune
	for _, line := range strings.Split(input, "\n") {
		row := []rune(strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, line))
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Current returns the live generation
func (g *Grid) Current() *WorldState {
	return g.current
}

// Evolve advances the grid by one generation. Every cell of the new
// generation is computed from the untouched previous generation.
func (g *Grid) Evolve() *Grid {
	next := g.current.CloneDeep()
	for _, cell := range next.cells {
		if prior, ok := g.current.CellMatching(cell); ok {
			cell.alive = prior.EvolvedState()
		}
	}
	g.current = next
	return g
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return g.current.Population()
}

// Rows returns the living pattern of the current generation as rows of flags
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for i := range rows {
		rows[i] = make([]bool, g.width)
	}
	for _, cell := range g.current.cells {
		rows[cell.position.Row][cell.position.Column] = cell.alive
	}
	return rows
}

func (g *Grid) String() string {
	return g.WorldStateString(g.current)
}

// WorldStateString serializes state using the grid's width, one row per line
func (g *Grid) WorldStateString(state *WorldState) string {
	return g.render(state, AliveGlyph, DeadGlyph)
}

// Render serializes the current generation with custom glyphs
func (g *Grid) Render(alive, dead string) string {
	return g.render(g.current, alive, dead)
}

func (g *Grid) render(state *WorldState, alive, dead string) string {
	var sb strings.Builder
	for i, cell := range state.cells {
		if i%g.width == 0 {
			sb.WriteByte('\n')
		}
		if cell.alive {
			sb.WriteString(alive)
		} else {
			sb.WriteString(dead)
		}
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	return sb.String()
}
