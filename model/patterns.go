package model

import (
	"math/rand"
	"sort"
	"strings"
)

var patterns = map[string]string{
	"block": `
		. . . .
		. x x .
		. x x .
		. . . .`,
	"blinker": `
		. . . . .
		. . . . .
		. x x x .
		. . . . .
		. . . . .`,
	"toad": `
		. . . . . .
		. . . . . .
		. . x x x .
		. x x x . .
		. . . . . .
		. . . . . .`,
	"beacon": `
		. . . . . .
		. x x . . .
		. x x . . .
		. . . x x .
		. . . x x .
		. . . . . .`,
	"glider": `
		. x . . . . . .
		. . x . . . . .
		x x x . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .`,
}

// Pattern returns the board text of a named pattern
func Pattern(name string) (string, bool) {
	board, ok := patterns[strings.ToLower(name)]
	return board, ok
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Board is a mutable drawing surface used to compose board text
type Board struct {
	width  int
	height int
	cells  [][]bool
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) *Board {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Set sets a cell to alive (true) or dead (false), ignoring off-board coordinates
func (b *Board) Set(x, y int, alive bool) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = alive
	}
}

// AddGlider adds a glider pattern at the specified position
func (b *Board) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			b.Set(startX+x, startY+y, cell)
		}
	}
}

// AddOscillator adds a blinker oscillator pattern
func (b *Board) AddOscillator(startX, startY int) {
	b.Set(startX, startY, true)
	b.Set(startX+1, startY, true)
	b.Set(startX+2, startY, true)
}

// Randomize brings cells to life with the given probability
func (b *Board) Randomize(density float64, rng *rand.Rand) {
	for y := range b.height {
		for x := range b.width {
			if rng.Float64() < density {
				b.Set(x, y, true)
			}
		}
	}
}

// String writes the board in the parser's format, one row per line
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.cells {
		for _, alive := range row {
			if alive {
				sb.WriteRune(DefaultAliveMarker)
			} else {
				sb.WriteString(DeadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RandomBoard returns board text seeded with a few gliders and oscillators
// when there is room, plus random life at the given density
func RandomBoard(width, height int, density float64, rng *rand.Rand) string {
	b := NewBoard(width, height)

	if width >= 10 && height >= 10 {
		b.AddGlider(5, 5)
		if width >= 20 && height >= 15 {
			b.AddGlider(width-8, 5)
		}

		b.AddOscillator(width/4, height/4)
		if width >= 30 {
			b.AddOscillator(3*width/4, 3*height/4)
		}
	}

	b.Randomize(density, rng)
	return b.String()
}
