package model

import "github.com/sheikhrachel/go-gol/rules"

const (
	// MaxNeighbours is the size of a cell's neighbourhood on a rectangular grid
	MaxNeighbours = 8

	AliveGlyph = "x"
	DeadGlyph  = "."
)

// Cell is a single grid position together with its living state and adjacency list
type Cell struct {
	position   Position
	alive      bool
	neighbours []*Cell
}

// NewCell creates an unlinked cell at the given position
func NewCell(position Position, alive bool) *Cell {
	return &Cell{
		position:   position,
		alive:      alive,
		neighbours: make([]*Cell, 0, MaxNeighbours),
	}
}

// Position returns the fixed position of the cell
func (c *Cell) Position() Position {
	return c.position
}

// Alive reports whether the cell is living
func (c *Cell) Alive() bool {
	return c.alive
}

// Neighbours returns the cells adjacent to c in the same generation
func (c *Cell) Neighbours() []*Cell {
	neighbours := make([]*Cell, len(c.neighbours))
	copy(neighbours, c.neighbours)
	return neighbours
}

// AddNeighbour links c and other in both directions. Linking is idempotent,
// and a nil other (an off-grid lookup) is ignored.
func (c *Cell) AddNeighbour(other *Cell) {
	if other == nil || other == c {
		return
	}
	if !c.hasNeighbour(other) {
		c.neighbours = append(c.neighbours, other)
	}
	if !other.hasNeighbour(c) {
		other.neighbours = append(other.neighbours, c)
	}
}

func (c *Cell) hasNeighbour(other *Cell) bool {
	for _, n := range c.neighbours {
		if n == other {
			return true
		}
	}
	return false
}

// LiveNeighbourCount counts the living neighbours as they are right now
func (c *Cell) LiveNeighbourCount() (count int) {
	for _, n := range c.neighbours {
		if n.alive {
			count++
		}
	}
	return
}

// EvolvedState returns the state the cell takes in the next generation.
// It does not modify the cell.
func (c *Cell) EvolvedState() bool {
	return rules.ApplyConwayRules(c.LiveNeighbourCount(), c.alive)
}

func (c *Cell) String() string {
	if c.alive {
		return AliveGlyph
	}
	return DeadGlyph
}
