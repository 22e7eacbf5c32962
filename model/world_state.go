package model

import (
	"crypto/md5"
	"fmt"
)

// WorldState is one generation: every cell of the grid in row-major order
type WorldState struct {
	cells []*Cell
	index map[Position]*Cell
}

// NewWorldState returns an empty generation
func NewWorldState() *WorldState {
	return &WorldState{index: make(map[Position]*Cell)}
}

func newWorldStateWithCapacity(size int) *WorldState {
	return &WorldState{
		cells: make([]*Cell, 0, size),
		index: make(map[Position]*Cell, size),
	}
}

// add appends a cell, refusing a second cell at an occupied position
func (s *WorldState) add(cell *Cell) bool {
	if _, ok := s.index[cell.position]; ok {
		return false
	}
	s.cells = append(s.cells, cell)
	s.index[cell.position] = cell
	return true
}

// linkNeighbours connects cell to every already-present cell around it
func (s *WorldState) linkNeighbours(cell *Cell) {
	for _, offset := range neighbourOffsets {
		if other, ok := s.CellAt(cell.position.Offset(offset[0], offset[1])); ok {
			cell.AddNeighbour(other)
		}
	}
}

// Cells returns the cells in insertion order
func (s *WorldState) Cells() []*Cell {
	cells := make([]*Cell, len(s.cells))
	copy(cells, s.cells)
	return cells
}

// Len returns the number of cells in the generation
func (s *WorldState) Len() int {
	return len(s.cells)
}

// CellAt returns the cell at position, if there is one
func (s *WorldState) CellAt(position Position) (*Cell, bool) {
	cell, ok := s.index[position]
	return cell, ok
}

// CellMatching returns the cell of this generation sharing other's position
func (s *WorldState) CellMatching(other *Cell) (*Cell, bool) {
	return s.CellAt(other.position)
}

// CloneDeep copies the generation into new cells whose neighbour links
// point only at the new cells.
func (s *WorldState) CloneDeep() *WorldState {
	clone := newWorldStateWithCapacity(len(s.cells))
	for _, cell := range s.cells {
		clone.add(NewCell(cell.position, cell.alive))
	}

	for _, cell := range s.cells {
		twin := clone.index[cell.position]
		for _, n := range cell.neighbours {
			twin.neighbours = append(twin.neighbours, clone.index[n.position])
		}
	}
	return clone
}

// Population returns the number of living cells
func (s *WorldState) Population() (count int) {
	for _, cell := range s.cells {
		if cell.alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the living pattern, used for cycle detection
func (s *WorldState) Hash() string {
	h := md5.New()
	for _, cell := range s.cells {
		if cell.alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
