package model

import "fmt"

// Position identifies a cell within a generation by its row and column
type Position struct {
	Row    int
	Column int
}

// Offset returns the position shifted by the given row and column deltas
func (p Position) Offset(dRow, dColumn int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dColumn}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// neighbourOffsets lists the eight surrounding positions, clockwise from up-left
var neighbourOffsets = [MaxNeighbours][2]int{
	{-1, -1}, // up-left
	{-1, 0},  // up
	{-1, 1},  // up-right
	{0, 1},   // right
	{1, 1},   // down-right
	{1, 0},   // down
	{1, -1},  // down-left
	{0, -1},  // left
}
