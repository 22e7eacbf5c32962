package rules

const (
	// SurvivalMin and SurvivalMax bound the live neighbour count that keeps a living cell alive
	SurvivalMin = 2
	SurvivalMax = 3
	// BirthCount is the exact live neighbour count that brings a dead cell to life
	BirthCount = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A living cell with fewer than two or more than three living neighbours dies,
a dead cell with exactly three living neighbours is born, and every other
cell keeps its state.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && (neighbors < SurvivalMin || neighbors > SurvivalMax):
		return false
	case !alive && neighbors == BirthCount:
		return true
	default:
		return alive
	}
}
