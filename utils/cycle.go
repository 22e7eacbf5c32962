package utils

const cycleWindow = 5

// CycleDetector remembers the hashes of recent generations to spot boards
// that have stopped changing or settled into a short cycle
type CycleDetector struct {
	history       []string
	stagnantCount int
}

func NewCycleDetector() *CycleDetector {
	return &CycleDetector{history: make([]string, 0, cycleWindow+1)}
}

// Observe records the hash of the current generation and reports whether
// it repeats one of the last three generations
func (d *CycleDetector) Observe(hash string) bool {
	stagnant := false
	for back := 1; back <= 3 && back <= len(d.history); back++ {
		if d.history[len(d.history)-back] == hash {
			stagnant = true
			break
		}
	}

	d.history = append(d.history, hash)
	// Keep only the last few states to detect cycles
	if len(d.history) > cycleWindow {
		d.history = d.history[1:]
	}

	if stagnant {
		d.stagnantCount++
	} else {
		d.stagnantCount = 0
	}
	return stagnant
}

// StagnantCount returns how many consecutive observations were stagnant
func (d *CycleDetector) StagnantCount() int {
	return d.stagnantCount
}

// Reset forgets all observed generations
func (d *CycleDetector) Reset() {
	d.history = d.history[:0]
	d.stagnantCount = 0
}
