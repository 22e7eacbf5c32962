package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time

	history     []float64
	historySize int
}

func NewStats(historySize int) *Stats {
	if historySize < 1 {
		historySize = 1
	}
	return &Stats{
		StartTime:   time.Now(),
		history:     make([]float64, 0, historySize),
		historySize: historySize,
	}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.history = append(s.history, float64(population))
	if len(s.history) > s.historySize {
		s.history = s.history[1:]
	}
}

// PopulationHistory returns the most recent populations, oldest first
func (s *Stats) PopulationHistory() []float64 {
	history := make([]float64, len(s.history))
	copy(history, s.history)
	return history
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
