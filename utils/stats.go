package utils

import "time"

// populationSmoothing weights the newest sample in the population average.
const populationSmoothing = 0.1

// Stats accumulates the figures the runner reports. Generations and Restarts cover the
// whole run; the population figures follow whichever board is currently live.
type Stats struct {
	Generations     int
	Restarts        int
	Population      int
	PeakPopulation  int
	MeanPopulation  float64
	BoundingBoxSize int
	Rate            float64 // generations per second over the last frame

	started time.Time
}

func NewStats() *Stats {
	return &Stats{started: time.Now()}
}

// Observe records one finished generation.
func (s *Stats) Observe(population, boundingBox int, frame time.Duration) {
	s.Generations++
	s.Population = population
	s.BoundingBoxSize = boundingBox
	s.PeakPopulation = max(s.PeakPopulation, population)
	if frame > 0 {
		s.Rate = 1 / frame.Seconds()
	}
	if s.Generations == 1 {
		s.MeanPopulation = float64(population)
		return
	}
	s.MeanPopulation += populationSmoothing * (float64(population) - s.MeanPopulation)
}

// Restarted notes that the board was repopulated.
func (s *Stats) Restarted() {
	s.Restarts++
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.started)
}
