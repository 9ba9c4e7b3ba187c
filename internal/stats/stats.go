package stats

import (
	"crypto/md5"
	"fmt"
	"strconv"
	"time"

	"yagol/pkg/core"
	"yagol/pkg/life"
)

// historyLen is how many recent fingerprints are kept for cycle detection.
const historyLen = 5

// Stats tracks population and detects when a run settles into a still life
// or a short oscillation.
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generation           int
	Population           int
	PeakPopulation       int
	StartTime            time.Time

	history []string
}

func New() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Observe records the engine's committed generation. duration is the time
// spent producing it and may be zero.
func (s *Stats) Observe(e *life.Engine, duration time.Duration) {
	population := e.Population()
	s.Generation = e.Generation()
	s.Population = population
	if population > s.PeakPopulation {
		s.PeakPopulation = population
	}
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.history = append(s.history, Fingerprint(e))
	if len(s.history) > historyLen {
		s.history = s.history[1:]
	}
}

// Stagnant reports whether the latest generation repeats one of the
// previous three, which covers still lifes and period 2 and 3 oscillators.
func (s *Stats) Stagnant() bool {
	n := len(s.history)
	if n < 2 {
		return false
	}
	current := s.history[n-1]
	for back := 2; back <= 4 && back <= n; back++ {
		if s.history[n-back] == current {
			return true
		}
	}
	return false
}

// Extinct reports whether the last observed generation had no live cells.
func (s *Stats) Extinct() bool {
	return len(s.history) > 0 && s.Population == 0
}

// Reset clears the history, e.g. after the grid was re-initialized.
func (s *Stats) Reset() {
	s.history = nil
	s.AveragePopulation = 0
	s.PeakPopulation = 0
	s.StartTime = time.Now()
}

var stateOptions = []string{"active", "stagnant", "extinct"}

// Group reports the run statistics as read-only parameters.
func (s *Stats) Group() core.ParameterGroup {
	state := 0
	switch {
	case s.Extinct():
		state = 2
	case s.Stagnant():
		state = 1
	}
	return core.ParameterGroup{
		Name: "Run",
		Params: []core.Parameter{
			{Key: "peak", Label: "Peak", Type: core.ParamTypeInt, Value: strconv.Itoa(s.PeakPopulation), ReadOnly: true},
			{Key: "avg_population", Label: "Avg pop", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.AveragePopulation, 'f', 1, 64), ReadOnly: true},
			{Key: "gps", Label: "Gen/s", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.GenerationsPerSecond, 'f', 1, 64), ReadOnly: true},
			{Key: "state", Label: "State", Type: core.ParamTypeChoice, Value: strconv.Itoa(state), Options: stateOptions, ReadOnly: true},
		},
	}
}

// Fingerprint returns an MD5 hash of the alive states in the active region.
func Fingerprint(e *life.Engine) string {
	h := md5.New()
	size := e.Size()
	fmt.Fprintf(h, "%dx%d:", size.W, size.H)
	e.ForEachActiveCell(func(_, _ int, c life.Cell) {
		if c.Alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	})
	return fmt.Sprintf("%x", h.Sum(nil))
}
