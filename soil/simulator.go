package soil

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/iimrul/dhan/models"
)

// Simulated sensor cadence. The first reading becomes visible half a second
// after Start to mimic sensor warm-up.
const (
	WarmupDelay  = 500 * time.Millisecond
	TickInterval = 30 * time.Second
)

// ErrWarmingUp is returned by Current before the simulator has produced its
// first visible reading.
var ErrWarmingUp = errors.New("soil sensor warming up")

var fertilityLevels = []string{"High", "Medium", "Low"}

// Simulator fakes a single farm's soil sensor: a current reading nudged by
// bounded random jitter on every tick, plus a fixed 7-day history generated
// once at construction. Fertility is rolled once and never re-rolled by the
// ticker.
type Simulator struct {
	mu          sync.RWMutex
	rnd         *rand.Rand
	current     models.SoilReading
	history     []models.HistoricalSoilEntry
	ready       bool
	subscribers map[chan models.SoilReading]struct{}
}

func NewSimulator() *Simulator {
	return NewSimulatorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSimulatorWithSource allows a deterministic source in tests.
func NewSimulatorWithSource(rnd *rand.Rand) *Simulator {
	s := &Simulator{
		rnd:         rnd,
		subscribers: make(map[chan models.SoilReading]struct{}),
	}
	s.current = s.generateReading()
	s.history = s.generateHistory(time.Now())
	return s
}

// Start marks the simulator ready after the warm-up delay and then applies
// jitter every TickInterval until ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) {
	go func() {
		select {
		case <-time.After(WarmupDelay):
			s.mu.Lock()
			s.ready = true
			s.mu.Unlock()
		case <-ctx.Done():
			return
		}

		ticker := time.NewTicker(TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.advance()
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Current returns the latest reading, or ErrWarmingUp during warm-up.
func (s *Simulator) Current() (models.SoilReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return models.SoilReading{}, ErrWarmingUp
	}
	return s.current, nil
}

// History returns the fixed 7-day window generated at construction.
func (s *Simulator) History() []models.HistoricalSoilEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HistoricalSoilEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Refresh discards the current reading and rolls a fresh one, fertility
// included. This backs the manual refresh button.
func (s *Simulator) Refresh() models.SoilReading {
	s.mu.Lock()
	s.current = s.generateReading()
	reading := s.current
	s.mu.Unlock()
	s.broadcast(reading)
	return reading
}

// Subscribe registers a channel that receives every new reading. The returned
// func must be called to unsubscribe; slow receivers drop readings rather
// than block the ticker.
func (s *Simulator) Subscribe() (<-chan models.SoilReading, func()) {
	ch := make(chan models.SoilReading, 4)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()
	cancel := func() {
		s.mu.Lock()
		delete(s.subscribers, ch)
		s.mu.Unlock()
	}
	return ch, cancel
}

// advance nudges pH and moisture by bounded jitter. Fertility stays as rolled
// at generation time.
func (s *Simulator) advance() {
	s.mu.Lock()
	s.current.PH = roundPH(clamp(s.current.PH+(s.rnd.Float64()-0.5)*0.2, 5.0, 8.0))
	s.current.Moisture = clamp(s.current.Moisture+(s.rnd.Float64()-0.5)*5, 30, 90)
	reading := s.current
	s.mu.Unlock()
	s.broadcast(reading)
}

func (s *Simulator) broadcast(reading models.SoilReading) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers {
		select {
		case ch <- reading:
		default:
		}
	}
}

func (s *Simulator) generateReading() models.SoilReading {
	return models.SoilReading{
		Fertility: fertilityLevels[s.rnd.Intn(len(fertilityLevels))],
		PH:        roundPH(5.5 + s.rnd.Float64()*2), // pH between 5.5 and 7.5
		Moisture:  float64(40 + s.rnd.Intn(40)),     // Moisture between 40% and 80%
	}
}

func (s *Simulator) generateHistory(today time.Time) []models.HistoricalSoilEntry {
	entries := make([]models.HistoricalSoilEntry, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		entries = append(entries, models.HistoricalSoilEntry{
			Day: day.Format("Jan 2"),
			SoilReading: models.SoilReading{
				Fertility: "Medium",
				PH:        roundPH(6.5 + (s.rnd.Float64() - 0.5)),       // pH varies around 6.5
				Moisture:  math.Floor(60 + (s.rnd.Float64()-0.5)*20), // moisture varies around 60%
			},
		})
	}
	return entries
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundPH(v float64) float64 {
	return math.Round(v*10) / 10
}
