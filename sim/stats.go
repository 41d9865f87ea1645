package sim

import (
	"math"
	"time"
)

// TickStats provides timing statistics for entity passes.
type TickStats struct {
	Ticks         uint64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

// SimulationStats is a point-in-time summary of a simulation.
type SimulationStats struct {
	Tick        uint64
	EntityCount int
	ActiveCount int
	SlotCount   int
	Score       int
}

type tickStatsInternal struct {
	ticks         uint64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func newTickStatsInternal() tickStatsInternal {
	return tickStatsInternal{minDuration: time.Duration(math.MaxInt64)}
}

func (t *tickStatsInternal) record(d time.Duration) {
	t.ticks++
	t.lastDuration = d
	t.totalDuration += d

	if d < t.minDuration {
		t.minDuration = d
	}
	if d > t.maxDuration {
		t.maxDuration = d
	}
}

// Stats returns timing statistics for all ticks run so far.
func (s *Simulation) Stats() TickStats {
	internal := s.stats
	stats := TickStats{
		Ticks:         internal.ticks,
		MaxDuration:   internal.maxDuration,
		LastDuration:  internal.lastDuration,
		TotalDuration: internal.totalDuration,
	}
	if internal.ticks > 0 {
		stats.MinDuration = internal.minDuration
		stats.AvgDuration = internal.totalDuration / time.Duration(internal.ticks)
	}
	return stats
}

// CollectStats summarizes the current simulation state.
func (s *Simulation) CollectStats() SimulationStats {
	stats := SimulationStats{
		Tick:        s.tick,
		EntityCount: s.storage.Len(),
		SlotCount:   s.storage.Slots(),
		Score:       s.score,
	}
	for slot := range s.storage.Iter() {
		if s.storage.Get(slot).Active() {
			stats.ActiveCount++
		}
	}
	return stats
}
