package sim

import (
	"context"
	"time"
)

// StopCondition decides, between ticks, whether a run is over.
// ticks is the number of ticks completed by the current run.
type StopCondition interface {
	ShouldStop(sim *Simulation, ticks uint64) bool
}

// StopFunc adapts a function to the StopCondition interface.
type StopFunc func(sim *Simulation, ticks uint64) bool

func (f StopFunc) ShouldStop(sim *Simulation, ticks uint64) bool {
	return f(sim, ticks)
}

// TickBudget stops a run after n ticks.
func TickBudget(n uint64) StopCondition {
	return StopFunc(func(_ *Simulation, ticks uint64) bool {
		return ticks >= n
	})
}

// Until stops a run once pred holds.
func Until(pred func(sim *Simulation) bool) StopCondition {
	return StopFunc(func(sim *Simulation, _ uint64) bool {
		return pred(sim)
	})
}

// AnyOf stops a run as soon as one of conds holds. Nil conditions are skipped.
func AnyOf(conds ...StopCondition) StopCondition {
	return StopFunc(func(sim *Simulation, ticks uint64) bool {
		for _, c := range conds {
			if c != nil && c.ShouldStop(sim, ticks) {
				return true
			}
		}
		return false
	})
}

// Run ticks back to back until stop holds or ctx is cancelled and returns the
// number of ticks run. Both are checked before each tick, never during one.
// Run panics if neither stop nor ctx can ever end the loop.
func (s *Simulation) Run(ctx context.Context, stop StopCondition) uint64 {
	mustTerminate(ctx, stop)

	var ticks uint64
	for !s.shouldStop(ctx, stop, ticks) {
		s.Tick()
		ticks++
	}
	return ticks
}

// RunEvery is Run paced by a ticker: one tick per interval.
// The wait happens between ticks; a tick itself never blocks.
func (s *Simulation) RunEvery(ctx context.Context, interval time.Duration, stop StopCondition) uint64 {
	if interval <= 0 {
		panic("sim: RunEvery interval must be positive")
	}
	mustTerminate(ctx, stop)

	var ticks uint64
	if s.shouldStop(ctx, stop, ticks) {
		return ticks
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ticks
		case <-ticker.C:
			s.Tick()
			ticks++
			if s.shouldStop(ctx, stop, ticks) {
				return ticks
			}
		}
	}
}

func (s *Simulation) shouldStop(ctx context.Context, stop StopCondition, ticks uint64) bool {
	if ctx.Err() != nil {
		return true
	}
	return stop != nil && stop.ShouldStop(s, ticks)
}

func mustTerminate(ctx context.Context, stop StopCondition) {
	if stop == nil && ctx.Done() == nil {
		panic("sim: run needs a stop condition or a cancellable context")
	}
}
