package sim

import "time"

// TickFrame describes a completed entity pass.
type TickFrame struct {
	Tick       uint64
	Duration   time.Duration
	Score      int
	Entities   int
	Commands   *Commands
	Simulation *Simulation
}

// Observer is notified after each tick, outside the entity pass.
// Structural changes should be queued on frame.Commands.
type Observer interface {
	ObserveTick(frame *TickFrame)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(frame *TickFrame)

func (f ObserverFunc) ObserveTick(frame *TickFrame) {
	f(frame)
}

// Observe registers an observer for subsequent ticks.
func (s *Simulation) Observe(o Observer) {
	s.observers = append(s.observers, o)
}
