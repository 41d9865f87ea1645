package sim

// Option configures a Simulation.
type Option func(*Simulation)

// WithObservers registers observers that are notified after every tick.
func WithObservers(observers ...Observer) Option {
	return func(s *Simulation) {
		s.observers = append(s.observers, observers...)
	}
}

// WithCompactThreshold sets how many empty slots may accumulate before the
// simulation compacts its storage at the end of a tick. Compaction also waits
// until holes outnumber live entities. A value <= 0 disables automatic
// compaction; Compact can still be called directly.
func WithCompactThreshold(holes int) Option {
	return func(s *Simulation) {
		s.compactThreshold = holes
	}
}
