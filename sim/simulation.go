// Package sim drives a fixed-tick update loop over an ordered collection of
// named entities and keeps an accumulated score.
//
// A Simulation owns every entity it creates. Callers hold EntityRef handles
// and read EntityState snapshots; they never alias entity storage. Ticks are
// synchronous: each one updates every entity in insertion order, then reports
// to registered observers and applies the commands they queued.
package sim

import (
	"iter"
	"time"
	"weak"

	"github.com/kamstrup/intmap"
)

const defaultCompactThreshold = blockSize

// Simulation owns entities and advances them one tick at a time.
type Simulation struct {
	storage entityStorage
	slots   *intmap.Map[EntityId, int]
	refs    *intmap.Map[EntityId, weak.Pointer[EntityRef]]
	lastId  EntityId

	score int
	tick  uint64

	observers        []Observer
	commands         *Commands
	stats            tickStatsInternal
	compactThreshold int
}

// New creates an empty simulation.
func New(opts ...Option) *Simulation {
	s := &Simulation{
		slots:            intmap.New[EntityId, int](64),
		refs:             intmap.New[EntityId, weak.Pointer[EntityRef]](64),
		commands:         newCommands(),
		stats:            newTickStatsInternal(),
		compactThreshold: defaultCompactThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddEntity appends an active entity at the origin and returns its handle.
func (s *Simulation) AddEntity(name string) *EntityRef {
	s.lastId++
	id := s.lastId

	e := NewEntity(name)
	e.id = id
	slot := s.storage.Append(e)
	s.slots.Put(id, slot)

	return s.Ref(id)
}

// RemoveEntity releases the entity behind ref. The handle is invalidated.
// Returns false for nil, stale or foreign handles.
func (s *Simulation) RemoveEntity(ref *EntityRef) bool {
	slot, ok := s.resolve(ref)
	if !ok {
		return false
	}

	id := ref.Id
	s.storage.Delete(slot)
	s.slots.Del(id)
	s.invalidate(id)
	return true
}

// AddScore adds points to the score. Negative points are allowed.
func (s *Simulation) AddScore(points int) {
	s.score += points
}

// Score returns the sum of all AddScore calls.
func (s *Simulation) Score() int {
	return s.score
}

// CurrentTick returns the number of completed ticks.
func (s *Simulation) CurrentTick() uint64 {
	return s.tick
}

// Len returns the number of live entities.
func (s *Simulation) Len() int {
	return s.storage.Len()
}

// Tick updates every entity once, in insertion order, then notifies
// observers and flushes the commands they queued.
func (s *Simulation) Tick() {
	start := time.Now()
	for slot := range s.storage.Iter() {
		s.storage.Get(slot).Update()
	}
	duration := time.Since(start)

	s.tick++
	s.stats.record(duration)

	if len(s.observers) > 0 {
		frame := &TickFrame{
			Tick:       s.tick,
			Duration:   duration,
			Score:      s.score,
			Entities:   s.storage.Len(),
			Commands:   s.commands,
			Simulation: s,
		}
		for _, o := range s.observers {
			o.ObserveTick(frame)
		}
	}

	s.commands.Flush(s)
	s.maybeCompact()
}

// Lookup returns a snapshot of the entity behind ref.
func (s *Simulation) Lookup(ref *EntityRef) (EntityState, bool) {
	slot, ok := s.resolve(ref)
	if !ok {
		return EntityState{}, false
	}
	return s.storage.Get(slot).state(), true
}

// Find returns the first entity, in insertion order, with the given name.
func (s *Simulation) Find(name string) (EntityState, bool) {
	for state := range s.Entities() {
		if state.Name == name {
			return state, true
		}
	}
	return EntityState{}, false
}

// SetActive toggles whether the entity behind ref takes part in ticks.
func (s *Simulation) SetActive(ref *EntityRef, active bool) bool {
	slot, ok := s.resolve(ref)
	if !ok {
		return false
	}
	s.storage.Get(slot).SetActive(active)
	return true
}

// Entities yields snapshots of all live entities in insertion order.
func (s *Simulation) Entities() iter.Seq[EntityState] {
	return func(yield func(EntityState) bool) {
		for slot := range s.storage.Iter() {
			if !yield(s.storage.Get(slot).state()) {
				return
			}
		}
	}
}

// Compact drops the empty slots left behind by removals.
// Handles stay valid; insertion order is preserved.
func (s *Simulation) Compact() {
	if s.storage.Holes() == 0 {
		return
	}

	s.storage.Compact()
	for slot := range s.storage.Iter() {
		id := s.storage.Get(slot).id
		s.slots.Put(id, slot)

		if weakPtr, ok := s.refs.Get(id); ok && weakPtr.Value() == nil {
			s.refs.Del(id)
		}
	}
}

func (s *Simulation) maybeCompact() {
	if s.compactThreshold <= 0 {
		return
	}
	holes := s.storage.Holes()
	if holes >= s.compactThreshold && holes >= s.storage.Len() {
		s.Compact()
	}
}
