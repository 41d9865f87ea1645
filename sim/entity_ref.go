package sim

import "weak"

// EntityRef is a stable handle to an entity owned by a Simulation.
// It survives storage compaction and is zeroed when the entity is removed.
type EntityRef struct {
	Id    EntityId
	owner *Simulation
}

// Valid reports whether the handle still points at a live entity.
func (r *EntityRef) Valid() bool {
	return r != nil && r.Id != 0
}

// Ref returns the handle for a live entity, or nil if id is not live.
// Repeated calls for the same id return the same handle while it is reachable.
func (s *Simulation) Ref(id EntityId) *EntityRef {
	if _, ok := s.slots.Get(id); !ok {
		return nil
	}

	if weakPtr, ok := s.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		s.refs.Del(id)
	}

	ref := &EntityRef{Id: id, owner: s}
	s.refs.Put(id, weak.Make(ref))
	return ref
}

// resolve maps a handle to its storage slot.
func (s *Simulation) resolve(ref *EntityRef) (int, bool) {
	if !ref.Valid() || ref.owner != s {
		return 0, false
	}
	return s.slots.Get(ref.Id)
}

func (s *Simulation) invalidate(id EntityId) {
	if weakPtr, ok := s.refs.Get(id); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Id = 0
			ref.owner = nil
		}
		s.refs.Del(id)
	}
}
