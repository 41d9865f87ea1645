package sim

// EntityId identifies an entity for the lifetime of its simulation.
// Ids start at 1 and are never reused; 0 marks an invalidated handle.
type EntityId uint64

// Vec2 is a two-component integer position.
type Vec2 struct {
	X, Y int
}

// Entity is a named unit of simulation state.
type Entity struct {
	id       EntityId
	name     string
	position Vec2
	active   bool
}

// NewEntity returns an active entity at the origin.
func NewEntity(name string) Entity {
	return Entity{name: name, active: true}
}

// Name returns the name given at creation.
func (e *Entity) Name() string {
	return e.name
}

// Position returns a copy of the current position.
func (e *Entity) Position() Vec2 {
	return e.position
}

// Active reports whether the entity participates in ticks.
func (e *Entity) Active() bool {
	return e.active
}

// SetActive toggles tick participation.
func (e *Entity) SetActive(active bool) {
	e.active = active
}

// Update advances an active entity by one step along X.
func (e *Entity) Update() {
	if !e.active {
		return
	}
	e.position.X++
}

// EntityState is a read-only snapshot of an entity.
type EntityState struct {
	Id       EntityId
	Name     string
	Position Vec2
	Active   bool
}

func (e *Entity) state() EntityState {
	return EntityState{
		Id:       e.id,
		Name:     e.name,
		Position: e.position,
		Active:   e.active,
	}
}
