package sim

// Commands buffers simulation changes requested while observers run.
// The buffer is flushed once all observers have seen the tick.
type Commands struct {
	spawns      []string
	removes     []*EntityRef
	activations []activationCommand
	scores      []int
	defers      []func()
}

type activationCommand struct {
	ref    *EntityRef
	active bool
}

func newCommands() *Commands {
	return &Commands{}
}

// AddEntity queues the creation of an entity.
func (c *Commands) AddEntity(name string) {
	c.spawns = append(c.spawns, name)
}

// Remove queues the removal of an entity.
func (c *Commands) Remove(ref *EntityRef) {
	c.removes = append(c.removes, ref)
}

// SetActive queues an activation change.
func (c *Commands) SetActive(ref *EntityRef, active bool) {
	c.activations = append(c.activations, activationCommand{ref: ref, active: active})
}

// AddScore queues a score change.
func (c *Commands) AddScore(points int) {
	c.scores = append(c.scores, points)
}

// Defer queues a function to run after all other commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies queued commands to sim and resets the buffer.
// Commands queued during the flush wait for the next one.
func (c *Commands) Flush(sim *Simulation) {
	removes, activations, scores, spawns, defers := c.removes, c.activations, c.scores, c.spawns, c.defers
	c.removes, c.activations, c.scores, c.spawns, c.defers = nil, nil, nil, nil, nil

	for _, ref := range removes {
		sim.RemoveEntity(ref)
	}

	// Removed handles are invalid, so their activations are dropped here.
	for _, cmd := range activations {
		sim.SetActive(cmd.ref, cmd.active)
	}

	for _, points := range scores {
		sim.AddScore(points)
	}

	for _, name := range spawns {
		sim.AddEntity(name)
	}

	for _, fn := range defers {
		fn()
	}
}
