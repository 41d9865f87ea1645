package simlog

import (
	"github.com/plus3/ticksim/sim"
	"github.com/sirupsen/logrus"
)

// Observer logs a tick summary every N ticks at debug level.
type Observer struct {
	log   logrus.FieldLogger
	every uint64
}

// NewObserver creates an observer that logs every n-th tick. n of 0 is treated as 1.
func NewObserver(log logrus.FieldLogger, every uint64) *Observer {
	if every == 0 {
		every = 1
	}
	return &Observer{log: log, every: every}
}

// ObserveTick implements sim.Observer.
func (o *Observer) ObserveTick(frame *sim.TickFrame) {
	if frame.Tick%o.every != 0 {
		return
	}

	o.log.WithFields(logrus.Fields{
		"component": "simulation",
		"tick":      frame.Tick,
		"entities":  frame.Entities,
		"score":     frame.Score,
		"duration":  frame.Duration,
	}).Debug("tick complete")
}

// LogEntities writes one info line per live entity, in insertion order.
func LogEntities(log logrus.FieldLogger, s *sim.Simulation) {
	for e := range s.Entities() {
		log.WithFields(logrus.Fields{
			"id":     e.Id,
			"name":   e.Name,
			"x":      e.Position.X,
			"y":      e.Position.Y,
			"active": e.Active,
		}).Info("entity")
	}
}
