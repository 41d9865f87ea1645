package simlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/plus3/ticksim/sim"
	"github.com/plus3/ticksim/sim/simlog"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	s := sim.New(sim.WithObservers(simlog.NewObserver(log, 5)))
	s.AddEntity("Player")
	s.AddScore(100)
	s.Run(context.Background(), sim.TickBudget(12))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "tick complete", entries[0].Message)
	assert.Equal(t, uint64(5), entries[0].Data["tick"])
	assert.Equal(t, uint64(10), entries[1].Data["tick"])
	assert.Equal(t, 100, entries[1].Data["score"])
	assert.Equal(t, 1, entries[1].Data["entities"])
}

func TestObserverEveryTick(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	s := sim.New(sim.WithObservers(simlog.NewObserver(log, 0)))
	s.Run(context.Background(), sim.TickBudget(3))

	assert.Len(t, hook.AllEntries(), 3)
}

func TestLogEntities(t *testing.T) {
	log, hook := test.NewNullLogger()

	s := sim.New()
	s.AddEntity("Player")
	idle := s.AddEntity("Idle")
	s.SetActive(idle, false)
	s.Tick()

	simlog.LogEntities(log, s)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Player", entries[0].Data["name"])
	assert.Equal(t, 1, entries[0].Data["x"])
	assert.Equal(t, "Idle", entries[1].Data["name"])
	assert.Equal(t, false, entries[1].Data["active"])
}

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		log := simlog.New(simlog.Config{Level: "warn", Format: "json"}, &buf)

		log.Info("hidden")
		log.WithField("tick", 3).Warn("shown")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.Equal(t, "warning", line["level"])
		assert.EqualValues(t, 3, line["tick"])
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := simlog.New(simlog.Config{Level: "loud"}, &buf)
		assert.Equal(t, logrus.InfoLevel, log.GetLevel())
		_, ok := log.Formatter.(*logrus.TextFormatter)
		assert.True(t, ok)
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := simlog.ConfigFromEnv()
	assert.Equal(t, simlog.Config{Level: "debug", Format: "json"}, cfg)
}
