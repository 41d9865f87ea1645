package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/plus3/ticksim/sim"
	"github.com/plus3/ticksim/sim/simlog"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := simlog.New(simlog.ConfigFromEnv(), os.Stderr)

	cfg, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.WithError(err).Error("Failed to parse configuration")
		return 1
	}

	if p := startProfile(cfg.Profile); p != nil {
		defer p.Stop()
	}

	runLog := log.WithField("run", uuid.NewString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := simulate(ctx, cfg, runLog)

	fmt.Println("--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		runLog.WithError(err).Error("Failed to generate report")
		return 1
	}
	fmt.Println("--- End of Report ---")
	return 0
}

// simulate builds a simulation from cfg, runs it, and reports the outcome.
func simulate(ctx context.Context, cfg Config, log logrus.FieldLogger) *Report {
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	s := sim.New(sim.WithObservers(simlog.NewObserver(log, cfg.LogEvery)))
	for i := 0; i < cfg.Entities; i++ {
		s.AddEntity(entityName(i))
	}
	s.AddScore(cfg.Score)

	var stop sim.StopCondition
	if cfg.Ticks > 0 {
		stop = sim.TickBudget(cfg.Ticks)
	}

	log.WithFields(logrus.Fields{
		"entities": cfg.Entities,
		"ticks":    cfg.Ticks,
		"duration": cfg.Duration,
		"interval": cfg.Interval,
	}).Info("Starting simulation")

	start := time.Now()
	var ticks uint64
	if cfg.Interval > 0 {
		ticks = s.RunEvery(ctx, cfg.Interval, stop)
	} else {
		ticks = s.Run(ctx, stop)
	}
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"ticks":   ticks,
		"score":   s.Score(),
		"elapsed": elapsed,
	}).Info("Simulation finished")
	simlog.LogEntities(log, s)

	return newReport(cfg, s, ticks, elapsed)
}

func entityName(i int) string {
	if i == 0 {
		return "Player"
	}
	return fmt.Sprintf("entity-%d", i)
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return nil
	}
}
