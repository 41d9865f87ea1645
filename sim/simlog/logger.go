// Package simlog reports simulation activity through logrus.
// Logging happens in observers after each tick; the entity pass itself never
// writes output.
package simlog

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the logger level and output format.
type Config struct {
	Level  string
	Format string
}

// ConfigFromEnv reads LOG_LEVEL (default "info") and LOG_FORMAT ("json" or text).
func ConfigFromEnv() Config {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	return Config{
		Level:  level,
		Format: strings.ToLower(os.Getenv("LOG_FORMAT")),
	}
}

// New builds a logger writing to out. Unknown levels fall back to info.
func New(cfg Config, out io.Writer) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(out)
	return log
}
