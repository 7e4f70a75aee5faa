package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger returns a logger writing to stderr so that stdout only carries
// the report.
func newLogger(cfg config) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logLevel(cfg))

	return log.WithFields(logrus.Fields{
		"catalog": cfg.Catalog,
		"src":     cfg.SourceDir,
	})
}

func logLevel(cfg config) logrus.Level {
	if cfg.Debug {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
