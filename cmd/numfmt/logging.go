package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/numfmt/pkg/numfmt"
	log "github.com/sirupsen/logrus"
)

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})
	return nil
}

// componentLogger adapts logrus to the library Logger interface.
func componentLogger(component string) numfmt.Logger {
	return log.WithField("component", component)
}
