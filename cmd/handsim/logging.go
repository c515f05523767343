package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// RunContext carries shared dependencies into kong command Run methods.
type RunContext struct {
	Logger zerolog.Logger
}

// setupLogger configures zerolog with pretty console output, or structured
// JSON when requested.
func setupLogger(debug, jsonLog bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if jsonLog {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
