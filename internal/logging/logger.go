// Package logging configures zerolog for zedref and carries loggers through
// context.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues creates a logger from the string level and format
// carried by the tool configuration. Unknown values fall back to the
// defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()

	switch level {
	case "trace":
		cfg.Level = zerolog.TraceLevel
	case "debug":
		cfg.Level = zerolog.DebugLevel
	case "info":
		cfg.Level = zerolog.InfoLevel
	case "warn":
		cfg.Level = zerolog.WarnLevel
	case "error":
		cfg.Level = zerolog.ErrorLevel
	}

	switch format {
	case "json", "console":
		cfg.Format = format
	}

	return New(cfg)
}
