// Package logging configures zerolog loggers and provides a store hook that
// logs dispatched actions.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat indicates an unsupported log format.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config describes a logger.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error, ...).
	Level string

	// Format is FormatConsole or FormatJSON.
	Format string

	// Output receives log lines. Nil means stderr.
	Output io.Writer

	// NoColor disables ANSI colors in console output.
	NoColor bool
}

// DefaultConfig returns an info level console logger config.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: FormatConsole,
	}
}

// New builds a logger from cfg.
func New(cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: parsing level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var w io.Writer
	switch cfg.Format {
	case "", FormatConsole:
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	case FormatJSON:
		w = out
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
