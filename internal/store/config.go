package store

import "github.com/rs/zerolog"

// Config holds store configuration options.
type Config struct {
	// RecoverFromPanic wraps reducer execution in panic recovery.
	// A recovered dispatch leaves the state unchanged.
	RecoverFromPanic bool

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// Logger receives store diagnostics. The zero value discards them.
	Logger zerolog.Logger
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		EnableMetrics:    false,
		Logger:           zerolog.Nop(),
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithLogger returns a copy of the config with the logger set.
func (c Config) WithLogger(logger zerolog.Logger) Config {
	c.Logger = logger
	return c
}
