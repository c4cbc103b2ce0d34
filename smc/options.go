package smc

import "github.com/rs/zerolog"

// Config holds the client configuration.
type Config struct {
	// Logger receives a debug line per protocol call. Nop by default.
	Logger zerolog.Logger

	// PreciseSP78 selects the full-resolution sp78 temperature decoder
	// instead of the legacy integer-byte truncation.
	PreciseSP78 bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger: zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithLogger sets the logger used for per-call debug output.
//
// Example:
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	client := smc.New(conn, smc.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithPreciseSP78 enables the corrected sp78 decoder, which keeps the sign
// and the fractional byte of temperature readings. Default is the legacy
// truncating decoder for compatibility with existing consumers.
//
// Example:
//
//	client := smc.New(conn, smc.WithPreciseSP78(true))
func WithPreciseSP78(precise bool) Option {
	return func(c *Config) {
		c.PreciseSP78 = precise
	}
}
