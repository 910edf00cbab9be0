// Package logging provides the structured logging setup shared by the
// application components. It wraps zerolog with a uniform constructor so
// that every component carries the same timestamp format and a component
// field identifying the emitter.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// EnvLogLevel is the environment variable controlling the global log level.
// Accepted values: trace, debug, info, warn, error. Anything else keeps the
// default of info.
const EnvLogLevel = "FACTORBENCH_LOG_LEVEL"

// NewLogger creates a zerolog logger writing to w, tagged with the given
// component name. The level is taken from EnvLogLevel.
//
// Parameters:
//   - w: The destination writer (typically os.Stderr).
//   - component: A short identifier for the emitting component.
//
// Returns:
//   - zerolog.Logger: The configured logger.
func NewLogger(w io.Writer, component string) zerolog.Logger {
	return zerolog.New(w).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// NewNopLogger returns a logger that discards everything, for tests and for
// callers that opt out of diagnostics.
func NewNopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// levelFromEnv resolves the configured log level, defaulting to info.
func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv(EnvLogLevel)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
