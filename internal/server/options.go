package server

import (
	"time"

	"github.com/rs/zerolog"
)

// Option defines a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets a custom logger for the server.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTimeouts sets custom timeout configuration for the server.
func WithTimeouts(timeouts Timeouts) Option {
	return func(s *Server) {
		s.timeouts = timeouts
	}
}

// Timeouts holds the timeout configuration of the HTTP server.
type Timeouts struct {
	// RequestTimeout is the maximum duration for a single factorization
	// request.
	RequestTimeout time.Duration
	// ShutdownTimeout is the maximum duration allowed for graceful
	// shutdown.
	ShutdownTimeout time.Duration
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out response
	// writes.
	WriteTimeout time.Duration
	// IdleTimeout is the keep-alive idle bound.
	IdleTimeout time.Duration
}

// DefaultTimeouts returns the timeout configuration used unless overridden.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     2 * time.Minute,
	}
}
