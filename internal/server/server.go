// Package server provides the HTTP server exposing the factorization
// harness as a small JSON API, with Prometheus metrics and graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/factorbench/internal/benchmark"
	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/factor"
	"github.com/agbru/factorbench/internal/logging"
)

// Server wraps the standard http.Server with the algorithm registry, the
// benchmark runner mediating every factorization, and graceful shutdown.
type Server struct {
	registry   *factor.Registry
	runner     *benchmark.Runner
	httpServer *http.Server
	logger     zerolog.Logger
	timeouts   Timeouts
	opts       factor.Options
}

// New creates a Server listening on the given port.
//
// Parameters:
//   - port: The TCP port to listen on.
//   - registry: The algorithms exposed by the API.
//   - opts: Iteration budget and randomness source for every request.
//   - serverOpts: Optional functional options (logger, timeouts).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func New(port string, registry *factor.Registry, opts factor.Options, serverOpts ...Option) *Server {
	s := &Server{
		registry: registry,
		logger:   logging.NewLogger(os.Stderr, "server"),
		timeouts: DefaultTimeouts(),
		opts:     opts,
	}
	for _, opt := range serverOpts {
		opt(s)
	}
	s.runner = benchmark.NewRunner(s.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/factor", s.wrap(s.handleFactor))
	mux.HandleFunc("/api/v1/algorithms", s.wrap(s.handleAlgorithms))
	mux.HandleFunc("/health", s.wrap(s.handleHealth))
	mux.Handle("/metrics", metricsHandler())

	s.httpServer = &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}
	return s
}

// wrap applies the middleware chain: logging, then metrics, then handler.
func (s *Server) wrap(handler http.HandlerFunc) http.HandlerFunc {
	return s.loggingMiddleware(s.metricsMiddleware(handler))
}

// Run starts the server and blocks until the context is canceled or the
// listener fails. Shutdown is graceful, bounded by the shutdown timeout.
//
// Parameters:
//   - ctx: Canceling this context initiates the shutdown.
//
// Returns:
//   - error: A ServerError if the listener or the shutdown failed.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().
			Str("addr", s.httpServer.Addr).
			Strs("algorithms", s.registry.Keys()).
			Msg("server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return apperrors.NewServerError("server failed", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("shutting down")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return apperrors.NewServerError("graceful shutdown failed", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info().Msg("server stopped")
	return nil
}

// loggingMiddleware emits one structured log line per request.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// statusRecorder captures the response status for the logging middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
