// Package server exposes the optional metrics endpoint. The search itself is
// a batch process; the server only publishes the Prometheus registry and a
// liveness probe for runs long enough to be worth scraping.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/agbru/taxicab/internal/errors"
	"github.com/agbru/taxicab/internal/logging"
)

// Timeouts groups the HTTP server timeouts.
type Timeouts struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultTimeouts returns the timeouts used when none are supplied.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// MetricsServer wraps the standard http.Server serving /metrics and /healthz.
// It runs alongside the search and is shut down when the run finishes.
type MetricsServer struct {
	httpServer *http.Server
	logger     logging.Logger
	timeouts   Timeouts
	errCh      chan error
}

// NewMetricsServer creates a server listening on addr.
//
// Parameters:
//   - addr: The listen address, e.g. ":9090".
//   - logger: The structured logger for lifecycle events.
//
// Returns:
//   - *MetricsServer: A pointer to the initialized server.
func NewMetricsServer(addr string, logger logging.Logger) *MetricsServer {
	timeouts := DefaultTimeouts()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", handleHealth)

	return &MetricsServer{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  timeouts.ReadTimeout,
			WriteTimeout: timeouts.WriteTimeout,
			IdleTimeout:  timeouts.IdleTimeout,
		},
		logger:   logger,
		timeouts: timeouts,
		errCh:    make(chan error, 1),
	}
}

// handleHealth is the HTTP handler for the /healthz endpoint.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Start begins serving in a background goroutine and returns immediately.
// Listen errors surface through Err.
func (s *MetricsServer) Start() {
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- apperrors.NewServerError("metrics server failed", err)
		}
	}()
}

// Err reports a listen failure, if one occurred. Non-blocking.
func (s *MetricsServer) Err() error {
	select {
	case err := <-s.errCh:
		return err
	default:
		return nil
	}
}

// Shutdown stops the server gracefully, waiting at most the configured
// shutdown timeout for in-flight scrapes.
//
// Returns:
//   - error: An error if the server fails to shut down cleanly.
func (s *MetricsServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return apperrors.NewServerError("failed to gracefully shutdown metrics server", err)
	}
	s.logger.Info("metrics server stopped")
	return nil
}
