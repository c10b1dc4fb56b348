// Package server exposes the separation-energy calculations over HTTP as JSON,
// with Prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rshade/mixing-energy/internal/mixing"
)

const (
	// MaxSweepPoints caps the number of points a single sweep request may ask for.
	MaxSweepPoints = 10000

	shutdownTimeout = 10 * time.Second
)

// Server serves a Calculator over HTTP.
type Server struct {
	calc   *mixing.Calculator
	logger zerolog.Logger
	mux    *http.ServeMux

	requests     *prometheus.CounterVec
	domainErrors *prometheus.CounterVec
}

// New creates a Server backed by calc. Metrics are registered on a registry
// owned by the server.
func New(calc *mixing.Calculator, logger zerolog.Logger) *Server {
	s := &Server{
		calc:   calc,
		logger: logger.With().Str("component", "server").Logger(),
		mux:    http.NewServeMux(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mixing_requests_total",
			Help: "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		domainErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mixing_domain_errors_total",
			Help: "Requests rejected because an input was outside its domain.",
		}, []string{"endpoint"}),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(s.requests, s.domainErrors)

	s.mux.Handle("GET /v1/separation", s.instrument("separation", s.handleSeparation))
	s.mux.Handle("GET /v1/sweep", s.instrument("sweep", s.handleSweep))
	s.mux.Handle("GET /v1/convert", s.instrument("convert", s.handleConvert))
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", addr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-shutdownDone
		return fmt.Errorf("server failed: %w", err)
	}
	<-shutdownDone
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument tags the response with a request ID and counts it by status.
func (s *Server) instrument(endpoint string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		h(rec, r)

		s.requests.WithLabelValues(endpoint, strconv.Itoa(rec.code)).Inc()
		s.logger.Debug().
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Int("code", rec.code).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to write response")
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps domain errors and malformed parameters to 400 and
// everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, endpoint string, err error) {
	var pe *paramError
	switch {
	case mixing.IsDomainError(err):
		s.domainErrors.WithLabelValues(endpoint).Inc()
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.As(err, &pe):
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		s.logger.Error().Err(err).Str("endpoint", endpoint).Msg("request failed")
		s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
