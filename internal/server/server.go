// Package server exposes the connection checks over HTTP. Every request
// works on its own store; nothing is kept between requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gobolt/internal/evaluator"
	"github.com/alexiusacademia/gobolt/internal/store"
)

const (
	// maxBodyBytes limits request bodies
	maxBodyBytes = 1 << 20

	shutdownTimeout = 5 * time.Second
)

// Server routes the HTTP API
type Server struct {
	cfg     evaluator.Config
	ids     store.IDGenerator
	logger  *slog.Logger
	limiter *IPRateLimiter
	router  *mux.Router
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request and evaluation logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator sets the identifier scheme of the per-request stores
func WithIDGenerator(g store.IDGenerator) Option {
	return func(s *Server) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithRateLimit allows r requests per second per client with bursts of b
func WithRateLimit(r rate.Limit, b int) Option {
	return func(s *Server) {
		s.limiter = NewIPRateLimiter(r, b)
	}
}

// New creates a server evaluating with cfg
func New(cfg evaluator.Config, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		ids:     store.SequentialIDs{},
		logger:  slog.Default(),
		limiter: NewIPRateLimiter(5, 10),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	// API routes live on the root router so a wrong method is a 405
	r.Handle("/api/evaluate", s.limited(s.handleEvaluate)).Methods(http.MethodPost)
	r.Handle("/api/demand", s.limited(s.handleDemand)).Methods(http.MethodPost)
	r.Handle("/api/sections", s.limited(s.handleSections)).Methods(http.MethodGet)

	s.router = r
}

func (s *Server) limited(h http.HandlerFunc) http.Handler {
	return s.limiter.LimitMiddleware(h)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"remote", clientIP(r),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeJSON reads one JSON value from the request body into v. Unknown
// fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
