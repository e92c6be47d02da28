// Package server exposes the route engine and its directory as a small JSON
// API for kiosks and the building's web page.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wayfinder/core"
	"github.com/katalvlaran/wayfinder/route"
	"github.com/katalvlaran/wayfinder/sqlstore"
)

// ScanLog persists marker scans; *sqlstore.Store implements it.
type ScanLog interface {
	LogScan(ctx context.Context, locationID string) (sqlstore.Scan, error)
	RecentScans(ctx context.Context, limit int) ([]sqlstore.Scan, error)
}

// Server serves the wayfinder API.
type Server struct {
	dir    core.Catalog
	engine *route.Engine
	scans  ScanLog
	log    *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithScanLog enables scan history. Without it scans are resolved and routed
// but not recorded.
func WithScanLog(sl ScanLog) Option {
	return func(s *Server) {
		s.scans = sl
	}
}

// New returns a Server answering from dir with routes computed by engine.
func New(dir core.Catalog, engine *route.Engine, opts ...Option) *Server {
	s := &Server{dir: dir, engine: engine, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the API mux wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/locations", s.handleLocations)
	mux.HandleFunc("GET /api/locations/{id}", s.handleLocation)
	mux.HandleFunc("GET /api/levels", s.handleLevels)
	mux.HandleFunc("GET /api/route", s.handleRoute)
	mux.HandleFunc("GET /api/reachable", s.handleReachable)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/islands", s.handleIslands)
	mux.HandleFunc("GET /api/scans", s.handleRecentScans)
	mux.HandleFunc("POST /api/scans", s.handleScan)
	return s.logRequests(mux)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
