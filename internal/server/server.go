// Package server exposes the simulation engine over HTTP: parameter
// collection and result rendering live here, the engine stays pure.
package server

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/njvijay-mck/trade-expectancy-simulation/internal/observability"
	"github.com/njvijay-mck/trade-expectancy-simulation/internal/storage"
)

// Options contains configuration for creating a Server.
type Options struct {
	Store storage.RunStore
	Log   zerolog.Logger
}

// Server routes simulation requests to the engine and holds finished
// runs for re-display within the current process.
type Server struct {
	store  storage.RunStore
	log    zerolog.Logger
	router chi.Router

	mu        sync.Mutex
	startedAt time.Time
	lastRunAt time.Time
	runsSeen  int
}

// New creates a server with all routes registered.
func New(opts Options) *Server {
	s := &Server{
		store:     opts.Store,
		log:       opts.Log.With().Str("component", "server").Logger(),
		startedAt: time.Now(),
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/status", s.handleStatus)
	r.Method(http.MethodGet, "/metrics", observability.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/simulate", s.handleSimulate)
		r.Post("/simulate/batch", s.handleSimulateBatch)
		r.Get("/simulate/stream", s.handleSimulateStream)
		r.Get("/streaks", s.handleStreaks)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{runID}", s.handleGetRun)
	})

	s.router = r
	return s
}

// Router returns the HTTP handler for the server.
func (s *Server) Router() http.Handler {
	return s.router
}

// requestLogger logs each request and feeds the HTTP duration histogram.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		observability.RecordHTTPRequest(route, r.Method, http.StatusText(sw.status), elapsed.Seconds())
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("elapsed", elapsed).
			Msg("request served")
	})
}

// statusWriter captures the response status for logging and metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Hijack passes through to the underlying writer so the WebSocket
// upgrade keeps working behind the logging middleware.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}

// recordRun updates server state after a finished simulation.
func (s *Server) recordRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastRunAt = time.Now()
	s.runsSeen++
}
