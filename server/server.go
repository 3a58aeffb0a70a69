// Package server exposes lattice searches over HTTP.
//
// Routes:
//
//	POST /v1/solve   problem Document (YAML or JSON) → Solution
//	GET  /healthz    liveness probe
//	GET  /metrics    Prometheus exposition
//
// A search that finds nothing is not an HTTP error: it answers 200 with
// "found": false and the failure reason.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/latticepath/metrics"
)

// Defaults for Server options.
const (
	DefaultMaxBody       = 32 << 20
	DefaultSearchTimeout = 30 * time.Second
	shutdownGrace        = 5 * time.Second
)

// Route binds a handler to a method and path.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc http.HandlerFunc
}

// Server serves search requests.
type Server struct {
	collector *metrics.Collector
	gatherer  prometheus.Gatherer
	maxBody   int64
	timeout   time.Duration
	router    *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBody limits request bodies to n bytes. Panics if n <= 0.
func WithMaxBody(n int64) Option {
	if n <= 0 {
		panic(fmt.Sprintf("server: WithMaxBody(%d)", n))
	}
	return func(s *Server) {
		s.maxBody = n
	}
}

// WithSearchTimeout bounds the duration of a single search. Panics if d <= 0.
func WithSearchTimeout(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("server: WithSearchTimeout(%s)", d))
	}
	return func(s *Server) {
		s.timeout = d
	}
}

// New builds a Server. Searches are recorded on collector and /metrics
// serves what gatherer collects.
func New(collector *metrics.Collector, gatherer prometheus.Gatherer, opts ...Option) *Server {
	s := &Server{
		collector: collector,
		gatherer:  gatherer,
		maxBody:   DefaultMaxBody,
		timeout:   DefaultSearchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = mux.NewRouter().StrictSlash(true)
	for _, route := range s.Routes() {
		s.router.
			Methods(route.Method).
			Path(route.Pattern).
			Name(route.Name).
			Handler(route.HandlerFunc)
	}
	s.router.Use(logRequests)
	return s
}

// Routes lists every route served.
//
// Solve stays last: mux drops a method mismatch when a later route is tried,
// so a GET /v1/solve would fall through to 404 instead of 405.
func (s *Server) Routes() []Route {
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", s.Healthz},
		{"Metrics", http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}).ServeHTTP},
		{"Solve", http.MethodPost, "/v1/solve", s.Solve},
	}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		klog.InfoS("Listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	klog.InfoS("Shutting down", "grace", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// logRequests logs every request at verbosity 4.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		began := time.Now()
		next.ServeHTTP(w, r)
		klog.V(4).InfoS("HTTP request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(began))
	})
}
