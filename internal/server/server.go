// Package server implements the gridpack HTTP API.
//
// The API exposes stored layouts and the packing operations over JSON.
// Layout documents live in a pkg/store backend; mutation endpoints load
// the document, run the corresponding pkg/grid operation, and persist
// the result. Engine failures map to HTTP status codes: validation
// errors are 400, missing resources are 404, and infeasible packing
// requests are 409.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lwertel/gridpack/pkg/catalog"
	"github.com/lwertel/gridpack/pkg/store"
)

// Server wires the layout store and widget catalog into an HTTP API.
type Server struct {
	store   store.Store
	catalog *catalog.Catalog
	logger  *log.Logger
}

// New creates a server. A nil catalog falls back to the compiled-in
// defaults, and a nil logger falls back to log.Default().
func New(st store.Store, cat *catalog.Catalog, logger *log.Logger) *Server {
	if cat == nil {
		cat = catalog.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, catalog: cat, logger: logger}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/widgets", s.handleListWidgets)

	r.Route("/api/layouts", func(r chi.Router) {
		r.Get("/", s.handleListLayouts)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.handleGetLayout)
			r.Put("/", s.handlePutLayout)
			r.Delete("/", s.handleDeleteLayout)
			r.Get("/render", s.handleRenderLayout)
			r.Post("/add", s.handleAddWidget)
			r.Post("/push", s.handlePush)
			r.Post("/resize", s.handleResize)
			r.Post("/swap", s.handleSwap)
			r.Post("/repack", s.handleRepack)
		})
	})

	return r
}

// logRequests logs one line per request with method, path, status and latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
