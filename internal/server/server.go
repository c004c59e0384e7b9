// Package server implements the wavetrace HTTP API.
//
// The API exposes two surfaces: a stateless render endpoint that turns
// a posted document into SVG, and a small gallery for saving named
// diagrams. Rendered artifacts are cached through the pipeline runner,
// so identical documents do not re-render across requests.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/mlandau/wavetrace/pkg/pipeline"
	"github.com/mlandau/wavetrace/pkg/store"
)

// Config carries the server dependencies.
type Config struct {
	Runner *pipeline.Runner
	Store  store.Store
	Logger *log.Logger
}

// Server is the wavetrace HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New builds the server and its route table.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore()
	}

	s := &Server{
		runner: cfg.Runner,
		store:  st,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Post("/api/render", s.handleRender)
	r.Route("/api/diagrams", func(r chi.Router) {
		r.Get("/", s.handleListDiagrams)
		r.Post("/", s.handleCreateDiagram)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetDiagram)
			r.Delete("/", s.handleDeleteDiagram)
			r.Get("/render", s.handleRenderDiagram)
		})
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("listening", "addr", addr)
	return srv.ListenAndServe()
}
