// Package server implements the bubblechart HTTP API.
//
// Endpoints:
//
//	POST /api/v1/layout   compute a bubble layout from raw areas
//	POST /api/v1/render   render a layout into an output format
//	GET  /healthz         liveness probe with build information
//
// The server reuses the same [pipeline.Runner] as the CLI, so caching and
// validation behave identically across entry points.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jabulente/bubblechart/pkg/pipeline"
)

// Server hosts the HTTP API on top of a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router *chi.Mux
}

// New creates a server backed by the given runner.
// A nil logger falls back to the default logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
