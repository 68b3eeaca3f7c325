// Package server implements the Spreadpress HTTP API.
//
// The API exposes the planning pipeline over REST:
//
//	POST /v1/plan                      Plan an inline gallery
//	PUT  /v1/galleries/{id}            Store a gallery
//	GET  /v1/galleries/{id}            Fetch a stored gallery
//	GET  /v1/galleries/{id}/spreads    Plan a stored gallery
//	GET  /v1/themes                    List built-in themes
//	GET  /healthz                      Liveness probe
//
// Handlers share the pipeline Runner with the CLI, so a gallery planned
// over HTTP produces byte-identical artifacts to one planned locally.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dangsayz/spreadpress/pkg/pipeline"
	"github.com/dangsayz/spreadpress/pkg/store"
)

// Config holds server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// ReadTimeout bounds request reads. Defaults to 15s.
	ReadTimeout time.Duration

	// WriteTimeout bounds response writes. Defaults to 30s.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	ShutdownTimeout time.Duration
}

// setDefaults applies defaults for unset fields.
func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 15 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// Server is the Spreadpress HTTP API server.
type Server struct {
	cfg    Config
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by the given store and runner.
func New(cfg Config, st store.Store, runner *pipeline.Runner, logger *log.Logger) *Server {
	cfg.setDefaults()
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:    cfg,
		store:  st,
		runner: runner,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

// routes builds the chi router with middleware and endpoints.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/plan", s.handlePlan)
		r.Get("/themes", s.handleThemes)

		r.Route("/galleries/{galleryID}", func(r chi.Router) {
			r.Put("/", s.handlePutGallery)
			r.Get("/", s.handleGetGallery)
			r.Delete("/", s.handleDeleteGallery)
			r.Get("/spreads", s.handleGallerySpreads)
		})
	})

	return r
}

// Handler returns the router, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve runs the server until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
