package server

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/pipeline"
)

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 1 << 20

// Config holds the server dependencies.
type Config struct {
	Runner  *pipeline.Runner
	Metrics metrics.Provider
	// Defaults fills fields a request leaves empty. Values and Formats
	// are ignored.
	Defaults     pipeline.Options
	Logger       *log.Logger
	MaxBodyBytes int64
}

// Server is the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	metrics  metrics.Provider
	defaults pipeline.Options
	logger   *log.Logger
	maxBody  int64
	router   chi.Router
}

// New builds a server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		runner:   cfg.Runner,
		metrics:  cfg.Metrics,
		defaults: cfg.Defaults,
		logger:   cfg.Logger,
		maxBody:  cfg.MaxBodyBytes,
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, nil, nil)
	}
	if s.metrics == nil {
		s.metrics = metrics.NewStatic(pipeline.DefaultWidth)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
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
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
