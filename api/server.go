// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input decoding, engine orchestration, output serialization.
// Cost logic lives in core/cost.
package api

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"rent-cost/core/catalog"
	"rent-cost/core/cost"
	"rent-cost/internal/config"
	"rent-cost/internal/logging"
	"rent-cost/internal/metrics"
)

// maxCompareListings caps the size of one /compare request
const maxCompareListings = 100

// Options configures a Server
type Options struct {
	// Version is reported by /health and /version
	Version string

	// Config supplies server limits and compare workers; nil uses config.Default()
	Config *config.Config

	// Catalog supplies defaults for /template and listing checks; nil uses catalog.Default()
	Catalog *catalog.Catalog

	// Metrics collects request and calculation metrics; nil creates a fresh collector
	Metrics *metrics.Collector

	// Logger is the request logger; nil uses the global logger
	Logger *zap.Logger
}

// Server is the API server
type Server struct {
	router  chi.Router
	engine  *cost.Engine
	catalog *catalog.Catalog
	metrics *metrics.Collector
	logger  *zap.Logger
	config  *config.Config
	version string
}

// NewServer creates a new API server
func NewServer(opts Options) *Server {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default().WithDefaults(opts.Config.Defaults)
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Named("api")
	}

	s := &Server{
		router:  chi.NewRouter(),
		engine:  cost.NewEngine(true),
		catalog: opts.Catalog,
		metrics: opts.Metrics,
		logger:  opts.Logger,
		config:  opts.Config,
		version: opts.Version,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers middleware and all API routes
func (s *Server) registerRoutes() {
	r := s.router

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.observeRequests)

	// Core endpoints
	r.Post("/calculate", s.handleCalculate)
	r.Post("/compare", s.handleCompare)
	r.Get("/template", s.handleTemplate)

	// Supporting endpoints
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Handle("/metrics", s.metrics.Handler())
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then drains in-flight requests for up to shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s,
		ReadTimeout:  s.config.Server.ReadTimeout(),
		WriteTimeout: s.config.Server.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
