package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mieltoinc/yclistdedalus/internal/logger"
	"github.com/mieltoinc/yclistdedalus/internal/mcp"
	"github.com/mieltoinc/yclistdedalus/internal/metrics"
)

// Server is the HTTP transport with lifecycle management.
type Server struct {
	router    *gin.Engine
	server    *http.Server
	mcp       *mcp.Server
	dataset   mcp.Dataset
	metrics   *metrics.Metrics
	config    Config
	log       logger.Logger
	startedAt time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics exposes m on GET /metrics and records HTTP requests into it.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// NewServer builds the router and HTTP server. Middleware order: recovery,
// request ID, logging, metrics, CORS.
func NewServer(cfg Config, mcpServer *mcp.Server, dataset mcp.Dataset, log logger.Logger, opts ...Option) *Server {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NewNop()
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		mcp:       mcpServer,
		dataset:   dataset,
		config:    cfg,
		log:       log,
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := gin.New()
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDMiddleware(log))
	router.Use(LoggerMiddleware(log))
	if s.metrics != nil {
		router.Use(MetricsMiddleware(s.metrics))
	}
	router.Use(CORSMiddleware(cfg.CORS))
	s.router = router
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.router.POST("/mcp", s.handleMCP)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/ready", s.handleReady)
	if s.metrics != nil {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

// Router returns the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves until the server is shut down.
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		logger.String("address", s.server.Addr),
		logger.String("service", s.config.ServiceName),
		logger.String("version", s.config.ServiceVersion),
	)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown drains connections within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server", logger.Duration("timeout", s.config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	s.log.Info("HTTP server stopped gracefully")
	return nil
}

// Run starts the server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("Context cancelled, shutting down")
	}

	//nolint:contextcheck // ctx is already cancelled; shutdown needs a fresh one
	return s.Shutdown(context.Background())
}
