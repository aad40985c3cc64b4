// Package server exposes the project API over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/trackr/internal/api"
	"github.com/thenoetrevino/trackr/internal/database"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests
const shutdownTimeout = 5 * time.Second

// Options configures a Server
type Options struct {
	Addr           string
	AllowedOrigins []string
	Version        string
	Logger         *slog.Logger
}

// Server serves the /api/v1 routes, /health and /metrics
type Server struct {
	client  api.Client
	store   database.DataStore
	logger  *slog.Logger
	metrics *Metrics
	version string

	engine       *gin.Engine
	httpServer   *http.Server
	shutdownOnce sync.Once
}

// New builds the router. client serves list/update/create; store serves
// single-project reads.
func New(client api.Client, store database.DataStore, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	s := &Server{
		client:  client,
		store:   store,
		logger:  opts.Logger,
		metrics: NewMetrics(),
		version: opts.Version,
	}

	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), requestLogger(s.logger), s.metrics.Middleware(), corsMiddleware(opts.AllowedOrigins))
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := s.engine.Group("/api/v1")
	projects := v1.Group("/projects")
	projects.GET("", s.list)
	projects.POST("", s.create)
	projects.GET("/:id", s.get)
	projects.PATCH("/:id/status", s.updateStatus)
}

// Handler returns the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Metrics returns the server's collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	s.logger.Info("server listening", "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("server shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	})
	return err
}
