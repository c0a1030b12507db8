// Package server exposes the quote service over HTTP and streams served
// calculations to WebSocket subscribers
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ayankousky/interest-calculator/internal/calculator"
	"go.uber.org/zap"
)

const (
	// DefaultAddr is the listen address used when none is configured
	DefaultAddr = ":8080"

	// DefaultShutdownTimeout bounds graceful shutdown on ctx cancellation
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the configuration for the HTTP server
type Config struct {
	// Addr is the listen address, host:port
	Addr string

	// Calculator serves the quotes
	Calculator *calculator.Calculator

	// Logger is used for request and lifecycle logging
	Logger *zap.Logger
}

// Server is the HTTP/WebSocket front of the quote service
type Server struct {
	addr       string
	calculator *calculator.Calculator
	logger     *zap.Logger
	hub        *Hub
}

// New creates a new Server with the provided configuration
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Server{
		addr:       cfg.Addr,
		calculator: cfg.Calculator,
		logger:     cfg.Logger.With(zap.String("component", "server")),
		hub:        NewHub(cfg.Logger),
	}
}

// Hub returns the WebSocket hub so it can be subscribed to quote notifications
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start runs the HTTP server until ctx is canceled
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", s.addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	s.hub.CloseAll()
	return httpServer.Shutdown(shutdownCtx)
}

// routes builds the HTTP handler tree
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/quote", s.handleQuote)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/api/v1/stats", s.handleStats)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/ws/quotes", s.hub.HandleWS)
	return mux
}
