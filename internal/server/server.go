// Package server exposes the backtest engine over HTTP: strategy listing,
// single runs, multi-strategy comparisons and the raw indicator feed.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/backtest/engine"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/logger"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
	"go.uber.org/zap"
)

// Server serves the backtest API over a feed loaded at startup. The feed is
// read-only after construction, so handlers may run concurrently without
// locking.
type Server struct {
	feed       []types.Observation
	config     engine.Config
	log        *logger.Logger
	validate   *validator.Validate
	router     *mux.Router
	httpServer *http.Server
}

// NewServer creates a server over the given feed and engine configuration.
func NewServer(feed []types.Observation, config engine.Config, log *logger.Logger) (*Server, error) {
	if len(feed) == 0 {
		return nil, errors.New(errors.ErrCodeFeedEmpty, "cannot serve an empty feed")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		feed:     feed,
		config:   config,
		log:      log,
		validate: validator.New(),
		router:   mux.NewRouter(),
	}

	s.routes()

	return s, nil
}

func (s *Server) routes() {
	s.router.HandleFunc("/api/strategies", s.handleStrategies).Methods("GET")
	s.router.HandleFunc("/api/backtest", s.handleBacktest).Methods("POST")
	s.router.HandleFunc("/api/compare-strategies", s.handleCompareStrategies).Methods("POST")
	s.router.HandleFunc("/api/stock-data", s.handleStockData).Methods("GET")
}

// Handler returns the server's HTTP handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving on the given address and blocks until the server
// stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.log.Info("Starting backtest API server", zap.String("addr", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(errors.ErrCodeServerStartFailed, "server stopped unexpectedly", err)
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	return s.httpServer.Shutdown(ctx)
}

// runnerFor builds a runner with the request's capital override applied.
func (s *Server) runnerFor(initialCapital *float64) *engine.Runner {
	config := s.config
	if initialCapital != nil {
		config.InitialCapital = *initialCapital
	}

	return engine.NewRunner(config, s.log)
}
