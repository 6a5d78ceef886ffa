// Package httpserver contains the HTTP server infrastructure
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/config"
)

// Server wraps the HTTP server serving the webhook and admin routes.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// New creates the server from config
func New(cfg *config.ServiceConfig, handler http.Handler, logger zerolog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start starts serving (blocking call)
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting HTTP server...")
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts the server down
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
