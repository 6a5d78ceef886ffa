// Package httpserver contains the HTTP server infrastructure
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides the HTTP server for fx dependency injection
var Module = fx.Module("httpserver",
	fx.Provide(New),
	fx.Invoke(registerLifecycle),
)

// registerLifecycle starts and stops the server with the application
func registerLifecycle(lc fx.Lifecycle, server *Server, logger zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// ListenAndServe blocks, so it runs in its own goroutine
			go func() {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Stop(ctx)
		},
	})
}
