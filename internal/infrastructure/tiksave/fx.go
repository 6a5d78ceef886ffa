// Package tiksave contains the upstream mirror client.
package tiksave

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/config"
)

// Module provides the mirror client for fx dependency injection
var Module = fx.Module("tiksave",
	fx.Provide(provideClient),
)

// provideClient creates the mirror client from config
func provideClient(cfg *config.UpstreamConfig, logger zerolog.Logger) *Client {
	return NewClient(cfg, logger)
}
