package resolver

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/internal/domain"
	"github.com/niyazismayilov/FusionTik/internal/infrastructure/tiksave"
)

// Module provides the media resolver for fx dependency injection
var Module = fx.Module("resolver",
	fx.Provide(provideResolver),
)

// provideResolver creates the resolver backed by the mirror client
func provideResolver(client *tiksave.Client, logger zerolog.Logger) domain.MediaResolver {
	return New(client, logger)
}
