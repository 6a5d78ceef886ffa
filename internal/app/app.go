// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/config"
	"github.com/niyazismayilov/FusionTik/internal/delivery/web"
	"github.com/niyazismayilov/FusionTik/internal/infrastructure"
	"github.com/niyazismayilov/FusionTik/internal/resolver"
	"github.com/niyazismayilov/FusionTik/internal/usecase"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, telegram gateway, mirror client, server)
		infrastructure.Module,

		// Media resolution pipeline
		resolver.Module,

		// Business logic (dispatcher, classifier)
		usecase.Module,

		// HTTP boundary (webhook + admin routes)
		web.Module,
	)
}
