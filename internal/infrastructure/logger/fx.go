// Package logger contains logger infrastructure
package logger

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/config"
)

// Module provides logger for fx dependency injection
var Module = fx.Module("logger",
	fx.Provide(provideLogger),
)

// provideLogger creates logger from config
func provideLogger(logging *config.LoggingConfig, service *config.ServiceConfig) zerolog.Logger {
	return New(logging.Level, service.Name)
}
