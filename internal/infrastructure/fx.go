// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/internal/infrastructure/httpserver"
	"github.com/niyazismayilov/FusionTik/internal/infrastructure/logger"
	"github.com/niyazismayilov/FusionTik/internal/infrastructure/telegram"
	"github.com/niyazismayilov/FusionTik/internal/infrastructure/tiksave"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	telegram.Module,
	tiksave.Module,
	httpserver.Module,
)
