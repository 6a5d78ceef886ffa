// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/config"
	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// Module provides the Telegram gateway for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideGateway),
	fx.Provide(provideDeliveryGateway),
	fx.Provide(provideWebhookManager),
)

// provideGateway creates the gateway from config
func provideGateway(cfg *config.TelegramConfig, logger zerolog.Logger) (*Gateway, error) {
	return NewGateway(cfg.BotToken, logger)
}

func provideDeliveryGateway(g *Gateway) domain.DeliveryGateway {
	return g
}

func provideWebhookManager(g *Gateway) domain.WebhookManager {
	return g
}
