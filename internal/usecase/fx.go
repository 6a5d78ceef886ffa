package usecase

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/niyazismayilov/FusionTik/config"
	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// Module provides the classifier and dispatcher for fx dependency injection
var Module = fx.Module("usecase",
	fx.Provide(provideClassifier),
	fx.Provide(provideDispatcher),
)

// provideClassifier creates the classifier from config
func provideClassifier(cfg *config.TelegramConfig) *Classifier {
	return NewClassifier(cfg.BotUsername)
}

// provideDispatcher creates the event dispatcher
func provideDispatcher(
	gateway domain.DeliveryGateway,
	mediaResolver domain.MediaResolver,
	classifier *Classifier,
	cfg *config.TelegramConfig,
	logger zerolog.Logger,
) domain.EventDispatcher {
	return NewDispatcher(gateway, mediaResolver, classifier, cfg.BotUsername, cfg.ChannelUsername, logger)
}
