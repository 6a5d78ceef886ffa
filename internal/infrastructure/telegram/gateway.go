// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// Every outbound call gets its own bounded timeout; a background cycle has
// no other cancellation mechanism.
const callTimeout = 10 * time.Second

// Gateway implements domain.DeliveryGateway and domain.WebhookManager over
// the Telegram Bot API.
type Gateway struct {
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewGateway creates a new Telegram gateway
func NewGateway(token string, logger zerolog.Logger) (*Gateway, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	bot, err := tgbot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram bot created successfully")

	return &Gateway{
		bot:    bot,
		logger: logger,
	}, nil
}

// SendMessage sends a text message and returns its message ID.
func (g *Gateway) SendMessage(ctx context.Context, chatID int64, text string, keyboard domain.InlineKeyboard) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}
	if keyboard != nil {
		params.ReplyMarkup = toInlineMarkup(keyboard)
	}

	msg, err := g.bot.SendMessage(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}

	return msg.ID, nil
}

// SendVideo sends a video by URL with streaming enabled.
func (g *Gateway) SendVideo(ctx context.Context, chatID int64, url, caption string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := g.bot.SendVideo(ctx, &tgbot.SendVideoParams{
		ChatID:            chatID,
		Video:             &models.InputFileString{Data: url},
		Caption:           caption,
		SupportsStreaming: true,
	})
	if err != nil {
		return fmt.Errorf("send video: %w", err)
	}
	return nil
}

// SendPhoto sends a single photo by URL.
func (g *Gateway) SendPhoto(ctx context.Context, chatID int64, url, caption string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, err := g.bot.SendPhoto(ctx, &tgbot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileString{Data: url},
		Caption: caption,
	})
	if err != nil {
		return fmt.Errorf("send photo: %w", err)
	}
	return nil
}

// SendMediaGroup sends a grouped photo message.
func (g *Gateway) SendMediaGroup(ctx context.Context, chatID int64, items []domain.AlbumItem) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	media := make([]models.InputMedia, 0, len(items))
	for _, item := range items {
		media = append(media, &models.InputMediaPhoto{
			Media:   item.URL,
			Caption: item.Caption,
		})
	}

	_, err := g.bot.SendMediaGroup(ctx, &tgbot.SendMediaGroupParams{
		ChatID: chatID,
		Media:  media,
	})
	if err != nil {
		return fmt.Errorf("send media group: %w", err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query.
func (g *Gateway) AnswerCallback(ctx context.Context, callbackID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	ok, err := g.bot.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	})
	if err != nil {
		return fmt.Errorf("answer callback query: %w", err)
	}
	if !ok {
		return fmt.Errorf("answer callback query: rejected")
	}
	return nil
}

// DeleteMessage deletes a previously sent message.
func (g *Gateway) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	ok, err := g.bot.DeleteMessage(ctx, &tgbot.DeleteMessageParams{
		ChatID:    chatID,
		MessageID: messageID,
	})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if !ok {
		return fmt.Errorf("delete message: rejected")
	}
	return nil
}

// SetWebhook registers url as the update webhook.
func (g *Gateway) SetWebhook(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	ok, err := g.bot.SetWebhook(ctx, &tgbot.SetWebhookParams{URL: url})
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	if !ok {
		return fmt.Errorf("set webhook: rejected")
	}

	g.logger.Info().Str("url", url).Msg("Webhook registered")
	return nil
}

// WebhookInfo returns the currently registered webhook state.
func (g *Gateway) WebhookInfo(ctx context.Context) (*domain.WebhookInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	info, err := g.bot.GetWebhookInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("get webhook info: %w", err)
	}

	return &domain.WebhookInfo{
		URL:                info.URL,
		PendingUpdateCount: info.PendingUpdateCount,
		LastErrorMessage:   info.LastErrorMessage,
	}, nil
}

// toInlineMarkup converts the domain keyboard to Telegram markup.
func toInlineMarkup(keyboard domain.InlineKeyboard) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, models.InlineKeyboardButton{
				Text:         button.Text,
				URL:          button.URL,
				CallbackData: button.CallbackData,
			})
		}
		rows = append(rows, buttons)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
