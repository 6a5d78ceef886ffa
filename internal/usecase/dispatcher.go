// Package usecase contains the event-processing state machine and the media
// classifier.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/internal/domain"
	"github.com/niyazismayilov/FusionTik/internal/resolver"
)

// Dispatcher implements domain.EventDispatcher. One Dispatch call runs one
// full processing cycle; cycles for distinct events are independent and
// share no mutable state.
type Dispatcher struct {
	gateway    domain.DeliveryGateway
	resolver   domain.MediaResolver
	classifier *Classifier
	logger     zerolog.Logger

	botUsername     string
	channelUsername string
}

// NewDispatcher creates the dispatcher.
func NewDispatcher(
	gateway domain.DeliveryGateway,
	mediaResolver domain.MediaResolver,
	classifier *Classifier,
	botUsername string,
	channelUsername string,
	logger zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		gateway:         gateway,
		resolver:        mediaResolver,
		classifier:      classifier,
		logger:          logger,
		botUsername:     botUsername,
		channelUsername: channelUsername,
	}
}

// Dispatch routes one inbound event. It never returns an error: failures are
// translated into user-facing messages or logged and swallowed, since the
// transport has already acknowledged the event.
func (d *Dispatcher) Dispatch(ctx context.Context, event *domain.ChatEvent) {
	if event == nil {
		return
	}

	log := d.logger.With().Str("cycle_id", uuid.NewString()).Logger()

	switch {
	case event.Callback != nil:
		d.handleCallback(ctx, log, event.Callback)
	case event.Message != nil:
		d.handleMessage(ctx, log, event.Message)
	}
}

// handleCallback acknowledges the query, then answers the known action tags.
// Unrecognized tags are silently terminal.
func (d *Dispatcher) handleCallback(ctx context.Context, log zerolog.Logger, cb *domain.CallbackEvent) {
	if err := d.gateway.AnswerCallback(ctx, cb.ID); err != nil {
		log.Error().Err(err).Str("callback_id", cb.ID).Msg("Failed to answer callback query")
	}

	switch cb.Data {
	case "share":
		d.sendText(ctx, log, cb.FromChatID, shareReply(d.botUsername, cb.FromChatID))
	case "rate":
		d.sendText(ctx, log, cb.FromChatID, rateReply(d.botUsername))
	case "join_channel":
		d.sendText(ctx, log, cb.FromChatID, joinChannelReply(d.channelUsername))
	default:
		log.Debug().Str("data", cb.Data).Msg("Ignoring unknown callback action")
	}
}

func (d *Dispatcher) handleMessage(ctx context.Context, log zerolog.Logger, msg *domain.MessageEvent) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	log = log.With().Int64("chat_id", msg.ChatID).Logger()

	if text == "/start" || strings.HasPrefix(text, "/start@") {
		d.sendWelcome(ctx, log, msg.ChatID)
		return
	}

	if text == "/help" || strings.HasPrefix(text, "/help@") {
		d.sendText(ctx, log, msg.ChatID, helpMessage)
		return
	}

	link, ok := resolver.ExtractLink(text)
	if !ok {
		d.sendText(ctx, log, msg.ChatID, invalidLinkMessage)
		return
	}

	d.resolveAndDeliver(ctx, log, msg.ChatID, link)
}

// resolveAndDeliver wraps the resolution call with the status-message
// lifecycle: the transient status message is deleted, best-effort, once a
// terminal outcome is reached.
func (d *Dispatcher) resolveAndDeliver(ctx context.Context, log zerolog.Logger, chatID int64, link string) {
	statusID, err := d.gateway.SendMessage(ctx, chatID, processingMessage, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to send status message")
		statusID = 0
	}

	media, err := d.resolver.Resolve(ctx, link)
	if err != nil {
		d.deleteStatus(ctx, log, chatID, statusID)
		log.Warn().Err(err).Str("link", link).Msg("Media resolution failed")
		d.sendFailure(ctx, log, chatID, err)
		return
	}

	plan := d.classifier.Classify(media)
	if plan.Kind == domain.PlanUnresolvable {
		d.deleteStatus(ctx, log, chatID, statusID)
		d.sendFailure(ctx, log, chatID, domain.ErrNoAssets)
		return
	}

	d.deleteStatus(ctx, log, chatID, statusID)

	if err := d.deliver(ctx, chatID, plan); err != nil {
		// The user already got success framing or none at all; delivery
		// failures are terminal for this cycle.
		log.Error().Err(err).Str("link", link).Msg("Media delivery failed")
		return
	}

	d.sendText(ctx, log, chatID, engagementMessage)
}

// deliver dispatches the plan to the gateway.
func (d *Dispatcher) deliver(ctx context.Context, chatID int64, plan domain.DeliveryPlan) error {
	switch plan.Kind {
	case domain.PlanVideo:
		return d.gateway.SendVideo(ctx, chatID, plan.URL, plan.Caption)
	case domain.PlanImageSingle:
		return d.gateway.SendPhoto(ctx, chatID, plan.URL, plan.Caption)
	default:
		return d.gateway.SendMediaGroup(ctx, chatID, plan.Items)
	}
}

// sendFailure translates a resolution error into one of the two fixed user
// messages by inspecting its text.
func (d *Dispatcher) sendFailure(ctx context.Context, log zerolog.Logger, chatID int64, err error) {
	text := strings.ToLower(err.Error())
	if strings.Contains(text, "invalid") || strings.Contains(text, "url") {
		d.sendText(ctx, log, chatID, invalidLinkMessage)
		return
	}
	d.sendText(ctx, log, chatID, tryAgainMessage)
}

func (d *Dispatcher) sendWelcome(ctx context.Context, log zerolog.Logger, chatID int64) {
	keyboard := domain.InlineKeyboard{
		{
			{Text: "🔁 Share with Friends", CallbackData: "share"},
			{Text: "⭐ Rate Bot", CallbackData: "rate"},
		},
		{
			{Text: "📢 Join Channel", URL: "https://t.me/" + d.channelUsername},
		},
	}

	if _, err := d.gateway.SendMessage(ctx, chatID, welcomeMessage, keyboard); err != nil {
		log.Error().Err(err).Msg("Failed to send welcome message")
	}
}

// deleteStatus removes the transient status message. Single attempt, failure
// ignored beyond logging.
func (d *Dispatcher) deleteStatus(ctx context.Context, log zerolog.Logger, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}
	if err := d.gateway.DeleteMessage(ctx, chatID, messageID); err != nil {
		log.Debug().Err(err).Int("message_id", messageID).Msg("Failed to delete status message")
	}
}

func (d *Dispatcher) sendText(ctx context.Context, log zerolog.Logger, chatID int64, text string) {
	if _, err := d.gateway.SendMessage(ctx, chatID, text, nil); err != nil {
		log.Error().Err(err).Msg("Failed to send Telegram message")
	}
}
