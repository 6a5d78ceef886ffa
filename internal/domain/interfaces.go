package domain

import "context"

// DeliveryGateway defines the chat platform calls the dispatcher makes.
type DeliveryGateway interface {
	// SendMessage sends a text message, optionally with an inline keyboard,
	// and returns the platform message ID of the sent message.
	SendMessage(ctx context.Context, chatID int64, text string, keyboard InlineKeyboard) (int, error)

	// SendVideo sends a video by URL with an optional caption.
	SendVideo(ctx context.Context, chatID int64, url, caption string) error

	// SendPhoto sends a single photo by URL with an optional caption.
	SendPhoto(ctx context.Context, chatID int64, url, caption string) error

	// SendMediaGroup sends a grouped media message.
	SendMediaGroup(ctx context.Context, chatID int64, items []AlbumItem) error

	// AnswerCallback acknowledges a callback query so the client stops
	// showing its loading indicator.
	AnswerCallback(ctx context.Context, callbackID string) error

	// DeleteMessage deletes a previously sent message.
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

// WebhookManager defines webhook registration calls for the admin endpoints.
type WebhookManager interface {
	// SetWebhook registers the given URL as the update webhook.
	SetWebhook(ctx context.Context, url string) error

	// WebhookInfo returns the currently registered webhook state.
	WebhookInfo(ctx context.Context) (*WebhookInfo, error)
}

// MediaResolver resolves a supported platform URL to downloadable media.
type MediaResolver interface {
	// Resolve fetches the upstream document for url and extracts media from
	// it. Missing optional fields never fail the resolution.
	Resolve(ctx context.Context, url string) (*ResolvedMedia, error)
}

// EventDispatcher runs one processing cycle for an inbound chat event.
type EventDispatcher interface {
	// Dispatch routes the event and performs all resulting sends. It never
	// returns an error: every failure terminates only its own cycle.
	Dispatch(ctx context.Context, event *ChatEvent)
}
