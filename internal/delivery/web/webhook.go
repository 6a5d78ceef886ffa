// Package web contains the HTTP boundary: the update webhook and the
// webhook-management endpoints.
package web

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// updateEnvelope is the subset of the platform update this service reads.
type updateEnvelope struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
	CallbackQuery *struct {
		ID   string `json:"id"`
		From struct {
			ID int64 `json:"id"`
		} `json:"from"`
		Data string `json:"data"`
	} `json:"callback_query"`
}

// WebhookHandler is the inbound event boundary. It must acknowledge every
// request, whatever happens inside, or the platform redelivers the update.
type WebhookHandler struct {
	dispatcher domain.EventDispatcher
	logger     zerolog.Logger
}

// NewWebhookHandler creates the webhook handler
func NewWebhookHandler(dispatcher domain.EventDispatcher, logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// HandleUpdate accepts one update, acknowledges it immediately, and hands a
// recognized event to a detached processing cycle. The cycle gets a fresh
// background context: the HTTP response must not wait for it, and there is
// no cancellation once it starts.
func (h *WebhookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var update updateEnvelope
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Warn().Err(err).Msg("Malformed webhook body")
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "error": "Invalid JSON"})
		return
	}

	event := toChatEvent(&update)
	if event == nil {
		h.logger.Debug().Int64("update_id", update.UpdateID).Msg("Update has no message or callback query")
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	go h.dispatcher.Dispatch(context.Background(), event)

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// HandleStatus reports endpoint liveness for webhook verification.
func (h *WebhookHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"message":   "Telegram webhook endpoint is active",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// toChatEvent maps the raw envelope to a domain event, or nil when neither
// branch is present.
func toChatEvent(update *updateEnvelope) *domain.ChatEvent {
	if update.CallbackQuery != nil {
		return &domain.ChatEvent{
			Callback: &domain.CallbackEvent{
				ID:         update.CallbackQuery.ID,
				FromChatID: update.CallbackQuery.From.ID,
				Data:       update.CallbackQuery.Data,
			},
		}
	}

	if update.Message != nil {
		return &domain.ChatEvent{
			Message: &domain.MessageEvent{
				ChatID: update.Message.Chat.ID,
				Text:   update.Message.Text,
			},
		}
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
