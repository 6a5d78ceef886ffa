package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// AdminHandler serves the operator endpoints for webhook management.
type AdminHandler struct {
	webhooks domain.WebhookManager
	logger   zerolog.Logger
}

// NewAdminHandler creates the admin handler
func NewAdminHandler(webhooks domain.WebhookManager, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		webhooks: webhooks,
		logger:   logger,
	}
}

// HandleSetWebhook registers a webhook URL taken from the JSON body (POST)
// or the url query parameter (GET).
func (h *AdminHandler) HandleSetWebhook(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if r.Method == http.MethodPost {
		var body struct {
			URL string `json:"url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.URL != "" {
			url = body.URL
		}
	}

	if url == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": `Please provide a webhook URL: {"url": "https://your-domain.com/api/telegram/webhook"}`,
		})
		return
	}

	if err := h.webhooks.SetWebhook(r.Context(), url); err != nil {
		h.logger.Error().Err(err).Str("url", url).Msg("Failed to set webhook")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Webhook set successfully to: %s", url),
	})
}

// HandleWebhookInfo relays the currently registered webhook state.
func (h *AdminHandler) HandleWebhookInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.webhooks.WebhookInfo(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get webhook info")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"webhookInfo": map[string]any{
			"url":                  info.URL,
			"pending_update_count": info.PendingUpdateCount,
			"last_error_message":   info.LastErrorMessage,
		},
	})
}

// HandleHealth is the liveness probe.
func (h *AdminHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
