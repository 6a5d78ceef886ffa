package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the HTTP routes.
func NewRouter(webhook *WebhookHandler, admin *AdminHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", admin.HandleHealth)

	r.Route("/api/telegram", func(r chi.Router) {
		r.Post("/webhook", webhook.HandleUpdate)
		r.Get("/webhook", webhook.HandleStatus)
		r.Post("/set-webhook", admin.HandleSetWebhook)
		r.Get("/set-webhook", admin.HandleSetWebhook)
		r.Get("/webhook-info", admin.HandleWebhookInfo)
	})

	return r
}
