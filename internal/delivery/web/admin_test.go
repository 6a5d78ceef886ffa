package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyazismayilov/FusionTik/internal/domain"
)

type fakeWebhookManager struct {
	setURL  string
	setErr  error
	info    *domain.WebhookInfo
	infoErr error
}

func (m *fakeWebhookManager) SetWebhook(_ context.Context, url string) error {
	m.setURL = url
	return m.setErr
}

func (m *fakeWebhookManager) WebhookInfo(_ context.Context) (*domain.WebhookInfo, error) {
	return m.info, m.infoErr
}

func TestHandleSetWebhook_FromJSONBody(t *testing.T) {
	manager := &fakeWebhookManager{}
	handler := NewAdminHandler(manager, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/telegram/set-webhook",
		strings.NewReader(`{"url": "https://example.com/api/telegram/webhook"}`))
	rec := httptest.NewRecorder()
	handler.HandleSetWebhook(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/api/telegram/webhook", manager.setURL)
	assert.Contains(t, rec.Body.String(), "Webhook set successfully")
}

func TestHandleSetWebhook_FromQueryParameter(t *testing.T) {
	manager := &fakeWebhookManager{}
	handler := NewAdminHandler(manager, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/telegram/set-webhook?url=https://example.com/hook", nil)
	rec := httptest.NewRecorder()
	handler.HandleSetWebhook(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/hook", manager.setURL)
}

func TestHandleSetWebhook_MissingURL(t *testing.T) {
	manager := &fakeWebhookManager{}
	handler := NewAdminHandler(manager, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/telegram/set-webhook", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.HandleSetWebhook(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "provide a webhook URL")
	assert.Empty(t, manager.setURL)
}

func TestHandleSetWebhook_ManagerError(t *testing.T) {
	manager := &fakeWebhookManager{setErr: errors.New("bad token")}
	handler := NewAdminHandler(manager, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/telegram/set-webhook?url=https://example.com/hook", nil)
	rec := httptest.NewRecorder()
	handler.HandleSetWebhook(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad token")
}

func TestHandleWebhookInfo(t *testing.T) {
	manager := &fakeWebhookManager{info: &domain.WebhookInfo{
		URL:                "https://example.com/hook",
		PendingUpdateCount: 3,
		LastErrorMessage:   "wrong response",
	}}
	handler := NewAdminHandler(manager, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/telegram/webhook-info", nil)
	rec := httptest.NewRecorder()
	handler.HandleWebhookInfo(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"url":"https://example.com/hook"`)
	assert.Contains(t, body, `"pending_update_count":3`)
	assert.Contains(t, body, `"last_error_message":"wrong response"`)
}

func TestHandleWebhookInfo_ManagerError(t *testing.T) {
	manager := &fakeWebhookManager{infoErr: errors.New("unavailable")}
	handler := NewAdminHandler(manager, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/telegram/webhook-info", nil)
	rec := httptest.NewRecorder()
	handler.HandleWebhookInfo(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}

func TestHandleHealth(t *testing.T) {
	handler := NewAdminHandler(&fakeWebhookManager{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.HandleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
