// Package tiksave contains the upstream mirror client.
package tiksave

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/niyazismayilov/FusionTik/config"
	"github.com/niyazismayilov/FusionTik/internal/domain"
)

// The mirror gates requests on browser-looking headers.
const (
	searchPath     = "/api/ajaxSearch"
	requestLocale  = "id"
	spoofedReferer = "/id/download-tiktok-mp3"
	spoofedBrowser = "Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Mobile Safari/537.36"
	requestTimeout = 30 * time.Second
)

// Client fetches mirror documents for the resolver.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewClient creates a mirror client from config.
func NewClient(cfg *config.UpstreamConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// envelope is the mirror's JSON response. The HTML payload must be a string;
// any other shape is a malformed envelope.
type envelope struct {
	Data any `json:"data"`
}

// Fetch issues one form-encoded search request for target and returns the
// raw HTML payload. A non-success status or malformed envelope fails with
// domain.ErrUpstream.
func (c *Client) Fetch(ctx context.Context, target string) (string, error) {
	form := url.Values{}
	form.Set("q", target)
	form.Set("lang", requestLocale)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build mirror request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+spoofedReferer)
	req.Header.Set("User-Agent", spoofedBrowser)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("Mirror returned non-success status")
		return "", fmt.Errorf("%w: mirror returned %d %s", domain.ErrUpstream, resp.StatusCode, resp.Status)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("%w: decode envelope: %v", domain.ErrUpstream, err)
	}

	doc, ok := env.Data.(string)
	if !ok {
		return "", fmt.Errorf("%w: missing data field", domain.ErrUpstream)
	}

	return doc, nil
}
