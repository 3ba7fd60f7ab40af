// Package render delegates blocked pages to a remote headless-rendering
// service. It is the fetcher's last line of defense: slower, metered, and
// entirely optional.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/wishloop/metascout/config"
)

// Client talks to the rendering service's unblock API. A Client with no
// token is valid and permanently disabled; callers check Enabled before
// invoking Render so a missing credential degrades gracefully instead of
// erroring.
type Client struct {
	cfg    config.RenderConfig
	client *http.Client
}

// unblockRequest is the rendering service request payload.
type unblockRequest struct {
	URL               string `json:"url"`
	Content           bool   `json:"content"`
	BrowserWSEndpoint bool   `json:"browserWSEndpoint"`
	Cookies           bool   `json:"cookies"`
}

// unblockResponse is the subset of the service response we consume.
type unblockResponse struct {
	Content string `json:"content"`
}

// NewClient creates a rendering client from config.
func NewClient(cfg config.RenderConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Enabled reports whether a credential is configured.
func (c *Client) Enabled() bool {
	return c.cfg.Token != ""
}

// Render asks the service to load the URL in a real browser behind the
// configured proxy pool and returns the rendered HTML. Any transport
// failure, non-200 status, or empty content is an error; the caller treats
// all of them as "no fallback available".
func (c *Client) Render(ctx context.Context, targetURL string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("render: no credential configured")
	}

	endpoint := fmt.Sprintf("%s/unblock?token=%s&proxy=%s",
		c.cfg.Endpoint, url.QueryEscape(c.cfg.Token), url.QueryEscape(c.cfg.Proxy))

	payload, err := json.Marshal(unblockRequest{
		URL:     targetURL,
		Content: true,
	})
	if err != nil {
		return "", fmt.Errorf("render: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("render: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("render: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		slog.Warn("render service refused request",
			"status", resp.StatusCode, "url", targetURL, "body", string(body))
		return "", fmt.Errorf("render: HTTP %d from rendering service", resp.StatusCode)
	}

	var result unblockResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("render: decode response: %w", err)
	}
	if result.Content == "" {
		return "", fmt.Errorf("render: empty content for %s", targetURL)
	}

	return result.Content, nil
}
