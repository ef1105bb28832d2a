// Package httputil provides the shared outbound HTTP client used by the
// search and scrape operations.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps an http.Client with a fixed set of default headers. It is
// built once at startup and is safe for concurrent use; the underlying
// transport reuses connections across calls.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient builds a client from the given config. TLS certificates are
// verified against the system root store.
func NewClient(cfg *Config) *Client {
	cfg = cfg.WithDefaults()
	return &Client{
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		},
		headers: map[string]string{
			"User-Agent":      cfg.UserAgent,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
			"Connection":      "keep-alive",
		},
	}
}

// Get issues a GET request with the default headers applied. The response
// is returned for any HTTP status; callers decide what non-2xx means.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.applyHeaders(req, nil)
	return c.http.Do(req)
}

// PostJSON marshals payload as JSON and sends a POST request with the
// default headers plus the given overrides. Returns the response body,
// status code, and any error; non-2xx statuses are reported as errors.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, payload any) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	c.applyHeaders(req, headers)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("http %d: %s", resp.StatusCode, string(data))
	}
	return data, resp.StatusCode, nil
}

func (c *Client) applyHeaders(req *http.Request, override map[string]string) {
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range override {
		req.Header.Set(k, v)
	}
}
