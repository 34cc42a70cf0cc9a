package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/calyptra/gamesync/internal/fetch"
)

const defaultURL = "https://discord.com/api/v9/applications/detectable"

// defaultHeaders emulates a browser request. The endpoint is served to plain
// clients too, but the original updater always sent a full browser header set
// and keeping it avoids tripping any future bot heuristics. Host is derived
// from the request URL so mock endpoints keep working.
func defaultHeaders() map[string]string {
	return map[string]string{
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language":           "en-GB,en;q=0.9",
		"Connection":                "keep-alive",
		"Priority":                  "u=0, i",
		"Sec-Fetch-Dest":            "document",
		"Sec-Fetch-Mode":            "navigate",
		"Sec-Fetch-Site":            "none",
		"Sec-Fetch-User":            "?1",
		"Sec-GPC":                   "1",
		"TE":                        "trailers",
		"Upgrade-Insecure-Requests": "1",
		"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:147.0) Gecko/20100101 Firefox/147.0",
	}
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithURL sets a custom catalog endpoint.
func WithURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeaders replaces the default request header set.
func WithHeaders(headers map[string]string) ClientOption {
	return func(c *Client) {
		c.headers = headers
	}
}

// Client fetches the detectable-applications catalog.
type Client struct {
	url        string
	headers    map[string]string
	httpClient *http.Client
}

// NewClient creates a catalog client pointed at the Discord API.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		url:        defaultURL,
		headers:    defaultHeaders(),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Detectable fetches and decodes the full catalog, preserving the remote
// ordering. Any transport, status, or decode failure aborts the caller's run;
// there is no partial result.
func (c *Client) Detectable(ctx context.Context) ([]Application, error) {
	body, err := fetch.Get(ctx, c.httpClient, c.url, c.headers)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog: %w", err)
	}

	var apps []Application
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	return apps, nil
}
