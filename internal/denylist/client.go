package denylist

import (
	"context"
	"fmt"
	"net/http"

	"github.com/calyptra/gamesync/internal/fetch"
)

const defaultURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"

// ClientOption configures the client.
type ClientOption func(*Client)

// WithURL sets a custom denylist endpoint.
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

// Client fetches the denylist text resource.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a denylist client pointed at the LDNOOBW word list.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		url:        defaultURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves and parses the denylist. The fetch is a plain GET with no
// special headers; the body is newline-delimited UTF-8 text.
func (c *Client) Fetch(ctx context.Context) (Denylist, error) {
	body, err := fetch.Get(ctx, c.httpClient, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching denylist: %w", err)
	}
	return Parse(string(body)), nil
}
