// Package fetch is the shared HTTP source fetcher used by the catalog and
// denylist clients. It performs single blocking GETs with no caching and no
// retries; any transport failure or non-2xx status is surfaced to the caller
// so the run can abort before anything is written.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError is returned when a fetch completes but the server answers with
// a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.StatusCode, e.URL)
}

// Get performs a blocking GET against url and returns the raw response body.
// Headers are applied verbatim, except Host which must be set on the request
// itself rather than the header map.
func Get(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range headers {
		if strings.EqualFold(k, "Host") {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	return body, nil
}
