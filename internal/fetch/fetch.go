// Package fetch retrieves remote settings documents over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muka-hq/zedref/internal/logging"
)

// defaultTimeout bounds the single GET when the caller passes none.
const defaultTimeout = 30 * time.Second

// Client downloads text resources with a bounded timeout. Failures are not
// retried: a generation run either completes or aborts.
type Client struct {
	http      *http.Client
	userAgent string
}

// New creates a Client with the given timeout and User-Agent.
func New(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Text fetches rawURL with a single GET and returns the body as a string.
// Any non-200 status is an error.
func (c *Client) Text(ctx context.Context, rawURL string) (string, error) {
	log := logging.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch of %s returned status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug().Str("url", rawURL).Int("bytes", len(body)).Msg("fetched settings document")
	return string(body), nil
}
