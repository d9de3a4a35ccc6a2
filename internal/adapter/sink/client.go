package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
)

// maxErrorBody bounds how much of a sink error response is kept in
// last_error.
const maxErrorBody = 2048

// Client delivers export payloads to the external analytics warehouse over
// HTTP. It implements port.AnalyticsSink. The underlying http.Client carries
// a bounded timeout so a stalled sink cannot hold up a forwarder batch.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient constructs a sink client. The endpoint may be empty; Deliver
// then fails fast with port.ErrSinkNotConfigured.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: timeout},
	}
}

// Deliver POSTs the payload as JSON. Any non-2xx status or transport error
// is returned as an error carrying the (truncated) response body.
func (c *Client) Deliver(ctx context.Context, payload domain.ExportPayload) error {
	if c.endpoint == "" {
		return port.ErrSinkNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("sink returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
