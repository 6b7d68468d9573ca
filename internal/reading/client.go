package reading

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrServiceUnavailable is the single failure surface of the client: network
// trouble, a non-2xx status, and a misconfigured service all collapse into
// it. The caller shows one message and the user re-invokes; there is no
// automatic retry.
var ErrServiceUnavailable = errors.New("reading service unavailable")

// Client talks to the reading service. Every call is a fresh request; no
// caching or deduplication.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the reading service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type answerPayload struct {
	Answer string `json:"answer"`
	Error  string `json:"error,omitempty"`
}

// Send posts the reading request and returns the raw reply text. On failure
// the returned error wraps ErrServiceUnavailable; if the service supplied a
// displayable fallback answer alongside its error, that text is returned
// with the error.
func (c *Client) Send(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/reading", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var payload answerPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("%w: unexpected reply", ErrServiceUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return payload.Answer, fmt.Errorf("%w: %s", ErrServiceUnavailable, errorText(payload, resp.StatusCode))
	}

	return payload.Answer, nil
}

func errorText(payload answerPayload, status int) string {
	if payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("status %d", status)
}
