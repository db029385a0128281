package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/setka-dev/setka/internal/common"
)

// maxResponseBytes caps how much of a response body is read. The largest
// legitimate payload is a user listing; 4 MiB is far beyond it.
const maxResponseBytes = 4 << 20

// HTTPClient talks to the three backend functions over POST JSON. It is safe
// for concurrent use; every request runs under its own timeout so an
// unresponsive server can never wedge a pending operation forever.
type HTTPClient struct {
	authURL  string
	adminURL string
	chatURL  string
	timeout  time.Duration
	hc       *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(authURL, adminURL, chatURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		authURL:  authURL,
		adminURL: adminURL,
		chatURL:  chatURL,
		timeout:  timeout,
		hc:       &http.Client{},
	}
}

// envelope is the common part of every response body.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// post sends in as a JSON body and decodes the response into out, returning
// the HTTP status code. Transport and decode failures come back as
// common.ErrUnavailable; status interpretation is left to the caller, which
// knows the action-specific envelope.
func (c *HTTPClient) post(ctx context.Context, url string, in, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(in)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decoding response: %v", common.ErrUnavailable, err)
	}
	return resp.StatusCode, nil
}

// refused reports whether the status means the server turned the caller away.
func refused(status int) bool {
	return status == http.StatusUnauthorized || status == http.StatusForbidden
}

// failure converts a decoded non-success envelope into a sentinel error.
func failure(status int, env envelope) error {
	if refused(status) {
		if env.Error != "" {
			return fmt.Errorf("%w: %s", common.ErrUnauthorized, env.Error)
		}
		return common.ErrUnauthorized
	}
	if env.Error != "" {
		return fmt.Errorf("%w: %s", common.ErrRejected, env.Error)
	}
	return common.ErrRejected
}
