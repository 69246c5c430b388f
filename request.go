package tradedesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Do issues a single authenticated request against the vendor API. The path
// is resolved against the base URL, the payload (when non-nil) is sent as a
// JSON body, and the raw JSON response body is returned on success.
//
// A missing or expired token triggers exactly one login before the request;
// the request itself is attempted once, with no retry on any failure.
// Non-success statuses surface as *APIError, connectivity failures as
// *TransportError.
func (c *Client) Do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	token, err := c.ensureValidToken(ctx)
	if err != nil {
		return nil, err
	}

	status, body, err := c.send(ctx, method, c.baseURL.JoinPath(path), token, payload)
	if err != nil {
		return nil, err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: status, Body: body}
	}

	return json.RawMessage(body), nil
}

// Get issues an authenticated GET request.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post issues an authenticated POST request with a JSON payload.
func (c *Client) Post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, payload)
}

// Put issues an authenticated PUT request with a JSON payload.
func (c *Client) Put(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPut, path, payload)
}

// send is the low-level exchange shared by login and resource calls: marshal,
// set headers, run the transport, read the body. It maps connectivity
// failures to *TransportError and leaves status interpretation to the caller.
func (c *Client) send(ctx context.Context, method string, u *url.URL, token string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("tradedesk: encode request payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, nil, fmt.Errorf("tradedesk: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(authHeader, token)
	}

	reqID := uuid.NewString()
	c.log.DebugContext(ctx, "sending request",
		slog.String("request_id", reqID),
		slog.String("method", method),
		slog.String("url", u.String()))

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}

	c.log.DebugContext(ctx, "received response",
		slog.String("request_id", reqID),
		slog.Int("status", resp.StatusCode))

	return resp.StatusCode, respBody, nil
}
