package tradedesk

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// authHeader carries the session token on every authenticated request,
// per the vendor contract.
const authHeader = "TTD-Auth"

const authPath = "authentication"

type authRequest struct {
	Login                    string `json:"Login"`
	Password                 string `json:"Password"`
	TokenExpirationInMinutes int    `json:"TokenExpirationInMinutes"`
}

type authResponse struct {
	Token string `json:"Token"`
}

// ensureValidToken returns the cached token if it has not expired, otherwise
// authenticates and replaces it. An absent token counts as expired, so the
// first call always logs in. The check runs on every request; the lock covers
// the refresh so overlapping callers see at most one login per expiry.
func (c *Client) ensureValidToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.tokenExpiry = c.now().Add(c.cfg.TokenTTL - c.cfg.RefreshMargin)

	c.log.DebugContext(ctx, "token refreshed",
		slog.Time("expires_at", c.tokenExpiry))

	return c.token, nil
}

// authenticate performs the login call and returns the issued token. It does
// not touch the cached token state; ensureValidToken owns that.
func (c *Client) authenticate(ctx context.Context) (string, error) {
	body := authRequest{
		Login:                    c.cfg.Login,
		Password:                 c.cfg.Password,
		TokenExpirationInMinutes: int(c.cfg.TokenTTL / time.Minute),
	}

	status, respBody, err := c.send(ctx, http.MethodPost, c.baseURL.JoinPath(authPath), "", body)
	if err != nil {
		return "", err
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", &AuthenticationError{StatusCode: status, Body: respBody}
	}

	var resp authResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &AuthenticationError{StatusCode: status, Body: respBody, Err: err}
	}
	if resp.Token == "" {
		return "", &AuthenticationError{StatusCode: status, Body: respBody}
	}

	return resp.Token, nil
}
