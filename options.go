package tradedesk

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "tradedesk-go"
)

// Option configures a Client during construction.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for custom transports,
// proxies, or timeouts. The Client will not close a transport it did not
// create. Nil clients are ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
			c.ownsHC = false
		}
	}
}

// WithLogger sets the structured logger used for debug-level request and
// token-refresh logging. Logging is discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithClock overrides the time source used for token expiry checks.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}
