package tradedesk

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrymomot/tradedesk/pkg/config"
)

// Client is an authenticated session against The Trade Desk REST API.
// It owns one reusable HTTP transport, caches the vendor-issued token, and
// re-authenticates transparently whenever the token is missing or expired.
//
// The token and its expiry are guarded by a mutex so a single instance can be
// shared, but no coordination beyond that is provided: overlapping calls that
// both observe an expired token may both re-authenticate.
type Client struct {
	cfg       Config
	baseURL   *url.URL
	hc        *http.Client
	ownsHC    bool
	log       *slog.Logger
	userAgent string
	now       func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// New creates a Client from the given config. It performs no network call;
// the first authenticated request triggers the login lazily.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ProductionBaseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate already guarantees the URL parses.
	baseURL, _ := url.Parse(cfg.BaseURL)

	c := &Client{
		cfg:       cfg,
		baseURL:   baseURL,
		hc:        &http.Client{Timeout: defaultTimeout},
		ownsHC:    true,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent: defaultUserAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew creates a Client and panics on invalid config. Useful for
// initialization paths where a misconfigured client should prevent startup.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewFromEnv loads Config from environment variables (TTD_LOGIN, TTD_PASSWORD,
// TTD_BASE_URL, TTD_TOKEN_TTL, TTD_REFRESH_MARGIN) and creates a Client.
// A .env file in the working directory is honored when present.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Close releases idle connections held by the underlying transport. It only
// touches transports created by New itself; a caller-supplied HTTP client is
// left alone. Safe to call multiple times.
func (c *Client) Close() {
	if c.ownsHC {
		c.hc.CloseIdleConnections()
	}
}
