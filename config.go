package tradedesk

import (
	"fmt"
	"net/url"
	"time"
)

// Vendor endpoints. The sandbox environment mirrors production but operates on
// test data only.
const (
	ProductionBaseURL = "https://api.thetradedesk.com/v3/"
	SandboxBaseURL    = "https://apisb.thetradedesk.com/v3/"
)

// Config holds the credentials and connection settings for a Client.
// Login and Password are required; BaseURL defaults to the production
// endpoint and accepts SandboxBaseURL as an override.
//
// TokenTTL is the lifetime requested from the vendor for each issued token
// (sent as TokenExpirationInMinutes on the login call). The vendor does not
// echo an expiry back, so the client tracks expiry locally from this value.
// RefreshMargin is subtracted from the computed expiry so a token is replaced
// shortly before the vendor would start rejecting it.
type Config struct {
	Login         string        `env:"TTD_LOGIN,required"`
	Password      string        `env:"TTD_PASSWORD,required"`
	BaseURL       string        `env:"TTD_BASE_URL" envDefault:"https://api.thetradedesk.com/v3/"`
	TokenTTL      time.Duration `env:"TTD_TOKEN_TTL" envDefault:"90m"`
	RefreshMargin time.Duration `env:"TTD_REFRESH_MARGIN" envDefault:"30s"`
}

// DefaultConfig returns production defaults with empty credentials.
func DefaultConfig() Config {
	return Config{
		BaseURL:       ProductionBaseURL,
		TokenTTL:      90 * time.Minute,
		RefreshMargin: 30 * time.Second,
	}
}

// Validate checks the config for values the client cannot operate with.
// All failures wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Login == "" {
		return fmt.Errorf("%w: Login is required", ErrInvalidConfig)
	}
	if c.Password == "" {
		return fmt.Errorf("%w: Password is required", ErrInvalidConfig)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: BaseURL must be an absolute URL", ErrInvalidConfig)
	}
	if c.TokenTTL < 0 {
		return fmt.Errorf("%w: TokenTTL must not be negative", ErrInvalidConfig)
	}
	if c.RefreshMargin < 0 {
		return fmt.Errorf("%w: RefreshMargin must not be negative", ErrInvalidConfig)
	}
	return nil
}
