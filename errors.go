package tradedesk

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by New when the supplied Config fails validation.
var ErrInvalidConfig = errors.New("tradedesk: invalid config")

// AuthenticationError reports a failed login call: the vendor rejected the
// credentials, or the auth response could not be understood. It is never
// retried automatically.
type AuthenticationError struct {
	// StatusCode is the HTTP status returned by the authentication endpoint.
	StatusCode int
	// Body is the raw response body, kept verbatim for diagnostics.
	Body []byte
	// Err holds the parse failure when the vendor returned a success status
	// with a malformed body. Nil otherwise.
	Err error
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tradedesk: authentication failed: %v (status %d)", e.Err, e.StatusCode)
	}
	return fmt.Sprintf("tradedesk: authentication failed: status %d: %s", e.StatusCode, e.Body)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// APIError reports a non-success HTTP status from a resource endpoint after a
// valid token was attached. The body is carried verbatim; no retry is made.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tradedesk: api error: status %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a connectivity-level failure (timeout, DNS,
// connection reset). The underlying error is exposed through Unwrap so
// callers can inspect net errors directly.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tradedesk: transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
