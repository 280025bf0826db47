package stripe

import (
	"fmt"
	"net/http"
)

// ErrorType categorizes failures reported by the Stripe API.
type ErrorType string

const (
	ErrorTypeAPI            ErrorType = "api_error"
	ErrorTypeAPIConnection  ErrorType = "api_connection_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeCard           ErrorType = "card_error"
	ErrorTypeIdempotency    ErrorType = "idempotency_error"
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
	ErrorTypeRateLimit      ErrorType = "rate_limit_error"
)

// Error is the decoded body of a non-2xx Stripe API response.
type Error struct {
	Type        ErrorType `json:"type"`
	Charge      string    `json:"charge"`
	Code        string    `json:"code"`
	DeclineCode string    `json:"decline_code"`
	DocURL      string    `json:"doc_url"`
	Message     string    `json:"message"`
	Param       string    `json:"param"`

	// Populated from the response envelope rather than the error body
	StatusCode int    `json:"-"`
	RequestID  string `json:"-"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stripe: %s (status %d, type %s)", e.Message, e.StatusCode, e.Type)
	}
	return fmt.Sprintf("stripe: request failed (status %d, type %s)", e.StatusCode, e.Type)
}

// shouldRetry reports whether the failed request is safe and useful to retry.
// Rate limits, lock contention on idempotent replays, and upstream outages
// are transient. Everything else is terminal.
func (e *Error) shouldRetry() bool {
	switch {
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode == http.StatusConflict:
		return true
	case e.StatusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}
