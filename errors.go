package wungo

import (
	"errors"
	"fmt"
	"time"
)

// Error type constants used in ClientError.Type.
const (
	ErrorTypeValidation   = "Validation"
	ErrorTypeInvalidQuery = "InvalidQuery"
	ErrorTypeRateLimit    = "RateLimit"
	ErrorTypeHTTP         = "HTTP"
	ErrorTypeAPI          = "API"
	ErrorTypeParse        = "Parse"
	ErrorTypeTimeout      = "Timeout"
	ErrorTypeNetwork      = "Network"
)

// ClientError represents an error from the client. Type identifies the
// failure class; StatusCode is set for HTTP errors, URL for anything that
// reached the transport.
type ClientError struct {
	Type       string
	Message    string
	Cause      error
	StatusCode int
	URL        string
	Timestamp  time.Time
	Duration   time.Duration
}

// Error implements error interface.
func (e *ClientError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ClientError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is, so callers can match on failure
// class without caring about the message:
//
//	errors.Is(err, &ClientError{Type: ErrorTypeInvalidQuery})
func (e *ClientError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*ClientError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// IsTransient determines if an error represents a transient failure that might
// succeed if the caller tries again later. Returns true for network errors,
// timeouts, rate limiting, 5xx server responses and 429. Returns false for
// query validation problems, parse failures and API-level error payloads.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		return false
	}

	switch clientErr.Type {
	case ErrorTypeNetwork, ErrorTypeTimeout, ErrorTypeRateLimit:
		return true
	case ErrorTypeHTTP:
		return clientErr.StatusCode >= 500 || clientErr.StatusCode == 429
	default:
		return false
	}
}
