package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the domain layer.
var (
	ErrAuthInvalid    = fmt.Errorf("authentication failed")
	ErrRateLimit      = fmt.Errorf("rate limit exceeded")
	ErrProviderError  = fmt.Errorf("provider error")
	ErrStreamError    = fmt.Errorf("stream error")
	ErrSendInFlight   = fmt.Errorf("a send is already in flight")
	ErrNoAPIKey       = fmt.Errorf("api key not configured")
	ErrClientNotFound = fmt.Errorf("client not found")
	ErrInvalidInput   = fmt.Errorf("invalid input")
)

// DomainError wraps a sentinel error with operation context.
type DomainError struct {
	Op     string // operation name (e.g., "Session.Send")
	Err    error  // underlying sentinel or wrapped error
	Detail string // human-readable detail
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewDomainError creates a new DomainError.
func NewDomainError(op string, err error, detail string) *DomainError {
	return &DomainError{Op: op, Err: err, Detail: detail}
}

// WrapOp adds operation context to an error using fmt.Errorf wrapping.
// Returns nil if err is nil.
func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// authPhrases is the fixed vocabulary for classifying an error message as an
// authentication/authorization failure when the sentinel chain is unavailable
// (e.g. a message surfaced from a stream error frame).
var authPhrases = []string{"api key", "unauthorized", "auth", "401", "invalid"}

// IsAuthError reports whether err represents an auth-class failure: either
// by sentinel (ErrAuthInvalid anywhere in the chain) or by case-insensitive
// message match. The UI uses this to decide whether to re-prompt for
// credentials.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAuthInvalid) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, p := range authPhrases {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}
