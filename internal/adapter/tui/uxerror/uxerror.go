// Package uxerror translates raw errors into user-friendly messages with
// recovery hints for the TUI.
package uxerror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sony/gobreaker/v2"

	"advisor-ai/internal/adapter/tui/theme"
	"advisor-ai/internal/domain"
)

// FriendlyError is a user-facing error with suggestions for recovery.
type FriendlyError struct {
	Title   string   // short heading, e.g. "Authentication Failed"
	Message string   // one-liner explanation
	Hints   []string // actionable recovery suggestions
	Raw     string   // original error text (for debug)
}

// Render formats the FriendlyError for display in the TUI message list.
func (fe FriendlyError) Render() string {
	var sb strings.Builder
	sb.WriteString(fe.Title)
	if fe.Message != "" {
		sb.WriteString("\n  ")
		sb.WriteString(fe.Message)
	}
	if len(fe.Hints) > 0 {
		sb.WriteString("\n  Suggestions:")
		for _, h := range fe.Hints {
			sb.WriteString(fmt.Sprintf("\n    %s %s", theme.SymbolBullet, h))
		}
	}
	return sb.String()
}

type errorPattern struct {
	match   func(err error) bool
	produce func(err error) FriendlyError
}

var patterns = []errorPattern{
	// Domain sentinel errors (checked first so errors.Is works through wrapping).
	{
		match: func(err error) bool { return errors.Is(err, domain.ErrNoAPIKey) },
		produce: func(err error) FriendlyError {
			return FriendlyError{
				Title:   "API Key Not Configured",
				Message: "No API key was found in the config file or environment.",
				Hints:   []string{"Set the ANTHROPIC_API_KEY environment variable", "Or add provider.api_key to advisor.yaml"},
				Raw:     err.Error(),
			}
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, domain.ErrRateLimit) },
		produce: func(err error) FriendlyError {
			return FriendlyError{
				Title:   "Rate Limited",
				Message: "Too many requests were sent to the API provider.",
				Hints:   []string{"Wait a moment before retrying", "Reduce request frequency"},
				Raw:     err.Error(),
			}
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, domain.ErrSendInFlight) },
		produce: func(err error) FriendlyError {
			return FriendlyError{
				Title:   "Response In Progress",
				Message: "Morgan is still answering your previous question.",
				Hints:   []string{"Wait for the current response to finish", "Press Ctrl+C to cancel it"},
				Raw:     err.Error(),
			}
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, gobreaker.ErrOpenState) },
		produce: func(err error) FriendlyError {
			return FriendlyError{
				Title:   "Provider Temporarily Unavailable",
				Message: "Repeated failures tripped the circuit breaker; requests are paused.",
				Hints:   []string{"Wait ~30 seconds and try again", "Check the provider status page"},
				Raw:     err.Error(),
			}
		},
	},
	{
		// IsAuthError also catches message-level auth classification from
		// stream error frames, not just the sentinel.
		match: domain.IsAuthError,
		produce: func(err error) FriendlyError {
			return FriendlyError{
				Title:   "Authentication Failed",
				Message: "The API key was rejected.",
				Hints:   []string{"Check your ANTHROPIC_API_KEY environment variable", "Verify the key hasn't expired or been revoked"},
				Raw:     err.Error(),
			}
		},
	},
	{
		match: func(err error) bool { return errors.Is(err, domain.ErrProviderError) },
		produce: func(err error) FriendlyError {
			return FriendlyError{
				Title:   "Provider Error",
				Message: "The API provider returned a server-side error.",
				Hints:   []string{"Try again in a few seconds", "Check the provider status page"},
				Raw:     err.Error(),
			}
		},
	},

	// Network / connectivity patterns (string matching for external errors).
	{
		match:   containsAny("connection refused", "dial tcp", "no such host"),
		produce: constantError("Connection Failed", "Could not reach the API endpoint.", []string{"Check your internet connection", "Verify provider.base_url in advisor.yaml"}),
	},
	{
		match:   containsAny("deadline exceeded", "timeout", "context deadline"),
		produce: constantError("Request Timed Out", "The request took too long to complete.", []string{"Check your network connection", "Increase conn_timeout/resp_timeout in advisor.yaml"}),
	},
	{
		match:   containsAny("context canceled"),
		produce: constantError("Request Cancelled", "The response was interrupted before it finished.", nil),
	},
}

// Humanize converts a raw error into a FriendlyError with recovery hints.
func Humanize(err error) FriendlyError {
	if err == nil {
		return FriendlyError{Title: "Unknown Error", Raw: "nil"}
	}

	for _, p := range patterns {
		if p.match(err) {
			return p.produce(err)
		}
	}

	return FriendlyError{
		Title:   "Unexpected Error",
		Message: err.Error(),
		Hints:   []string{"Try sending the message again"},
		Raw:     err.Error(),
	}
}

// containsAny returns a match func that checks if the error string contains
// any of the given substrings (case-insensitive).
func containsAny(substrs ...string) func(error) bool {
	return func(err error) bool {
		lower := strings.ToLower(err.Error())
		for _, s := range substrs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
}

// constantError returns a produce func that always returns the same FriendlyError.
func constantError(title, message string, hints []string) func(error) FriendlyError {
	return func(err error) FriendlyError {
		return FriendlyError{
			Title:   title,
			Message: message,
			Hints:   hints,
			Raw:     err.Error(),
		}
	}
}
