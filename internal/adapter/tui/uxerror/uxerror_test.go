package uxerror

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sony/gobreaker/v2"

	"advisor-ai/internal/domain"
)

func TestHumanizeClassification(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		title string
	}{
		{"missing key", domain.ErrNoAPIKey, "API Key Not Configured"},
		{"wrapped auth", fmt.Errorf("llm: %w: invalid x-api-key", domain.ErrAuthInvalid), "Authentication Failed"},
		{"auth by message", errors.New("API error: 401 unauthorized"), "Authentication Failed"},
		{"rate limit", domain.ErrRateLimit, "Rate Limited"},
		{"provider", fmt.Errorf("%w: overloaded", domain.ErrProviderError), "Provider Error"},
		{"in flight", domain.ErrSendInFlight, "Response In Progress"},
		{"breaker open", gobreaker.ErrOpenState, "Provider Temporarily Unavailable"},
		{"refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), "Connection Failed"},
		{"timeout", errors.New("context deadline exceeded"), "Request Timed Out"},
		{"cancelled", errors.New("context canceled"), "Request Cancelled"},
		{"unknown", errors.New("something odd"), "Unexpected Error"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fe := Humanize(c.err)
			if fe.Title != c.title {
				t.Errorf("title = %q, want %q", fe.Title, c.title)
			}
			if fe.Raw == "" {
				t.Error("raw error text missing")
			}
		})
	}
}

func TestRenderIncludesHints(t *testing.T) {
	out := Humanize(domain.ErrNoAPIKey).Render()
	if !strings.Contains(out, "API Key Not Configured") {
		t.Errorf("out = %q", out)
	}
	if !strings.Contains(out, "ANTHROPIC_API_KEY") {
		t.Errorf("hint missing: %q", out)
	}
}
