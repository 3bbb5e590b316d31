package llm

import (
	"errors"
	"strings"
	"testing"

	"advisor-ai/internal/domain"
)

func TestMapHTTPError(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		sentinel error
		contains string
	}{
		{"unauthorized", 401, `{"error":{"message":"invalid x-api-key"}}`, domain.ErrAuthInvalid, "invalid x-api-key"},
		{"forbidden", 403, `{"error":{"message":"forbidden"}}`, domain.ErrAuthInvalid, "forbidden"},
		{"rate limited", 429, `{"error":{"message":"rate limited"}}`, domain.ErrRateLimit, "rate limited"},
		{"server error", 500, "boom", domain.ErrProviderError, "boom"},
		{"overloaded", 529, `{"error":{"message":"overloaded"}}`, domain.ErrProviderError, "overloaded"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := mapHTTPError(c.status, []byte(c.body))
			if !errors.Is(err, c.sentinel) {
				t.Errorf("err = %v, want sentinel %v", err, c.sentinel)
			}
			if !strings.Contains(err.Error(), c.contains) {
				t.Errorf("err = %v, want message containing %q", err, c.contains)
			}
		})
	}
}

func TestMapHTTPErrorUnclassified(t *testing.T) {
	err := mapHTTPError(404, []byte("not found"))
	if errors.Is(err, domain.ErrAuthInvalid) || errors.Is(err, domain.ErrRateLimit) || errors.Is(err, domain.ErrProviderError) {
		t.Errorf("404 should not map to a sentinel, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("err = %v, want status in message", err)
	}
}

func TestErrorMessage(t *testing.T) {
	if got := errorMessage(401, []byte(`{"error":{"message":"bad key"}}`)); got != "bad key" {
		t.Errorf("got %q", got)
	}
	if got := errorMessage(500, nil); got != "API error: 500" {
		t.Errorf("got %q", got)
	}
	if got := errorMessage(500, []byte("<html>oops</html>")); !strings.Contains(got, "500") || !strings.Contains(got, "oops") {
		t.Errorf("got %q", got)
	}
	long := strings.Repeat("x", 500)
	if got := errorMessage(500, []byte(long)); len(got) > 250 {
		t.Errorf("long body not truncated: %d bytes", len(got))
	}
}
