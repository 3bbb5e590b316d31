package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"advisor-ai/internal/domain"
)

// maxErrorBody caps how much of a failed response body is read for the error
// message.
const maxErrorBody = 4096

// doStreamRequest performs a JSON POST request for SSE streaming. It returns
// the open *http.Response (caller must close Body). Non-200 responses are
// drained and mapped to a domain error.
func doStreamRequest(ctx context.Context, client *http.Client, url string, body []byte, headers map[string]string) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		defer httpResp.Body.Close()
		respBody, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBody))
		return nil, mapHTTPError(httpResp.StatusCode, respBody)
	}

	return httpResp, nil
}

// mapHTTPError maps an HTTP status code + response body to a domain error.
// The wrapped message preserves the upstream error text so auth-class
// classification can match on it.
func mapHTTPError(statusCode int, body []byte) error {
	msg := errorMessage(statusCode, body)

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrAuthInvalid, msg)
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimit, msg)
	case statusCode >= 500:
		return fmt.Errorf("%w: %s", domain.ErrProviderError, msg)
	default:
		return errors.New(msg)
	}
}

// errorMessage extracts the upstream error.message field when the body is the
// standard JSON error envelope, falling back to a truncated raw body.
func errorMessage(statusCode int, body []byte) string {
	var wire struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wire); err == nil && wire.Error.Message != "" {
		return wire.Error.Message
	}

	raw := string(body)
	if raw == "" {
		return fmt.Sprintf("API error: %d", statusCode)
	}
	if len(raw) > 200 {
		raw = raw[:200]
	}
	return fmt.Sprintf("API error: %d: %s", statusCode, raw)
}
