package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"advisor-ai/internal/domain"
	"advisor-ai/internal/infra/config"
	"advisor-ai/internal/infra/tracer"
)

const anthropicVersion = "2023-06-01"

// Client streams chat completions from the Anthropic Messages API.
type Client struct {
	model     string
	maxTokens int
	apiKey    string
	baseURL   string
	http      *http.Client
	logger    *slog.Logger
}

// NewClient creates a streaming client for the Messages API.
func NewClient(cfg config.ProviderConfig, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	return &Client{
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		apiKey:    cfg.APIKey,
		baseURL:   baseURL,
		http:      NewHTTPClient(cfg),
		logger:    logger,
	}
}

// --- wire types ---

type wireRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system"`
	Stream    bool          `json:"stream"`
	Messages  []wireMessage `json:"messages"`
}

type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type wireStreamEvent struct {
	Type  string `json:"type"`
	Delta *struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatStream implements domain.StreamingClient. The request carries the full
// ordered conversation history on every call; the returned channel yields one
// delta per text frame and terminates with a Done or Err delta.
func (c *Client) ChatStream(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	if req.Model == "" {
		req.Model = c.model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.maxTokens
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = config.DefaultMaxTokens
	}
	if c.apiKey == "" {
		return nil, domain.ErrNoAPIKey
	}

	body, err := json.Marshal(toWireRequest(req))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
		"anthropic-dangerous-direct-browser-access": "true",
	}

	// Span covers stream initiation only; the body outlives the call.
	ctx, span := tracer.StartSpan(ctx, "llm.chat_stream",
		trace.WithAttributes(
			tracer.StringAttr("llm.model", req.Model),
			tracer.IntAttr("llm.turns", len(req.Turns)),
		),
	)
	defer span.End()

	httpResp, err := doStreamRequest(ctx, c.http, c.baseURL+"/v1/messages", body, headers)
	if err != nil {
		tracer.RecordError(span, err)
		return nil, err
	}
	tracer.SetOK(span)

	c.logger.Debug("stream opened",
		"model", req.Model,
		"turns", len(req.Turns),
	)

	return decodeSSE(ctx, httpResp.Body, parseStreamFrame), nil
}

func toWireRequest(req domain.ChatRequest) wireRequest {
	wire := wireRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Stream:    true,
	}
	for _, t := range req.Turns {
		wire.Messages = append(wire.Messages, wireMessage{Role: t.Role, Content: t.Content})
	}
	return wire
}

// parseStreamFrame maps one data payload to its frame meaning. message_stop
// is deliberately a no-op; completion is signalled by transport end-of-data.
func parseStreamFrame(data []byte) (*streamFrame, error) {
	var evt wireStreamEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}

	switch evt.Type {
	case "content_block_delta":
		if evt.Delta != nil && evt.Delta.Type == "text_delta" {
			return &streamFrame{text: evt.Delta.Text}, nil
		}
		return nil, nil

	case "error":
		msg := "stream error"
		if evt.Error != nil && evt.Error.Message != "" {
			msg = evt.Error.Message
		}
		return &streamFrame{err: fmt.Errorf("%w: %s", domain.ErrStreamError, msg)}, nil

	case "message_stop":
		return nil, nil

	default:
		return nil, nil
	}
}

var _ domain.StreamingClient = (*Client)(nil)
