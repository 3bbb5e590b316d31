package domain

import "context"

// StreamDelta is one event from a streaming chat response. Text is the full
// accumulated text so far (append-only within one stream); Delta is the
// increment that produced it. The final delta has Done set and carries the
// complete text, or Err when the stream failed mid-flight; in that case
// Text still holds whatever was accumulated before the failure.
type StreamDelta struct {
	Delta string
	Text  string
	Done  bool
	Err   error
}

// StreamingClient issues a chat request and yields an ordered sequence of
// deltas. The returned channel is closed after the Done (or Err) delta, when
// the body is exhausted, or when ctx is cancelled. A non-nil error return
// means the request itself failed and no stream was opened.
type StreamingClient interface {
	ChatStream(ctx context.Context, req ChatRequest) (<-chan StreamDelta, error)
}
