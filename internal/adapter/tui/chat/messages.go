// Package chat implements the Bubble Tea chat interface for the advisor.
package chat

import "advisor-ai/internal/usecase"

// StreamStartedMsg carries the event channel of a newly opened stream.
// Gen identifies the request so stale messages can be discarded.
type StreamStartedMsg struct {
	Events <-chan usecase.Event
	Gen    uint64
}

// SendFailedMsg signals that the send failed before any stream opened
// (transport error, auth rejection, open circuit).
type SendFailedMsg struct {
	Err error
	Gen uint64
}

// StreamEventMsg carries one session event. Open is false once the event
// channel has closed.
type StreamEventMsg struct {
	Event usecase.Event
	Open  bool
	Gen   uint64
}
