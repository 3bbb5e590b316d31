package chat

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"advisor-ai/internal/adapter/tui/components"
	"advisor-ai/internal/domain"
	"advisor-ai/internal/infra/config"
	"advisor-ai/internal/portfolio"
	"advisor-ai/internal/usecase"
)

// idleClient satisfies the streaming interface for model construction. These
// tests feed stream events into Update directly and never open a request.
type idleClient struct{}

func (idleClient) ChatStream(context.Context, domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	ch := make(chan domain.StreamDelta)
	close(ch)
	return ch, nil
}

func newModel(t *testing.T) Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	book := portfolio.NewBook(portfolio.DemoClients())
	session := usecase.New(idleClient{}, book, config.ProviderConfig{Model: "claude-opus-4-6", MaxTokens: 4096}, logger)
	return New(ModelDeps{Session: session, Logger: logger, ModelName: "claude-opus-4-6"})
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestStreamErrorDiscardsPartialReply(t *testing.T) {
	m := newModel(t)
	m = step(t, m, components.InputSubmitMsg{Value: "how is my debt looking?"})

	m = step(t, m, StreamEventMsg{
		Event: usecase.Event{Delta: "Carrying ", Display: "Carrying "},
		Open:  true,
		Gen:   m.gen,
	})
	m = step(t, m, StreamEventMsg{
		Event: usecase.Event{Err: domain.ErrStreamError},
		Open:  true,
		Gen:   m.gen,
	})

	msgs := m.chatView.Messages.Messages
	for _, msg := range msgs {
		if msg.Streaming {
			t.Fatalf("half-formed advisor bubble left in transcript: %+v", msg)
		}
	}
	last := msgs[len(msgs)-1]
	if last.Role != components.RoleError {
		t.Fatalf("last role = %q, want %q", last.Role, components.RoleError)
	}
	if prev := msgs[len(msgs)-2]; prev.Role != components.RoleUser || prev.Content != "how is my debt looking?" {
		t.Fatalf("user bubble not preserved: %+v", prev)
	}
	if m.waiting {
		t.Error("send state not reset after stream error")
	}
}

func TestSendFailureDiscardsPlaceholder(t *testing.T) {
	m := newModel(t)
	m = step(t, m, components.InputSubmitMsg{Value: "hello"})
	m = step(t, m, SendFailedMsg{Err: domain.ErrNoAPIKey, Gen: m.gen})

	msgs := m.chatView.Messages.Messages
	for _, msg := range msgs {
		if msg.Streaming {
			t.Fatalf("placeholder left in transcript: %+v", msg)
		}
	}
	if last := msgs[len(msgs)-1]; last.Role != components.RoleError {
		t.Fatalf("last role = %q, want %q", last.Role, components.RoleError)
	}
	if m.waiting {
		t.Error("send state not reset after failed send")
	}
}
