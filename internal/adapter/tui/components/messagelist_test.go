package components

import (
	"strings"
	"testing"
	"time"

	"advisor-ai/internal/domain"
)

func TestRingBufferTrims(t *testing.T) {
	ml := NewMessageList()
	ml.SetMaxMessages(3)
	for i := 0; i < 5; i++ {
		ml.Add(ChatMessage{Role: RoleUser, Content: "m"})
	}
	if len(ml.Messages) != 3 {
		t.Errorf("len = %d, want 3", len(ml.Messages))
	}
	if got := ml.TrimmedIndicator(); !strings.Contains(got, "2 older") {
		t.Errorf("indicator = %q", got)
	}
}

func TestFinishLastAndFeedback(t *testing.T) {
	ml := NewMessageList()
	ml.Add(ChatMessage{Role: RoleUser, Content: "q"})
	ml.Add(ChatMessage{Role: RoleAdvisor, Streaming: true})

	ml.UpdateLast("partial")
	if ml.Messages[1].Content != "partial" {
		t.Errorf("content = %q", ml.Messages[1].Content)
	}

	ml.FinishLast("final answer", "turn-1", []domain.SpecialistID{domain.SpecialistTax})
	last := ml.Messages[1]
	if last.Streaming || last.Content != "final answer" || last.TurnID != "turn-1" {
		t.Errorf("last = %+v", last)
	}

	if got := ml.LastAdvisorTurnID(); got != "turn-1" {
		t.Errorf("LastAdvisorTurnID = %q", got)
	}

	ml.SetFeedback("turn-1", domain.FeedbackUp)
	if ml.Messages[1].Feedback != domain.FeedbackUp {
		t.Error("feedback not set")
	}
}

func TestRemoveLast(t *testing.T) {
	ml := NewMessageList()
	ml.Add(ChatMessage{Role: RoleUser, Content: "q"})
	ml.Add(ChatMessage{Role: RoleAdvisor, Streaming: true})
	ml.RemoveLast()
	if len(ml.Messages) != 1 || ml.Messages[0].Role != RoleUser {
		t.Errorf("messages = %+v", ml.Messages)
	}
	ml.RemoveLast()
	ml.RemoveLast() // no panic on empty
	if len(ml.Messages) != 0 {
		t.Errorf("len = %d", len(ml.Messages))
	}
}

func TestDiscardStreaming(t *testing.T) {
	ml := NewMessageList()
	ml.Add(ChatMessage{Role: RoleUser, Content: "q"})
	ml.Add(ChatMessage{Role: RoleAdvisor, Streaming: true, Content: "half a sen"})
	ml.DiscardStreaming()
	if len(ml.Messages) != 1 || ml.Messages[0].Role != RoleUser {
		t.Errorf("messages = %+v", ml.Messages)
	}

	// Finished messages are never discarded.
	ml.Add(ChatMessage{Role: RoleAdvisor, Content: "done", TurnID: "turn-1"})
	ml.DiscardStreaming()
	if len(ml.Messages) != 2 {
		t.Errorf("len = %d, want 2", len(ml.Messages))
	}

	ml.Clear()
	ml.DiscardStreaming() // no panic on empty
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps over the lazy dog", 15)
	for i, line := range strings.Split(got, "\n") {
		if len([]rune(strings.TrimPrefix(line, "  "))) > 15 {
			t.Errorf("line %d too long: %q", i, line)
		}
	}

	// Multibyte runes must not be split.
	if got := wrapText("héllo wörld", 50); got != "héllo wörld" {
		t.Errorf("short text changed: %q", got)
	}

	// Paragraph breaks survive wrapping.
	if got := wrapText("one\ntwo", 50); got != "one\ntwo" {
		t.Errorf("paragraphs changed: %q", got)
	}
}

func TestParseSlashCommand(t *testing.T) {
	cmd, args, ok := ParseSlashCommand("/client jordan-mitchell")
	if !ok || cmd != "/client" || len(args) != 1 || args[0] != "jordan-mitchell" {
		t.Errorf("got %q %v %v", cmd, args, ok)
	}
	if _, _, ok := ParseSlashCommand("hello"); ok {
		t.Error("plain text parsed as command")
	}
	if cmd, _, _ := ParseSlashCommand("  /HELP  "); cmd != "/help" {
		t.Errorf("cmd = %q", cmd)
	}
}

func TestRelativeTime(t *testing.T) {
	if got := RelativeTime(time.Now().Add(-30 * time.Second)); got != "just now" {
		t.Errorf("got %q", got)
	}
	if got := RelativeTime(time.Now().Add(-5 * time.Minute)); got != "5m ago" {
		t.Errorf("got %q", got)
	}
	if got := RelativeTime(time.Time{}); got != "" {
		t.Errorf("zero time = %q", got)
	}
}

func TestTabBarNavigation(t *testing.T) {
	tb := NewTabBar([]Tab{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	tb.Next()
	tb.Next()
	if tb.ActiveTab().ID != "c" {
		t.Errorf("active = %s", tb.ActiveTab().ID)
	}
	tb.Next()
	if tb.ActiveTab().ID != "a" {
		t.Error("next should wrap")
	}
	tb.Prev()
	if tb.ActiveTab().ID != "c" {
		t.Error("prev should wrap")
	}
	tb.SetActiveID("b")
	if tb.ActiveTab().ID != "b" {
		t.Errorf("active = %s", tb.ActiveTab().ID)
	}
	tb.SetActiveID("missing")
	if tb.ActiveTab().ID != "b" {
		t.Error("unknown id must not change the active tab")
	}
}
