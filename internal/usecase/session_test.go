package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"advisor-ai/internal/domain"
	"advisor-ai/internal/infra/config"
	"advisor-ai/internal/portfolio"
)

// scriptedClient plays back a fixed delta sequence.
type scriptedClient struct {
	err    error
	deltas []domain.StreamDelta
	gotReq domain.ChatRequest
	hold   chan struct{}
	calls  int
}

func (s *scriptedClient) ChatStream(ctx context.Context, req domain.ChatRequest) (<-chan domain.StreamDelta, error) {
	s.calls++
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	ch := make(chan domain.StreamDelta)
	go func() {
		defer close(ch)
		if s.hold != nil {
			<-s.hold
		}
		for _, d := range s.deltas {
			select {
			case ch <- d:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

// streamOf converts text chunks into the delta sequence a live stream would
// produce, ending with a Done delta.
func streamOf(chunks ...string) []domain.StreamDelta {
	var out []domain.StreamDelta
	var full strings.Builder
	for _, c := range chunks {
		full.WriteString(c)
		out = append(out, domain.StreamDelta{Delta: c, Text: full.String()})
	}
	out = append(out, domain.StreamDelta{Done: true, Text: full.String()})
	return out
}

func newController(client domain.StreamingClient) *Controller {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	book := portfolio.NewBook(portfolio.DemoClients())
	return New(client, book, config.ProviderConfig{Model: "claude-opus-4-6", MaxTokens: 4096}, logger)
}

func drain(t *testing.T, events <-chan Event) []Event {
	t.Helper()
	var out []Event
	for e := range events {
		out = append(out, e)
	}
	if len(out) == 0 {
		t.Fatal("no events received")
	}
	return out
}

const goalTail = "\n<!--GOALS_JSON\n[{\"id\":\"retire\",\"goal\":\"Retire at 60\",\"detail\":\"d\",\"category\":\"retirement\",\"priority\":\"high\",\"status\":\"identified\"}]\nGOALS_JSON-->"

func TestSendHappyPath(t *testing.T) {
	client := &scriptedClient{deltas: streamOf(
		"<!--SPECIALIST:tax-->**Alex Rivera, Tax Optimization:** harvest ",
		"the VTIP loss.",
		goalTail,
	)}
	c := newController(client)

	events, err := c.Send(context.Background(), "any tax moves?")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	all := drain(t, events)
	final := all[len(all)-1]

	if !final.Done || final.Err != nil {
		t.Fatalf("final = %+v", final)
	}
	if strings.Contains(final.Text, "GOALS_JSON") || strings.Contains(final.Text, "<!--SPECIALIST") {
		t.Errorf("control syntax leaked into visible text: %q", final.Text)
	}
	if len(final.Goals) != 1 || final.Goals[0].ID != "retire" {
		t.Errorf("goals = %+v", final.Goals)
	}
	if !final.GoalDiff.Added["retire"] {
		t.Errorf("diff = %+v", final.GoalDiff)
	}
	if len(final.Specialists) != 1 || final.Specialists[0] != domain.SpecialistTax {
		t.Errorf("specialists = %v", final.Specialists)
	}

	if c.State() != StateCompleted {
		t.Errorf("state = %v", c.State())
	}
	hist := c.History()
	if len(hist) != 2 {
		t.Fatalf("history = %d turns, want user + assistant", len(hist))
	}
	if hist[0].Role != domain.RoleUser || hist[1].Role != domain.RoleAssistant {
		t.Errorf("history roles = %v, %v", hist[0].Role, hist[1].Role)
	}
	// The assistant turn keeps the raw protocol output for the next request.
	if !strings.Contains(hist[1].Content, "GOALS_JSON") {
		t.Error("assistant history turn should keep the raw goal block")
	}

	// Streaming display never shows control syntax.
	for _, e := range all[:len(all)-1] {
		if strings.Contains(e.Display, "<!--") {
			t.Errorf("display leaked control syntax: %q", e.Display)
		}
	}
}

func TestSendCarriesFullHistoryAndSystem(t *testing.T) {
	client := &scriptedClient{deltas: streamOf("first reply")}
	c := newController(client)

	events, err := c.Send(context.Background(), "first question")
	if err != nil {
		t.Fatal(err)
	}
	drain(t, events)

	client.deltas = streamOf("second reply")
	events, err = c.Send(context.Background(), "second question")
	if err != nil {
		t.Fatal(err)
	}
	drain(t, events)

	if len(client.gotReq.Turns) != 3 {
		t.Fatalf("request turns = %d, want full ordered history", len(client.gotReq.Turns))
	}
	if client.gotReq.System == "" || !strings.Contains(client.gotReq.System, "Jordan Mitchell") {
		t.Error("system instructions missing or not client-specific")
	}
}

func TestSendTransportFailureRollsBack(t *testing.T) {
	client := &scriptedClient{err: fmt.Errorf("%w: invalid x-api-key", domain.ErrAuthInvalid)}
	c := newController(client)

	_, err := c.Send(context.Background(), "hello")
	if err == nil {
		t.Fatal("want error")
	}
	if !domain.IsAuthError(err) {
		t.Errorf("err = %v, want auth-class", err)
	}
	if !strings.Contains(err.Error(), "invalid x-api-key") {
		t.Errorf("err = %v, want upstream message", err)
	}
	if len(c.History()) != 0 {
		t.Error("user turn must be rolled back on transport failure")
	}
	if c.State() != StateFailed {
		t.Errorf("state = %v", c.State())
	}
}

func TestSendStreamErrorRollsBack(t *testing.T) {
	client := &scriptedClient{deltas: []domain.StreamDelta{
		{Delta: "partial", Text: "partial"},
		{Text: "partial", Err: fmt.Errorf("%w: overloaded", domain.ErrStreamError)},
	}}
	c := newController(client)

	events, err := c.Send(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	all := drain(t, events)
	final := all[len(all)-1]

	if final.Err == nil {
		t.Fatalf("final = %+v, want error", final)
	}
	if len(c.History()) != 0 {
		t.Error("user turn must be rolled back on stream failure")
	}
	if c.State() != StateFailed {
		t.Errorf("state = %v", c.State())
	}
}

func TestSendRetryAfterFailure(t *testing.T) {
	client := &scriptedClient{err: errors.New("connection refused")}
	c := newController(client)

	if _, err := c.Send(context.Background(), "try"); err == nil {
		t.Fatal("want failure")
	}

	client.err = nil
	client.deltas = streamOf("recovered")
	events, err := c.Send(context.Background(), "try")
	if err != nil {
		t.Fatalf("retry after failure should be allowed: %v", err)
	}
	drain(t, events)

	// No stale user turn from the failed attempt.
	if len(client.gotReq.Turns) != 1 {
		t.Errorf("request turns = %d, want 1", len(client.gotReq.Turns))
	}
	if len(c.History()) != 2 {
		t.Errorf("history = %d, want 2", len(c.History()))
	}
}

func TestSendSingleFlight(t *testing.T) {
	client := &scriptedClient{hold: make(chan struct{}), deltas: streamOf("slow reply")}
	c := newController(client)

	events, err := c.Send(context.Background(), "first")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Send(context.Background(), "second"); !errors.Is(err, domain.ErrSendInFlight) {
		t.Errorf("err = %v, want ErrSendInFlight", err)
	}
	if err := c.SwitchClient("helen-park"); !errors.Is(err, domain.ErrSendInFlight) {
		t.Errorf("switch err = %v, want ErrSendInFlight", err)
	}

	close(client.hold)
	drain(t, events)

	if c.State() != StateCompleted {
		t.Errorf("state = %v", c.State())
	}
}

func TestSendMalformedGoalsKeepsPrevious(t *testing.T) {
	client := &scriptedClient{deltas: streamOf("reply one" + goalTail)}
	c := newController(client)
	events, _ := c.Send(context.Background(), "q1")
	drain(t, events)

	client.deltas = streamOf("reply two\n<!--GOALS_JSON\n{not json}\nGOALS_JSON-->")
	events, _ = c.Send(context.Background(), "q2")
	all := drain(t, events)
	final := all[len(all)-1]

	if final.Err != nil {
		t.Fatalf("malformed goals must not fail the send: %v", final.Err)
	}
	if final.Text != "reply two" {
		t.Errorf("visible = %q, want block stripped", final.Text)
	}
	goals := c.Goals()
	if len(goals) != 1 || goals[0].ID != "retire" {
		t.Errorf("goals = %+v, want previous snapshot kept", goals)
	}
}

func TestSwitchClientStashRoundTrip(t *testing.T) {
	client := &scriptedClient{deltas: streamOf("jordan reply" + goalTail)}
	c := newController(client)
	events, _ := c.Send(context.Background(), "jordan question")
	drain(t, events)

	jordanHist := c.History()
	jordanGoals := c.Goals()

	if err := c.SwitchClient("aisha-patel"); err != nil {
		t.Fatal(err)
	}
	if len(c.History()) != 0 || len(c.Goals()) != 0 {
		t.Fatal("fresh client should start with empty conversation")
	}

	aishaGoalTail := "\n<!--GOALS_JSON\n[{\"id\":\"rental\",\"goal\":\"Optimize rental\",\"detail\":\"d\",\"category\":\"investment\",\"priority\":\"medium\",\"status\":\"exploring\"}]\nGOALS_JSON-->"
	client.deltas = streamOf("aisha reply" + aishaGoalTail)
	events, _ = c.Send(context.Background(), "aisha question")
	drain(t, events)

	if err := c.SwitchClient("jordan-mitchell"); err != nil {
		t.Fatal(err)
	}
	if got := c.History(); len(got) != len(jordanHist) || got[0].Content != jordanHist[0].Content {
		t.Errorf("history not restored: %+v", got)
	}
	if got := c.Goals(); len(got) != 1 || got[0].ID != jordanGoals[0].ID {
		t.Errorf("goals not restored: %+v", got)
	}
	if c.ActiveClient().ClientID != "jordan-mitchell" {
		t.Errorf("active = %s", c.ActiveClient().ClientID)
	}

	// B's state is intact too.
	if err := c.SwitchClient("aisha-patel"); err != nil {
		t.Fatal(err)
	}
	if got := c.Goals(); len(got) != 1 || got[0].ID != "rental" {
		t.Errorf("aisha goals = %+v", got)
	}
}

func TestSwitchClientUnknown(t *testing.T) {
	c := newController(&scriptedClient{})
	if err := c.SwitchClient("nobody"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("err = %v", err)
	}
	if c.ActiveClient().ClientID != "jordan-mitchell" {
		t.Error("failed switch must not change the active client")
	}
}

func TestReset(t *testing.T) {
	client := &scriptedClient{deltas: streamOf("reply" + goalTail)}
	c := newController(client)
	events, _ := c.Send(context.Background(), "q")
	drain(t, events)

	c.Reset()

	if len(c.History()) != 0 || len(c.Goals()) != 0 || len(c.Consulted()) != 0 {
		t.Error("reset should clear history, goals, and consulted set")
	}
	if c.State() != StateIdle {
		t.Errorf("state = %v", c.State())
	}

	// A stash from before the reset must not resurrect state.
	if err := c.SwitchClient("helen-park"); err != nil {
		t.Fatal(err)
	}
	if err := c.SwitchClient("jordan-mitchell"); err != nil {
		t.Fatal(err)
	}
	if len(c.History()) != 0 {
		t.Error("reset client should stay empty after a switch round trip")
	}
}

func TestRecordFeedback(t *testing.T) {
	client := &scriptedClient{deltas: streamOf("reply")}
	c := newController(client)
	events, _ := c.Send(context.Background(), "q")
	all := drain(t, events)
	turnID := all[len(all)-1].TurnID

	if err := c.RecordFeedback(turnID, domain.FeedbackUp); err != nil {
		t.Fatal(err)
	}
	if c.FeedbackFor(turnID) != domain.FeedbackUp {
		t.Error("feedback not recorded")
	}

	// Last rating wins.
	if err := c.RecordFeedback(turnID, domain.FeedbackDown); err != nil {
		t.Fatal(err)
	}
	if c.FeedbackFor(turnID) != domain.FeedbackDown {
		t.Error("feedback not replaced")
	}

	if err := c.RecordFeedback("no-such-turn", domain.FeedbackUp); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("err = %v", err)
	}
}

func TestWelcomeSummary(t *testing.T) {
	c := newController(&scriptedClient{})
	w := c.WelcomeSummary()

	if w.AdvisorName != "Morgan Chen" || w.TeamSize != 7 {
		t.Errorf("welcome = %+v", w)
	}
	if w.AccountCount != 6 {
		t.Errorf("accounts = %d", w.AccountCount)
	}
	if w.Wages != 195000 {
		t.Errorf("wages = %v", w.Wages)
	}
	if w.DebtMonthly != 4186+720+485 {
		t.Errorf("debt monthly = %v", w.DebtMonthly)
	}

	if err := c.SwitchClient("helen-park"); err != nil {
		t.Fatal(err)
	}
	if w := c.WelcomeSummary(); w.AccountCount != 3 {
		t.Errorf("helen accounts = %d", w.AccountCount)
	}
}

func TestSendEmptyMessage(t *testing.T) {
	c := newController(&scriptedClient{})
	if _, err := c.Send(context.Background(), ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("err = %v", err)
	}
}
