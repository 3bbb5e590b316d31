// Package usecase wires the chat session together: conversation history,
// the send state machine, goal tracking, and per-client state stashing.
package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel/trace"

	"advisor-ai/internal/domain"
	"advisor-ai/internal/extract"
	"advisor-ai/internal/infra/config"
	"advisor-ai/internal/infra/tracer"
	"advisor-ai/internal/portfolio"
	"advisor-ai/internal/prompt"
)

// State is the lifecycle of one send attempt. Completed and Failed are
// resting states; a new Send transitions back through Sending.
type State int

const (
	StateIdle State = iota
	StateSending
	StateStreaming
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is one step of stream progress surfaced to the UI.
type Event struct {
	// Delta and Display are set on incremental events. Display is the
	// accumulated text cleaned for live rendering.
	Delta   string
	Display string

	// Specialists is the full consulted set so far, in display order.
	Specialists []domain.SpecialistID

	// Terminal fields. Exactly one terminal event arrives per send: either
	// Done with the final visible text and goal snapshot, or Err.
	Done     bool
	Text     string
	Goals    []domain.Goal
	GoalDiff domain.GoalDiff
	TurnID   string
	Err      error
}

// clientState is the stashed conversation for an inactive client.
type clientState struct {
	history []domain.Turn
	goals   []domain.Goal
}

// Controller owns all mutable session state. History is append-only except
// for the rollback of the last user turn on a failed send; the goal snapshot
// is replaced wholesale on each successful extraction.
type Controller struct {
	client domain.StreamingClient
	book   *portfolio.Book
	cfg    config.ProviderConfig
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	history   []domain.Turn
	goals     []domain.Goal
	consulted map[domain.SpecialistID]bool
	feedback  map[string]domain.Feedback
	stash     map[string]*clientState
}

// New creates a session controller over the given client book. The first
// client in the book is active.
func New(client domain.StreamingClient, book *portfolio.Book, cfg config.ProviderConfig, logger *slog.Logger) *Controller {
	return &Controller{
		client:    client,
		book:      book,
		cfg:       cfg,
		logger:    logger,
		consulted: make(map[domain.SpecialistID]bool),
		feedback:  make(map[string]domain.Feedback),
		stash:     make(map[string]*clientState),
	}
}

// State returns the current send state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// History returns a copy of the conversation history.
func (c *Controller) History() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Turn, len(c.history))
	copy(out, c.history)
	return out
}

// Goals returns the current goal snapshot.
func (c *Controller) Goals() []domain.Goal {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Goal, len(c.goals))
	copy(out, c.goals)
	return out
}

// Consulted returns the specialists consulted during the latest send, in
// display order.
func (c *Controller) Consulted() []domain.SpecialistID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return orderedSpecialists(c.consulted)
}

func orderedSpecialists(set map[domain.SpecialistID]bool) []domain.SpecialistID {
	var out []domain.SpecialistID
	for _, id := range domain.SpecialistOrder {
		if set[id] {
			out = append(out, id)
		}
	}
	return out
}

// ActiveClient returns the active client dataset.
func (c *Controller) ActiveClient() *portfolio.Client {
	return c.book.Active()
}

// Book exposes the underlying client book for read-only portfolio rendering.
func (c *Controller) Book() *portfolio.Book {
	return c.book
}

// Send submits one user message. The user turn is appended optimistically
// and rolled back if the request, the stream, or an error frame fails. Only
// one send may be in flight; callers must consume the returned channel until
// it closes.
func (c *Controller) Send(ctx context.Context, text string) (<-chan Event, error) {
	if text == "" {
		return nil, domain.NewDomainError("session.Send", domain.ErrInvalidInput, "empty message")
	}

	c.mu.Lock()
	if c.state == StateSending || c.state == StateStreaming {
		c.mu.Unlock()
		return nil, domain.NewDomainError("session.Send", domain.ErrSendInFlight, "")
	}
	c.state = StateSending
	c.consulted = make(map[domain.SpecialistID]bool)
	c.history = append(c.history, domain.Turn{
		ID:        newTurnID(),
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	})
	req := domain.ChatRequest{
		Model:     c.cfg.Model,
		System:    prompt.SystemInstructions(c.book),
		MaxTokens: c.cfg.MaxTokens,
		Turns:     append([]domain.Turn(nil), c.history...),
	}
	c.mu.Unlock()

	ctx, span := tracer.StartSpan(ctx, "session.send",
		trace.WithAttributes(
			tracer.StringAttr("client.id", c.book.Active().ClientID),
			tracer.IntAttr("history.turns", len(req.Turns)),
		),
	)

	deltas, err := c.client.ChatStream(ctx, req)
	if err != nil {
		c.mu.Lock()
		c.rollbackUserTurn()
		c.state = StateFailed
		c.mu.Unlock()

		tracer.RecordError(span, err)
		span.End()
		c.logger.Error("send failed", "error", err, "auth", domain.IsAuthError(err))
		return nil, err
	}

	c.mu.Lock()
	c.state = StateStreaming
	c.mu.Unlock()

	events := make(chan Event, 16)
	go c.pump(ctx, span, deltas, events)
	return events, nil
}

// pump drives one active stream to its terminal event.
func (c *Controller) pump(ctx context.Context, span trace.Span, deltas <-chan domain.StreamDelta, events chan<- Event) {
	defer close(events)
	defer span.End()

	var accumulated string
	terminal := false

	for d := range deltas {
		switch {
		case d.Err != nil:
			terminal = true
			c.failStream(span, events, d.Err)

		case d.Done:
			terminal = true
			accumulated = d.Text
			c.completeStream(span, events, accumulated)

		default:
			accumulated = d.Text
			events <- Event{
				Delta:       d.Delta,
				Display:     extract.StreamingDisplay(accumulated),
				Specialists: c.noteSpecialists(accumulated),
			}
		}
		if terminal {
			return
		}
	}

	// Channel closed without a terminal delta: the stream was abandoned
	// (context cancellation). Treat as a failed send.
	err := ctx.Err()
	if err == nil {
		err = domain.ErrStreamError
	}
	c.failStream(span, events, err)
}

// noteSpecialists merges newly seen marker ids into the consulted set and
// returns the ordered set.
func (c *Controller) noteSpecialists(accumulated string) []domain.SpecialistID {
	ids := extract.SpecialistIDs(accumulated)

	c.mu.Lock()
	defer c.mu.Unlock()
	for id := range ids {
		c.consulted[id] = true
	}
	return orderedSpecialists(c.consulted)
}

func (c *Controller) completeStream(span trace.Span, events chan<- Event, fullText string) {
	c.mu.Lock()

	visible, goals, diff := extract.Goals(fullText, c.goals)
	visible = extract.StripSpecialistMarkers(visible)
	c.goals = goals

	for id := range extract.SpecialistIDs(fullText) {
		c.consulted[id] = true
	}
	specialists := orderedSpecialists(c.consulted)

	turnID := newTurnID()
	// The raw text, goal block and markers included, goes into history so
	// the model sees its own protocol output on the next request.
	c.history = append(c.history, domain.Turn{
		ID:        turnID,
		Role:      domain.RoleAssistant,
		Content:   fullText,
		Timestamp: time.Now(),
	})
	c.state = StateCompleted

	goalCount := len(goals)
	c.mu.Unlock()

	tracer.SetOK(span)
	c.logger.Debug("send completed",
		"chars", len(fullText),
		"goals", goalCount,
		"specialists", len(specialists),
	)

	events <- Event{
		Done:        true,
		Text:        visible,
		Goals:       goals,
		GoalDiff:    diff,
		Specialists: specialists,
		TurnID:      turnID,
	}
}

func (c *Controller) failStream(span trace.Span, events chan<- Event, err error) {
	c.mu.Lock()
	c.rollbackUserTurn()
	c.state = StateFailed
	c.mu.Unlock()

	tracer.RecordError(span, err)
	c.logger.Error("stream failed", "error", err, "auth", domain.IsAuthError(err))

	events <- Event{Err: err}
}

// rollbackUserTurn pops the optimistic user turn. Caller holds the lock.
func (c *Controller) rollbackUserTurn() {
	if n := len(c.history); n > 0 && c.history[n-1].Role == domain.RoleUser {
		c.history = c.history[:n-1]
	}
}

// SwitchClient stashes the current conversation and restores (or starts
// fresh) the target client's. Rejected while a send is in flight.
func (c *Controller) SwitchClient(clientID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSending || c.state == StateStreaming {
		return domain.NewDomainError("session.SwitchClient", domain.ErrSendInFlight, "")
	}

	current := c.book.Active().ClientID
	if clientID == current {
		return nil
	}

	c.stash[current] = &clientState{
		history: append([]domain.Turn(nil), c.history...),
		goals:   append([]domain.Goal(nil), c.goals...),
	}

	if err := c.book.SetActiveClient(clientID); err != nil {
		return err
	}

	if restored, ok := c.stash[clientID]; ok {
		c.history = append([]domain.Turn(nil), restored.history...)
		c.goals = append([]domain.Goal(nil), restored.goals...)
	} else {
		c.history = nil
		c.goals = nil
	}
	c.consulted = make(map[domain.SpecialistID]bool)
	c.state = StateIdle

	c.logger.Info("client switched", "from", current, "to", clientID)
	return nil
}

// Reset clears the active client's conversation and goals.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = nil
	c.goals = nil
	c.consulted = make(map[domain.SpecialistID]bool)
	c.state = StateIdle
	delete(c.stash, c.book.Active().ClientID)
}

// RecordFeedback stores a thumbs rating against an assistant turn. The last
// rating wins.
func (c *Controller) RecordFeedback(turnID string, fb domain.Feedback) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.history {
		if c.history[i].ID == turnID && c.history[i].Role == domain.RoleAssistant {
			c.feedback[turnID] = fb
			return nil
		}
	}
	return domain.NewDomainError("session.RecordFeedback", domain.ErrInvalidInput, "unknown turn "+turnID)
}

// FeedbackFor returns the recorded rating for an assistant turn.
func (c *Controller) FeedbackFor(turnID string) domain.Feedback {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.feedback[turnID]
}

func newTurnID() string {
	return ulid.Make().String()
}
