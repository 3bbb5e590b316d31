package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"advisor-ai/internal/adapter/tui/components"
	"advisor-ai/internal/adapter/tui/theme"
	"advisor-ai/internal/adapter/tui/uxerror"
	"advisor-ai/internal/domain"
	"advisor-ai/internal/extract"
	"advisor-ai/internal/portfolio"
	"advisor-ai/internal/usecase"
)

// ModelDeps are dependencies injected into the chat model.
type ModelDeps struct {
	Session   *usecase.Controller
	Logger    *slog.Logger
	ModelName string
	// Instant suppresses incremental delta rendering; the response appears
	// whole when the stream completes.
	Instant bool
}

// Model is the root Bubble Tea model for the advisor chat.
type Model struct {
	deps ModelDeps

	// Sub-models
	chatView  components.ChatViewModel
	input     components.InputAreaModel
	statusBar components.StatusBarModel
	tabBar    components.TabBarModel
	goalsPane components.GoalsPanelModel
	split     components.SplitPaneModel
	spinner   spinner.Model

	// State
	waiting  bool // a send is in flight (request opened or streaming)
	width    int
	height   int
	quitting bool

	// Request lifecycle: gen is bumped on every send and cancel so stale
	// stream messages are discarded.
	gen      uint64
	cancelFn context.CancelFunc
	events   <-chan usecase.Event
}

// New creates the root chat model over the given session.
func New(deps ModelDeps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorInfo)

	var tabs []components.Tab
	for _, c := range deps.Session.Book().Clients() {
		tabs = append(tabs, components.Tab{ID: c.ClientID, Label: c.Owner.Name})
	}

	sb := components.NewStatusBar()
	sb.ClientName = deps.Session.ActiveClient().Owner.Name
	sb.ModelName = deps.ModelName
	sb.Hints = defaultHints()

	chatView := components.NewChatView()
	chatView.SetMaxMessages(1000)

	m := Model{
		deps:      deps,
		chatView:  chatView,
		input:     components.NewInputArea(),
		statusBar: sb,
		tabBar:    components.NewTabBar(tabs),
		goalsPane: components.NewGoalsPanel(),
		split:     components.NewSplitPane(0.68),
		spinner:   s,
	}
	m.addWelcome()
	return m
}

// Init initializes sub-models.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.InputSubmitMsg:
		return m.handleSubmit(msg.Value)

	case SendFailedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleSendFailed(msg.Err)

	case StreamStartedMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		m.events = msg.Events
		m.statusBar.Extra = theme.SymbolSpinner + " Streaming..."
		return m, waitEventCmd(msg.Events, msg.Gen)

	case StreamEventMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleStreamEvent(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	// Update sub-models (mouse events never reach the input).
	if !m.waiting {
		if _, isMouse := msg.(tea.MouseMsg); !isMouse {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	if m.split.Visible && m.split.Focused == components.PaneRight {
		m.goalsPane, cmd = m.goalsPane.Update(msg)
	} else {
		m.chatView, cmd = m.chatView.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the entire chat UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 {
		return "  Initializing..."
	}

	tabBar := m.tabBar.View()

	chatContent := m.chatView.View()
	var mainContent string
	if m.split.Visible {
		mainContent = m.split.Render(chatContent, m.goalsPane.View())
	} else {
		mainContent = chatContent
	}

	inputView := m.input.View()
	if m.waiting {
		inputView = lipgloss.NewStyle().Faint(true).Render("> waiting for response...") +
			"\n" + m.spinner.View() + " " + m.statusBar.Extra
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar,
		mainContent,
		components.Divider(m.width),
		inputView,
		m.statusBar.View(),
	)
}

// layout recalculates sizes for all sub-models.
func (m *Model) layout() {
	tabBarH := 1
	inputH := 3
	statusH := 1
	dividerH := 1
	contentH := m.height - tabBarH - inputH - statusH - dividerH
	if contentH < 5 {
		contentH = 5
	}

	m.tabBar.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.split.SetSize(m.width, contentH)

	m.chatView.SetSize(m.split.LeftWidth(), contentH)
	m.input.SetWidth(m.width)

	if m.split.Visible {
		m.goalsPane.SetSize(m.split.RightWidth(), contentH)
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.waiting {
			m.cancelRequest()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlG:
		m.split.Toggle()
		m.layout()
		return m, nil

	case tea.KeyTab:
		if m.split.Visible {
			m.split.SwitchFocus()
		}
		return m, nil

	case tea.KeyCtrlN:
		return m.switchAdjacent(1)

	case tea.KeyCtrlP:
		return m.switchAdjacent(-1)

	case tea.KeyCtrlL:
		return m.handleSlashCommand("/clear", nil)

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.chatView, cmd = m.chatView.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleSubmit processes user input submission.
func (m Model) handleSubmit(value string) (tea.Model, tea.Cmd) {
	if cmd, args, ok := components.ParseSlashCommand(value); ok {
		return m.handleSlashCommand(cmd, args)
	}

	if m.waiting {
		m.addSystem("Morgan is still responding. Wait or press Ctrl+C to cancel.")
		return m, nil
	}

	m.chatView.AddMessage(components.ChatMessage{
		Role:      components.RoleUser,
		Content:   value,
		Timestamp: time.Now(),
	})
	// Placeholder the stream writes into.
	m.chatView.AddMessage(components.ChatMessage{
		Role:      components.RoleAdvisor,
		Streaming: true,
		Timestamp: time.Now(),
	})

	m.gen++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelFn = cancel

	m.waiting = true
	m.input.SetEnabled(false)
	m.statusBar.Extra = theme.SymbolSpinner + " Thinking..."

	return m, startSendCmd(ctx, m.deps.Session, value, m.gen)
}

// handleSendFailed surfaces a pre-stream failure. The session already rolled
// the user turn back; the transcript keeps the user bubble plus an error.
func (m Model) handleSendFailed(err error) (tea.Model, tea.Cmd) {
	m.chatView.DiscardStreaming()
	m.chatView.AddMessage(components.ChatMessage{
		Role:    components.RoleError,
		Content: uxerror.Humanize(err).Render(),
	})
	m.resetSendState()
	return m, nil
}

// handleStreamEvent processes one session event and re-arms the wait command
// until a terminal event arrives.
func (m Model) handleStreamEvent(msg StreamEventMsg) (tea.Model, tea.Cmd) {
	if !msg.Open {
		// Channel closed; the terminal event was already handled.
		return m, nil
	}

	e := msg.Event
	switch {
	case e.Err != nil:
		// The session rolled the user turn back; drop the partial reply so
		// the transcript matches the history it restores from.
		m.chatView.DiscardStreaming()
		m.chatView.AddMessage(components.ChatMessage{
			Role:    components.RoleError,
			Content: uxerror.Humanize(e.Err).Render(),
		})
		m.resetSendState()
		return m, nil

	case e.Done:
		m.chatView.Messages.FinishLast(e.Text, e.TurnID, e.Specialists)
		m.chatView.Refresh()
		m.goalsPane.SetGoals(e.Goals, e.GoalDiff)
		if len(e.Goals) > 0 && !m.split.Visible {
			m.split.Show()
			m.layout()
		}
		m.resetSendState()
		return m, nil

	default:
		if !m.deps.Instant {
			m.chatView.Messages.SetLastSpecialists(e.Specialists)
			m.chatView.UpdateLastMessage(e.Display)
		}
		return m, waitEventCmd(m.events, msg.Gen)
	}
}

// resetSendState re-enables input after a terminal stream event.
func (m *Model) resetSendState() {
	m.waiting = false
	m.cancelFn = nil
	m.events = nil
	m.input.SetEnabled(true)
	m.statusBar.Extra = ""
}

// cancelRequest aborts the in-flight send. The session rolls the user turn
// back and the stream surfaces a cancellation error event.
func (m *Model) cancelRequest() {
	if m.cancelFn != nil {
		m.cancelFn()
		m.cancelFn = nil
	}
	m.statusBar.Extra = theme.SymbolSpinner + " Cancelling..."
}

// switchAdjacent moves to the next or previous client tab, wrapping around.
func (m Model) switchAdjacent(delta int) (tea.Model, tea.Cmd) {
	n := len(m.tabBar.Tabs)
	if n == 0 {
		return m, nil
	}
	return m.switchToTab(((m.tabBar.Active+delta)%n + n) % n)
}

// switchToTab switches the active client, restoring that client's stashed
// conversation and goals.
func (m Model) switchToTab(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.tabBar.Tabs) {
		return m, nil
	}
	target := m.tabBar.Tabs[idx]

	if err := m.deps.Session.SwitchClient(target.ID); err != nil {
		m.addSystem(uxerror.Humanize(err).Title)
		return m, nil
	}

	m.tabBar.SetActiveID(target.ID)
	m.statusBar.ClientName = target.Label
	m.loadTranscript()
	return m, nil
}

// loadTranscript rebuilds the chat view and goals panel from session state
// after a client switch or reset.
func (m *Model) loadTranscript() {
	m.chatView.Clear()

	history := m.deps.Session.History()
	if len(history) == 0 {
		m.addWelcome()
	}
	for _, turn := range history {
		switch turn.Role {
		case domain.RoleUser:
			m.chatView.AddMessage(components.ChatMessage{
				Role:      components.RoleUser,
				Content:   turn.Content,
				Timestamp: turn.Timestamp,
			})
		case domain.RoleAssistant:
			// History keeps the raw protocol text; strip it for display.
			ids := extract.SpecialistIDs(turn.Content)
			var ordered []domain.SpecialistID
			for _, id := range domain.SpecialistOrder {
				if ids[id] {
					ordered = append(ordered, id)
				}
			}
			m.chatView.AddMessage(components.ChatMessage{
				Role:        components.RoleAdvisor,
				Content:     extract.StreamingDisplay(turn.Content),
				Timestamp:   turn.Timestamp,
				TurnID:      turn.ID,
				Specialists: ordered,
				Feedback:    m.deps.Session.FeedbackFor(turn.ID),
			})
		}
	}

	m.goalsPane.SetGoals(m.deps.Session.Goals(), domain.GoalDiff{})
	m.chatView.Refresh()
}

// addWelcome renders the advisor's opening summary for the active client.
func (m *Model) addWelcome() {
	w := m.deps.Session.WelcomeSummary()
	client := m.deps.Session.ActiveClient()
	first := strings.Fields(client.Owner.Name)[0]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s, I'm **%s**, your financial advisor. I work with a team of %d specialists who I'll bring in as your questions call for them.\n\n",
		first, w.AdvisorName, w.TeamSize)
	fmt.Fprintf(&sb, "Here's what I'm seeing: **%s** invested across %d accounts",
		portfolio.Currency(w.PortfolioValue), w.AccountCount)
	if w.Wages > 0 {
		fmt.Fprintf(&sb, ", %s in W-2 wages", portfolio.Currency(w.Wages))
	}
	if w.DebtTotal > 0 {
		fmt.Fprintf(&sb, ", and %s of debt at %s/mo",
			portfolio.Currency(w.DebtTotal), portfolio.Currency(w.DebtMonthly))
	}
	sb.WriteString(".\n\nA few places we could start:\n\n")
	for _, p := range m.deps.Session.SuggestedPrompts() {
		fmt.Fprintf(&sb, "- %s\n", p)
	}

	m.chatView.AddMessage(components.ChatMessage{
		Role:    components.RoleAdvisor,
		Content: sb.String(),
	})
}

// addSystem appends a system notice to the transcript.
func (m *Model) addSystem(text string) {
	m.chatView.AddMessage(components.ChatMessage{
		Role:    components.RoleSystem,
		Content: text,
	})
}

// handleSlashCommand processes a slash command.
func (m Model) handleSlashCommand(cmd string, args []string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "/help":
		m.addSystem(`Available commands:
  /help      - Show this help
  /clear     - Reset this client's conversation and goals
  /client    - Switch client: /client jordan-mitchell
  /goals     - Toggle the goals panel
  /prompts   - Show suggested conversation starters
  /good      - Rate the last response helpful
  /bad       - Rate the last response unhelpful
  /quit      - Exit

Keybindings:
  Enter      - Send message
  Alt+Enter  - New line
  Ctrl+N/P   - Next/prev client
  Ctrl+G     - Toggle goals panel
  Tab        - Switch pane focus
  Ctrl+L     - Reset conversation
  Ctrl+C     - Cancel/Quit
  PgUp/PgDn  - Scroll chat`)
		return m, nil

	case "/quit", "/exit":
		m.quitting = true
		return m, tea.Quit

	case "/clear":
		if m.waiting {
			m.addSystem("Can't reset while a response is streaming.")
			return m, nil
		}
		m.deps.Session.Reset()
		m.loadTranscript()
		m.addSystem(theme.SymbolSuccess + " Conversation reset.")
		return m, nil

	case "/client":
		if len(args) < 1 {
			var ids []string
			for _, t := range m.tabBar.Tabs {
				ids = append(ids, t.ID)
			}
			m.addSystem("Usage: /client <id>. Clients: " + strings.Join(ids, ", "))
			return m, nil
		}
		for i, t := range m.tabBar.Tabs {
			if t.ID == args[0] {
				return m.switchToTab(i)
			}
		}
		m.addSystem("Unknown client: " + args[0])
		return m, nil

	case "/goals":
		m.split.Toggle()
		m.layout()
		return m, nil

	case "/prompts":
		var sb strings.Builder
		sb.WriteString("Try asking:\n")
		for _, p := range m.deps.Session.SuggestedPrompts() {
			sb.WriteString("  " + theme.SymbolBullet + " " + p + "\n")
		}
		m.addSystem(sb.String())
		return m, nil

	case "/good":
		return m.rateLast(domain.FeedbackUp)

	case "/bad":
		return m.rateLast(domain.FeedbackDown)

	default:
		m.addSystem(fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd))
		return m, nil
	}
}

// rateLast records feedback against the most recent advisor response.
func (m Model) rateLast(fb domain.Feedback) (tea.Model, tea.Cmd) {
	turnID := m.chatView.Messages.LastAdvisorTurnID()
	if turnID == "" {
		m.addSystem("Nothing to rate yet.")
		return m, nil
	}
	if err := m.deps.Session.RecordFeedback(turnID, fb); err != nil {
		m.addSystem("Couldn't record feedback: " + err.Error())
		return m, nil
	}
	m.chatView.Messages.SetFeedback(turnID, fb)
	m.chatView.Refresh()
	m.addSystem("Thanks, feedback recorded.")
	return m, nil
}

func defaultHints() []components.KeyHint {
	return []components.KeyHint{
		{Key: "Enter", Desc: "Send"},
		{Key: "Ctrl+N/P", Desc: "Client"},
		{Key: "Ctrl+G", Desc: "Goals"},
		{Key: "?", Desc: "/help"},
		{Key: "Ctrl+C", Desc: "Quit"},
	}
}
