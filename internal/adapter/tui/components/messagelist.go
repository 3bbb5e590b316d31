package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"advisor-ai/internal/adapter/tui/theme"
	"advisor-ai/internal/domain"
	"advisor-ai/internal/extract"
)

// MessageRole identifies the sender of a chat message.
type MessageRole string

const (
	RoleUser    MessageRole = "user"
	RoleAdvisor MessageRole = "advisor"
	RoleSystem  MessageRole = "system"
	RoleError   MessageRole = "error"
)

// ChatMessage represents a single message in the chat transcript.
type ChatMessage struct {
	Role        MessageRole
	Content     string
	Rendered    string // cached glamour output; empty means not yet rendered
	Timestamp   time.Time
	Specialists []domain.SpecialistID // consulted specialists (advisor only)
	TurnID      string                // conversation turn id (advisor only)
	Feedback    domain.Feedback
	Streaming   bool // true while deltas are still arriving; plain render, no markdown
}

// MessageListModel manages an ordered list of chat messages with optional
// ring buffer.
type MessageListModel struct {
	Messages    []ChatMessage
	MaxMessages int // 0 = unlimited; positive = ring buffer cap
	trimCount   int
	width       int
	mdRenderer  *glamour.TermRenderer
}

// NewMessageList creates an empty message list.
func NewMessageList() MessageListModel {
	return MessageListModel{}
}

// SetWidth updates the rendering width and clears cached renders.
func (m *MessageListModel) SetWidth(w int) {
	if w == m.width {
		return
	}
	m.width = w
	m.mdRenderer = nil
	for i := range m.Messages {
		m.Messages[i].Rendered = ""
	}
}

// SetMaxMessages sets the ring buffer capacity. 0 means unlimited.
func (m *MessageListModel) SetMaxMessages(max int) {
	m.MaxMessages = max
}

// TrimmedIndicator returns a note if older messages were trimmed.
func (m *MessageListModel) TrimmedIndicator() string {
	if m.trimCount == 0 {
		return ""
	}
	return fmt.Sprintf("(%d older messages trimmed)", m.trimCount)
}

// Add appends a message. If MaxMessages is set, trims oldest messages.
func (m *MessageListModel) Add(msg ChatMessage) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	m.Messages = append(m.Messages, msg)
	if m.MaxMessages > 0 && len(m.Messages) > m.MaxMessages {
		excess := len(m.Messages) - m.MaxMessages
		m.Messages = m.Messages[excess:]
		m.trimCount += excess
	}
}

// Clear removes all messages.
func (m *MessageListModel) Clear() {
	m.Messages = nil
	m.trimCount = 0
}

// RemoveLast drops the most recent message (failed-send placeholder cleanup).
func (m *MessageListModel) RemoveLast() {
	if len(m.Messages) > 0 {
		m.Messages = m.Messages[:len(m.Messages)-1]
	}
}

// DiscardStreaming drops the last message if deltas were still arriving. A
// failed or cancelled stream leaves no half-formed advisor bubble behind.
func (m *MessageListModel) DiscardStreaming() {
	if n := len(m.Messages); n > 0 && m.Messages[n-1].Streaming {
		m.Messages = m.Messages[:n-1]
	}
}

// UpdateLast replaces the content of the last message (for streaming).
func (m *MessageListModel) UpdateLast(content string) {
	if len(m.Messages) == 0 {
		return
	}
	last := &m.Messages[len(m.Messages)-1]
	last.Content = content
	last.Rendered = ""
}

// FinishLast marks the last message as complete: final content, consulted
// specialists, and the turn id feedback is recorded against.
func (m *MessageListModel) FinishLast(content, turnID string, specialists []domain.SpecialistID) {
	if len(m.Messages) == 0 {
		return
	}
	last := &m.Messages[len(m.Messages)-1]
	last.Content = content
	last.Rendered = ""
	last.TurnID = turnID
	last.Specialists = specialists
	last.Streaming = false
}

// SetLastSpecialists updates the badge strip on the last message while it is
// still streaming.
func (m *MessageListModel) SetLastSpecialists(ids []domain.SpecialistID) {
	if len(m.Messages) == 0 {
		return
	}
	m.Messages[len(m.Messages)-1].Specialists = ids
}

// SetFeedback records a thumbs rating on the message with the given turn id.
func (m *MessageListModel) SetFeedback(turnID string, fb domain.Feedback) {
	for i := range m.Messages {
		if m.Messages[i].TurnID == turnID {
			m.Messages[i].Feedback = fb
			return
		}
	}
}

// LastAdvisorTurnID returns the turn id of the most recent completed advisor
// message, or "".
func (m *MessageListModel) LastAdvisorTurnID() string {
	for i := len(m.Messages) - 1; i >= 0; i-- {
		if m.Messages[i].Role == RoleAdvisor && m.Messages[i].TurnID != "" {
			return m.Messages[i].TurnID
		}
	}
	return ""
}

// View renders all messages as a single string.
func (m *MessageListModel) View() string {
	if len(m.Messages) == 0 {
		return theme.TextMuted.Render("  No messages yet. Ask Morgan anything about the portfolio.")
	}

	contentWidth := m.width - 4
	if contentWidth > theme.MaxContentWidth {
		contentWidth = theme.MaxContentWidth
	}
	if contentWidth < 40 {
		contentWidth = 40
	}

	var sb strings.Builder
	if indicator := m.TrimmedIndicator(); indicator != "" {
		sb.WriteString(theme.TextMuted.Render("  "+indicator) + "\n\n")
	}
	for i := range m.Messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderMessage(&m.Messages[i], contentWidth))
	}
	return sb.String()
}

func (m *MessageListModel) renderMessage(msg *ChatMessage, width int) string {
	label := m.roleLabel(msg.Role)
	ts := RelativeTime(msg.Timestamp)
	header := label + " " + theme.Timestamp.Render(ts)
	if msg.Feedback == domain.FeedbackUp {
		header += " " + theme.SymbolThumbUp
	} else if msg.Feedback == domain.FeedbackDown {
		header += " " + theme.SymbolThumbDn
	}
	headerWidth := lipgloss.Width(header)

	badges := renderSpecialistBadges(msg.Specialists, width)

	var body string
	switch msg.Role {
	case RoleAdvisor:
		if msg.Streaming {
			// Plain wrap during streaming; markdown can be mid-construct.
			body = wrapText(msg.Content, width-2)
		} else {
			if msg.Rendered == "" {
				m.renderAttributed(msg, width)
			}
			body = strings.TrimSpace(msg.Rendered)
		}
	case RoleError:
		body = theme.TextError.Render(wrapText(msg.Content, width-2))
	default:
		inlineW := width - headerWidth - 2
		if inlineW < 20 {
			inlineW = width - 2
		}
		body = wrapText(msg.Content, inlineW)
	}

	if body == "" {
		if badges != "" {
			return header + "\n" + badges
		}
		return header
	}

	if badges != "" {
		return header + "\n" + badges + body
	}

	// Inline: header and first line of body share a line when there's room.
	if width-headerWidth-2 < 20 {
		return header + "\n  " + body
	}

	lines := strings.SplitN(body, "\n", 2)
	firstLine := strings.TrimSpace(lines[0])
	result := header + "  " + firstLine
	if len(lines) > 1 {
		result += "\n" + lines[1]
	}
	return result
}

// renderSpecialistBadges renders the consulted-specialist strip shown between
// the header and body of an advisor response.
func renderSpecialistBadges(ids []domain.SpecialistID, width int) string {
	if len(ids) == 0 {
		return ""
	}

	var parts []string
	for _, id := range ids {
		sp, ok := domain.Specialists[id]
		if !ok {
			continue
		}
		badge := theme.SpecialistBadge(sp.Color).Render(sp.Initials)
		parts = append(parts, badge+" "+theme.Dim.Render(sp.Name))
	}
	if len(parts) == 0 {
		return ""
	}

	line := "  " + strings.Join(parts, theme.TextMuted.Render("  "+theme.SymbolBullet+"  "))
	if lipgloss.Width(line) > width {
		// Narrow terminals get initials only.
		parts = parts[:0]
		for _, id := range ids {
			if sp, ok := domain.Specialists[id]; ok {
				parts = append(parts, theme.SpecialistBadge(sp.Color).Render(sp.Initials))
			}
		}
		line = "  " + strings.Join(parts, " ")
	}
	return line + "\n"
}

func (m *MessageListModel) roleLabel(role MessageRole) string {
	switch role {
	case RoleUser:
		return theme.UserLabel.Render(theme.SymbolUser)
	case RoleAdvisor:
		return theme.AdvisorLabel.Render(theme.SymbolAdvisor)
	case RoleSystem:
		return theme.SystemLabel.Render("System")
	case RoleError:
		return theme.ErrorLabel.Render(theme.SymbolError + " Error")
	default:
		return theme.TextMuted.Render(string(role))
	}
}

// renderAttributed caches the markdown render of a finished advisor message,
// rewriting each "**Name, Title:**" attribution to carry the specialist's
// icon so hand-off lines stand out in the transcript.
func (m *MessageListModel) renderAttributed(msg *ChatMessage, width int) {
	content := extract.ReplaceAttributions(msg.Content, func(sp domain.Specialist) string {
		return "**" + sp.Icon + " " + sp.Name + ", " + sp.Title + ":**"
	})
	msg.Rendered = m.renderMarkdown(content, width)
}

func (m *MessageListModel) renderMarkdown(content string, width int) string {
	if m.mdRenderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "  " + content
		}
		m.mdRenderer = r
	}
	rendered, err := m.mdRenderer.Render(content)
	if err != nil {
		return "  " + content
	}
	return rendered
}

// RelativeTime returns a human-readable relative time string.
func RelativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2 15:04")
	}
}

// wrapText wraps text to the given width with a 2-space indent on
// continuation lines. Rune-based indexing handles multibyte UTF-8.
func wrapText(s string, width int) string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		runes := []rune(para)
		if width <= 0 || len(runes) <= width {
			out = append(out, para)
			continue
		}
		var lines []string
		for len(runes) > width {
			idx := -1
			for i := width - 1; i > 0; i-- {
				if runes[i] == ' ' {
					idx = i
					break
				}
			}
			if idx <= 0 {
				idx = width
			}
			lines = append(lines, string(runes[:idx]))
			runes = runes[idx:]
			for len(runes) > 0 && runes[0] == ' ' {
				runes = runes[1:]
			}
		}
		if len(runes) > 0 {
			lines = append(lines, string(runes))
		}
		out = append(out, strings.Join(lines, "\n  "))
	}
	return strings.Join(out, "\n")
}

// ContentWidth calculates the content width respecting MaxContentWidth.
func ContentWidth(termWidth int) int {
	w := termWidth - 4
	if w > theme.MaxContentWidth {
		w = theme.MaxContentWidth
	}
	if w < 40 {
		w = 40
	}
	return w
}

// Divider renders a horizontal line at the given width.
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.ColorBorder).
		Render(strings.Repeat("─", width))
}
