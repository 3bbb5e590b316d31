package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"advisor-ai/internal/adapter/tui/theme"
)

// KeyHint represents a single keybinding hint shown in the status bar.
type KeyHint struct {
	Key  string // e.g. "Enter"
	Desc string // e.g. "Send"
}

// StatusBarModel renders a bottom status bar with keybinding hints, the
// active client, and the model name.
type StatusBarModel struct {
	Hints      []KeyHint
	ClientName string
	ModelName  string
	Extra      string // transient status text (e.g. "Thinking...")
	width      int
}

// NewStatusBar creates an empty status bar.
func NewStatusBar() StatusBarModel {
	return StatusBarModel{}
}

// SetWidth updates the available width.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single line.
func (m StatusBarModel) View() string {
	var hints []string
	for _, h := range m.Hints {
		hints = append(hints, theme.StatusKey.Render(h.Key)+": "+h.Desc)
	}
	left := strings.Join(hints, "  "+theme.Dim.Render("|")+"  ")

	var right string
	if m.ClientName != "" || m.ModelName != "" {
		var parts []string
		if m.ClientName != "" {
			parts = append(parts, m.ClientName)
		}
		if m.ModelName != "" {
			parts = append(parts, m.ModelName)
		}
		right = theme.TextMuted.Render(strings.Join(parts, " "+theme.SymbolBullet+" "))
	}

	if m.Extra != "" {
		if right != "" {
			right += "  "
		}
		right += theme.TextInfo.Render(m.Extra)
	}

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW
	if gap < 1 {
		gap = 1
	}

	return theme.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
