package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"advisor-ai/internal/adapter/tui/theme"
	"advisor-ai/internal/domain"
)

// GoalsPanelModel renders the live goal snapshot in a scrollable side pane.
// Goals added or status-changed by the latest response carry a NEW/UPDATED
// tag until the next snapshot arrives.
type GoalsPanelModel struct {
	Viewport viewport.Model
	goals    []domain.Goal
	diff     domain.GoalDiff
	width    int
	height   int
	ready    bool
}

// NewGoalsPanel creates an empty goals panel.
func NewGoalsPanel() GoalsPanelModel {
	return GoalsPanelModel{}
}

// SetSize updates the panel dimensions.
func (m *GoalsPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	if !m.ready {
		m.Viewport = viewport.New(w, h)
		m.ready = true
	} else {
		m.Viewport.Width = w
		m.Viewport.Height = h
	}
	m.refresh()
}

// SetGoals replaces the displayed snapshot. diff marks which entries get
// highlight tags.
func (m *GoalsPanelModel) SetGoals(goals []domain.Goal, diff domain.GoalDiff) {
	m.goals = goals
	m.diff = diff
	m.refresh()
}

// Count returns the number of goals displayed.
func (m GoalsPanelModel) Count() int {
	return len(m.goals)
}

// Update handles viewport scrolling.
func (m GoalsPanelModel) Update(msg tea.Msg) (GoalsPanelModel, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View renders the panel.
func (m GoalsPanelModel) View() string {
	if !m.ready {
		return ""
	}
	return m.Viewport.View()
}

func (m *GoalsPanelModel) refresh() {
	if !m.ready {
		return
	}

	var sb strings.Builder
	sb.WriteString(" " + theme.GoalPanelTitle.Render(fmt.Sprintf("GOALS (%d)", len(m.goals))) + "\n")

	if len(m.goals) == 0 {
		sb.WriteString("\n " + theme.TextMuted.Render("No goals identified yet."))
		sb.WriteString("\n " + theme.TextMuted.Render("They appear here as the"))
		sb.WriteString("\n " + theme.TextMuted.Render("conversation uncovers them."))
		m.Viewport.SetContent(sb.String())
		return
	}

	textW := m.width - 5
	if textW < 16 {
		textW = 16
	}

	for _, g := range m.goals {
		sb.WriteString("\n")
		sb.WriteString(m.renderGoal(g, textW))
	}

	m.Viewport.SetContent(sb.String())
}

func (m *GoalsPanelModel) renderGoal(g domain.Goal, width int) string {
	icon := theme.GoalStatusSymbol(g.Status)

	title := g.Goal
	if len([]rune(title)) > width {
		title = string([]rune(title)[:width-1]) + theme.SymbolEllipsis
	}

	head := " " + icon + " " + theme.Bold.Render(title)
	switch {
	case m.diff.Added[g.ID]:
		head += " " + theme.GoalNewTag.Render("NEW")
	case m.diff.Updated[g.ID]:
		head += " " + theme.GoalUpdatedTag.Render("UPDATED")
	}

	meta := "   " + priorityStyle(g.Priority).Render(g.Priority) +
		theme.TextMuted.Render(" "+theme.SymbolBullet+" "+g.Category+" "+theme.SymbolBullet+" ") +
		theme.TextInfo.Render(domain.FormatGoalStatus(g.Status))

	out := head + "\n" + meta
	if g.Detail != "" {
		out += "\n   " + theme.Dim.Render(truncate(g.Detail, width))
	}
	return out + "\n"
}

func priorityStyle(priority string) lipgloss.Style {
	switch priority {
	case "high":
		return theme.PriorityHigh
	case "medium":
		return theme.PriorityMedium
	default:
		return theme.PriorityLow
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + theme.SymbolEllipsis
}
