// Package components provides reusable Bubble Tea sub-models for the TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"advisor-ai/internal/adapter/tui/theme"
)

// Tab represents a single client tab entry.
type Tab struct {
	ID    string // client id
	Label string // client display name
}

// TabBarModel is a horizontal client tab bar. The parent model routes
// Ctrl+N/Ctrl+P to Next()/Prev() and performs the actual client switch.
type TabBarModel struct {
	Tabs      []Tab
	Active    int
	width     int
	collapsed bool
}

// NewTabBar creates a tab bar with the given tabs. The first tab is active.
func NewTabBar(tabs []Tab) TabBarModel {
	return TabBarModel{Tabs: tabs}
}

// SetWidth updates the available width and determines if tabs should collapse.
func (m *TabBarModel) SetWidth(w int) {
	m.width = w
	m.collapsed = w < theme.MinTabWidth
}

// Next advances to the next tab, wrapping around.
func (m *TabBarModel) Next() {
	if len(m.Tabs) == 0 {
		return
	}
	m.Active = (m.Active + 1) % len(m.Tabs)
}

// Prev moves to the previous tab, wrapping around.
func (m *TabBarModel) Prev() {
	if len(m.Tabs) == 0 {
		return
	}
	m.Active = (m.Active - 1 + len(m.Tabs)) % len(m.Tabs)
}

// SetActiveID activates the tab with the given client id.
func (m *TabBarModel) SetActiveID(id string) {
	for i, t := range m.Tabs {
		if t.ID == id {
			m.Active = i
			return
		}
	}
}

// ActiveTab returns the active tab entry.
func (m TabBarModel) ActiveTab() Tab {
	if len(m.Tabs) == 0 {
		return Tab{}
	}
	return m.Tabs[m.Active]
}

// View renders the tab bar.
func (m TabBarModel) View() string {
	if len(m.Tabs) == 0 {
		return ""
	}

	if m.collapsed {
		// Collapsed mode: show only the active tab with a position counter.
		t := m.Tabs[m.Active]
		label := theme.TabActive.Render(t.Label)
		counter := theme.Dim.Render("[" + strconv.Itoa(m.Active+1) + "/" + strconv.Itoa(len(m.Tabs)) + "]")
		return lipgloss.JoinHorizontal(lipgloss.Center, label, " ", counter)
	}

	var parts []string
	for i, t := range m.Tabs {
		if i == m.Active {
			parts = append(parts, theme.TabActive.Render(t.Label))
		} else {
			parts = append(parts, theme.TabNormal.Render(t.Label))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, parts...)

	if m.width > 0 {
		bg := theme.TabNormal.Copy().UnsetPadding()
		remaining := m.width - lipgloss.Width(bar)
		if remaining > 0 {
			bar += bg.Render(strings.Repeat(" ", remaining))
		}
	}

	return bar
}
