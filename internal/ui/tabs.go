package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// view selects which feed(s) the viewport shows.
type view int

const (
	viewAll view = iota
	viewAgent
	viewEnv
)

func (v view) String() string {
	switch v {
	case viewAgent:
		return "agent"
	case viewEnv:
		return "env"
	default:
		return "all"
	}
}

var (
	activeTabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}

	tabStyle = lipgloss.NewStyle().
			Border(tabBorder, true).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	activeTabStyle = tabStyle.Border(activeTabBorder, true)

	tabGap = tabStyle.
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false)
)

func (m Model) renderTabs() string {
	tabs := []string{
		tabStyle.Render("All"),
		tabStyle.Render("Agent"),
		tabStyle.Render("Env"),
	}
	switch m.active {
	case viewAgent:
		tabs[1] = activeTabStyle.Render("Agent")
	case viewEnv:
		tabs[2] = activeTabStyle.Render("Env")
	default:
		tabs[0] = activeTabStyle.Render("All")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.viewport.Width > 0 {
		gapWidth := m.viewport.Width - lipgloss.Width(row)
		if gapWidth < 0 {
			gapWidth = 0
		}
		row = lipgloss.JoinHorizontal(lipgloss.Bottom,
			row,
			tabGap.Render(strings.Repeat(" ", gapWidth)),
		)
	}
	return row
}
