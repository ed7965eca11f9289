package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a status message on the right. isErr colors the message as an error.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	left := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" " + hints)

	msgColor := t.Positive
	if isErr {
		msgColor = t.Negative
	}
	right := ""
	if message != "" {
		right = lipgloss.NewStyle().Foreground(msgColor).Render(message + " ")
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.NewStyle().Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
