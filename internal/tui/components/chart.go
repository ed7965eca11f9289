package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

// Slice is one segment of a share chart.
type Slice struct {
	Label string
	Color string
	Value int64
	// Share is the preformatted percentage, e.g. "25.0%".
	Share string
	// Amount is the preformatted value, e.g. "R$ 5,00".
	Amount string
}

// ShareBar renders slices as one stacked bar of exactly width cells, each
// segment proportional to its value over total.
func ShareBar(slices []Slice, total int64, width int) string {
	t := theme.Active
	if total <= 0 || width <= 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", max(width, 0)))
	}

	cells := make([]int, len(slices))
	used := 0
	last := -1
	for i, s := range slices {
		if s.Value <= 0 {
			continue
		}
		cells[i] = int(float64(s.Value) / float64(total) * float64(width))
		used += cells[i]
		last = i
	}
	if last >= 0 && used < width {
		// Rounding remainder goes to the last slice when slices cover total.
		var sum int64
		for _, s := range slices {
			sum += max(s.Value, 0)
		}
		if sum >= total {
			cells[last] += width - used
			used = width
		}
	}

	var b strings.Builder
	for i, s := range slices {
		if cells[i] > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(strings.Repeat("█", cells[i])))
		}
	}
	if used < width {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat("░", width-used)))
	}
	return b.String()
}

// HorizontalBars renders one labeled bar per slice, scaled to the largest
// value, with amount and share columns.
func HorizontalBars(slices []Slice, width int) string {
	if len(slices) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	amountW := 0
	shareW := 0
	var peak int64
	for _, s := range slices {
		labelW = max(labelW, lipgloss.Width(s.Label))
		amountW = max(amountW, lipgloss.Width(s.Amount))
		shareW = max(shareW, lipgloss.Width(s.Share))
		peak = max(peak, s.Value)
	}
	labelW = min(labelW, 20)
	barW := max(width-labelW-amountW-shareW-6, 5)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(labelW).MaxWidth(labelW)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, s := range slices {
		n := 0
		if peak > 0 && s.Value > 0 {
			n = max(int(float64(s.Value)/float64(peak)*float64(barW)), 1)
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(strings.Repeat("█", n)) +
			strings.Repeat(" ", barW-n)
		fmt.Fprintf(&b, "%s  %s %s %s",
			labelStyle.Render(s.Label),
			bar,
			numStyle.Render(fmt.Sprintf("%*s", amountW, s.Amount)),
			numStyle.Render(fmt.Sprintf("%*s", shareW, s.Share)))
		if i < len(slices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Legend renders colored swatches with labels, wrapping at width.
func Legend(slices []Slice, width int) string {
	t := theme.Active
	text := lipgloss.NewStyle().Foreground(t.TextMuted)

	var lines []string
	line := ""
	for _, s := range slices {
		entry := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("■") + " " + text.Render(s.Label)
		if line != "" && lipgloss.Width(line)+2+lipgloss.Width(entry) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += "  "
		}
		line += entry
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
