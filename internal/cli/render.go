package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.TextPrimary).Align(lipgloss.Center)
}

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent)
}

func valueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
}

func mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
}

func dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// RightAlign marks numeric columns. When nil every column after the
	// first is right-aligned.
	RightAlign []bool
}

// SeparatorRow renders as a horizontal rule inside a table.
var SeparatorRow = []string{"---"}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle().Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	right := func(i int) bool {
		if t.RightAlign != nil {
			return i < len(t.RightAlign) && t.RightAlign[i]
		}
		return i > 0
	}

	dim := dimStyle()
	rule := func(left, mid, end string) string {
		var b strings.Builder
		b.WriteString(dim.Render(left))
		for i, w := range widths {
			b.WriteString(dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dim.Render(mid))
			}
		}
		b.WriteString(dim.Render(end))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle().Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle().Render(" " + pad(h, widths[i], false) + " "))
			if i < numCols-1 {
				b.WriteString(dim.Render("│"))
			}
		}
		b.WriteString(dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(dim.Render("│"))
		for i := range numCols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(" " + pad(cell, widths[i], right(i)) + " ")
			if i < numCols-1 {
				b.WriteString(dim.Render("│"))
			}
		}
		b.WriteString(dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == SeparatorRow[0]
}

// pad fills s with spaces to width display cells. Styled cells are measured
// without their escape sequences.
func pad(s string, width int, right bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// Swatch renders a small block in the given hex color.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// RenderBudgetBar renders how much of the budget is used.
func RenderBudgetBar(s model.Summary, width int) string {
	if !s.IsAvailableDefined || width <= 0 {
		return ""
	}
	used := s.UsedFraction()
	filled := min(int(used*float64(width)), width)

	color := theme.BudgetColor(theme.Active, used, s.IsOverspent)
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		dimStyle().Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %.0f%%", bar, used*100)
}

// RenderShareBar renders the chart series as one stacked bar, each segment
// sized by its share of the denominator.
func RenderShareBar(s model.Summary, width int) string {
	if s.Denominator <= 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for i, it := range s.Series {
		if it.Amount <= 0 {
			continue
		}
		n := int(float64(it.Amount) / float64(s.Denominator) * float64(width))
		if i == len(s.Series)-1 {
			n = max(n, width-used)
		}
		n = min(n, width-used)
		if n <= 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render(strings.Repeat("█", n)))
		used += n
	}
	if used < width {
		b.WriteString(dimStyle().Render(strings.Repeat("░", width-used)))
	}
	return b.String()
}

// RenderSummary renders the figure block shown above the item table.
func RenderSummary(s model.Summary, cur money.Currency) string {
	label := mutedStyle().Width(20)
	value := valueStyle()

	var b strings.Builder
	fmt.Fprintf(&b, "  %s%s\n", label.Render("Total Spending"), value.Render(FormatMoney(s.TotalSpending, cur)))
	fmt.Fprintf(&b, "  %s%s\n", label.Render("Available To Spend"), value.Render(FormatMoney(s.Available, cur)))
	if s.IsAvailableDefined {
		color := theme.BudgetColor(theme.Active, s.UsedFraction(), s.IsOverspent)
		balance := lipgloss.NewStyle().Foreground(color).Bold(true).Render(FormatMoney(s.Remaining.Abs(), cur))
		fmt.Fprintf(&b, "  %s%s\n", label.Render(BalanceLabel(s.IsOverspent)), balance)
	}
	return b.String()
}

// ItemRows builds table rows for the spending items of s, with a trailing
// leftover row when the chart shows one.
func ItemRows(s model.Summary, cur money.Currency) [][]string {
	rows := make([][]string, 0, len(s.Series)+1)
	for i, it := range s.Series {
		if it.ID == model.LeftoverID {
			rows = append(rows, SeparatorRow)
			rows = append(rows, []string{"", Swatch(it.Color), mutedStyle().Render(it.Label), "", FormatMoney(it.Amount, cur), FormatPercent(s.PercentShare(it.Amount))})
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			Swatch(it.Color),
			Truncate(it.Label, 32),
			FormatShortID(it.ID),
			FormatMoney(it.Amount, cur),
			FormatPercent(s.PercentShare(it.Amount)),
		})
	}
	return rows
}
