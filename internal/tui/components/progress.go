package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

// BudgetBar renders how much of the budget is used with a percentage
// label. Colors follow theme.BudgetColor.
func BudgetBar(used float64, overspent bool, width int) string {
	t := theme.Active
	used = min(max(used, 0), 1)
	color := theme.BudgetColor(t, used, overspent)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width-6, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pct := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%4.0f%%", used*100))
	return bar.ViewAs(used) + " " + pct
}
