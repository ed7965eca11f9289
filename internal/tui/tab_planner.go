package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/cli"
	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/planner"
	"github.com/theirongolddev/spendplan/internal/tui/components"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

func (a App) updatePlannerKeys(key string) (tea.Model, tea.Cmd) {
	items := a.ws.State().Spending

	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "g", "home":
		a.itemCursor = 0
	case "G", "end":
		a.itemCursor = max(len(items)-1, 0)
	case "a":
		return a.openAddItem()
	case "e", "enter":
		if len(items) > 0 {
			return a.openEditItem(items[clamp(a.itemCursor, 0, len(items)-1)])
		}
	case "d", "delete":
		if len(items) > 0 {
			it, err := a.ws.RemoveItem(items[clamp(a.itemCursor, 0, len(items)-1)].ID)
			if err != nil {
				a.setError(err)
				break
			}
			a.itemCursor = clamp(a.itemCursor, 0, len(items)-2)
			a.setStatus("removed " + it.Label)
		}
	case "t":
		return a.openTitle()
	case "v":
		return a.openAvailable()
	case "s":
		wasSaved := a.ws.State().IsSaved()
		p, err := a.ws.Save()
		if err != nil {
			a.setError(err)
			break
		}
		if wasSaved {
			a.setStatus("updated " + p.Title)
		} else {
			a.setStatus("saved " + p.Title)
		}
	case "D":
		p, err := a.ws.Duplicate()
		if errors.Is(err, planner.ErrNotSaved) {
			a.setError(errors.New("save the planner before duplicating it"))
			break
		}
		if err != nil {
			a.setError(err)
			break
		}
		a.setStatus("duplicated as " + shortID(p.ID))
	case "n":
		if err := a.ws.New(); err != nil {
			a.setError(err)
			break
		}
		a.itemCursor = 0
		a.setStatus("new board")
	}
	return a, nil
}

func (a App) renderPlannerTab(cw int) string {
	t := theme.Active
	s := a.ws.Summary()
	st := a.ws.State()

	metrics := []components.Metric{
		{Label: "Total Spending", Value: money.Format(s.TotalSpending, a.cur), Note: cli.FormatCount(len(st.Spending), "item")},
		{Label: "Available To Spend", Value: money.Format(s.Available, a.cur), Note: "[v] to change"},
	}
	if s.IsAvailableDefined {
		metrics = append(metrics, components.Metric{
			Label: cli.BalanceLabel(s.IsOverspent),
			Value: money.Format(s.Remaining.Abs(), a.cur),
			Color: theme.BudgetColor(t, s.UsedFraction(), s.IsOverspent),
		})
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	if s.IsAvailableDefined {
		b.WriteString(" ")
		b.WriteString(components.BudgetBar(s.UsedFraction(), s.IsOverspent, cw-2))
		b.WriteString("\n")
	}

	b.WriteString(components.ContentCard("Spending", a.renderItemList(s, components.CardInnerWidth(cw)), cw, true))
	return b.String()
}

func (a App) renderItemList(s model.Summary, width int) string {
	t := theme.Active
	items := a.ws.State().Spending

	if len(items) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No spending yet. Press [a] to add one.")
	}

	amountW := 0
	for _, it := range items {
		amountW = max(amountW, lipgloss.Width(money.Format(it.Amount, a.cur)))
	}
	const shareW = 6
	labelW := max(width-amountW-shareW-10, 8)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	cursor := clamp(a.itemCursor, 0, len(items)-1)
	lines := make([]string, len(items))
	for i, it := range items {
		marker := "  "
		style := rowStyle
		if i == cursor {
			marker = "▸ "
			style = selStyle
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("██")
		label := style.Width(labelW).Render(cli.Truncate(it.Label, labelW))
		amount := numStyle.Render(fmt.Sprintf("%*s", amountW, money.Format(it.Amount, a.cur)))
		share := numStyle.Render(fmt.Sprintf("%*s", shareW, s.PercentShare(it.Amount).StringFixed(1)+"%"))
		lines[i] = marker + swatch + " " + label + " " + amount + " " + share
	}

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("[a]dd  [e]dit  [d]elete  [t]itle  [s]ave  [D]uplicate  [n]ew")
	return strings.Join(lines, "\n") + "\n\n" + hint
}
