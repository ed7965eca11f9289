package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/cli"
	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/tui/components"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

func (a App) updatePlannersKeys(key string) (tea.Model, tea.Cmd) {
	planners := a.ws.Planners()

	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "enter":
		if len(planners) == 0 {
			break
		}
		p, err := a.ws.Load(planners[clamp(a.plannerCursor, 0, len(planners)-1)].ID)
		if err != nil {
			a.setError(err)
			break
		}
		a.itemCursor = 0
		a.activeTab = components.TabPlanner
		a.setStatus("loaded " + p.Title)
	case "d", "delete":
		if len(planners) == 0 {
			break
		}
		p, err := a.ws.Delete(planners[clamp(a.plannerCursor, 0, len(planners)-1)].ID)
		if err != nil {
			a.setError(err)
			break
		}
		a.plannerCursor = clamp(a.plannerCursor, 0, len(planners)-2)
		a.setStatus("deleted " + p.Title)
	}
	return a, nil
}

func (a App) renderPlannersTab(cw int) string {
	t := theme.Active
	planners := a.ws.Planners()

	if len(planners) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("No saved planners. Press [s] on the Planner tab to save one.")
		return components.ContentCard("Planners", empty, cw, true)
	}

	inner := components.CardInnerWidth(cw)
	activeID := a.ws.State().ID

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	activeStyle := lipgloss.NewStyle().Foreground(t.Accent)

	titleW := max(inner-48, 12)
	cursor := clamp(a.plannerCursor, 0, len(planners)-1)

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("    %-*s %-8s %15s %15s", titleW, "Title", "ID", "Available", "Spent")))
	b.WriteString("\n")
	for i, p := range planners {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		dot := " "
		if p.ID == activeID {
			dot = activeStyle.Render("●")
		}
		style := rowStyle
		if i == cursor {
			style = selStyle
		}
		spent := model.TotalAmount(p.Spending)
		fmt.Fprintf(&b, "%s%s %s %s %s %s\n",
			marker, dot,
			style.Width(titleW).Render(cli.Truncate(p.Title, titleW)),
			mutedStyle.Render(fmt.Sprintf("%-8s", shortID(p.ID))),
			mutedStyle.Render(fmt.Sprintf("%15s", money.Format(p.AvailableToSpend, a.cur))),
			mutedStyle.Render(fmt.Sprintf("%15s", money.Format(spent, a.cur))))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("[enter] load  [d]elete"))

	return components.ContentCard(cli.FormatCount(len(planners), "planner"), b.String(), cw, true)
}
