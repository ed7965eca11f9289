package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/tui/components"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

func (a App) renderChartTab(cw int) string {
	t := theme.Active
	s := a.ws.Summary()

	if len(s.Series) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing to chart yet. Add spending on the Planner tab.")
		return components.ContentCard("Chart", empty, cw, false)
	}

	slices := seriesSlices(s, a.cur)
	inner := components.CardInnerWidth(cw)

	bar := components.ShareBar(slices, int64(s.Denominator), inner)

	var b strings.Builder
	b.WriteString(bar + "\n" + bar) // two rows tall
	b.WriteString("\n\n")
	b.WriteString(components.Legend(slices, inner))

	share := components.ContentCard("Share of budget", b.String(), cw, false)
	bars := components.ContentCard("By amount", components.HorizontalBars(slices, inner), cw, false)

	return share + "\n" + bars
}
