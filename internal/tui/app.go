// Package tui provides the interactive Bubble Tea board for spendplan.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/spendplan/internal/config"
	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/planner"
	"github.com/theirongolddev/spendplan/internal/tui/components"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	ws  *planner.Workspace
	cfg config.Config
	cur money.Currency

	// saveConfig persists settings changes; replaced in tests.
	saveConfig func(config.Config) error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	itemCursor    int
	plannerCursor int
	settings      settingsState

	// Active edit form (huh)
	form     *huh.Form
	formKind formKind
	formVals *formValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	status    string
	statusErr bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model over ws.
func NewApp(ws *planner.Workspace, cfg config.Config, needSetup bool) App {
	a := App{
		ws:         ws,
		cfg:        cfg,
		cur:        config.Currency(cfg),
		saveConfig: config.Save,
		needSetup:  needSetup,
	}
	if needSetup {
		a.setupVals = setupValuesFrom(cfg)
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = ws.Width
		a.height = ws.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(ws.Width).WithHeight(ws.Height)
		}
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		return a, nil
	}

	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "?":
			a.showHelp = true
			return a, nil
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "1", "2", "3", "4":
			a.activeTab = int(key[0] - '1')
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case components.TabPlanner:
			return a.updatePlannerKeys(key)
		case components.TabPlanners:
			return a.updatePlannersKeys(key)
		case components.TabSettings:
			return a.updateSettingsKeys(key)
		}
	}

	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if msg.Y == 0 {
			if idx := components.TabAtX(msg.X, a.activeTab); idx >= 0 {
				a.activeTab = idx
			}
		}
	case msg.Button == tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		a.moveCursor(1)
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case components.TabPlanner:
		a.itemCursor = clamp(a.itemCursor+delta, 0, len(a.ws.State().Spending)-1)
	case components.TabPlanners:
		a.plannerCursor = clamp(a.plannerCursor+delta, 0, len(a.ws.Planners())-1)
	case components.TabSettings:
		a.settings.cursor = clamp(a.settings.cursor+delta, 0, settingsFieldCount-1)
	}
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.cfg = a.setupVals.Apply(a.cfg)
		a.cur = config.Currency(a.cfg)
		theme.SetActive(a.cfg.Display.Theme)
		if err := a.saveConfig(a.cfg); err != nil {
			a.setError(fmt.Errorf("saving config: %w", err))
		} else {
			a.setStatus("settings saved")
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	log.WithError(err).Warn("tui action failed")
	a.status = err.Error()
	a.statusErr = true
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spendplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Info).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	sections := []struct {
		name     string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"p c l x", "Jump to tab"},
			{"1-4", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"j k", "Move in lists"},
		}},
		{"Planner", [][2]string{
			{"a", "Add spending item"},
			{"e enter", "Edit item"},
			{"d", "Delete item"},
			{"t", "Set title"},
			{"v", "Set available to spend"},
			{"s", "Save / Update planner"},
			{"D", "Duplicate planner"},
			{"n", "New board"},
		}},
		{"Planners", [][2]string{
			{"enter", "Load planner"},
			{"d", "Delete planner"},
		}},
		{"General", [][2]string{
			{"esc", "Cancel form"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.name))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderBoardLine(w)

	hints := "[?]help  [q]uit"
	if a.form != nil {
		hints = "[esc]cancel  [enter]next"
	}
	statusBar := components.RenderStatusBar(w, hints, a.status, a.statusErr)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch {
	case a.form != nil:
		content = a.renderForm(cw)
	case a.activeTab == components.TabPlanner:
		content = a.renderPlannerTab(cw)
	case a.activeTab == components.TabChart:
		content = a.renderChartTab(cw)
	case a.activeTab == components.TabPlanners:
		content = a.renderPlannersTab(cw)
	case a.activeTab == components.TabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.PlaceHorizontal(w, lipgloss.Center, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// renderBoardLine shows the board title and whether it is saved.
func (a App) renderBoardLine(w int) string {
	t := theme.Active
	st := a.ws.State()

	title := st.Title
	if title == "" {
		title = "Untitled planner"
	}
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	pill := lipgloss.NewStyle().Foreground(t.TextDim).Render(" draft")
	if st.IsSaved() {
		pill = lipgloss.NewStyle().Foreground(t.Accent).Render(" saved · " + shortID(st.ID))
	}

	return lipgloss.NewStyle().Width(w).Render(" " + titleStyle.Render(title) + pill)
}

// seriesSlices converts chart series into chart slices.
func seriesSlices(s model.Summary, cur money.Currency) []components.Slice {
	out := make([]components.Slice, len(s.Series))
	for i, it := range s.Series {
		out[i] = components.Slice{
			Label:  it.Label,
			Color:  it.Color,
			Value:  int64(it.Amount),
			Amount: money.Format(it.Amount, cur),
			Share:  s.PercentShare(it.Amount).StringFixed(1) + "%",
		}
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
