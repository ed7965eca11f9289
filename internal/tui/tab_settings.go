package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/spendplan/internal/config"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
	"github.com/theirongolddev/spendplan/internal/tui/components"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldCurrency
	settingsFieldStore
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor int
}

var logLevels = []string{"debug", "info", "warn", "error"}

func currencyCodes() []string {
	codes := make([]string, len(money.Currencies))
	for i, c := range money.Currencies {
		codes[i] = c.Code
	}
	return codes
}

// nextOption returns the option after current, wrapping around. An unknown
// current value yields the first option.
func nextOption(options []string, current string) string {
	i := slices.Index(options, current)
	return options[(i+1)%len(options)]
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "enter", " ":
		a.settingsCycle()
	}
	return a, nil
}

// settingsCycle advances the selected setting to its next value and saves.
func (a *App) settingsCycle() {
	cfg := a.cfg

	switch a.settings.cursor {
	case settingsFieldTheme:
		cfg.Display.Theme = nextOption(theme.Names(), cfg.Display.Theme)
	case settingsFieldCurrency:
		cfg.Display.Currency = nextOption(currencyCodes(), strings.ToUpper(cfg.Display.Currency))
	case settingsFieldStore:
		cfg.Storage.DefaultStore = nextOption([]string{string(store.Local), string(store.Session)}, cfg.Storage.DefaultStore)
	case settingsFieldLogLevel:
		cfg.Log.Level = nextOption(logLevels, cfg.Log.Level)
	}

	if err := a.saveConfig(cfg); err != nil {
		a.setError(fmt.Errorf("saving config: %w", err))
		return
	}

	a.cfg = cfg
	a.cur = config.Currency(cfg)
	theme.SetActive(cfg.Display.Theme)
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}
	a.setStatus("settings saved")
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Width(18)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	fields := []struct {
		label, value, note string
	}{
		{"Theme", a.cfg.Display.Theme, strings.Join(theme.Names(), ", ")},
		{"Currency", config.Currency(a.cfg).Code, strings.Join(currencyCodes(), ", ")},
		{"Default store", a.cfg.Storage.DefaultStore, "applies on next launch"},
		{"Log level", a.cfg.Log.Level, strings.Join(logLevels, ", ")},
	}

	var b strings.Builder
	for i, f := range fields {
		marker := "  "
		vs := valueStyle
		if i == a.settings.cursor {
			marker = selStyle.Render("▸ ")
			vs = selStyle
		}
		fmt.Fprintf(&b, "%s%s%s  %s\n", marker, labelStyle.Render(f.label), vs.Render(f.value), noteStyle.Render(f.note))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s%s\n", labelStyle.Render("Config file"), noteStyle.Render(config.ConfigPath()))
	fmt.Fprintf(&b, "  %s%s\n", labelStyle.Render("Database"), noteStyle.Render(config.DBPath(a.cfg)))
	b.WriteString("\n")
	b.WriteString(noteStyle.Render("[enter] change value"))

	return components.ContentCard("Settings", b.String(), cw, true)
}
