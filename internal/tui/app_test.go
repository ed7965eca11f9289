package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/spendplan/internal/config"
	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/planner"
	"github.com/theirongolddev/spendplan/internal/store"
	"github.com/theirongolddev/spendplan/internal/tui/components"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestApp(t *testing.T) (App, *[]config.Config) {
	t.Helper()
	t.Cleanup(func() { theme.SetActive("flexoki-dark") })

	ws, err := planner.Open(store.NewSessionOnly(), store.Local)
	if err != nil {
		t.Fatalf("opening workspace: %v", err)
	}
	if err := ws.SetAvailable(2000); err != nil {
		t.Fatal(err)
	}
	for _, in := range []model.ItemInput{
		{Label: "Rent", Color: "#ffdab9", Amount: 500},
		{Label: "Food", Color: "#b0e57c", Amount: 300},
	} {
		if _, err := ws.AddItem(in); err != nil {
			t.Fatal(err)
		}
	}

	var saved []config.Config
	a := NewApp(ws, config.DefaultConfig(), false)
	a.saveConfig = func(c config.Config) error {
		saved = append(saved, c)
		return nil
	}
	a = send(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	return a, &saved
}

func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		a = send(t, a, msg)
	}
	return a
}

func TestTabNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		key  string
		want int
	}{
		{"c", components.TabChart},
		{"l", components.TabPlanners},
		{"x", components.TabSettings},
		{"p", components.TabPlanner},
		{"3", components.TabPlanners},
		{"right", components.TabSettings},
		{"right", components.TabPlanner},
	}
	for _, tt := range tests {
		a = press(t, a, tt.key)
		if a.activeTab != tt.want {
			t.Fatalf("after %q activeTab = %d, want %d", tt.key, a.activeTab, tt.want)
		}
	}
}

func TestMouseClickSelectsTab(t *testing.T) {
	a, _ := newTestApp(t)

	x := 0
	for i := 0; i < components.TabChart; i++ {
		x += components.TabVisualWidth(components.Tabs[i], i == a.activeTab) + 1
	}
	a = send(t, a, tea.MouseMsg{X: x + 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if a.activeTab != components.TabChart {
		t.Errorf("activeTab = %d, want chart", a.activeTab)
	}
}

func TestDeleteItem(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, "down", "d")
	items := a.ws.State().Spending
	if len(items) != 1 || items[0].Label != "Rent" {
		t.Fatalf("items after delete = %+v", items)
	}
	if a.itemCursor != 0 {
		t.Errorf("cursor = %d, want 0", a.itemCursor)
	}
	if !strings.Contains(a.status, "Food") {
		t.Errorf("status = %q", a.status)
	}
}

func TestSaveLoadAndDeletePlanner(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, "s")
	if !a.ws.State().IsSaved() {
		t.Fatal("board should be saved after [s]")
	}
	id := a.ws.State().ID

	a = press(t, a, "n")
	if a.ws.State().IsSaved() || len(a.ws.State().Spending) != 0 {
		t.Fatal("[n] should reset the board")
	}

	a = press(t, a, "l", "enter")
	if a.ws.State().ID != id {
		t.Fatalf("loaded %q, want %q", a.ws.State().ID, id)
	}
	if a.activeTab != components.TabPlanner {
		t.Errorf("loading should jump to the planner tab")
	}

	a = press(t, a, "l", "d")
	if len(a.ws.Planners()) != 0 {
		t.Fatal("planner should be deleted")
	}
	if a.ws.State().IsSaved() {
		t.Error("deleting the active planner should detach the board")
	}
}

func TestDuplicateDraftShowsError(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, "D")
	if !a.statusErr {
		t.Fatalf("expected an error status, got %q", a.status)
	}
	if len(a.ws.Planners()) != 0 {
		t.Error("duplicate of a draft must not create a planner")
	}
}

func TestFormOpenAndCancel(t *testing.T) {
	a, _ := newTestApp(t)

	a = press(t, a, "a")
	if a.form == nil || a.formKind != formAddItem {
		t.Fatal("[a] should open the add form")
	}
	if !strings.Contains(a.View(), "Add spending") {
		t.Error("form view missing title")
	}

	a = press(t, a, "esc")
	if a.form != nil {
		t.Fatal("esc should close the form")
	}
	if len(a.ws.State().Spending) != 2 {
		t.Error("cancelled form must not change the board")
	}
}

func TestApplyForms(t *testing.T) {
	a, _ := newTestApp(t)

	a.formKind = formAddItem
	a.formVals = &formValues{label: "Bus", color: "#87ceeb", amount: "R$ 12,34"}
	if err := a.applyForm(); err != nil {
		t.Fatalf("add: %v", err)
	}
	items := a.ws.State().Spending
	if got := items[len(items)-1]; got.Label != "Bus" || got.Amount != money.Cents(1234) {
		t.Errorf("added item = %+v", got)
	}
	if a.itemCursor != 2 {
		t.Errorf("cursor should follow the new item, got %d", a.itemCursor)
	}

	a.formKind = formEditItem
	a.formVals = &formValues{itemID: items[0].ID, label: "Rent", color: "#ffdab9", amount: "5"}
	if err := a.applyForm(); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := a.ws.State().Spending[0].Amount; got != 5 {
		t.Errorf("edited amount = %d, want 5", got)
	}

	a.formKind = formAvailable
	a.formVals = &formValues{amount: "100000"}
	if err := a.applyForm(); err != nil {
		t.Fatalf("available: %v", err)
	}
	if got := a.ws.State().AvailableToSpend; got != 100000 {
		t.Errorf("available = %d", got)
	}

	a.formKind = formTitle
	a.formVals = &formValues{title: "  June  "}
	if err := a.applyForm(); err != nil {
		t.Fatalf("title: %v", err)
	}
	if got := a.ws.State().Title; got != "June" {
		t.Errorf("title = %q", got)
	}
}

func TestSettingsCycleSavesConfig(t *testing.T) {
	a, saved := newTestApp(t)

	a = press(t, a, "x", "enter")
	if len(*saved) != 1 {
		t.Fatalf("config saved %d times, want 1", len(*saved))
	}
	if got := (*saved)[0].Display.Theme; got != "catppuccin-mocha" {
		t.Errorf("theme = %q", got)
	}
	if theme.Active.Name != "catppuccin-mocha" {
		t.Errorf("active theme = %q", theme.Active.Name)
	}

	a = press(t, a, "down", "enter")
	if a.cur != money.USD {
		t.Errorf("currency = %s, want USD", a.cur.Code)
	}
}

func TestSettingsSaveFailureKeepsConfig(t *testing.T) {
	a, _ := newTestApp(t)
	a.saveConfig = func(config.Config) error { return errors.New("read-only") }

	a = press(t, a, "x", "enter")
	if !a.statusErr {
		t.Error("expected error status")
	}
	if a.cfg.Display.Theme != "flexoki-dark" {
		t.Errorf("theme changed to %q despite failed save", a.cfg.Display.Theme)
	}
}

func TestViewRendersTabs(t *testing.T) {
	a, _ := newTestApp(t)

	for _, tc := range []struct {
		key  string
		want []string
	}{
		{"p", []string{"Total Spending", "Rent", "R$ 5,00", "25.0%"}},
		{"c", []string{"Share of budget", "Leftover", "60.0%"}},
		{"l", []string{"No saved planners"}},
		{"x", []string{"Theme", "Currency", "flexoki-dark"}},
	} {
		a = press(t, a, tc.key)
		view := a.View()
		for _, want := range tc.want {
			if !strings.Contains(view, want) {
				t.Errorf("tab %q view missing %q", tc.key, want)
			}
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("expected narrow-terminal message")
	}
}

func TestNextOption(t *testing.T) {
	opts := []string{"a", "b", "c"}
	if got := nextOption(opts, "c"); got != "a" {
		t.Errorf("nextOption wraps to %q", got)
	}
	if got := nextOption(opts, "zzz"); got != "a" {
		t.Errorf("unknown value -> %q, want first", got)
	}
}

func TestValidateAmount(t *testing.T) {
	if err := validateAmount(strings.Repeat("9", money.MaxDigits)); err != nil {
		t.Errorf("%d digits rejected: %v", money.MaxDigits, err)
	}
	if err := validateAmount("R$ 9.999.999.999.999,99"); err != nil {
		t.Errorf("formatted max amount rejected: %v", err)
	}
	if validateAmount(strings.Repeat("9", money.MaxDigits+1)) == nil {
		t.Error("expected an error past the digit limit")
	}
	if n := len(money.MaxCents.Decimal()); n > amountCharLimit {
		t.Errorf("edit prefill of %d chars exceeds the input limit %d", n, amountCharLimit)
	}
}
