package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/spendplan/internal/config"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
	"github.com/theirongolddev/spendplan/internal/tui/theme"
)

// SetupValues holds the answers of the first-run setup form.
type SetupValues struct {
	Currency     string
	Theme        string
	DefaultStore string
}

func setupValuesFrom(cfg config.Config) *SetupValues {
	kind, err := store.ParseKind(cfg.Storage.DefaultStore)
	if err != nil {
		kind = store.Local
	}
	return &SetupValues{
		Currency:     config.Currency(cfg).Code,
		Theme:        theme.ByName(cfg.Display.Theme).Name,
		DefaultStore: string(kind),
	}
}

// Apply copies the answers into cfg.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	cfg.Display.Currency = v.Currency
	cfg.Display.Theme = v.Theme
	cfg.Storage.DefaultStore = v.DefaultStore
	return cfg
}

// NewSetupForm builds the first-run setup form, prefilled from v.
func NewSetupForm(v *SetupValues) *huh.Form {
	currencies := make([]huh.Option[string], len(money.Currencies))
	for i, c := range money.Currencies {
		currencies[i] = huh.NewOption(c.Code+"  "+money.Format(123450, c), c.Code)
	}

	themes := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themes[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendplan").
				Description("Plan what you can spend.\nA few choices and you're ready; run `spendplan setup` anytime to change them."),
			huh.NewSelect[string]().
				Title("Display currency").
				Options(currencies...).
				Value(&v.Currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.Theme),
			huh.NewSelect[string]().
				Title("Where should planners be stored?").
				Options(
					huh.NewOption("On disk (kept between runs)", string(store.Local)),
					huh.NewOption("In memory (discarded on exit)", string(store.Session)),
				).
				Value(&v.DefaultStore),
		),
	)
}

// RunSetup runs the setup form standalone and returns the updated config.
func RunSetup(cfg config.Config) (config.Config, error) {
	v := setupValuesFrom(cfg)
	if err := NewSetupForm(v).Run(); err != nil {
		return cfg, err
	}
	return v.Apply(cfg), nil
}
