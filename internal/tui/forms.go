package tui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/tui/components"
)

type formKind int

const (
	formNone formKind = iota
	formAddItem
	formEditItem
	formTitle
	formAvailable
)

func (k formKind) title() string {
	switch k {
	case formAddItem:
		return "Add spending"
	case formEditItem:
		return "Edit spending"
	case formTitle:
		return "Planner title"
	case formAvailable:
		return "Available to spend"
	default:
		return ""
	}
}

// formValues backs the fields of the active form. It lives on the heap so
// the bindings survive App copies.
type formValues struct {
	itemID string
	label  string
	color  string
	amount string
	title  string
}

// amountCharLimit leaves room for a decimal point and a few separators
// around the digits Mask keeps.
const amountCharLimit = money.MaxDigits + 4

// validateAmount rejects input with more digits than Mask keeps, so the
// preview never silently stops following the keystrokes.
func validateAmount(s string) error {
	if money.CountDigits(s) > money.MaxDigits {
		return fmt.Errorf("at most %d digits", money.MaxDigits)
	}
	return nil
}

// AmountInput is a currency field whose description shows the masked
// value on every keystroke.
func AmountInput(title string, value *string, cur money.Currency) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("type digits, the last two are cents").
		CharLimit(amountCharLimit).
		Validate(validateAmount).
		Value(value).
		DescriptionFunc(func() string {
			return money.Format(money.Mask(*value), cur)
		}, value)
}

func colorOptions(current string) []huh.Option[string] {
	colors := model.Palette
	if current != "" && !slices.Contains(colors, current) {
		colors = append([]string{current}, colors...)
	}
	opts := make([]huh.Option[string], len(colors))
	for i, c := range colors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██")
		opts[i] = huh.NewOption(swatch+" "+c, c)
	}
	return opts
}

func requireLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("label is required")
	}
	return nil
}

func newItemForm(v *formValues, cur money.Currency) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				CharLimit(64).
				Value(&v.label).
				Validate(requireLabel),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions(v.color)...).
				Height(8).
				Value(&v.color),
			AmountInput("Amount", &v.amount, cur),
		),
	).WithShowHelp(false)
}

func newTitleForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("planner-YYYY-MM-DD when left empty").
				CharLimit(80).
				Value(&v.title),
		),
	).WithShowHelp(false)
}

func newAvailableForm(v *formValues, cur money.Currency) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(AmountInput("Available to spend", &v.amount, cur)),
	).WithShowHelp(false)
}

func (a App) formWidth() int {
	return max(min(a.contentWidth()-8, 72), 30)
}

func (a App) openForm(kind formKind, v *formValues, form *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.formVals = v
	a.form = form.WithWidth(a.formWidth())
	a.status = ""
	return a, a.form.Init()
}

func (a App) openAddItem() (tea.Model, tea.Cmd) {
	v := &formValues{color: model.RandomColor(nil)}
	return a.openForm(formAddItem, v, newItemForm(v, a.cur))
}

func (a App) openEditItem(it model.SpendingItem) (tea.Model, tea.Cmd) {
	v := &formValues{
		itemID: it.ID,
		label:  it.Label,
		color:  it.Color,
		amount: it.Amount.Decimal(),
	}
	return a.openForm(formEditItem, v, newItemForm(v, a.cur))
}

func (a App) openTitle() (tea.Model, tea.Cmd) {
	v := &formValues{title: a.ws.State().Title}
	return a.openForm(formTitle, v, newTitleForm(v))
}

func (a App) openAvailable() (tea.Model, tea.Cmd) {
	v := &formValues{}
	if amt := a.ws.State().AvailableToSpend; amt > 0 {
		v.amount = amt.Decimal()
	}
	return a.openForm(formAvailable, v, newAvailableForm(v, a.cur))
}

func (a App) closeForm() App {
	a.form = nil
	a.formKind = formNone
	a.formVals = nil
	return a
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		return a.closeForm(), nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		if err := a.applyForm(); err != nil {
			a.setError(err)
		}
		return a.closeForm(), nil
	case huh.StateAborted:
		return a.closeForm(), nil
	}
	return a, cmd
}

// applyForm commits the submitted form values to the workspace.
func (a *App) applyForm() error {
	v := a.formVals
	switch a.formKind {
	case formAddItem:
		it, err := a.ws.AddItem(model.ItemInput{Label: v.label, Color: v.color, Amount: money.Mask(v.amount)})
		if err != nil {
			return err
		}
		a.itemCursor = len(a.ws.State().Spending) - 1
		a.setStatus(fmt.Sprintf("added %s", it.Label))
	case formEditItem:
		in := model.ItemInput{Label: v.label, Color: v.color, Amount: money.Mask(v.amount)}
		it, err := a.ws.EditItem(v.itemID, model.PatchFrom(in))
		if err != nil {
			return err
		}
		a.setStatus(fmt.Sprintf("updated %s", it.Label))
	case formTitle:
		if err := a.ws.SetTitle(v.title); err != nil {
			return err
		}
		a.setStatus("title updated")
	case formAvailable:
		if err := a.ws.SetAvailable(money.Mask(v.amount)); err != nil {
			return err
		}
		a.setStatus("available amount updated")
	}
	return nil
}

func (a App) renderForm(cw int) string {
	body := a.form.View()
	card := components.ContentCard(a.formKind.title(), body, min(cw, a.formWidth()+6), true)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, card)
}
