package planner

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
)

// Workspace is the active board plus the saved planners, with the
// operations the CLI and TUI expose.
type Workspace struct {
	board    *Store
	planners *Collection
	now      func() time.Time
}

// Open loads the board and the collection from storage.
func Open(storage *store.Storage, kind store.Kind) (*Workspace, error) {
	planners, err := LoadCollection(storage, kind)
	if err != nil {
		return nil, err
	}
	return &Workspace{
		board:    NewStore(storage, DataKey, model.DefaultState(), WithKind(kind)),
		planners: planners,
		now:      time.Now,
	}, nil
}

// SetClock overrides the time source used for default titles.
func (w *Workspace) SetClock(now func() time.Time) {
	w.now = now
}

// State returns the active board.
func (w *Workspace) State() model.State {
	return w.board.State()
}

// Summary derives the budget figures of the active board.
func (w *Workspace) Summary() model.Summary {
	return model.Summarize(w.board.State().Fields)
}

// Planners returns every saved planner.
func (w *Workspace) Planners() []model.Planner {
	return w.planners.List()
}

// Dispatch forwards an intent to the board.
func (w *Workspace) Dispatch(in Intent) error {
	return w.board.Dispatch(in)
}

// DefaultTitle is the title given to a planner saved without one.
func DefaultTitle(t time.Time) string {
	return "planner-" + t.Format("2006-01-02")
}

// Save writes the board to the collection: a saved board updates its
// record, a draft becomes a new planner and the board is bound to it.
func (w *Workspace) Save() (model.Planner, error) {
	st := w.board.State()
	if st.IsSaved() {
		if _, ok := w.planners.Get(st.ID); ok {
			if err := w.planners.Update(st.ID, PatchAll(st.Fields)); err != nil {
				return model.Planner{}, err
			}
			p, _ := w.planners.Get(st.ID)
			return p, nil
		}
	}
	return w.create(st.Fields)
}

// Duplicate saves a copy of the current saved planner under a new id and
// switches the board to the copy.
func (w *Workspace) Duplicate() (model.Planner, error) {
	st := w.board.State()
	if !st.IsSaved() {
		return model.Planner{}, ErrNotSaved
	}
	return w.create(st.Fields)
}

func (w *Workspace) create(f model.Fields) (model.Planner, error) {
	if strings.TrimSpace(f.Title) == "" {
		f.Title = DefaultTitle(w.now())
	}
	p, err := w.planners.Add(f)
	if err != nil {
		return model.Planner{}, err
	}
	if err := w.board.Dispatch(Replace{State: p.State()}); err != nil {
		return p, fmt.Errorf("activating saved planner: %w", err)
	}
	return p, nil
}

// Load makes the planner matching ref the active board.
func (w *Workspace) Load(ref string) (model.Planner, error) {
	p, err := w.planners.Find(ref)
	if err != nil {
		return model.Planner{}, err
	}
	if err := w.board.Dispatch(Replace{State: p.State()}); err != nil {
		return model.Planner{}, err
	}
	return p, nil
}

// New resets the board to an empty draft.
func (w *Workspace) New() error {
	return w.board.Dispatch(Reset{})
}

// Delete removes the planner matching ref. When it is the active board, the
// board keeps its content as an unsaved draft.
func (w *Workspace) Delete(ref string) (model.Planner, error) {
	p, err := w.planners.Find(ref)
	if err != nil {
		return model.Planner{}, err
	}
	if err := w.planners.Remove(p.ID); err != nil {
		return model.Planner{}, err
	}
	if st := w.board.State(); st.IsSaved() && st.ID == p.ID {
		if err := w.board.Dispatch(Replace{State: model.Draft(st.Fields)}); err != nil {
			return p, fmt.Errorf("detaching deleted planner: %w", err)
		}
	}
	return p, nil
}

// SetTitle renames the board.
func (w *Workspace) SetTitle(title string) error {
	return w.board.Dispatch(UpdateTitle{Title: strings.TrimSpace(title)})
}

// SetAvailable sets the available-to-spend amount.
func (w *Workspace) SetAvailable(amount money.Cents) error {
	if err := model.CheckAmount(amount); err != nil {
		return err
	}
	return w.board.Dispatch(UpdateAvailable{Amount: amount})
}

// AddItem appends a new spending item to the board.
func (w *Workspace) AddItem(in model.ItemInput) (model.SpendingItem, error) {
	if err := in.Validate(); err != nil {
		return model.SpendingItem{}, err
	}
	item := model.NewSpendingItem(in)
	if err := w.board.Dispatch(AddSpending{Item: item}); err != nil {
		return model.SpendingItem{}, err
	}
	return item, nil
}

// EditItem merges patch into the item matching ref.
func (w *Workspace) EditItem(ref string, patch model.ItemPatch) (model.SpendingItem, error) {
	item, err := w.FindItem(ref)
	if err != nil {
		return model.SpendingItem{}, err
	}
	in := model.ItemInput{}
	if patch.Amount != nil {
		in.Amount = *patch.Amount
	}
	if patch.Color != nil {
		in.Color = *patch.Color
	}
	if err := in.Validate(); err != nil {
		return model.SpendingItem{}, err
	}
	if patch.Color != nil {
		c := strings.ToLower(*patch.Color)
		patch.Color = &c
	}
	if err := w.board.Dispatch(UpdateSpending{ID: item.ID, Patch: patch}); err != nil {
		return model.SpendingItem{}, err
	}
	return item.Apply(patch), nil
}

// RemoveItem deletes the item matching ref from the board.
func (w *Workspace) RemoveItem(ref string) (model.SpendingItem, error) {
	item, err := w.FindItem(ref)
	if err != nil {
		return model.SpendingItem{}, err
	}
	if err := w.board.Dispatch(RemoveSpending{ID: item.ID}); err != nil {
		return model.SpendingItem{}, err
	}
	return item, nil
}

// FindItem resolves ref against the board's items as an exact id, a unique
// id prefix, a 1-based position or an exact label.
func (w *Workspace) FindItem(ref string) (model.SpendingItem, error) {
	ref = strings.TrimSpace(ref)
	items := w.board.State().Spending
	if ref == "" {
		return model.SpendingItem{}, ErrItemNotFound
	}

	for _, it := range items {
		if it.ID == ref {
			return it, nil
		}
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}

	var matches []model.SpendingItem
	for _, it := range items {
		if strings.HasPrefix(it.ID, ref) {
			matches = append(matches, it)
		}
	}
	if len(matches) == 0 {
		for _, it := range items {
			if it.Label == ref {
				matches = append(matches, it)
			}
		}
	}

	switch len(matches) {
	case 0:
		return model.SpendingItem{}, fmt.Errorf("%w: %q", ErrItemNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return model.SpendingItem{}, fmt.Errorf("%w: %q matches %d items", ErrAmbiguous, ref, len(matches))
	}
}
