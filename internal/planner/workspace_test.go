package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
)

func newWorkspace(t *testing.T) (*Workspace, *store.Storage) {
	t.Helper()
	storage := store.New(store.NewMemory(), nil)
	w, err := Open(storage, store.Local)
	require.NoError(t, err)
	w.SetClock(func() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) })
	return w, storage
}

func TestDefaultTitleUsesDayOfMonth(t *testing.T) {
	// 2024-03-09 is a Saturday.
	assert.Equal(t, "planner-2024-03-09", DefaultTitle(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)))
}

func TestWorkspace_SaveDraftCreatesPlanner(t *testing.T) {
	w, _ := newWorkspace(t)
	require.NoError(t, w.SetAvailable(2000))
	_, err := w.AddItem(model.ItemInput{Label: "Rent", Amount: 500})
	require.NoError(t, err)

	p, err := w.Save()
	require.NoError(t, err)
	assert.Equal(t, "planner-2024-03-09", p.Title)

	st := w.State()
	assert.True(t, st.IsSaved())
	assert.Equal(t, p.ID, st.ID)
	assert.Len(t, w.Planners(), 1)
}

func TestWorkspace_SaveSavedUpdatesSameRecord(t *testing.T) {
	w, _ := newWorkspace(t)
	require.NoError(t, w.SetTitle("June"))
	first, err := w.Save()
	require.NoError(t, err)

	require.NoError(t, w.SetAvailable(999))
	second, err := w.Save()
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	list := w.Planners()
	require.Len(t, list, 1)
	assert.Equal(t, money.Cents(999), list[0].AvailableToSpend)
	assert.Equal(t, "June", list[0].Title)
}

func TestWorkspace_Duplicate(t *testing.T) {
	w, _ := newWorkspace(t)

	_, err := w.Duplicate()
	assert.ErrorIs(t, err, ErrNotSaved)

	require.NoError(t, w.SetTitle("June"))
	orig, err := w.Save()
	require.NoError(t, err)

	dup, err := w.Duplicate()
	require.NoError(t, err)
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "June", dup.Title)
	assert.Equal(t, dup.ID, w.State().ID)
	assert.Len(t, w.Planners(), 2)
}

func TestWorkspace_LoadAndNew(t *testing.T) {
	w, storage := newWorkspace(t)
	require.NoError(t, w.SetTitle("June"))
	require.NoError(t, w.SetAvailable(1500))
	p, err := w.Save()
	require.NoError(t, err)

	require.NoError(t, w.New())
	assert.False(t, w.State().IsSaved())
	assert.Zero(t, w.State().AvailableToSpend)

	loaded, err := w.Load("June")
	require.NoError(t, err)
	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, money.Cents(1500), w.State().AvailableToSpend)

	reopened, err := Open(storage, store.Local)
	require.NoError(t, err)
	assert.Equal(t, p.ID, reopened.State().ID)

	_, err = w.Load("nope")
	assert.ErrorIs(t, err, ErrPlannerNotFound)
}

func TestWorkspace_DeleteActiveDetachesToDraft(t *testing.T) {
	w, _ := newWorkspace(t)
	require.NoError(t, w.SetTitle("June"))
	_, err := w.AddItem(model.ItemInput{Label: "Rent", Amount: 100})
	require.NoError(t, err)
	p, err := w.Save()
	require.NoError(t, err)

	deleted, err := w.Delete(p.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, p.ID, deleted.ID)
	assert.Empty(t, w.Planners())

	st := w.State()
	assert.False(t, st.IsSaved())
	assert.Equal(t, "June", st.Title)
	assert.Len(t, st.Spending, 1)
}

func TestWorkspace_SaveAfterExternalDeleteRecreates(t *testing.T) {
	w, _ := newWorkspace(t)
	p, err := w.Save()
	require.NoError(t, err)
	require.NoError(t, w.planners.Remove(p.ID))

	again, err := w.Save()
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, again.ID)
	assert.Len(t, w.Planners(), 1)
}

func TestWorkspace_ItemLifecycle(t *testing.T) {
	w, _ := newWorkspace(t)

	rent, err := w.AddItem(model.ItemInput{Label: "Rent", Color: "#FFDAB9", Amount: 1000})
	require.NoError(t, err)
	food, err := w.AddItem(model.ItemInput{Label: "Food", Amount: 300})
	require.NoError(t, err)

	amount := money.Cents(1200)
	edited, err := w.EditItem("1", model.ItemPatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, rent.ID, edited.ID)
	assert.Equal(t, money.Cents(1200), w.State().Spending[0].Amount)

	color := "#ABCDEF"
	_, err = w.EditItem("Food", model.ItemPatch{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, "#abcdef", w.State().Spending[1].Color)

	removed, err := w.RemoveItem(rent.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rent", removed.Label)
	require.Len(t, w.State().Spending, 1)
	assert.Equal(t, food.ID, w.State().Spending[0].ID)

	_, err = w.RemoveItem("Rent")
	assert.ErrorIs(t, err, ErrItemNotFound)

	neg := money.Cents(-5)
	_, err = w.EditItem("Food", model.ItemPatch{Amount: &neg})
	assert.ErrorIs(t, err, model.ErrNegativeAmount)

	_, err = w.AddItem(model.ItemInput{Label: "bad", Color: "blue"})
	assert.ErrorIs(t, err, model.ErrInvalidColor)

	assert.ErrorIs(t, w.SetAvailable(-1), model.ErrNegativeAmount)
}

func TestWorkspace_RejectsOversizedAmounts(t *testing.T) {
	w, _ := newWorkspace(t)
	huge := money.MaxCents + 1

	assert.ErrorIs(t, w.SetAvailable(huge), model.ErrAmountTooLarge)
	require.NoError(t, w.SetAvailable(money.MaxCents))

	_, err := w.AddItem(model.ItemInput{Label: "Yacht", Amount: huge})
	assert.ErrorIs(t, err, model.ErrAmountTooLarge)

	_, err = w.AddItem(model.ItemInput{Label: "Rent", Amount: 500})
	require.NoError(t, err)
	_, err = w.EditItem("Rent", model.ItemPatch{Amount: &huge})
	assert.ErrorIs(t, err, model.ErrAmountTooLarge)

	assert.Equal(t, money.MaxCents, w.State().AvailableToSpend)
	assert.Equal(t, money.Cents(500), w.State().Spending[0].Amount)
}

func TestWorkspace_Summary(t *testing.T) {
	w, _ := newWorkspace(t)
	require.NoError(t, w.SetAvailable(2000))
	_, err := w.AddItem(model.ItemInput{Label: "Rent", Amount: 500})
	require.NoError(t, err)
	_, err = w.AddItem(model.ItemInput{Label: "Food", Amount: 300})
	require.NoError(t, err)

	s := w.Summary()
	assert.Equal(t, money.Cents(1200), s.Remaining)
	assert.Equal(t, "25.0", s.PercentShare(500).StringFixed(1))
	assert.Len(t, s.Series, 3)
}
