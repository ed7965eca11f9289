package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
)

func newCollection(t *testing.T, backend store.Backend) (*Collection, *store.Storage) {
	t.Helper()
	storage := store.New(backend, nil)
	c, err := LoadCollection(storage, store.Local)
	require.NoError(t, err)
	return c, storage
}

func TestCollection_AddPersistsFreshIDs(t *testing.T) {
	c, storage := newCollection(t, store.NewMemory())

	a, err := c.Add(model.Fields{Title: "A", AvailableToSpend: 100})
	require.NoError(t, err)
	b, err := c.Add(model.Fields{Title: "B"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	reloaded, err := LoadCollection(storage, store.Local)
	require.NoError(t, err)
	list := reloaded.List()
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0])
	assert.Equal(t, b, list[1])
}

func TestCollection_UpdateMerges(t *testing.T) {
	c, _ := newCollection(t, store.NewMemory())
	p, err := c.Add(model.Fields{Title: "A", AvailableToSpend: 100, Spending: []model.SpendingItem{spent("x", "Rent", 10)}})
	require.NoError(t, err)

	title := "Renamed"
	require.NoError(t, c.Update(p.ID, PlannerPatch{Title: &title}))

	got, ok := c.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, money.Cents(100), got.AvailableToSpend)
	assert.Len(t, got.Spending, 1)
}

func TestCollection_UnknownIDsAreNoOps(t *testing.T) {
	backend := newFlaky()
	c, _ := newCollection(t, backend)
	title := "x"

	assert.NoError(t, c.Update("missing", PlannerPatch{Title: &title}))
	assert.NoError(t, c.Remove("missing"))
	assert.Zero(t, backend.writes)
}

func TestCollection_RemoveKeepsOrder(t *testing.T) {
	c, _ := newCollection(t, store.NewMemory())
	a, _ := c.Add(model.Fields{Title: "A"})
	b, _ := c.Add(model.Fields{Title: "B"})
	cc, _ := c.Add(model.Fields{Title: "C"})

	require.NoError(t, c.Remove(b.ID))
	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, cc.ID, list[1].ID)
}

func TestCollection_RollsBackOnWriteFailure(t *testing.T) {
	backend := newFlaky()
	c, _ := newCollection(t, backend)
	p, err := c.Add(model.Fields{Title: "A"})
	require.NoError(t, err)

	backend.fail = true
	_, err = c.Add(model.Fields{Title: "B"})
	assert.ErrorIs(t, err, errDiskFull)
	title := "changed"
	assert.ErrorIs(t, c.Update(p.ID, PlannerPatch{Title: &title}), errDiskFull)
	assert.ErrorIs(t, c.Remove(p.ID), errDiskFull)

	list := c.List()
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Title)
}

func TestCollection_CorruptDataIsAnError(t *testing.T) {
	mem := store.NewMemory()
	require.NoError(t, mem.Set(store.FullKey(PlannersKey), "[{"))

	_, err := LoadCollection(store.New(mem, nil), store.Local)
	assert.ErrorIs(t, err, store.ErrUnparsable)
}

func TestCollection_Find(t *testing.T) {
	c, _ := newCollection(t, store.NewMemory())
	c.planners = []model.Planner{
		{ID: "abc-1", Title: "June"},
		{ID: "abd-2", Title: "July"},
		{ID: "xyz-3", Title: "June"},
	}

	p, err := c.Find("abc-1")
	require.NoError(t, err)
	assert.Equal(t, "June", p.Title)

	p, err = c.Find("xy")
	require.NoError(t, err)
	assert.Equal(t, "xyz-3", p.ID)

	p, err = c.Find("July")
	require.NoError(t, err)
	assert.Equal(t, "abd-2", p.ID)

	_, err = c.Find("ab")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = c.Find("June")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = c.Find("nope")
	assert.ErrorIs(t, err, ErrPlannerNotFound)
}
