package planner

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
	"github.com/theirongolddev/spendplan/internal/store"
)

// PlannersKey is where the saved planners are persisted.
const PlannersKey = "planners"

// PlannerPatch holds the planner fields to overwrite. Nil fields are kept.
type PlannerPatch struct {
	Title            *string
	AvailableToSpend *money.Cents
	Spending         []model.SpendingItem
}

// PatchAll builds a patch that overwrites every field with f.
func PatchAll(f model.Fields) PlannerPatch {
	f = f.Clone()
	return PlannerPatch{Title: &f.Title, AvailableToSpend: &f.AvailableToSpend, Spending: f.Spending}
}

func (p PlannerPatch) apply(pl model.Planner) model.Planner {
	if p.Title != nil {
		pl.Title = *p.Title
	}
	if p.AvailableToSpend != nil {
		pl.AvailableToSpend = *p.AvailableToSpend
	}
	if p.Spending != nil {
		pl.Spending = slices.Clone(p.Spending)
	}
	return pl
}

// Collection is the list of saved planners, mirrored in memory and rewritten
// in full on every change. It is not safe for concurrent use.
type Collection struct {
	storage  *store.Storage
	kind     store.Kind
	planners []model.Planner
}

// LoadCollection reads the saved planners. A missing key is an empty
// collection; a corrupt one is an error so it is never silently overwritten.
func LoadCollection(storage *store.Storage, kind store.Kind) (*Collection, error) {
	c := &Collection{storage: storage, kind: kind}
	var planners []model.Planner
	if _, err := storage.Get(PlannersKey, &planners, kind); err != nil {
		return nil, fmt.Errorf("loading planners: %w", err)
	}
	if planners == nil {
		planners = []model.Planner{}
	}
	c.planners = planners
	return c, nil
}

// List returns a copy of every saved planner in insertion order.
func (c *Collection) List() []model.Planner {
	out := make([]model.Planner, len(c.planners))
	for i, p := range c.planners {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of saved planners.
func (c *Collection) Len() int {
	return len(c.planners)
}

// Get returns the planner with id.
func (c *Collection) Get(id string) (model.Planner, bool) {
	i := c.index(id)
	if i < 0 {
		return model.Planner{}, false
	}
	return c.planners[i].Clone(), true
}

// Find resolves ref as an exact id, then a unique id prefix, then an exact
// title.
func (c *Collection) Find(ref string) (model.Planner, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Planner{}, ErrPlannerNotFound
	}
	if p, ok := c.Get(ref); ok {
		return p, nil
	}

	var matches []model.Planner
	for _, p := range c.planners {
		if strings.HasPrefix(p.ID, ref) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		for _, p := range c.planners {
			if p.Title == ref {
				matches = append(matches, p)
			}
		}
	}

	switch len(matches) {
	case 0:
		return model.Planner{}, fmt.Errorf("%w: %q", ErrPlannerNotFound, ref)
	case 1:
		return matches[0].Clone(), nil
	default:
		return model.Planner{}, fmt.Errorf("%w: %q matches %d planners", ErrAmbiguous, ref, len(matches))
	}
}

// Add stores a new planner built from f under a fresh id and returns it.
func (c *Collection) Add(f model.Fields) (model.Planner, error) {
	id := uuid.NewString()
	for c.index(id) >= 0 {
		id = uuid.NewString()
	}
	p := model.PlannerFrom(id, f)

	next := append(slices.Clone(c.planners), p)
	if err := c.commit(next); err != nil {
		return model.Planner{}, err
	}
	log.WithFields(log.Fields{"id": id, "title": p.Title}).Info("planner created")
	return p.Clone(), nil
}

// Update merges patch into the planner with id. An unknown id is a no-op.
func (c *Collection) Update(id string, patch PlannerPatch) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}
	next := slices.Clone(c.planners)
	next[i] = patch.apply(next[i].Clone())
	if err := c.commit(next); err != nil {
		return err
	}
	log.WithFields(log.Fields{"id": id, "title": next[i].Title}).Info("planner updated")
	return nil
}

// Remove deletes the planner with id. An unknown id is a no-op.
func (c *Collection) Remove(id string) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(c.planners), i, i+1)
	if err := c.commit(next); err != nil {
		return err
	}
	log.WithField("id", id).Info("planner deleted")
	return nil
}

// commit persists next and adopts it as the mirror only if the write
// succeeded.
func (c *Collection) commit(next []model.Planner) error {
	if err := c.storage.Set(PlannersKey, next, c.kind); err != nil {
		return fmt.Errorf("saving planners: %w", err)
	}
	c.planners = next
	return nil
}

func (c *Collection) index(id string) int {
	return slices.IndexFunc(c.planners, func(p model.Planner) bool { return p.ID == id })
}
