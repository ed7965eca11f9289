package planner

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
)

func spent(id, label string, amount money.Cents) model.SpendingItem {
	return model.SpendingItem{ID: id, Label: label, Color: "#87ceeb", Amount: amount, Fill: model.FillFor(id)}
}

type unknownIntent struct{}

func (unknownIntent) Kind() string { return "explode" }

func TestReduce_Transitions(t *testing.T) {
	base := model.Draft(model.Fields{
		Title:            "June",
		AvailableToSpend: 2000,
		Spending:         []model.SpendingItem{spent("a", "Rent", 500), spent("b", "Food", 300), spent("c", "Gym", 100)},
	})
	label := "Groceries"
	amount := money.Cents(450)
	huge := money.MaxCents + 1

	tests := []struct {
		name   string
		intent Intent
		want   model.State
	}{
		{
			name:   "reset",
			intent: Reset{},
			want:   model.DefaultState(),
		},
		{
			name:   "add appends",
			intent: AddSpending{Item: spent("d", "Bus", 50)},
			want: model.Draft(model.Fields{Title: "June", AvailableToSpend: 2000, Spending: []model.SpendingItem{
				spent("a", "Rent", 500), spent("b", "Food", 300), spent("c", "Gym", 100), spent("d", "Bus", 50),
			}}),
		},
		{
			name:   "add duplicate id ignored",
			intent: AddSpending{Item: spent("a", "Other", 1)},
			want:   base,
		},
		{
			name:   "remove keeps order",
			intent: RemoveSpending{ID: "b"},
			want: model.Draft(model.Fields{Title: "June", AvailableToSpend: 2000, Spending: []model.SpendingItem{
				spent("a", "Rent", 500), spent("c", "Gym", 100),
			}}),
		},
		{
			name:   "remove unknown id",
			intent: RemoveSpending{ID: "zzz"},
			want:   base,
		},
		{
			name:   "update keeps position",
			intent: UpdateSpending{ID: "b", Patch: model.ItemPatch{Label: &label, Amount: &amount}},
			want: model.Draft(model.Fields{Title: "June", AvailableToSpend: 2000, Spending: []model.SpendingItem{
				spent("a", "Rent", 500), spent("b", "Groceries", 450), spent("c", "Gym", 100),
			}}),
		},
		{
			name:   "update unknown id",
			intent: UpdateSpending{ID: "zzz", Patch: model.ItemPatch{Label: &label}},
			want:   base,
		},
		{
			name:   "set spending drops later duplicates",
			intent: SetSpending{Items: []model.SpendingItem{spent("x", "One", 1), spent("x", "Two", 2)}},
			want:   model.Draft(model.Fields{Title: "June", AvailableToSpend: 2000, Spending: []model.SpendingItem{spent("x", "One", 1)}}),
		},
		{
			name:   "update title",
			intent: UpdateTitle{Title: "July"},
			want: model.Draft(model.Fields{Title: "July", AvailableToSpend: 2000, Spending: []model.SpendingItem{
				spent("a", "Rent", 500), spent("b", "Food", 300), spent("c", "Gym", 100),
			}}),
		},
		{
			name:   "update available",
			intent: UpdateAvailable{Amount: 9000},
			want: model.Draft(model.Fields{Title: "June", AvailableToSpend: 9000, Spending: []model.SpendingItem{
				spent("a", "Rent", 500), spent("b", "Food", 300), spent("c", "Gym", 100),
			}}),
		},
		{
			name:   "negative available ignored",
			intent: UpdateAvailable{Amount: -1},
			want:   base,
		},
		{
			name:   "oversized available ignored",
			intent: UpdateAvailable{Amount: huge},
			want:   base,
		},
		{
			name:   "oversized item ignored",
			intent: AddSpending{Item: spent("d", "Yacht", huge)},
			want:   base,
		},
		{
			name:   "oversized patch ignored",
			intent: UpdateSpending{ID: "a", Patch: model.ItemPatch{Amount: &huge}},
			want:   base,
		},
		{
			name:   "replace",
			intent: Replace{State: model.Saved("p1", model.Fields{Title: "Saved"})},
			want:   model.Saved("p1", model.Fields{Title: "Saved"}),
		},
		{
			name:   "unknown intent",
			intent: unknownIntent{},
			want:   base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := base.Clone()
			got := Reduce(base, tt.intent)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Reduce mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(before, base); diff != "" {
				t.Errorf("Reduce mutated its input (-before +after):\n%s", diff)
			}
		})
	}
}

func TestReduce_RandomSequenceKeepsInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	state := model.DefaultState()

	for step := range 2000 {
		var in Intent
		id := fmt.Sprintf("item-%d", r.IntN(12))
		switch r.IntN(6) {
		case 0:
			in = AddSpending{Item: spent(id, "x", money.Cents(r.IntN(10000)))}
		case 1:
			in = RemoveSpending{ID: id}
		case 2:
			a := money.Cents(r.IntN(10000))
			in = UpdateSpending{ID: id, Patch: model.ItemPatch{Amount: &a}}
		case 3:
			in = UpdateAvailable{Amount: money.Cents(r.IntN(50000))}
		case 4:
			in = UpdateTitle{Title: id}
		default:
			if r.IntN(20) == 0 {
				in = Reset{}
			} else {
				in = unknownIntent{}
			}
		}
		state = Reduce(state, in)

		seen := map[string]bool{}
		for _, it := range state.Spending {
			assert.False(t, seen[it.ID], "step %d: duplicate id %s", step, it.ID)
			seen[it.ID] = true
			assert.GreaterOrEqual(t, int64(it.Amount), int64(0))
		}
		s := model.Summarize(state.Fields)
		assert.Equal(t, state.AvailableToSpend-model.TotalAmount(state.Spending), s.Remaining, "step %d", step)
	}
}
