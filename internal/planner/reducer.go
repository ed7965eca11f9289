package planner

import (
	"slices"

	"github.com/theirongolddev/spendplan/internal/model"
)

// Reduce computes the state that results from applying in to s. It never
// mutates s. Unknown intents and transitions that would break an invariant
// (duplicate item ids, amounts outside [0, money.MaxCents]) leave the state unchanged.
func Reduce(s model.State, in Intent) model.State {
	next := s.Clone()

	switch in := in.(type) {
	case Reset:
		return model.DefaultState()

	case Replace:
		next = in.State.Clone()
		next.Spending = dedupe(next.Spending)
		return next

	case SetSpending:
		next.Spending = dedupe(slices.Clone(in.Items))
		if next.Spending == nil {
			next.Spending = []model.SpendingItem{}
		}
		return next

	case AddSpending:
		if !in.Item.Amount.InRange() || indexOf(next.Spending, in.Item.ID) >= 0 {
			return next
		}
		item := in.Item
		if item.Fill == "" {
			item.Fill = model.FillFor(item.ID)
		}
		next.Spending = append(next.Spending, item)
		return next

	case RemoveSpending:
		next.Spending = slices.DeleteFunc(next.Spending, func(it model.SpendingItem) bool {
			return it.ID == in.ID
		})
		return next

	case UpdateSpending:
		i := indexOf(next.Spending, in.ID)
		if i < 0 || (in.Patch.Amount != nil && !in.Patch.Amount.InRange()) {
			return next
		}
		next.Spending[i] = next.Spending[i].Apply(in.Patch)
		return next

	case UpdateTitle:
		next.Title = in.Title
		return next

	case UpdateAvailable:
		if !in.Amount.InRange() {
			return next
		}
		next.AvailableToSpend = in.Amount
		return next

	default:
		return next
	}
}

func indexOf(items []model.SpendingItem, id string) int {
	return slices.IndexFunc(items, func(it model.SpendingItem) bool { return it.ID == id })
}

// dedupe keeps the first occurrence of each item id.
func dedupe(items []model.SpendingItem) []model.SpendingItem {
	seen := make(map[string]bool, len(items))
	return slices.DeleteFunc(items, func(it model.SpendingItem) bool {
		if seen[it.ID] {
			return true
		}
		seen[it.ID] = true
		return false
	})
}
