// Package planner holds the planner's state machine: the pure reducer, the
// persisted store that drives it, the saved-planner collection and the
// workspace that ties them together for the CLI and TUI.
package planner

import (
	"github.com/theirongolddev/spendplan/internal/model"
	"github.com/theirongolddev/spendplan/internal/money"
)

// Intent is a requested state transition.
type Intent interface {
	Kind() string
}

// Reset returns the board to the default empty draft.
type Reset struct{}

// Replace swaps in a whole new state.
type Replace struct {
	State model.State
}

// SetSpending replaces the spending list.
type SetSpending struct {
	Items []model.SpendingItem
}

// AddSpending appends an item.
type AddSpending struct {
	Item model.SpendingItem
}

// RemoveSpending drops the item with ID.
type RemoveSpending struct {
	ID string
}

// UpdateSpending merges Patch into the item with ID.
type UpdateSpending struct {
	ID    string
	Patch model.ItemPatch
}

// UpdateTitle sets the title.
type UpdateTitle struct {
	Title string
}

// UpdateAvailable sets the available-to-spend amount.
type UpdateAvailable struct {
	Amount money.Cents
}

func (Reset) Kind() string           { return "reset-state" }
func (Replace) Kind() string         { return "set-state" }
func (SetSpending) Kind() string     { return "set-spending" }
func (AddSpending) Kind() string     { return "add-spending" }
func (RemoveSpending) Kind() string  { return "remove-spending" }
func (UpdateSpending) Kind() string  { return "update-spending" }
func (UpdateTitle) Kind() string     { return "update-title" }
func (UpdateAvailable) Kind() string { return "update-available-to-spend" }
