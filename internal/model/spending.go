// Package model defines the planner's data types and the budget figures
// derived from them.
package model

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/theirongolddev/spendplan/internal/money"
)

var (
	// ErrNegativeAmount rejects amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooLarge rejects amounts above money.MaxCents.
	ErrAmountTooLarge = errors.New("amount is too large")
	// ErrInvalidColor rejects colors that are not #rrggbb.
	ErrInvalidColor = errors.New("color must be #rrggbb")
)

// SpendingItem is one line of a planner's spending list.
type SpendingItem struct {
	ID     string      `json:"id" yaml:"id"`
	Label  string      `json:"label" yaml:"label"`
	Color  string      `json:"color" yaml:"color"`
	Amount money.Cents `json:"amount" yaml:"amount"`
	Fill   string      `json:"fill,omitempty" yaml:"-"`
}

// ItemInput carries the user-entered fields of a new or edited item.
type ItemInput struct {
	Label  string
	Color  string
	Amount money.Cents
}

// Validate checks amount and color.
func (in ItemInput) Validate() error {
	if err := CheckAmount(in.Amount); err != nil {
		return err
	}
	if in.Color != "" && !ValidColor(in.Color) {
		return ErrInvalidColor
	}
	return nil
}

// CheckAmount rejects amounts outside [0, money.MaxCents].
func CheckAmount(c money.Cents) error {
	switch {
	case c < 0:
		return ErrNegativeAmount
	case c > money.MaxCents:
		return ErrAmountTooLarge
	}
	return nil
}

// FillFor returns the styling key for an item id.
func FillFor(id string) string {
	return "color-" + id
}

// NewSpendingItem creates an item with a fresh id. An empty color is
// replaced with a random palette color.
func NewSpendingItem(in ItemInput) SpendingItem {
	id := uuid.NewString()
	color := strings.ToLower(in.Color)
	if color == "" {
		color = RandomColor(nil)
	}
	return SpendingItem{
		ID:     id,
		Label:  strings.TrimSpace(in.Label),
		Color:  color,
		Amount: in.Amount,
		Fill:   FillFor(id),
	}
}

// ItemPatch holds the fields to change on an existing item. Nil fields are
// left untouched.
type ItemPatch struct {
	Label  *string
	Color  *string
	Amount *money.Cents
}

// PatchFrom builds a patch that overwrites every field with in.
func PatchFrom(in ItemInput) ItemPatch {
	label := strings.TrimSpace(in.Label)
	color := strings.ToLower(in.Color)
	amount := in.Amount
	return ItemPatch{Label: &label, Color: &color, Amount: &amount}
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p.Label == nil && p.Color == nil && p.Amount == nil
}

// Apply returns a copy of it with the patch merged in. The id and fill are
// never changed.
func (it SpendingItem) Apply(p ItemPatch) SpendingItem {
	if p.Label != nil {
		it.Label = *p.Label
	}
	if p.Color != nil && *p.Color != "" {
		it.Color = *p.Color
	}
	if p.Amount != nil {
		it.Amount = *p.Amount
	}
	return it
}

// TotalAmount sums the amounts of items. The sum saturates at the int64
// limits instead of wrapping.
func TotalAmount(items []SpendingItem) money.Cents {
	var total money.Cents
	for _, it := range items {
		switch {
		case it.Amount > 0 && total > math.MaxInt64-it.Amount:
			total = math.MaxInt64
		case it.Amount < 0 && total < math.MinInt64-it.Amount:
			total = math.MinInt64
		default:
			total += it.Amount
		}
	}
	return total
}
