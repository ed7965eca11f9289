package model

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendplan/internal/money"
)

// Synthetic chart slice for the unspent part of the budget.
const (
	LeftoverID    = "leftover"
	LeftoverLabel = "Leftover"
	LeftoverColor = "#c0c0c0"
)

// Summary holds the figures derived from a planner's fields.
type Summary struct {
	Available          money.Cents
	TotalSpending      money.Cents
	Remaining          money.Cents
	IsAvailableDefined bool
	IsOverspent        bool
	// Denominator is the base for percentage shares: the larger of the
	// available amount and total spending.
	Denominator money.Cents
	Series      []SpendingItem
}

// Summarize derives the budget figures for f. Nothing is cached; call it
// again after every change.
func Summarize(f Fields) Summary {
	total := TotalAmount(f.Spending)
	s := Summary{
		Available:          f.AvailableToSpend,
		TotalSpending:      total,
		Remaining:          remaining(f.AvailableToSpend, total),
		IsAvailableDefined: f.AvailableToSpend > 0,
	}
	s.IsOverspent = s.IsAvailableDefined && s.Remaining < 0
	s.Denominator = max(f.AvailableToSpend, total)

	s.Series = make([]SpendingItem, 0, len(f.Spending)+1)
	s.Series = append(s.Series, f.Spending...)
	if s.IsAvailableDefined && !s.IsOverspent {
		s.Series = append(s.Series, SpendingItem{
			ID:     LeftoverID,
			Label:  LeftoverLabel,
			Color:  LeftoverColor,
			Amount: s.Remaining,
			Fill:   FillFor(LeftoverID),
		})
	}
	return s
}

// remaining is available minus total, saturating at the int64 limits.
func remaining(available, total money.Cents) money.Cents {
	switch {
	case total < 0 && available > math.MaxInt64+total:
		return math.MaxInt64
	case total > 0 && available < math.MinInt64+total:
		return math.MinInt64
	}
	return available - total
}

// PercentShare returns amount as a percentage of the denominator, rounded
// to one decimal place. A zero denominator yields zero.
func (s Summary) PercentShare(amount money.Cents) decimal.Decimal {
	return PercentShare(amount, s.Denominator)
}

// PercentShare returns amount*100/denominator rounded to one decimal place.
func PercentShare(amount, denominator money.Cents) decimal.Decimal {
	if denominator <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(amount)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(denominator))).
		Round(1)
}

// UsedFraction is total spending over the available amount, clamped to
// [0, 1]. It is 0 when no budget is defined.
func (s Summary) UsedFraction() float64 {
	if !s.IsAvailableDefined {
		return 0
	}
	f := float64(s.TotalSpending) / float64(s.Available)
	return min(max(f, 0), 1)
}
