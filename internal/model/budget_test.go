package model

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendplan/internal/money"
)

func item(id, label string, amount money.Cents) SpendingItem {
	return SpendingItem{ID: id, Label: label, Color: "#ffdab9", Amount: amount, Fill: FillFor(id)}
}

func TestSummarize_NoBudgetDefined(t *testing.T) {
	f := Fields{Spending: []SpendingItem{item("a", "Rent", 1000)}}

	s := Summarize(f)
	assert.Equal(t, money.Cents(1000), s.TotalSpending)
	assert.Equal(t, money.Cents(-1000), s.Remaining)
	assert.False(t, s.IsAvailableDefined)
	assert.False(t, s.IsOverspent)
	require.Len(t, s.Series, 1)
	assert.Equal(t, "Rent", s.Series[0].Label)
}

func TestSummarize_WithLeftover(t *testing.T) {
	f := Fields{
		AvailableToSpend: 2000,
		Spending:         []SpendingItem{item("a", "Rent", 500), item("b", "Food", 300)},
	}

	s := Summarize(f)
	assert.Equal(t, money.Cents(800), s.TotalSpending)
	assert.Equal(t, money.Cents(1200), s.Remaining)
	assert.Equal(t, money.Cents(2000), s.Denominator)
	assert.False(t, s.IsOverspent)
	assert.Equal(t, "25.0", s.PercentShare(500).StringFixed(1))

	require.Len(t, s.Series, 3)
	leftover := s.Series[2]
	assert.Equal(t, LeftoverID, leftover.ID)
	assert.Equal(t, LeftoverLabel, leftover.Label)
	assert.Equal(t, LeftoverColor, leftover.Color)
	assert.Equal(t, money.Cents(1200), leftover.Amount)
	assert.InDelta(t, 0.4, s.UsedFraction(), 1e-9)
}

func TestSummarize_Overspent(t *testing.T) {
	f := Fields{AvailableToSpend: 500, Spending: []SpendingItem{item("a", "Trip", 800)}}

	s := Summarize(f)
	assert.Equal(t, money.Cents(-300), s.Remaining)
	assert.True(t, s.IsOverspent)
	assert.Equal(t, money.Cents(800), s.Denominator)
	assert.Len(t, s.Series, 1)
	assert.True(t, s.PercentShare(800).Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1.0, s.UsedFraction())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(Fields{})
	assert.Zero(t, s.TotalSpending)
	assert.Zero(t, s.Denominator)
	assert.Empty(t, s.Series)
	assert.True(t, s.PercentShare(100).IsZero())
}

func TestSummarize_ExactlySpent(t *testing.T) {
	f := Fields{AvailableToSpend: 1000, Spending: []SpendingItem{item("a", "All", 1000)}}

	s := Summarize(f)
	assert.False(t, s.IsOverspent)
	require.Len(t, s.Series, 2)
	assert.Zero(t, s.Series[1].Amount)
}

func TestSummarize_DoesNotAliasInput(t *testing.T) {
	f := Fields{AvailableToSpend: 1000, Spending: []SpendingItem{item("a", "Rent", 100)}}

	s := Summarize(f)
	s.Series[0].Label = "changed"
	assert.Equal(t, "Rent", f.Spending[0].Label)
}

func TestPercentShare_Rounding(t *testing.T) {
	tests := []struct {
		amount, denom money.Cents
		want          string
	}{
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{1, 8, "12.5"},
		{1, 16, "6.3"},
		{0, 10, "0.0"},
		{5, 0, "0.0"},
	}
	for _, tt := range tests {
		got := PercentShare(tt.amount, tt.denom).StringFixed(1)
		assert.Equal(t, tt.want, got, "PercentShare(%d, %d)", tt.amount, tt.denom)
	}
}

func TestSummarize_OversizedItemsSaturate(t *testing.T) {
	f := Fields{
		AvailableToSpend: 100,
		Spending:         []SpendingItem{item("a", "A", 5_000_000_000_000_000_000), item("b", "B", 5_000_000_000_000_000_000)},
	}

	s := Summarize(f)
	assert.Equal(t, money.Cents(math.MaxInt64), s.TotalSpending)
	assert.Less(t, int64(s.Remaining), int64(0))
	assert.True(t, s.IsOverspent)
	assert.Len(t, s.Series, 2, "no leftover slice when overspent")
}

func TestTotalAmount_Saturates(t *testing.T) {
	assert.Equal(t, money.Cents(math.MaxInt64), TotalAmount([]SpendingItem{
		item("a", "A", math.MaxInt64), item("b", "B", 1),
	}))
	assert.Equal(t, money.Cents(math.MinInt64), TotalAmount([]SpendingItem{
		item("a", "A", math.MinInt64), item("b", "B", -1),
	}))
}
