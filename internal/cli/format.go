// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendplan/internal/money"
)

// FormatMoney formats an amount in the given display currency.
// e.g., 123450 in BRL -> "R$ 1.234,50"
func FormatMoney(c money.Cents, cur money.Currency) string {
	return money.Format(c, cur)
}

// FormatPercent formats a percentage share with one decimal.
// e.g., 25 -> "25.0%"
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// FormatShortID shortens a UUID to its first block for display.
func FormatShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatCount pluralizes a count.
// e.g., (1, "item") -> "1 item", (1200, "item") -> "1,200 items"
func FormatCount(n int, noun string) string {
	s := humanize.Comma(int64(n)) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}

// Truncate shortens s to at most width runes, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	if width == 1 {
		return "…"
	}
	return strings.TrimRight(string(r[:width-1]), " ") + "…"
}

// BalanceLabel names the remaining balance the way the board shows it.
func BalanceLabel(overspent bool) string {
	if overspent {
		return "Missing"
	}
	return "Leftover"
}
