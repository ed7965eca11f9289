// Package money holds the integer-cents amount type, the keystroke currency
// mask used by amount inputs, and locale-aware display formatting.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Cents is a currency amount in minor units.
type Cents int64

// MaxDigits bounds amount input so values and their sums stay well inside
// int64 and exact when converted to float64 for display.
const MaxDigits = 15

// MaxCents is the largest amount accepted anywhere: MaxDigits nines.
const MaxCents Cents = 999_999_999_999_999

// Mask converts free-form keystrokes into an amount. Every non-digit is
// dropped and the rightmost two digits are always the cents, so typing "5"
// yields 0.05, "50" yields 0.50 and "500" yields 5.00. Digits past
// MaxDigits are ignored.
func Mask(raw string) Cents {
	var digits strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			continue
		}
		if digits.Len() == MaxDigits {
			break
		}
		digits.WriteByte(c)
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return Cents(n)
}

// Decimal renders the amount with a dot separator and exactly two decimals.
func (c Cents) Decimal() string {
	return decimal.New(int64(c), -2).StringFixed(2)
}

// InRange reports whether c is between zero and MaxCents.
func (c Cents) InRange() bool {
	return c >= 0 && c <= MaxCents
}

// Clamp limits c to the accepted range.
func (c Cents) Clamp() Cents {
	return min(max(c, 0), MaxCents)
}

// Abs returns the absolute amount.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// Currency describes how amounts are displayed.
type Currency struct {
	Code    string
	Symbol  string
	Pattern string // go-humanize FormatFloat pattern: thousands and decimal separators
}

// Supported display currencies.
var (
	BRL = Currency{Code: "BRL", Symbol: "R$", Pattern: "#.###,##"}
	USD = Currency{Code: "USD", Symbol: "$", Pattern: "#,###.##"}
	EUR = Currency{Code: "EUR", Symbol: "€", Pattern: "#.###,##"}
)

// Currencies lists all supported display currencies, default first.
var Currencies = []Currency{BRL, USD, EUR}

// CurrencyByCode looks up a currency by ISO code (case-insensitive).
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Currency{}, false
}

// Format renders the amount for display, e.g. "R$ 1.234,50" or "-$ 3.00".
func Format(c Cents, cur Currency) string {
	if cur.Pattern == "" {
		cur = BRL
	}
	sign := ""
	if c < 0 {
		sign = "-"
	}
	abs := c.Abs()
	body := humanize.FormatFloat(cur.Pattern, float64(abs)/100)
	return sign + cur.Symbol + " " + body
}

// ErrInvalidAmount is returned by Parse for negative or malformed amounts.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse reads an amount typed as a plain decimal ("12", "12.5") and falls
// back to Mask for locale-formatted input ("R$ 1.234,50", "12,50").
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	if d, err := decimal.NewFromString(s); err == nil {
		if d.Exponent() < -2 {
			return 0, fmt.Errorf("%w: %q has more than two decimals", ErrInvalidAmount, s)
		}
		cents := d.Shift(2)
		if cents.GreaterThan(decimal.NewFromInt(int64(MaxCents))) {
			return 0, fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidAmount, s, MaxDigits)
		}
		return Cents(cents.IntPart()), nil
	}
	switch n := CountDigits(s); {
	case n == 0:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	case n > MaxDigits:
		return 0, fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidAmount, s, MaxDigits)
	}
	return Mask(s), nil
}

// CountDigits returns how many ASCII digits raw contains.
func CountDigits(raw string) int {
	n := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			n++
		}
	}
	return n
}
