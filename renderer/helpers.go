package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the display currency when none is configured.
const DefaultCurrency = "USD"

// Currency formats an amount for display, localized by the currency code
// ("$1,234.50" for USD). Amounts travel as float64; the float is converted
// to minor units through decimal so .1+.2 style residues never leak into a
// document.
func Currency(amount float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), cur.Code).Display()
}

// Quantity formats a line-item quantity, trimming a useless ".00" so whole
// counts read naturally ("2" but "2.50").
func Quantity(qty float64) string {
	s := decimal.NewFromFloat(qty).StringFixed(2)
	return strings.TrimSuffix(s, ".00")
}

// Percent formats a fractional rate as a percentage ("10%" for 0.1).
func Percent(rate float64) string {
	s := decimal.NewFromFloat(rate).Shift(2).StringFixed(2)
	return strings.TrimSuffix(s, ".00") + "%"
}
