package numbers

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// centsExp scales minor units to display units
const centsExp = -2

// Units converts cents into a decimal amount of currency units
func Units(cents int64) decimal.Decimal {
	return decimal.New(cents, centsExp)
}

// FormatCents renders minor units as a decimal amount, 103500 -> "1035.00"
func FormatCents(cents int64) string {
	return Units(cents).StringFixed(-centsExp)
}

// FormatSignedCents always carries the sign, 0 is "+0.00"
func FormatSignedCents(cents int64) string {
	if cents < 0 {
		return FormatCents(cents)
	}
	return "+" + FormatCents(cents)
}

// FormatPercent renders a rate with one decimal, 50 -> "50.0%"
func FormatPercent(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}
