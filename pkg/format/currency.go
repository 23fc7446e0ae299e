// Package format renders metric values for people to read.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// Number returns a value with thousands separators and two decimals (e.g., "1,234.50").
func Number(value float64) string {
	return printer.Sprintf("%.2f", value)
}

// Units returns a quantity followed by the unit abbreviation (e.g., "200.00 u.").
func Units(value float64) string {
	return Number(value) + " u."
}

// Percent returns a percentage with two decimals (e.g., "90.28%").
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", value)
}

// Rate returns a time-per-unit rate (e.g., "4.00 min/u").
func Rate(value float64) string {
	return Number(value) + " min/u"
}
