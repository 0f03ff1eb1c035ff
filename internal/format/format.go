// Package format renders money, rates and percentages for user-facing text.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats an amount with thousands separators and 2 decimals, e.g. 1,234.50.
func Money(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}

// Rate formats a unit exchange rate with the given number of decimals.
func Rate(rate float64, decimals int) string {
	return printer.Sprintf("%.*f", decimals, rate)
}

// Percent formats a percentage with 2 decimals and a trailing percent sign.
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", value)
}

// Years formats a number of months as years with one decimal.
func Years(months int) string {
	return printer.Sprintf("%.1f", float64(months)/12)
}
