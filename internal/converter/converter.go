// Package converter converts amounts between currencies using a rate table
// quoted against a single reference currency.
package converter

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-bank-agent/internal/format"
)

// DefaultReference is the currency the CBR rate table is quoted against.
const DefaultReference = "RUB"

// RateTable maps a currency code to units of that currency per one unit of the
// reference currency. The reference currency itself is never present.
type RateTable map[string]float64

// Conversion is the successful outcome of Convert.
type Conversion struct {
	From        string  // Normalized source currency
	To          string  // Normalized target currency
	Rate        float64 // Units of To per one unit of From
	Value       float64 // Converted amount, or Rate when no amount was given
	Description string  // Human-readable result and current rate
}

// Converter routes every conversion through its reference currency.
type Converter struct {
	reference string
}

// New creates a converter. An empty reference falls back to DefaultReference.
func New(reference string) *Converter {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		reference = DefaultReference
	}
	return &Converter{reference: reference}
}

// Reference returns the reference currency code.
func (c *Converter) Reference() string {
	return c.reference
}

// Convert computes the rate between from and to and, when amount is not nil,
// the converted amount. The table is read only.
func (c *Converter) Convert(from, to string, amount *float64, table RateTable) (Conversion, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	ref := c.reference

	if len(table) == 0 {
		return Conversion{}, ErrRatesUnavailable
	}
	if !c.supported(from, table) {
		return Conversion{}, &CurrencyError{Side: SideFrom, Currency: from}
	}
	if !c.supported(to, table) {
		return Conversion{}, &CurrencyError{Side: SideTo, Currency: to}
	}

	conv := Conversion{From: from, To: to}
	var rateText string

	switch {
	case from == to:
		conv.Rate = 1
		rateText = fmt.Sprintf("1 %s = 1 %s", from, to)
		if amount != nil {
			conv.Value = *amount
		}

	case from == ref:
		rate := table[to]
		conv.Rate = rate
		rateText = fmt.Sprintf("1 %s = %s %s (or 1 %s ≈ %s %s)",
			ref, format.Rate(rate, 6), to, to, format.Rate(1/rate, 2), ref)
		if amount != nil {
			conv.Value = *amount * rate
		}

	case to == ref:
		rate := table[from]
		conv.Rate = 1 / rate
		rateText = fmt.Sprintf("1 %s = %s %s (or 1 %s = %s %s)",
			from, format.Rate(1/rate, 2), ref, ref, format.Rate(rate, 6), from)
		if amount != nil {
			conv.Value = *amount / rate
		}

	default:
		// from -> ref -> to, never a direct rate
		rateFrom := table[from]
		rateTo := table[to]
		rate := (1 / rateFrom) * rateTo
		conv.Rate = rate
		rateText = fmt.Sprintf("1 %s = %s %s (via %s)", from, format.Rate(rate, 6), to, ref)
		if amount != nil {
			conv.Value = *amount * rate
		}
	}

	if amount == nil {
		conv.Value = conv.Rate
		conv.Description = rateText
		return conv, nil
	}

	conv.Description = fmt.Sprintf("%s %s = %s %s\n\nCurrent rate: %s",
		format.Money(*amount), from, format.Money(conv.Value), to, rateText)
	return conv, nil
}

func (c *Converter) supported(code string, table RateTable) bool {
	if code == c.reference {
		return true
	}
	_, ok := table[code]
	return ok
}
