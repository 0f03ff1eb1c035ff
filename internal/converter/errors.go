package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrRatesUnavailable is returned when the rate table is empty.
	ErrRatesUnavailable = errors.New("exchange rates unavailable")
	// ErrUnsupportedCurrency is wrapped by every CurrencyError.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// Conversion sides reported by CurrencyError.
const (
	SideFrom = "from"
	SideTo   = "to"
)

// CurrencyError reports which side of a conversion named an unknown currency.
type CurrencyError struct {
	Side     string
	Currency string
}

func (e *CurrencyError) Error() string {
	return fmt.Sprintf("%s: %s (%s_currency)", ErrUnsupportedCurrency, e.Currency, e.Side)
}

func (e *CurrencyError) Unwrap() error {
	return ErrUnsupportedCurrency
}
