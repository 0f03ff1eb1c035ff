package models

// ExchangeRatesResponse represents the current rate table
// swagger:model ExchangeRatesResponse
type ExchangeRatesResponse struct {
	// Reference currency the rates are quoted against
	// example: RUB
	Base string `json:"base"`

	// Units of each currency per one unit of the base currency
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRatesErrorResponse represents an error response when fetching exchange rates
// swagger:model ExchangeRatesErrorResponse
type ExchangeRatesErrorResponse struct {
	// Error message
	// example: Failed to retrieve exchange rates
	Error string `json:"error"`
}
