package models

// ConversionRequest represents the JSON body for currency conversion
// swagger:model ConversionRequest
type ConversionRequest struct {
	// Source currency
	// required: true
	// example: USD
	FromCurrency string `json:"from_currency" validate:"required,alpha,len=3"`

	// Target currency
	// required: true
	// example: RUB
	ToCurrency string `json:"to_currency" validate:"required,alpha,len=3"`

	// Amount to convert; when omitted only the rate is returned
	// example: 100.0
	Amount *float64 `json:"amount,omitempty"`
}

// ConversionResponse represents a successful conversion
// swagger:model ConversionResponse
type ConversionResponse struct {
	// Source currency
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// example: RUB
	ToCurrency string `json:"to_currency"`

	// Units of the target currency per one unit of the source
	// example: 80.645161
	Rate float64 `json:"rate"`

	// Converted amount, or the rate when no amount was given
	// example: 8064.52
	Value float64 `json:"value"`

	// Human-readable conversion and rate
	Description string `json:"description"`
}

// ConversionErrorResponse represents an error response for conversion
// swagger:model ConversionErrorResponse
type ConversionErrorResponse struct {
	// Error message
	// example: unsupported currency: XYZ (to_currency)
	Error string `json:"error"`
}
