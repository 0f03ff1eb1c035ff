package models

// DepositRequest represents the JSON body for a deposit profitability calculation
// swagger:model DepositRequest
type DepositRequest struct {
	// Initial deposit amount
	// required: true
	// example: 100000
	InitialAmount float64 `json:"initial_amount"`

	// Annual interest rate in percent
	// required: true
	// example: 12.0
	AnnualRate float64 `json:"annual_rate" validate:"lte=100"`

	// Deposit term in months
	// required: true
	// example: 12
	TermMonths int `json:"term_months" validate:"lte=1200"`

	// Capitalization frequency: monthly, quarterly or annually
	// required: true
	// example: monthly
	CompoundingFrequency string `json:"compounding_frequency"`
}

// DepositResponse represents the result of a deposit calculation
// swagger:model DepositResponse
type DepositResponse struct {
	// Balance at the end of the term
	// example: 112682.50
	FinalAmount float64 `json:"final_amount"`

	// Interest earned over the term
	// example: 12682.50
	InterestEarned float64 `json:"interest_earned"`

	// Effective rate over the term in percent
	// example: 12.68
	EffectiveRate float64 `json:"effective_rate"`

	// Human-readable report
	Summary string `json:"summary"`
}

// DepositErrorResponse represents an error response for deposit calculation
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// example: invalid argument: principal must be positive
	Error string `json:"error"`

	// Allowed frequencies, set when the frequency is not supported
	AllowedFrequencies []string `json:"allowed_frequencies,omitempty"`
}
