package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Calculation kinds
const (
	CalculationDeposit    = "deposit"
	CalculationConversion = "conversion"
)

// Calculation is an audit record of a successful calculation, stored in
// Postgres and published to Kafka.
type Calculation struct {
	CalculationID uuid.UUID       `json:"calculation_id" db:"calculation_id"` // Unique identifier of the calculation
	Kind          string          `json:"kind" db:"kind"`                     // "deposit" or "conversion"
	Input         json.RawMessage `json:"input" db:"input"`                   // Request parameters as JSON
	Result        float64         `json:"result" db:"result"`                 // Final amount or converted value
	Description   string          `json:"description" db:"description"`       // Text shown to the caller
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // When the calculation was made
}
