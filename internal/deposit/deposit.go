// Package deposit computes deposit profitability with compound interest.
package deposit

import (
	"fmt"
	"math"
)

// Request describes a deposit to evaluate.
type Request struct {
	Principal  float64   // Initial amount, must be positive
	AnnualRate float64   // Nominal annual rate in percent
	TermMonths int       // Deposit term in months
	Frequency  Frequency // Capitalization frequency
}

// Result holds the outcome of a deposit calculation.
type Result struct {
	FinalAmount    float64 // Balance at the end of the term
	InterestEarned float64 // FinalAmount minus the principal
	EffectiveRate  float64 // Total return over the term in percent
}

// Validate checks the request fields in a fixed order and returns the first violation.
func (r Request) Validate() error {
	if !(r.Principal > 0) {
		return &ArgumentError{Field: "principal", Reason: "must be positive"}
	}
	if !(r.AnnualRate >= 0) {
		return &ArgumentError{Field: "annual_rate", Reason: "must not be negative"}
	}
	if r.TermMonths < 1 {
		return &ArgumentError{Field: "term_months", Reason: "must be at least 1"}
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFrequency, string(r.Frequency))
	}
	return nil
}

// Compute applies A = P * (1 + r/n)^(n*t) to the request.
func Compute(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	n, _ := req.Frequency.PeriodsPerYear()
	periods := float64(n)
	years := float64(req.TermMonths) / 12
	rate := req.AnnualRate / 100

	final := req.Principal * math.Pow(1+rate/periods, periods*years)

	return Result{
		FinalAmount:    final,
		InterestEarned: final - req.Principal,
		EffectiveRate:  (final/req.Principal - 1) * 100,
	}, nil
}
