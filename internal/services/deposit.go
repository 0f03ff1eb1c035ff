package services

import (
	"context"

	"github.com/sbilibin2017/gw-bank-agent/internal/deposit"
	"github.com/sbilibin2017/gw-bank-agent/internal/format"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// DepositService calculates deposit profitability.
type DepositService struct {
	recorder *CalculationRecorder
}

// NewDepositService creates a DepositService. recorder may be nil.
func NewDepositService(recorder *CalculationRecorder) *DepositService {
	return &DepositService{recorder: recorder}
}

// Calculate runs the capitalization engine and records the outcome.
func (s *DepositService) Calculate(ctx context.Context, req deposit.Request) (deposit.Result, error) {
	res, err := deposit.Compute(req)
	if err != nil {
		logger.Log.Warnw("deposit calculation rejected",
			"principal", req.Principal,
			"annual_rate", req.AnnualRate,
			"term_months", req.TermMonths,
			"frequency", req.Frequency,
			"error", err,
		)
		return deposit.Result{}, err
	}
	if !finite(res.FinalAmount, res.InterestEarned, res.EffectiveRate) {
		logger.Log.Warnw("deposit calculation overflowed",
			"principal", req.Principal,
			"annual_rate", req.AnnualRate,
			"term_months", req.TermMonths,
			"frequency", req.Frequency,
		)
		return deposit.Result{}, ErrResultOutOfRange
	}

	input := models.DepositRequest{
		InitialAmount:        req.Principal,
		AnnualRate:           req.AnnualRate,
		TermMonths:           req.TermMonths,
		CompoundingFrequency: req.Frequency.String(),
	}
	s.recorder.Record(ctx, models.CalculationDeposit, input, res.FinalAmount,
		"final amount "+format.Money(res.FinalAmount)+", interest "+format.Money(res.InterestEarned))

	return res, nil
}
