package handlers

//go:generate mockgen -source=deposit.go -destination=deposit_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bank-agent/internal/deposit"
	"github.com/sbilibin2017/gw-bank-agent/internal/format"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
)

// DepositCalculator defines the interface that the service must implement.
type DepositCalculator interface {
	Calculate(ctx context.Context, req deposit.Request) (deposit.Result, error)
}

// NewCalculateDepositHandler returns an HTTP handler for deposit profitability calculation.
// @Summary Calculate deposit profitability
// @Description Computes final amount, interest and effective rate with compound interest
// @Tags deposit
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit parameters"
// @Success 200 {object} models.DepositResponse "Calculation result"
// @Failure 400 {object} models.DepositErrorResponse "Invalid parameters or unsupported frequency"
// @Failure 422 {object} models.DepositErrorResponse "Result is out of range"
// @Failure 500 {object} models.DepositErrorResponse "Internal server error"
// @Router /deposit/calculate [post]
// @Security BearerAuth
func NewCalculateDepositHandler(svc DepositCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode deposit request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("deposit request out of bounds", "error", err)
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: err.Error()})
			return
		}

		dreq := deposit.Request{
			Principal:  req.InitialAmount,
			AnnualRate: req.AnnualRate,
			TermMonths: req.TermMonths,
			Frequency:  deposit.Frequency(req.CompoundingFrequency),
		}

		res, err := svc.Calculate(r.Context(), dreq)
		switch {
		case errors.Is(err, deposit.ErrUnsupportedFrequency):
			allowed := make([]string, 0, 3)
			for _, f := range deposit.Frequencies() {
				allowed = append(allowed, f.String())
			}
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{
				Error:              err.Error(),
				AllowedFrequencies: allowed,
			})
			return
		case errors.Is(err, deposit.ErrInvalidArgument):
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: err.Error()})
			return
		case errors.Is(err, services.ErrResultOutOfRange):
			writeJSON(w, http.StatusUnprocessableEntity, models.DepositErrorResponse{Error: "Result is out of range"})
			return
		case err != nil:
			logger.Log.Errorw("failed to calculate deposit", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.DepositErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, models.DepositResponse{
			FinalAmount:    res.FinalAmount,
			InterestEarned: res.InterestEarned,
			EffectiveRate:  res.EffectiveRate,
			Summary:        format.DepositReport(dreq, res),
		})
	}
}
