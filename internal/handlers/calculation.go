package handlers

//go:generate mockgen -source=calculation.go -destination=calculation_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// CalculationLister defines the interface that the service must implement.
type CalculationLister interface {
	ListRecent(ctx context.Context, kind string, limit int) ([]models.Calculation, error)
}

// CalculationsErrorResponse represents an error response for calculation history
// swagger:model CalculationsErrorResponse
type CalculationsErrorResponse struct {
	// Error message
	// default: Invalid query parameters
	Error string `json:"error"`
}

// NewListCalculationsHandler returns an HTTP handler listing recent calculations.
// @Summary List calculations
// @Description Returns recent deposit and conversion calculations from the audit log
// @Tags history
// @Produce json
// @Param kind query string false "deposit or conversion"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} models.Calculation "Calculations"
// @Failure 400 {object} handlers.CalculationsErrorResponse "Invalid query parameters"
// @Failure 500 {object} handlers.CalculationsErrorResponse "Internal server error"
// @Router /calculations [get]
// @Security BearerAuth
func NewListCalculationsHandler(svc CalculationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("kind")
		if kind != "" && kind != models.CalculationDeposit && kind != models.CalculationConversion {
			writeJSON(w, http.StatusBadRequest, CalculationsErrorResponse{Error: "Invalid query parameters"})
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeJSON(w, http.StatusBadRequest, CalculationsErrorResponse{Error: "Invalid query parameters"})
				return
			}
			limit = n
		}

		calcs, err := svc.ListRecent(r.Context(), kind, limit)
		if err != nil {
			logger.Log.Errorw("failed to list calculations", "kind", kind, "limit", limit, "error", err)
			writeJSON(w, http.StatusInternalServerError, CalculationsErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, calcs)
	}
}
