package handlers

//go:generate mockgen -source=conversion.go -destination=conversion_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
)

// CurrencyConverter defines the interface that the service must implement.
type CurrencyConverter interface {
	Convert(ctx context.Context, from, to string, amount *float64) (converter.Conversion, error)
}

// NewConvertCurrencyHandler returns an HTTP handler for currency conversion.
// @Summary Convert currency
// @Description Converts an amount between currencies through the reference currency. Without an amount only the rate is returned.
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body models.ConversionRequest true "Conversion parameters"
// @Success 200 {object} models.ConversionResponse "Conversion result"
// @Failure 400 {object} models.ConversionErrorResponse "Invalid or unsupported currency"
// @Failure 422 {object} models.ConversionErrorResponse "Result is out of range"
// @Failure 503 {object} models.ConversionErrorResponse "Exchange rates unavailable"
// @Router /currency/convert [post]
// @Security BearerAuth
func NewConvertCurrencyHandler(svc CurrencyConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConversionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode conversion request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.ConversionErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.Log.Warnw("invalid conversion request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.ConversionErrorResponse{Error: "Invalid currency code"})
			return
		}

		conv, err := svc.Convert(r.Context(), req.FromCurrency, req.ToCurrency, req.Amount)
		switch {
		case errors.Is(err, converter.ErrRatesUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, models.ConversionErrorResponse{Error: "Failed to retrieve exchange rates"})
			return
		case errors.Is(err, converter.ErrUnsupportedCurrency):
			writeJSON(w, http.StatusBadRequest, models.ConversionErrorResponse{Error: err.Error()})
			return
		case errors.Is(err, services.ErrResultOutOfRange):
			writeJSON(w, http.StatusUnprocessableEntity, models.ConversionErrorResponse{Error: "Result is out of range"})
			return
		case err != nil:
			logger.Log.Errorw("failed to convert currency", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.ConversionErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, models.ConversionResponse{
			FromCurrency: conv.From,
			ToCurrency:   conv.To,
			Rate:         conv.Rate,
			Value:        conv.Value,
			Description:  conv.Description,
		})
	}
}
