package handlers

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// ExchangeRatesReader defines the interface that the service must implement.
type ExchangeRatesReader interface {
	Rates(ctx context.Context) (string, converter.RateTable, error)
}

// NewGetExchangeRatesHandler returns an HTTP handler for fetching currency exchange rates.
// @Summary Get exchange rates
// @Description Returns the current rate table quoted against the reference currency
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeRatesResponse "Exchange rates"
// @Failure 503 {object} models.ExchangeRatesErrorResponse "Failed to retrieve exchange rates"
// @Router /exchange/rates [get]
// @Security BearerAuth
func NewGetExchangeRatesHandler(svc ExchangeRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base, rates, err := svc.Rates(r.Context())
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, models.ExchangeRatesErrorResponse{
				Error: "Failed to retrieve exchange rates",
			})
			return
		}

		writeJSON(w, http.StatusOK, models.ExchangeRatesResponse{
			Base:  base,
			Rates: rates,
		})
	}
}
