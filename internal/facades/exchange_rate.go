package facades

import (
	"context"
	"strings"

	pb "github.com/sbilibin2017/proto-exchange/exchange"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

// ExchangeRatesGRPCFacade loads rate tables from the gw-exchanger service.
// The exchanger must quote its rates against the same reference currency.
type ExchangeRatesGRPCFacade struct {
	client    pb.ExchangeServiceClient
	reference string
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient, reference string) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client, reference: strings.ToUpper(reference)}
}

// GetExchangeRates fetches all exchange rates as a rate table.
func (f *ExchangeRatesGRPCFacade) GetExchangeRates(ctx context.Context) (converter.RateTable, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, err
	}

	rates := make(map[string]float64, len(resp.Rates))
	for currency, rate := range resp.Rates {
		rates[currency] = float64(rate)
	}

	return normalizeRates(rates, f.reference), nil
}
