package services

//go:generate mockgen -source=conversion.go -destination=conversion_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
)

// RatesGetter supplies the rate table for a conversion. An empty table means
// rates are unavailable.
type RatesGetter interface {
	GetRates(ctx context.Context) converter.RateTable
}

// ConversionService converts currencies with freshly supplied rates.
type ConversionService struct {
	rates     RatesGetter
	converter *converter.Converter
	recorder  *CalculationRecorder
}

// NewConversionService creates a ConversionService. recorder may be nil.
func NewConversionService(rates RatesGetter, conv *converter.Converter, recorder *CalculationRecorder) *ConversionService {
	return &ConversionService{
		rates:     rates,
		converter: conv,
		recorder:  recorder,
	}
}

// Convert converts amount from one currency to another. A nil amount asks for the rate only.
func (s *ConversionService) Convert(ctx context.Context, from, to string, amount *float64) (converter.Conversion, error) {
	table := s.rates.GetRates(ctx)

	conv, err := s.converter.Convert(from, to, amount, table)
	if err != nil {
		logger.Log.Warnw("currency conversion failed", "from", from, "to", to, "error", err)
		return converter.Conversion{}, err
	}
	if !finite(conv.Value, conv.Rate) {
		logger.Log.Warnw("currency conversion overflowed", "from", from, "to", to)
		return converter.Conversion{}, ErrResultOutOfRange
	}

	input := models.ConversionRequest{
		FromCurrency: conv.From,
		ToCurrency:   conv.To,
		Amount:       amount,
	}
	s.recorder.Record(ctx, models.CalculationConversion, input, conv.Value, conv.Description)

	return conv, nil
}

// Rates returns the reference currency and the current table.
func (s *ConversionService) Rates(ctx context.Context) (string, converter.RateTable, error) {
	table := s.rates.GetRates(ctx)
	if len(table) == 0 {
		return s.converter.Reference(), nil, converter.ErrRatesUnavailable
	}
	return s.converter.Reference(), table, nil
}
