package services

//go:generate mockgen -source=rates.go -destination=rates_mock.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

// ExchangeRateSource fetches the current rate table from an external service.
type ExchangeRateSource interface {
	GetExchangeRates(ctx context.Context) (converter.RateTable, error) // Returns rates quoted against the reference currency
}

// ExchangeRateCache caches rate tables per reference currency.
type ExchangeRateCache interface {
	GetExchangeRates(ctx context.Context, reference string) (converter.RateTable, error)      // Returns the cached table
	SetExchangeRates(ctx context.Context, reference string, rates converter.RateTable) error // Stores the table
}

// RateService supplies rate tables to the converter. It never fails: any
// source error yields an empty table.
type RateService struct {
	source    ExchangeRateSource
	cache     ExchangeRateCache
	reference string
}

// NewRateService creates a RateService. cache may be nil.
func NewRateService(source ExchangeRateSource, cache ExchangeRateCache, reference string) *RateService {
	return &RateService{
		source:    source,
		cache:     cache,
		reference: reference,
	}
}

// Reference returns the currency the tables are quoted against.
func (s *RateService) Reference() string {
	return s.reference
}

// GetRates returns the current table, preferring the cache.
func (s *RateService) GetRates(ctx context.Context) converter.RateTable {
	if s.cache != nil {
		rates, err := s.cache.GetExchangeRates(ctx, s.reference)
		if err == nil && len(rates) > 0 {
			return rates
		}
		logger.Log.Debugw("exchange rates not served from cache", "reference", s.reference, "error", err)
	}

	rates, err := s.source.GetExchangeRates(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "reference", s.reference, "error", err)
		return converter.RateTable{}
	}
	if len(rates) == 0 {
		logger.Log.Warnw("exchange rate source returned no rates", "reference", s.reference)
		return converter.RateTable{}
	}

	if s.cache != nil {
		if err := s.cache.SetExchangeRates(ctx, s.reference, rates); err != nil {
			logger.Log.Errorw("failed to cache exchange rates", "reference", s.reference, "error", err)
		}
	}

	return rates
}
