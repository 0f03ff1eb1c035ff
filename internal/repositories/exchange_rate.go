package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

// ErrCacheMiss is returned when no rate table is cached for the reference currency.
var ErrCacheMiss = errors.New("exchange rates not found in cache")

// ExchangeRateCacheRepository caches whole rate tables in a Redis hash
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with the given TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func exchangeRatesKey(reference string) string {
	return fmt.Sprintf("exchange_rates:%s", reference)
}

// GetExchangeRates returns the cached table quoted against reference
func (r *ExchangeRateCacheRepository) GetExchangeRates(ctx context.Context, reference string) (converter.RateTable, error) {
	key := exchangeRatesKey(reference)

	vals, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		logger.Log.Errorw("failed to read cached exchange rates", "key", key, "error", err)
		return nil, err
	}
	if len(vals) == 0 {
		logger.Log.Debugw("exchange rates cache miss", "key", key)
		return nil, ErrCacheMiss
	}

	rates := make(converter.RateTable, len(vals))
	for code, raw := range vals {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Log.Errorw("invalid cached exchange rate", "key", key, "currency", code, "value", raw, "error", err)
			return nil, fmt.Errorf("parsing cached rate for %s: %w", code, err)
		}
		rates[code] = rate
	}

	logger.Log.Debugw("exchange rates cache hit", "key", key, "currencies", len(rates))
	return rates, nil
}

// SetExchangeRates replaces the cached table for reference and sets its expiration
func (r *ExchangeRateCacheRepository) SetExchangeRates(ctx context.Context, reference string, rates converter.RateTable) error {
	if len(rates) == 0 {
		return nil
	}

	key := exchangeRatesKey(reference)
	fields := make(map[string]any, len(rates))
	for code, rate := range rates {
		fields[code] = strconv.FormatFloat(rate, 'g', -1, 64)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, r.exp)
		return nil
	})

	logger.Log.Infow("exchange rates cached",
		"key", key,
		"currencies", len(rates),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
