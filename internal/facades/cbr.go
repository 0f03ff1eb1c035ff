package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

// CBRLatestURL serves the daily Central Bank of Russia rates quoted against RUB.
const CBRLatestURL = "https://www.cbr-xml-daily.ru/latest.js"

// cbrResponse is the subset of the CBR daily JSON we rely on.
type cbrResponse struct {
	Date  string             `json:"date"`
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// ExchangeRatesCBRFacade loads rate tables from the CBR daily JSON feed.
type ExchangeRatesCBRFacade struct {
	url       string
	reference string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewExchangeRatesCBRFacade creates a facade for url. Outbound requests are
// limited to requestsPerSecond; a non-positive value disables the limit.
func NewExchangeRatesCBRFacade(url, reference string, timeout time.Duration, requestsPerSecond float64) *ExchangeRatesCBRFacade {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &ExchangeRatesCBRFacade{
		url:       url,
		reference: strings.ToUpper(reference),
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// GetExchangeRates fetches the latest rate table.
func (f *ExchangeRatesCBRFacade) GetExchangeRates(ctx context.Context) (converter.RateTable, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates from CBR", "url", f.url, "error", err)
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Log.Errorw("unexpected CBR response status", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	var body cbrResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	if body.Base != "" && !strings.EqualFold(body.Base, f.reference) {
		return nil, fmt.Errorf("rates quoted against %s, expected %s", body.Base, f.reference)
	}

	rates := normalizeRates(body.Rates, f.reference)
	logger.Log.Infow("exchange rates loaded from CBR", "date", body.Date, "currencies", len(rates))

	return rates, nil
}

// normalizeRates upper-cases codes and drops the reference currency and
// entries that cannot be divided by.
func normalizeRates(in map[string]float64, reference string) converter.RateTable {
	out := make(converter.RateTable, len(in))
	for code, value := range in {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || code == reference || !(value > 0) {
			continue
		}
		out[code] = value
	}
	return out
}
