package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amountOf(v float64) *float64 {
	return &v
}

func TestConverter_Convert(t *testing.T) {
	table := RateTable{"USD": 0.0124, "EUR": 0.0114, "CNY": 0.0885}
	c := New("")

	tests := []struct {
		name      string
		from      string
		to        string
		amount    *float64
		wantRate  float64
		wantValue float64
		wantDesc  []string
	}{
		{
			name:      "reference_to_foreign",
			from:      "RUB",
			to:        "USD",
			amount:    amountOf(1000),
			wantRate:  0.0124,
			wantValue: 12.4,
			wantDesc:  []string{"1,000.00 RUB = 12.40 USD", "1 RUB = 0.012400 USD", "1 USD ≈ 80.65 RUB"},
		},
		{
			name:      "foreign_to_reference",
			from:      "USD",
			to:        "RUB",
			amount:    amountOf(12.4),
			wantRate:  1 / 0.0124,
			wantValue: 1000,
			wantDesc:  []string{"12.40 USD = 1,000.00 RUB", "1 USD = 80.65 RUB", "1 RUB = 0.012400 USD"},
		},
		{
			name:      "cross_via_reference",
			from:      "USD",
			to:        "EUR",
			amount:    amountOf(100),
			wantRate:  (1 / 0.0124) * 0.0114,
			wantValue: 100 * (1 / 0.0124) * 0.0114,
			wantDesc:  []string{"100.00 USD = 91.94 EUR", "1 USD = 0.919355 EUR (via RUB)"},
		},
		{
			name:      "rate_only_reference_to_foreign",
			from:      "RUB",
			to:        "USD",
			wantRate:  0.0124,
			wantValue: 0.0124,
			wantDesc:  []string{"1 RUB = 0.012400 USD (or 1 USD ≈ 80.65 RUB)"},
		},
		{
			name:      "rate_only_foreign_to_reference",
			from:      "USD",
			to:        "RUB",
			wantRate:  1 / 0.0124,
			wantValue: 1 / 0.0124,
			wantDesc:  []string{"1 USD = 80.65 RUB (or 1 RUB = 0.012400 USD)"},
		},
		{
			name:      "rate_only_cross",
			from:      "EUR",
			to:        "CNY",
			wantRate:  (1 / 0.0114) * 0.0885,
			wantValue: (1 / 0.0114) * 0.0885,
			wantDesc:  []string{"1 EUR = 7.763158 CNY (via RUB)"},
		},
		{
			name:      "lowercase_codes",
			from:      "rub",
			to:        " usd ",
			amount:    amountOf(1000),
			wantRate:  0.0124,
			wantValue: 12.4,
			wantDesc:  []string{"RUB = 12.40 USD"},
		},
		{
			name:      "same_currency_with_amount",
			from:      "EUR",
			to:        "eur",
			amount:    amountOf(42.5),
			wantRate:  1,
			wantValue: 42.5,
			wantDesc:  []string{"42.50 EUR = 42.50 EUR", "1 EUR = 1 EUR"},
		},
		{
			name:      "same_currency_rate_only",
			from:      "RUB",
			to:        "RUB",
			wantRate:  1,
			wantValue: 1,
			wantDesc:  []string{"1 RUB = 1 RUB"},
		},
		{
			name:      "zero_amount_is_converted",
			from:      "RUB",
			to:        "USD",
			amount:    amountOf(0),
			wantRate:  0.0124,
			wantValue: 0,
			wantDesc:  []string{"0.00 RUB = 0.00 USD"},
		},
		{
			name:      "negative_amount_passes_through",
			from:      "USD",
			to:        "RUB",
			amount:    amountOf(-12.4),
			wantRate:  1 / 0.0124,
			wantValue: -1000,
			wantDesc:  []string{"-12.40 USD = -1,000.00 RUB"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := c.Convert(tt.from, tt.to, tt.amount, table)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantRate, conv.Rate, 1e-9)
			assert.InDelta(t, tt.wantValue, conv.Value, 1e-9)
			for _, part := range tt.wantDesc {
				assert.Contains(t, conv.Description, part)
			}
		})
	}
}

func TestConverter_Convert_Errors(t *testing.T) {
	c := New(DefaultReference)

	tests := []struct {
		name     string
		from     string
		to       string
		table    RateTable
		wantErr  error
		wantSide string
		wantCode string
	}{
		{
			name:    "empty_table",
			from:    "RUB",
			to:      "USD",
			table:   RateTable{},
			wantErr: ErrRatesUnavailable,
		},
		{
			name:    "nil_table_same_currency",
			from:    "USD",
			to:      "USD",
			table:   nil,
			wantErr: ErrRatesUnavailable,
		},
		{
			name:     "unknown_to",
			from:     "RUB",
			to:       "XYZ",
			table:    RateTable{"USD": 0.0124},
			wantErr:  ErrUnsupportedCurrency,
			wantSide: SideTo,
			wantCode: "XYZ",
		},
		{
			name:     "unknown_from",
			from:     "abc",
			to:       "USD",
			table:    RateTable{"USD": 0.0124},
			wantErr:  ErrUnsupportedCurrency,
			wantSide: SideFrom,
			wantCode: "ABC",
		},
		{
			name:     "both_unknown_reports_from",
			from:     "ABC",
			to:       "XYZ",
			table:    RateTable{"USD": 0.0124},
			wantErr:  ErrUnsupportedCurrency,
			wantSide: SideFrom,
			wantCode: "ABC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := c.Convert(tt.from, tt.to, amountOf(100), tt.table)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Conversion{}, conv)

			var curErr *CurrencyError
			if tt.wantSide != "" {
				require.True(t, errors.As(err, &curErr))
				assert.Equal(t, tt.wantSide, curErr.Side)
				assert.Equal(t, tt.wantCode, curErr.Currency)
			}
		})
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	table := RateTable{"USD": 0.0124, "EUR": 0.0114, "JPY": 1.83, "GBP": 0.0097}
	c := New("rub")
	codes := []string{"RUB", "USD", "EUR", "JPY", "GBP"}

	for _, a := range codes {
		for _, b := range codes {
			there, err := c.Convert(a, b, amountOf(1234.56), table)
			require.NoError(t, err)

			back, err := c.Convert(b, a, amountOf(there.Value), table)
			require.NoError(t, err)
			assert.InDelta(t, 1234.56, back.Value, 1e-6, "%s -> %s -> %s", a, b, a)
		}
	}
}

func TestConverter_Identity(t *testing.T) {
	c := New("")
	for _, amount := range []float64{0, 1, -3.5, 1e12} {
		conv, err := c.Convert("CHF", "CHF", amountOf(amount), RateTable{"CHF": 0.011})
		require.NoError(t, err)
		assert.Equal(t, amount, conv.Value)
		assert.Equal(t, 1.0, conv.Rate)
	}
}

func TestConverter_DoesNotMutateTable(t *testing.T) {
	table := RateTable{"USD": 0.0124, "EUR": 0.0114}
	snapshot := RateTable{"USD": 0.0124, "EUR": 0.0114}

	_, err := New("").Convert("USD", "EUR", amountOf(10), table)
	require.NoError(t, err)
	assert.Equal(t, snapshot, table)
}

func TestNew_Reference(t *testing.T) {
	assert.Equal(t, "RUB", New("").Reference())
	assert.Equal(t, "USD", New(" usd").Reference())
}
