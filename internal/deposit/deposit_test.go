package deposit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		req           Request
		wantFinal     float64
		wantInterest  float64
		wantEffective float64
	}{
		{
			name:          "monthly_one_year",
			req:           Request{Principal: 100000, AnnualRate: 12, TermMonths: 12, Frequency: Monthly},
			wantFinal:     112682.5030,
			wantInterest:  12682.5030,
			wantEffective: 12.6825030,
		},
		{
			name:          "annually_one_year",
			req:           Request{Principal: 100000, AnnualRate: 12, TermMonths: 12, Frequency: Annually},
			wantFinal:     112000,
			wantInterest:  12000,
			wantEffective: 12,
		},
		{
			name:          "quarterly_one_year",
			req:           Request{Principal: 100000, AnnualRate: 12, TermMonths: 12, Frequency: Quarterly},
			wantFinal:     112550.8810,
			wantInterest:  12550.8810,
			wantEffective: 12.5508810,
		},
		{
			name:          "zero_rate",
			req:           Request{Principal: 5000, AnnualRate: 0, TermMonths: 36, Frequency: Monthly},
			wantFinal:     5000,
			wantInterest:  0,
			wantEffective: 0,
		},
		{
			name:          "fractional_years_not_truncated",
			req:           Request{Principal: 1000, AnnualRate: 10, TermMonths: 6, Frequency: Annually},
			wantFinal:     1000 * math.Sqrt(1.1),
			wantInterest:  1000*math.Sqrt(1.1) - 1000,
			wantEffective: (math.Sqrt(1.1) - 1) * 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.req)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFinal, res.FinalAmount, 1e-3)
			assert.InDelta(t, tt.wantInterest, res.InterestEarned, 1e-3)
			assert.InDelta(t, tt.wantEffective, res.EffectiveRate, 1e-6)
			assert.Equal(t, res.FinalAmount-tt.req.Principal, res.InterestEarned)
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantErr   error
		wantField string
	}{
		{
			name:      "negative_principal",
			req:       Request{Principal: -5, AnnualRate: 10, TermMonths: 12, Frequency: Monthly},
			wantErr:   ErrInvalidArgument,
			wantField: "principal",
		},
		{
			name:      "zero_principal",
			req:       Request{Principal: 0, AnnualRate: 10, TermMonths: 12, Frequency: Monthly},
			wantErr:   ErrInvalidArgument,
			wantField: "principal",
		},
		{
			name:      "nan_principal",
			req:       Request{Principal: math.NaN(), AnnualRate: 10, TermMonths: 12, Frequency: Monthly},
			wantErr:   ErrInvalidArgument,
			wantField: "principal",
		},
		{
			name:      "negative_rate",
			req:       Request{Principal: 100, AnnualRate: -0.1, TermMonths: 12, Frequency: Monthly},
			wantErr:   ErrInvalidArgument,
			wantField: "annual_rate",
		},
		{
			name:      "zero_term",
			req:       Request{Principal: 100, AnnualRate: 10, TermMonths: 0, Frequency: Monthly},
			wantErr:   ErrInvalidArgument,
			wantField: "term_months",
		},
		{
			name:    "unknown_frequency",
			req:     Request{Principal: 100, AnnualRate: 10, TermMonths: 12, Frequency: "daily"},
			wantErr: ErrUnsupportedFrequency,
		},
		{
			name:      "principal_checked_before_frequency",
			req:       Request{Principal: -1, AnnualRate: -1, TermMonths: 0, Frequency: "weekly"},
			wantErr:   ErrInvalidArgument,
			wantField: "principal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, Result{}, res)

			var argErr *ArgumentError
			if tt.wantField != "" {
				require.True(t, errors.As(err, &argErr))
				assert.Equal(t, tt.wantField, argErr.Field)
			} else {
				assert.False(t, errors.As(err, &argErr))
			}
		})
	}
}

func TestCompute_Properties(t *testing.T) {
	principals := []float64{0.01, 1, 1500, 100000, 1e9}
	rates := []float64{0, 0.5, 7.25, 12, 100}
	terms := []int{1, 3, 12, 37, 1200}

	for _, p := range principals {
		for _, r := range rates {
			for _, m := range terms {
				var prev *Result
				for _, f := range []Frequency{Annually, Quarterly, Monthly} {
					req := Request{Principal: p, AnnualRate: r, TermMonths: m, Frequency: f}
					res, err := Compute(req)
					require.NoError(t, err)

					assert.GreaterOrEqual(t, res.FinalAmount, p)
					assert.GreaterOrEqual(t, res.InterestEarned, 0.0)
					assert.GreaterOrEqual(t, res.EffectiveRate, 0.0)

					again, err := Compute(req)
					require.NoError(t, err)
					assert.Equal(t, res, again)

					if prev != nil {
						assert.GreaterOrEqual(t, res.FinalAmount, prev.FinalAmount)
					}
					prev = &res
				}
			}
		}
	}
}

func TestCompute_Monotonic(t *testing.T) {
	base := Request{Principal: 10000, AnnualRate: 8, TermMonths: 12, Frequency: Quarterly}
	baseRes, err := Compute(base)
	require.NoError(t, err)

	longer := base
	longer.TermMonths = 13
	longerRes, err := Compute(longer)
	require.NoError(t, err)
	assert.Greater(t, longerRes.FinalAmount, baseRes.FinalAmount)

	higher := base
	higher.AnnualRate = 8.01
	higherRes, err := Compute(higher)
	require.NoError(t, err)
	assert.Greater(t, higherRes.FinalAmount, baseRes.FinalAmount)
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		freq    Frequency
		periods int
		valid   bool
	}{
		{Monthly, 12, true},
		{Quarterly, 4, true},
		{Annually, 1, true},
		{"MONTHLY", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.freq), func(t *testing.T) {
			n, ok := tt.freq.PeriodsPerYear()
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.periods, n)
			assert.Equal(t, tt.valid, tt.freq.Valid())
		})
	}

	assert.Equal(t, []Frequency{Monthly, Quarterly, Annually}, Frequencies())
}
