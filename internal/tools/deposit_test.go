package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-bank-agent/internal/deposit"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
)

func TestDepositTool_Definition(t *testing.T) {
	def := NewDepositTool(nil).Definition()
	assert.Equal(t, "calculate_deposit_profitability", def.Name)
	assert.ElementsMatch(t,
		[]string{"initial_amount", "annual_rate", "term_months", "compounding_frequency"},
		def.InputSchema.Required,
	)
}

func TestDepositTool_Handle(t *testing.T) {
	validArgs := func() map[string]any {
		return map[string]any{
			"initial_amount":        float64(100000),
			"annual_rate":           float64(12),
			"term_months":           float64(12),
			"compounding_frequency": "monthly",
		}
	}
	validReq := deposit.Request{Principal: 100000, AnnualRate: 12, TermMonths: 12, Frequency: deposit.Monthly}

	tests := []struct {
		name      string
		args      func() map[string]any
		setup     func(m *MockDepositCalculator)
		wantError bool
		wantText  []string
	}{
		{
			name: "report",
			args: validArgs,
			setup: func(m *MockDepositCalculator) {
				m.EXPECT().Calculate(gomock.Any(), validReq).DoAndReturn(
					func(_ context.Context, req deposit.Request) (deposit.Result, error) {
						return deposit.Compute(req)
					})
			},
			wantText: []string{
				"**Deposit profitability**",
				"• Initial amount: 100,000.00",
				"• Final amount: 112,682.50",
				"• Effective rate: 12.68%",
				"compound interest formula",
			},
		},
		{
			name: "missing amount",
			args: func() map[string]any {
				a := validArgs()
				delete(a, "initial_amount")
				return a
			},
			setup:     func(m *MockDepositCalculator) {},
			wantError: true,
			wantText:  []string{"initial_amount is required"},
		},
		{
			name: "fractional term",
			args: func() map[string]any {
				a := validArgs()
				a["term_months"] = 6.5
				return a
			},
			setup:     func(m *MockDepositCalculator) {},
			wantError: true,
			wantText:  []string{"whole number"},
		},
		{
			name: "rate above bound",
			args: func() map[string]any {
				a := validArgs()
				a["annual_rate"] = float64(150)
				return a
			},
			setup:     func(m *MockDepositCalculator) {},
			wantError: true,
			wantText:  []string{"at most 100"},
		},
		{
			name: "unsupported frequency",
			args: func() map[string]any {
				a := validArgs()
				a["compounding_frequency"] = "weekly"
				return a
			},
			setup: func(m *MockDepositCalculator) {
				m.EXPECT().Calculate(gomock.Any(), gomock.Any()).
					Return(deposit.Result{}, fmt.Errorf("%w: %q", deposit.ErrUnsupportedFrequency, "weekly"))
			},
			wantError: true,
			wantText:  []string{"weekly", "allowed: monthly, quarterly, annually"},
		},
		{
			name: "invalid principal",
			args: func() map[string]any {
				a := validArgs()
				a["initial_amount"] = float64(0)
				return a
			},
			setup: func(m *MockDepositCalculator) {
				m.EXPECT().Calculate(gomock.Any(), gomock.Any()).
					Return(deposit.Result{}, &deposit.ArgumentError{Field: "principal", Reason: "must be positive"})
			},
			wantError: true,
			wantText:  []string{"Calculation error", "principal"},
		},
		{
			name: "result out of range",
			args: func() map[string]any {
				a := validArgs()
				a["initial_amount"] = 1e300
				a["annual_rate"] = float64(100)
				a["term_months"] = float64(1200)
				return a
			},
			setup: func(m *MockDepositCalculator) {
				m.EXPECT().Calculate(gomock.Any(), gomock.Any()).Return(deposit.Result{}, services.ErrResultOutOfRange)
			},
			wantError: true,
			wantText:  []string{"too large to represent"},
		},
		{
			name: "unexpected error",
			args: validArgs,
			setup: func(m *MockDepositCalculator) {
				m.EXPECT().Calculate(gomock.Any(), validReq).Return(deposit.Result{}, errors.New("boom"))
			},
			wantError: true,
			wantText:  []string{"Unexpected calculation error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockDepositCalculator(ctrl)
			tt.setup(m)

			res, err := NewDepositTool(m).Handle(context.Background(), newCall("calculate_deposit_profitability", tt.args()))
			require.NoError(t, err)
			assert.Equal(t, tt.wantError, res.IsError)

			text := resultText(t, res)
			for _, want := range tt.wantText {
				assert.Contains(t, text, want)
			}
		})
	}
}
