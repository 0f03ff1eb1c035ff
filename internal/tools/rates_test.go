package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
)

func TestExchangeRatesTool_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockExchangeRatesReader(ctrl)
	m.EXPECT().Rates(gomock.Any()).Return("RUB", converter.RateTable{"USD": 0.0125, "EUR": 0.0108}, nil)

	res, err := NewExchangeRatesTool(m).Handle(context.Background(), newCall("exchange_rates", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "base RUB")
	assert.Contains(t, text, "• 1 USD = 80.0000 RUB")
	assert.Less(t, strings.Index(text, "EUR"), strings.Index(text, "USD"))
}

func TestExchangeRatesTool_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockExchangeRatesReader(ctrl)
	m.EXPECT().Rates(gomock.Any()).Return("", nil, converter.ErrRatesUnavailable)

	res, err := NewExchangeRatesTool(m).Handle(context.Background(), newCall("exchange_rates", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Failed to retrieve exchange rates", resultText(t, res))
}
