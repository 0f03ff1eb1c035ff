package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
)

func TestConvertCurrencyHandler(t *testing.T) {
	amount := 1000.0

	tests := []struct {
		name       string
		body       string
		setupMocks func(m *MockCurrencyConverter)
		wantCode   int
		wantBody   map[string]any
	}{
		{
			name: "success_with_amount",
			body: `{"from_currency":"RUB","to_currency":"USD","amount":1000}`,
			setupMocks: func(m *MockCurrencyConverter) {
				m.EXPECT().Convert(gomock.Any(), "RUB", "USD", &amount).
					Return(converter.Conversion{From: "RUB", To: "USD", Rate: 0.0124, Value: 12.4, Description: "1,000.00 RUB = 12.40 USD"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{
				"from_currency": "RUB",
				"to_currency":   "USD",
				"rate":          0.0124,
				"value":         12.4,
				"description":   "1,000.00 RUB = 12.40 USD",
			},
		},
		{
			name: "rate_only",
			body: `{"from_currency":"usd","to_currency":"rub"}`,
			setupMocks: func(m *MockCurrencyConverter) {
				m.EXPECT().Convert(gomock.Any(), "usd", "rub", gomock.Nil()).
					Return(converter.Conversion{From: "USD", To: "RUB", Rate: 80.5, Value: 80.5, Description: "1 USD = 80.50 RUB"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{
				"from_currency": "USD",
				"to_currency":   "RUB",
				"rate":          80.5,
				"value":         80.5,
				"description":   "1 USD = 80.50 RUB",
			},
		},
		{
			name:       "invalid_json",
			body:       `{`,
			setupMocks: func(m *MockCurrencyConverter) {},
			wantCode:   http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid request body"},
		},
		{
			name:       "invalid_code",
			body:       `{"from_currency":"US1","to_currency":"RUB"}`,
			setupMocks: func(m *MockCurrencyConverter) {},
			wantCode:   http.StatusBadRequest,
			wantBody:   map[string]any{"error": "Invalid currency code"},
		},
		{
			name: "unsupported_currency",
			body: `{"from_currency":"RUB","to_currency":"XYZ","amount":1000}`,
			setupMocks: func(m *MockCurrencyConverter) {
				m.EXPECT().Convert(gomock.Any(), "RUB", "XYZ", gomock.Any()).
					Return(converter.Conversion{}, &converter.CurrencyError{Side: converter.SideTo, Currency: "XYZ"})
			},
			wantCode: http.StatusBadRequest,
			wantBody: map[string]any{"error": "unsupported currency: XYZ (to_currency)"},
		},
		{
			name: "rates_unavailable",
			body: `{"from_currency":"RUB","to_currency":"USD"}`,
			setupMocks: func(m *MockCurrencyConverter) {
				m.EXPECT().Convert(gomock.Any(), "RUB", "USD", gomock.Any()).
					Return(converter.Conversion{}, converter.ErrRatesUnavailable)
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: map[string]any{"error": "Failed to retrieve exchange rates"},
		},
		{
			name: "result_out_of_range",
			body: `{"from_currency":"RUB","to_currency":"USD","amount":1e308}`,
			setupMocks: func(m *MockCurrencyConverter) {
				m.EXPECT().Convert(gomock.Any(), "RUB", "USD", gomock.Any()).
					Return(converter.Conversion{}, services.ErrResultOutOfRange)
			},
			wantCode: http.StatusUnprocessableEntity,
			wantBody: map[string]any{"error": "Result is out of range"},
		},
		{
			name: "internal_error",
			body: `{"from_currency":"RUB","to_currency":"USD"}`,
			setupMocks: func(m *MockCurrencyConverter) {
				m.EXPECT().Convert(gomock.Any(), "RUB", "USD", gomock.Any()).
					Return(converter.Conversion{}, errors.New("boom"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockConv := NewMockCurrencyConverter(ctrl)
			tt.setupMocks(mockConv)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/currency/convert", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			NewConvertCurrencyHandler(mockConv)(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
