package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/models"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
)

// CurrencyConverterTool handles the currency_converter tool.
type CurrencyConverterTool struct {
	svc CurrencyConverter
}

// NewCurrencyConverterTool creates a CurrencyConverterTool.
func NewCurrencyConverterTool(svc CurrencyConverter) *CurrencyConverterTool {
	return &CurrencyConverterTool{svc: svc}
}

// Definition returns the MCP tool definition.
func (t *CurrencyConverterTool) Definition() mcp.Tool {
	return mcp.NewTool("currency_converter",
		mcp.WithDescription("Convert between currencies at the current central bank rates. Any pair of supported currencies is converted through the reference currency."),
		mcp.WithString("from_currency",
			mcp.Description("Source currency"),
			mcp.Enum(models.SupportedCurrencies...),
			mcp.DefaultString(models.USD),
		),
		mcp.WithString("to_currency",
			mcp.Description("Target currency"),
			mcp.Enum(models.SupportedCurrencies...),
			mcp.DefaultString(models.RUB),
		),
		mcp.WithNumber("amount",
			mcp.Description("Amount to convert; when omitted only the rate is returned"),
			mcp.Min(0),
		),
	)
}

// Handle processes the currency_converter tool call.
func (t *CurrencyConverterTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from := stringArg(req, "from_currency", models.USD)
	to := stringArg(req, "to_currency", models.RUB)

	var amount *float64
	if v, ok := floatArg(req, "amount"); ok {
		amount = &v
	}

	logger.Log.Infow("currency_converter called", "from", from, "to", to, "amount", amount)

	conv, err := t.svc.Convert(ctx, from, to, amount)
	switch {
	case errors.Is(err, converter.ErrRatesUnavailable):
		return mcp.NewToolResultError("Failed to retrieve exchange rates"), nil
	case errors.Is(err, converter.ErrUnsupportedCurrency):
		return mcp.NewToolResultError(err.Error()), nil
	case errors.Is(err, services.ErrResultOutOfRange):
		return mcp.NewToolResultError("Conversion error: the result is too large to represent"), nil
	case err != nil:
		logger.Log.Errorw("currency_converter failed", "error", err)
		return mcp.NewToolResultError("Unexpected conversion error: " + err.Error()), nil
	}

	return mcp.NewToolResultText(conv.Description), nil
}
