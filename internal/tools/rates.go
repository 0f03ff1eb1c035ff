package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sbilibin2017/gw-bank-agent/internal/format"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

// ExchangeRatesTool handles the exchange_rates tool.
type ExchangeRatesTool struct {
	svc ExchangeRatesReader
}

// NewExchangeRatesTool creates an ExchangeRatesTool.
func NewExchangeRatesTool(svc ExchangeRatesReader) *ExchangeRatesTool {
	return &ExchangeRatesTool{svc: svc}
}

// Definition returns the MCP tool definition.
func (t *ExchangeRatesTool) Definition() mcp.Tool {
	return mcp.NewTool("exchange_rates",
		mcp.WithDescription("List the current exchange rates against the reference currency."),
	)
}

// Handle processes the exchange_rates tool call.
func (t *ExchangeRatesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reference, table, err := t.svc.Rates(ctx)
	if err != nil {
		logger.Log.Warnw("exchange_rates failed", "error", err)
		return mcp.NewToolResultError("Failed to retrieve exchange rates"), nil
	}

	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var b strings.Builder
	fmt.Fprintf(&b, "Exchange rates (base %s):\n", reference)
	for _, code := range codes {
		fmt.Fprintf(&b, "• 1 %s = %s %s\n", code, format.Rate(1/table[code], 4), reference)
	}

	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
