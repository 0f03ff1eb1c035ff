// Package tools exposes the banking calculators as MCP tools.
//
// Each tool follows the same shape:
//   - a struct holding its service dependency, injected via constructor
//   - Definition() returns the mcp.Tool schema
//   - Handle() processes the call and returns a text result
//
// Domain failures are returned as tool-error results so the calling agent can
// read them; protocol errors are reserved for transport problems.
package tools

//go:generate mockgen -source=tools.go -destination=tools_mock.go -package=tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/deposit"
)

// CurrencyConverter converts amounts between currencies.
type CurrencyConverter interface {
	Convert(ctx context.Context, from, to string, amount *float64) (converter.Conversion, error)
}

// DepositCalculator computes deposit profitability.
type DepositCalculator interface {
	Calculate(ctx context.Context, req deposit.Request) (deposit.Result, error)
}

// ExchangeRatesReader returns the current rate table with its reference currency.
type ExchangeRatesReader interface {
	Rates(ctx context.Context) (string, converter.RateTable, error)
}

// NewServer registers all tools on a new MCP server.
func NewServer(name, version string, conv CurrencyConverter, calc DepositCalculator, rates ExchangeRatesReader) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	converterTool := NewCurrencyConverterTool(conv)
	s.AddTool(converterTool.Definition(), converterTool.Handle)

	depositTool := NewDepositTool(calc)
	s.AddTool(depositTool.Definition(), depositTool.Handle)

	ratesTool := NewExchangeRatesTool(rates)
	s.AddTool(ratesTool.Definition(), ratesTool.Handle)

	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}

// floatArg extracts a number argument. JSON numbers arrive as float64.
func floatArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	return v, ok
}

// stringArg extracts a string argument, returning defaultVal when missing or empty.
func stringArg(req mcp.CallToolRequest, key, defaultVal string) string {
	v, ok := req.GetArguments()[key].(string)
	if !ok || v == "" {
		return defaultVal
	}
	return v
}
