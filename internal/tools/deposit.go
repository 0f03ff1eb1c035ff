package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sbilibin2017/gw-bank-agent/internal/deposit"
	"github.com/sbilibin2017/gw-bank-agent/internal/format"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
)

const depositNote = "\n\nNote: calculated with the compound interest formula for the selected capitalization frequency."

// DepositTool handles the calculate_deposit_profitability tool.
type DepositTool struct {
	svc DepositCalculator
}

// NewDepositTool creates a DepositTool.
func NewDepositTool(svc DepositCalculator) *DepositTool {
	return &DepositTool{svc: svc}
}

// Definition returns the MCP tool definition.
func (t *DepositTool) Definition() mcp.Tool {
	return mcp.NewTool("calculate_deposit_profitability",
		mcp.WithDescription("Calculate deposit profitability with interest capitalization (monthly, quarterly or annually)."),
		mcp.WithNumber("initial_amount",
			mcp.Required(),
			mcp.Description("Initial deposit amount"),
			mcp.Min(0.01),
		),
		mcp.WithNumber("annual_rate",
			mcp.Required(),
			mcp.Description("Annual interest rate, percent"),
			mcp.Min(0),
			mcp.Max(100),
		),
		mcp.WithNumber("term_months",
			mcp.Required(),
			mcp.Description("Deposit term in months"),
			mcp.Min(1),
			mcp.Max(1200),
		),
		mcp.WithString("compounding_frequency",
			mcp.Required(),
			mcp.Description("Interest capitalization frequency"),
			mcp.Enum(frequencyNames()...),
		),
	)
}

// Handle processes the calculate_deposit_profitability tool call.
func (t *DepositTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	principal, ok := floatArg(req, "initial_amount")
	if !ok {
		return mcp.NewToolResultError("initial_amount is required"), nil
	}
	annualRate, ok := floatArg(req, "annual_rate")
	if !ok {
		return mcp.NewToolResultError("annual_rate is required"), nil
	}
	term, ok := floatArg(req, "term_months")
	if !ok {
		return mcp.NewToolResultError("term_months is required"), nil
	}
	if term != float64(int(term)) {
		return mcp.NewToolResultError("term_months must be a whole number of months"), nil
	}
	if annualRate > 100 || term > 1200 {
		return mcp.NewToolResultError("annual_rate must be at most 100 and term_months at most 1200"), nil
	}

	dreq := deposit.Request{
		Principal:  principal,
		AnnualRate: annualRate,
		TermMonths: int(term),
		Frequency:  deposit.Frequency(stringArg(req, "compounding_frequency", "")),
	}

	logger.Log.Infow("calculate_deposit_profitability called",
		"initial_amount", dreq.Principal,
		"annual_rate", dreq.AnnualRate,
		"term_months", dreq.TermMonths,
		"compounding_frequency", dreq.Frequency,
	)

	res, err := t.svc.Calculate(ctx, dreq)
	switch {
	case errors.Is(err, deposit.ErrUnsupportedFrequency):
		return mcp.NewToolResultError(fmt.Sprintf("Calculation error: %v (allowed: %s)", err, strings.Join(frequencyNames(), ", "))), nil
	case errors.Is(err, services.ErrResultOutOfRange):
		return mcp.NewToolResultError("Calculation error: the result is too large to represent"), nil
	case errors.Is(err, deposit.ErrInvalidArgument):
		return mcp.NewToolResultError("Calculation error: " + err.Error()), nil
	case err != nil:
		logger.Log.Errorw("calculate_deposit_profitability failed", "error", err)
		return mcp.NewToolResultError("Unexpected calculation error: " + err.Error()), nil
	}

	return mcp.NewToolResultText(format.DepositReport(dreq, res) + depositNote), nil
}

func frequencyNames() []string {
	names := make([]string, 0, len(deposit.Frequencies()))
	for _, f := range deposit.Frequencies() {
		names = append(names, f.String())
	}
	return names
}
