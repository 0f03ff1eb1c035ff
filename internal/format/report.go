package format

import (
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-bank-agent/internal/deposit"
)

var frequencyNotes = map[deposit.Frequency]string{
	deposit.Monthly:   "Monthly capitalization credits interest 12 times a year",
	deposit.Quarterly: "Quarterly capitalization credits interest 4 times a year",
	deposit.Annually:  "Annual capitalization credits interest once a year",
}

// DepositReport renders a deposit calculation as a text report.
func DepositReport(req deposit.Request, res deposit.Result) string {
	var b strings.Builder

	b.WriteString("**Deposit profitability**\n\n")
	b.WriteString("**Initial data:**\n")
	fmt.Fprintf(&b, "• Initial amount: %s\n", Money(req.Principal))
	fmt.Fprintf(&b, "• Interest rate: %s%% per annum\n", printer.Sprint(req.AnnualRate))
	fmt.Fprintf(&b, "• Term: %d months (%s years)\n", req.TermMonths, Years(req.TermMonths))
	fmt.Fprintf(&b, "• Capitalization: %s\n\n", req.Frequency)

	b.WriteString("**Result:**\n")
	fmt.Fprintf(&b, "• Final amount: %s\n", Money(res.FinalAmount))
	fmt.Fprintf(&b, "• Interest earned: %s\n", Money(res.InterestEarned))
	fmt.Fprintf(&b, "• Effective rate: %s\n", Percent(res.EffectiveRate))

	if note, ok := frequencyNotes[req.Frequency]; ok {
		fmt.Fprintf(&b, "\n%s\n", note)
	}

	return b.String()
}
