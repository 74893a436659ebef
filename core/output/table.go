package output

import (
	"fmt"
	"io"
	"os"

	"rent-cost/core/compare"
	"rent-cost/core/ui"
)

// premiumWarnPercent marks listings whose hidden costs add more than this share
// to rent plus management fee
const premiumWarnPercent = 10

// TableFormatter renders one row per listing, cheapest first
type TableFormatter struct {
	noColor bool
}

// NewTableFormatter creates a table formatter
func NewTableFormatter(noColor bool) *TableFormatter {
	return &TableFormatter{noColor: noColor}
}

// Format returns the format type
func (f *TableFormatter) Format() Format { return FormatTable }

// Binary reports false
func (f *TableFormatter) Binary() bool { return false }

// Render writes the ranking table, then the cheapest listing, catalog
// issues and failures as status lines
func (f *TableFormatter) Render(w io.Writer, result *compare.Result) error {
	uw := ui.NewWriter(w, f.noColor)
	uw.Header("Ranking by effective rent")

	table := uw.NewTable("#", "Listing", "Effective", "Rent+mgmt", "Premium", "%", "Total", "Months")
	for _, col := range []int{0, 2, 3, 4, 5, 6, 7} {
		table.SetAlign(col, ui.AlignRight)
	}

	for _, e := range result.Succeeded() {
		r := e.Estimate.Result

		color := ""
		if e.Rank == 1 {
			color = ui.Green
		} else if pct, ok := PremiumPercent(r); ok && pct.IntPart() >= premiumWarnPercent {
			color = ui.Yellow
		}

		table.AddColoredRow(color,
			fmt.Sprint(e.Rank),
			e.Name,
			Yen(r.AverageMonthlyCost),
			Yen(r.NominalAverageMonthlyCost),
			SignedYen(r.MonthlyPremium()),
			PremiumPercentString(r),
			Yen(r.TotalCost),
			fmt.Sprint(r.LeasePeriodMonths),
		)
	}
	table.Render()

	ok := result.Succeeded()
	if len(ok) > 0 {
		uw.Success("cheapest: %s at %s/month", ok[0].Name, Yen(ok[0].Estimate.Result.AverageMonthlyCost))
	}
	for _, e := range ok {
		for _, issue := range e.Issues {
			uw.Warning("%s: %s", e.Name, issue)
		}
	}
	for _, e := range result.Failed() {
		uw.Error("%s: %v", e.Name, e.Err)
	}
	return uw.Err()
}

// colorDisabled follows the NO_COLOR convention
func colorDisabled() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
