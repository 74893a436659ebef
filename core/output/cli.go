package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"rent-cost/core/catalog"
	"rent-cost/core/compare"
	"rent-cost/core/cost"
)

const boxWidth = 72

// CLIFormatter renders box tables for a terminal
type CLIFormatter struct {
	catalog     *catalog.Catalog
	showDetails bool
}

// NewCLIFormatter creates a CLI formatter. Slot labels come from c.
func NewCLIFormatter(c *catalog.Catalog, showDetails bool) *CLIFormatter {
	if c == nil {
		c = catalog.Default()
	}
	return &CLIFormatter{catalog: c, showDetails: showDetails}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Binary reports false
func (f *CLIFormatter) Binary() bool { return false }

type boxWriter struct {
	w   io.Writer
	err error
}

func (b *boxWriter) printf(format string, args ...interface{}) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

func (b *boxWriter) rule(left, right string) {
	b.printf("%s%s%s\n", left, strings.Repeat("─", boxWidth-2), right)
}

// row prints a label on the left and a value flush right
func (b *boxWriter) row(label, value string) {
	inner := boxWidth - 4
	room := inner - utf8.RuneCountInString(value) - 1
	b.printf("│ %-*s %s │\n", room, truncate(label, room), value)
}

// Render writes one box per listing, plus a ranking box when there are several
func (f *CLIFormatter) Render(w io.Writer, result *compare.Result) error {
	b := &boxWriter{w: w}

	ok := result.Succeeded()
	if len(ok) > 1 {
		b.rule("┌", "┐")
		b.row("RANKING BY EFFECTIVE RENT", "")
		b.rule("├", "┤")
		for _, e := range ok {
			value := Yen(e.Estimate.Result.AverageMonthlyCost) + "/month"
			if e.Rank > 1 {
				value = fmt.Sprintf("%s (%s)", value, SignedYen(e.DeltaFromCheapest))
			}
			b.row(fmt.Sprintf("%d. %s", e.Rank, e.Name), value)
		}
		b.rule("└", "┘")
		b.printf("\n")
	}

	for _, e := range ok {
		f.renderEstimate(b, e, len(ok))
		b.printf("\n")
	}

	for _, e := range result.Failed() {
		b.printf("✗ %s: %v\n", e.Name, e.Err)
	}
	return b.err
}

func (f *CLIFormatter) renderEstimate(b *boxWriter, e compare.Entry, total int) {
	r := e.Estimate.Result

	b.rule("┌", "┐")
	title := e.Name
	if title == "" {
		title = "LISTING"
	}
	rank := ""
	if total > 1 {
		rank = fmt.Sprintf("rank %d of %d", e.Rank, total)
	}
	b.row(title, rank)
	b.rule("├", "┤")

	b.row("Effective rent", Yen(r.AverageMonthlyCost)+"/month")
	b.row("Rent + management fee", Yen(r.NominalAverageMonthlyCost)+"/month")
	b.row("Difference", fmt.Sprintf("%s/month (%s)", SignedYen(r.MonthlyPremium()), PremiumPercentString(r)))
	b.row(fmt.Sprintf("Total over %d months", r.LeasePeriodMonths), Yen(r.TotalCost))
	b.row(fmt.Sprintf("Rent + management fee over %d months", r.LeasePeriodMonths), Yen(r.NominalTotalCost))

	if f.showDetails && len(e.Estimate.Lines) > 0 {
		b.rule("├", "┤")
		for _, l := range e.Estimate.Lines {
			b.row("└─ "+f.lineLabel(l), f.lineValue(l))
		}
	}

	if len(e.Issues) > 0 {
		b.rule("├", "┤")
		for _, issue := range e.Issues {
			b.row("! "+f.catalog.Label(issue.Slot)+": "+issue.Message, "")
		}
	}
	b.rule("└", "┘")
}

func (f *CLIFormatter) lineLabel(l cost.Line) string {
	return fmt.Sprintf("%s (%s)", f.catalog.Label(l.Slot), l.Item.Unit)
}

func (f *CLIFormatter) lineValue(l cost.Line) string {
	switch {
	case l.Slot.IsDuration():
		return fmt.Sprintf("%d months", l.Resolved)
	case !l.Included:
		return Yen(l.Resolved) + " (not counted)"
	default:
		return Yen(l.Contribution)
	}
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
