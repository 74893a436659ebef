package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"rent-cost/core/catalog"
	"rent-cost/core/compare"
)

const summarySheet = "Summary"

var summaryHeader = []string{
	"Rank", "Listing", "Effective monthly", "Rent + management monthly", "Monthly premium",
	"Premium %", "Lease months", "Total cost", "Rent + management total", "Delta from cheapest", "Error",
}

// XLSXFormatter writes an Excel workbook: a ranked summary sheet and one
// breakdown sheet per listing that carries breakdown lines.
type XLSXFormatter struct {
	catalog *catalog.Catalog
}

// NewXLSXFormatter creates an xlsx formatter
func NewXLSXFormatter(c *catalog.Catalog) *XLSXFormatter {
	if c == nil {
		c = catalog.Default()
	}
	return &XLSXFormatter{catalog: c}
}

// Format returns the format type
func (f *XLSXFormatter) Format() Format { return FormatXLSX }

// Binary reports true
func (f *XLSXFormatter) Binary() bool { return true }

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func column(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

// sheetName builds a unique, Excel-safe sheet name
func sheetName(index int, name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, name)
	s := fmt.Sprintf("%d %s", index, clean)
	runes := []rune(s)
	if len(runes) > 31 {
		s = string(runes[:31])
	}
	return s
}

// Render writes the workbook
func (f *XLSXFormatter) Render(w io.Writer, result *compare.Result) error {
	book := excelize.NewFile()
	defer book.Close()

	book.SetSheetName("Sheet1", summarySheet)

	for i, h := range summaryHeader {
		if err := book.SetCellValue(summarySheet, cell(column(i), 1), h); err != nil {
			return err
		}
	}

	for i, e := range result.Entries {
		row := i + 2
		values := []interface{}{e.Rank, e.Name}
		if e.Estimate != nil {
			r := e.Estimate.Result
			values = append(values,
				r.AverageMonthlyCost,
				r.NominalAverageMonthlyCost,
				r.MonthlyPremium(),
				PremiumPercentString(r),
				r.LeasePeriodMonths,
				r.TotalCost,
				r.NominalTotalCost,
				e.DeltaFromCheapest,
				"",
			)
		} else {
			values = append(values, "", "", "", "", "", "", "", "", e.Err.Error())
		}
		for col, v := range values {
			if err := book.SetCellValue(summarySheet, cell(column(col), row), v); err != nil {
				return err
			}
		}

		if e.Estimate != nil && len(e.Estimate.Lines) > 0 {
			if err := f.writeBreakdown(book, sheetName(i+1, e.Name), e); err != nil {
				return err
			}
		}
	}

	return book.Write(w)
}

func (f *XLSXFormatter) writeBreakdown(book *excelize.File, sheet string, e compare.Entry) error {
	if _, err := book.NewSheet(sheet); err != nil {
		return err
	}

	header := []string{"Fee", "Amount", "Unit", "Resolved", "Counted", "Contribution", "Formula", "Note"}
	for i, h := range header {
		if err := book.SetCellValue(sheet, cell(column(i), 1), h); err != nil {
			return err
		}
	}

	for i, l := range e.Estimate.Lines {
		row := i + 2
		values := []interface{}{
			f.catalog.Label(l.Slot),
			l.Item.Amount,
			l.Item.Unit.String(),
			l.Resolved,
			l.Included,
			l.Contribution,
			l.Formula,
			l.Note,
		}
		for col, v := range values {
			if err := book.SetCellValue(sheet, cell(column(col), row), v); err != nil {
				return err
			}
		}
	}

	total := len(e.Estimate.Lines) + 2
	if err := book.SetCellValue(sheet, cell("A", total), "Total"); err != nil {
		return err
	}
	return book.SetCellValue(sheet, cell("F", total), e.Estimate.Result.TotalCost)
}
