// Package output provides output formatting for estimates and comparisons.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rent-cost/core/catalog"
	"rent-cost/core/compare"
	"rent-cost/core/determinism"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatTable is a compact ranking table, one row per listing
	FormatTable Format = "table"

	// FormatXLSX is an Excel workbook
	FormatXLSX Format = "xlsx"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Binary reports whether the output should not be written to a terminal
	Binary() bool

	// Render produces output for the given comparison
	Render(w io.Writer, result *compare.Result) error
}

// Registry manages formatter registration
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry with every built-in formatter
func DefaultRegistry(c *catalog.Catalog, showDetails bool) *Registry {
	r := NewRegistry()
	r.Register(NewCLIFormatter(c, showDetails))
	r.Register(NewTableFormatter(colorDisabled()))
	r.Register(&JSONFormatter{})
	r.Register(&YAMLFormatter{})
	r.Register(NewXLSXFormatter(c))
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	f, ok := r.formatters[Format(strings.ToLower(name))]
	if !ok {
		return nil, errors.NotSupported("output format " + name).WithContext("available", r.Names())
	}
	return f, nil
}

// Names lists registered format names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formatters))
	for _, f := range determinism.SortedKeys(r.formatters) {
		names = append(names, string(f))
	}
	return names
}

var printer = message.NewPrinter(language.Japanese)

// Yen renders whole yen with thousands separators
func Yen(v int64) string {
	if v < 0 {
		return "-" + printer.Sprintf("¥%d", -v)
	}
	return printer.Sprintf("¥%d", v)
}

// SignedYen renders a difference with an explicit sign
func SignedYen(v int64) string {
	if v > 0 {
		return "+" + Yen(v)
	}
	return Yen(v)
}

var hundred = decimal.NewFromInt(100)

// PremiumPercent is the monthly premium as a share of rent plus management fee,
// rounded to one decimal place. It is undefined when the nominal figure is zero.
func PremiumPercent(r types.CostResult) (decimal.Decimal, bool) {
	if r.NominalAverageMonthlyCost == 0 {
		return decimal.Zero, false
	}
	pct := decimal.NewFromInt(r.MonthlyPremium()).
		Div(decimal.NewFromInt(r.NominalAverageMonthlyCost)).
		Mul(hundred).
		Round(1)
	return pct, true
}

// PremiumPercentString renders PremiumPercent as "12.5%" or "n/a"
func PremiumPercentString(r types.CostResult) string {
	pct, ok := PremiumPercent(r)
	if !ok {
		return "n/a"
	}
	return pct.StringFixed(1) + "%"
}

// errorView is the serialized form of a failed listing
type errorView struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
}

func viewError(err error) *errorView {
	if err == nil {
		return nil
	}
	if e, ok := errors.As(err); ok {
		return &errorView{Type: string(e.Type), Message: e.Message, Field: e.Field()}
	}
	return &errorView{Type: string(errors.TypeInternal), Message: err.Error()}
}
