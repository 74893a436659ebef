package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"rent-cost/core/catalog"
	"rent-cost/core/compare"
	"rent-cost/core/cost"
	"rent-cost/core/types"
)

type entryView struct {
	Rank              int               `json:"rank,omitempty" yaml:"rank,omitempty"`
	Name              string            `json:"name" yaml:"name"`
	Result            *types.CostResult `json:"result,omitempty" yaml:"result,omitempty"`
	MonthlyPremium    int64             `json:"monthly_premium" yaml:"monthly_premium"`
	PremiumPercent    string            `json:"premium_percent,omitempty" yaml:"premium_percent,omitempty"`
	DeltaFromCheapest int64             `json:"delta_from_cheapest" yaml:"delta_from_cheapest"`
	Lines             []cost.Line       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Issues            []catalog.Issue   `json:"issues,omitempty" yaml:"issues,omitempty"`
	Error             *errorView        `json:"error,omitempty" yaml:"error,omitempty"`
}

type reportView struct {
	Currency types.Currency `json:"currency" yaml:"currency"`
	Entries  []entryView    `json:"entries" yaml:"entries"`
}

// View converts a comparison into the structure the JSON and YAML formatters emit
func View(result *compare.Result) interface{} {
	return buildView(result)
}

func buildView(result *compare.Result) reportView {
	view := reportView{Currency: types.CurrencyJPY, Entries: make([]entryView, 0, len(result.Entries))}
	for _, e := range result.Entries {
		ev := entryView{
			Rank:              e.Rank,
			Name:              e.Name,
			DeltaFromCheapest: e.DeltaFromCheapest,
			Issues:            e.Issues,
			Error:             viewError(e.Err),
		}
		if e.Estimate != nil {
			r := e.Estimate.Result
			ev.Result = &r
			ev.MonthlyPremium = r.MonthlyPremium()
			ev.PremiumPercent = PremiumPercentString(r)
			ev.Lines = e.Estimate.Lines
		}
		view.Entries = append(view.Entries, ev)
	}
	return view
}

// JSONFormatter renders indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Binary reports false
func (f *JSONFormatter) Binary() bool { return false }

// Render writes the comparison as JSON
func (f *JSONFormatter) Render(w io.Writer, result *compare.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildView(result))
}

// YAMLFormatter renders YAML
type YAMLFormatter struct{}

// Format returns the format type
func (f *YAMLFormatter) Format() Format { return FormatYAML }

// Binary reports false
func (f *YAMLFormatter) Binary() bool { return false }

// Render writes the comparison as YAML
func (f *YAMLFormatter) Render(w io.Writer, result *compare.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(buildView(result))
}
