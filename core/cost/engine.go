// Package cost - Itemized breakdown and the estimation engine
package cost

import (
	"fmt"

	"rent-cost/core/billing"
	"rent-cost/core/types"
)

// Line is one slot of a fee set after resolution
type Line struct {
	// Slot is the fee slot
	Slot types.Slot `json:"slot" yaml:"slot"`

	// Item is the fee as entered
	Item types.FeeItem `json:"item" yaml:"item"`

	// Resolved is the amount over the whole lease, or months for duration slots
	Resolved int64 `json:"resolved" yaml:"resolved"`

	// Contribution is the signed amount this line adds to the total cost
	Contribution int64 `json:"contribution" yaml:"contribution"`

	// Included reports whether the line counts toward the total cost
	Included bool `json:"included" yaml:"included"`

	// Formula describes how the amount was resolved
	Formula string `json:"formula" yaml:"formula"`

	// Note explains exclusions and discounts
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Breakdown resolves every slot in canonical order. The contributions of
// included lines sum to the TotalCost reported by ComputeCost.
func Breakdown(fees types.FeeSet) ([]Line, error) {
	r, err := resolve(fees)
	if err != nil {
		return nil, err
	}

	included := make(map[types.Slot]bool, len(summed))
	for _, s := range summed {
		included[s] = true
	}

	lines := make([]Line, 0, len(types.Slots()))
	for _, s := range types.Slots() {
		item := fees.Item(s)
		line := Line{
			Slot:    s,
			Item:    item,
			Formula: billing.Formula(item.Unit),
		}

		switch {
		case s == types.SlotLeasePeriod:
			line.Resolved = r.lease
			line.Note = "lease length"
		case s == types.SlotContractPeriod:
			line.Resolved = r.term
			line.Note = "contract term length"
		case s == types.SlotFreeRentPeriod:
			line.Resolved = r.resolved[s]
			line.Contribution = -r.freeRentDiscount()
			line.Included = true
			line.Note = fmt.Sprintf("discount of %d per free month", r.monthlyRent)
		case s == types.SlotSupportFee:
			line.Resolved = r.resolved[s]
			line.Note = "not counted in the total"
		default:
			line.Resolved = r.resolved[s]
			line.Included = included[s]
			if line.Included {
				line.Contribution = line.Resolved
			}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Estimate is a computed listing
type Estimate struct {
	// Name identifies the listing
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Result holds the aggregated figures
	Result types.CostResult `json:"result" yaml:"result"`

	// Lines holds the per-slot breakdown
	Lines []Line `json:"lines,omitempty" yaml:"lines,omitempty"`
}

// Engine computes estimates for listings
type Engine struct {
	// WithBreakdown attaches per-slot lines to every estimate
	WithBreakdown bool
}

// NewEngine creates an engine
func NewEngine(withBreakdown bool) *Engine {
	return &Engine{WithBreakdown: withBreakdown}
}

// Estimate computes one listing
func (e *Engine) Estimate(listing types.Listing) (*Estimate, error) {
	result, err := ComputeCost(listing.Fees)
	if err != nil {
		return nil, err
	}

	est := &Estimate{Name: listing.Name, Result: *result}
	if e.WithBreakdown {
		lines, err := Breakdown(listing.Fees)
		if err != nil {
			return nil, err
		}
		est.Lines = lines
	}
	return est, nil
}
