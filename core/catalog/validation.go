// Package catalog - Listing checks against the catalog
package catalog

import (
	"fmt"

	"rent-cost/core/types"
)

// Issue is a listing value that is computable but unusual for its slot
type Issue struct {
	Slot    types.Slot `json:"slot" yaml:"slot"`
	Message string     `json:"message" yaml:"message"`
}

// String returns a one-line description
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Slot, i.Message)
}

// Check reports fees quoted in units or amounts the catalog does not expect.
// Issues are advisory; ComputeCost decides what is actually invalid.
func (c *Catalog) Check(fees types.FeeSet) []Issue {
	var issues []Issue
	for _, entry := range c.Entries() {
		item := fees.Item(entry.Slot)
		if !entry.Allows(item.Unit) {
			issues = append(issues, Issue{
				Slot:    entry.Slot,
				Message: fmt.Sprintf("unit %s is unusual for this fee", item.Unit),
			})
		}
		if item.Amount < entry.Min {
			issues = append(issues, Issue{
				Slot:    entry.Slot,
				Message: fmt.Sprintf("amount %d is below the minimum of %d", item.Amount, entry.Min),
			})
		}
	}
	return issues
}

// Validate checks the catalog's own consistency
func (c *Catalog) Validate() []error {
	var errs []error
	for _, entry := range c.Entries() {
		if len(entry.AllowedUnits) == 0 {
			errs = append(errs, fmt.Errorf("%s: no allowed units", entry.Slot))
			continue
		}
		if !entry.Allows(entry.Default.Unit) {
			errs = append(errs, fmt.Errorf("%s: default unit %s not allowed", entry.Slot, entry.Default.Unit))
		}
		if entry.Slot.IsDuration() && (len(entry.AllowedUnits) != 1 || entry.AllowedUnits[0] != types.UnitMonthCount) {
			errs = append(errs, fmt.Errorf("%s: duration slots must be month counts", entry.Slot))
		}
		if entry.Default.Amount < entry.Min {
			errs = append(errs, fmt.Errorf("%s: default below minimum", entry.Slot))
		}
	}
	return errs
}
