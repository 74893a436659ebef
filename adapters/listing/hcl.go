package listing

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// hclListing is the body of a .hcl listing:
//
//	name = "Maison Sakura 203"
//	fee "rent" {
//	  amount = 68000
//	  unit   = "monthly"
//	}
type hclListing struct {
	Name string   `hcl:"name,optional"`
	Fees []hclFee `hcl:"fee,block"`
}

type hclFee struct {
	Slot   string `hcl:"slot,label"`
	Amount int64  `hcl:"amount"`
	Unit   string `hcl:"unit,optional"`
}

func diagError(diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		e := errors.Newf(errors.TypeParsing, "%s: %s", diag.Summary, diag.Detail)
		if diag.Subject != nil {
			e.WithContext("line", diag.Subject.Start.Line)
		}
		return e
	}
	return errors.Parsing("invalid HCL listing", diags)
}

func (l *Loader) parseHCL(filename string, data []byte) (*types.Listing, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	var doc hclListing
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, diagError(diags)
	}

	fees := l.catalog.Defaults()
	seen := make(map[types.Slot]bool, len(doc.Fees))
	for _, fee := range doc.Fees {
		slot, err := slotOf(fee.Slot)
		if err != nil {
			return nil, err
		}
		if seen[slot] {
			return nil, errors.Newf(errors.TypeParsing, "fee %q declared twice", fee.Slot).WithField(fee.Slot)
		}
		seen[slot] = true

		unit := l.defaultUnit(slot)
		if fee.Unit != "" {
			unit, err = types.ParseBillingUnitText(slot.String(), fee.Unit)
			if err != nil {
				return nil, err
			}
		}
		fees = fees.With(slot, types.NewFeeItem(fee.Amount, unit))
	}

	return &types.Listing{Name: doc.Name, Fees: fees}, nil
}
