package listing

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"rent-cost/core/determinism"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

type yamlListing struct {
	Name string              `yaml:"name"`
	Fees map[string]yamlItem `yaml:"fees"`
}

type yamlItem struct {
	Amount *int64 `yaml:"amount"`

	// Unit is either a wire code or a unit name
	Unit yaml.Node `yaml:"unit"`
}

func (l *Loader) parseYAML(data []byte) (*types.Listing, error) {
	var doc yamlListing
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.Parsing("invalid YAML listing", err)
	}

	fees := l.catalog.Defaults()
	for _, key := range determinism.SortedKeys(doc.Fees) {
		item := doc.Fees[key]
		slot, err := slotOf(key)
		if err != nil {
			return nil, err
		}

		if item.Amount == nil {
			return nil, errors.Input("amount is required").WithField(slot.String())
		}

		unit := l.defaultUnit(slot)
		if item.Unit.Kind != 0 {
			unit, err = types.ParseBillingUnitText(slot.String(), item.Unit.Value)
			if err != nil {
				return nil, err
			}
		}
		fees = fees.With(slot, types.NewFeeItem(*item.Amount, unit))
	}

	return &types.Listing{Name: doc.Name, Fees: fees}, nil
}
