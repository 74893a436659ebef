// Package types - JSON import/export encoding of fee sets
package types

import (
	"bytes"
	"encoding/json"
	"sort"

	"rent-cost/internal/errors"
)

// wireItem is the untrusted shape of a fee item on the wire
type wireItem struct {
	Amount *int64 `json:"amount"`
	Unit   *int   `json:"unit"`
}

// UnmarshalJSON decodes a bare wire code, rejecting codes outside 0-4
func (u *BillingUnit) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return errors.Parsing("billing unit must be an integer code", err)
	}
	parsed, err := ParseBillingUnit("unit", code)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// DecodeFeeItem decodes one {"amount","unit"} object for the named slot
func DecodeFeeItem(slot Slot, data []byte) (FeeItem, error) {
	var w wireItem
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return FeeItem{}, errors.Parsing("invalid fee item", err).WithField(slot.String())
	}
	if w.Amount == nil {
		return FeeItem{}, errors.Input("missing amount").WithField(slot.String())
	}
	if w.Unit == nil {
		return FeeItem{}, errors.Input("missing unit").WithField(slot.String())
	}
	unit, err := ParseBillingUnit(slot.String(), *w.Unit)
	if err != nil {
		return FeeItem{}, err
	}
	return FeeItem{Amount: *w.Amount, Unit: unit}, nil
}

// MarshalJSON encodes the fee set as a flat object in canonical slot order
func (f FeeSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range Slots() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(s.String())
		buf.Write(key)
		buf.WriteByte(':')
		item, err := json.Marshal(f.Item(s))
		if err != nil {
			return nil, err
		}
		buf.Write(item)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the flat export object. Every slot must be present and
// no other keys are accepted.
func (f *FeeSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Parsing("fee set must be a JSON object", err)
	}

	var unknown []string
	for key := range raw {
		if !Slot(key).IsValid() {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.Newf(errors.TypeParsing, "unknown fee slot %q", unknown[0]).WithField(unknown[0])
	}

	var out FeeSet
	for _, s := range Slots() {
		msg, ok := raw[s.String()]
		if !ok {
			return errors.Input("missing fee slot").WithField(s.String())
		}
		item, err := DecodeFeeItem(s, msg)
		if err != nil {
			return err
		}
		out = out.With(s, item)
	}
	*f = out
	return nil
}

// ExportJSON renders the fee set in the import/export text encoding
func ExportJSON(f FeeSet) (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportJSON parses the import/export text encoding
func ImportJSON(text string) (FeeSet, error) {
	var f FeeSet
	if err := json.Unmarshal([]byte(text), &f); err != nil {
		if _, ok := errors.As(err); ok {
			return FeeSet{}, err
		}
		return FeeSet{}, errors.Parsing("invalid fee set JSON", err)
	}
	return f, nil
}
