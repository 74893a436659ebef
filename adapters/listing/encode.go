package listing

import (
	"bytes"
	"encoding/json"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"gopkg.in/yaml.v3"

	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// Encode renders a listing so that Parse reads it back unchanged. JSON uses the
// wrapped form with unit codes; YAML and HCL spell units by name. Every slot is
// written in canonical order.
func Encode(format Format, listing types.Listing) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(listing, "", "  ")
	case FormatYAML:
		return encodeYAML(listing)
	case FormatHCL:
		return encodeHCL(listing), nil
	}
	return nil, errors.NotSupported("listing format " + string(format))
}

type yamlOutItem struct {
	Amount int64  `yaml:"amount"`
	Unit   string `yaml:"unit"`
}

func encodeYAML(listing types.Listing) ([]byte, error) {
	fees := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range types.Slots() {
		item := listing.Fees.Item(s)

		var value yaml.Node
		if err := value.Encode(yamlOutItem{Amount: item.Amount, Unit: item.Unit.String()}); err != nil {
			return nil, err
		}
		fees.Content = append(fees.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.String()},
			&value,
		)
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	if listing.Name != "" {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "name"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: listing.Name},
		)
	}
	doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "fees"}, fees)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeHCL(listing types.Listing) []byte {
	doc := hclListing{Name: listing.Name}
	for _, s := range types.Slots() {
		item := listing.Fees.Item(s)
		doc.Fees = append(doc.Fees, hclFee{Slot: s.String(), Amount: item.Amount, Unit: item.Unit.String()})
	}

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&doc, f.Body())
	return f.Bytes()
}
