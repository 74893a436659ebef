package listing

import (
	"bytes"
	"encoding/json"

	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// parseJSON accepts either a bare fee set export or {"name": ..., "fees": {...}}
func parseJSON(data []byte) (*types.Listing, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Parsing("listing must be a JSON object", err)
	}

	if _, wrapped := probe["fees"]; wrapped {
		var listing types.Listing
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&listing); err != nil {
			if _, ok := errors.As(err); ok {
				return nil, err
			}
			return nil, errors.Parsing("invalid listing", err)
		}
		return &listing, nil
	}

	fees, err := types.ImportJSON(string(data))
	if err != nil {
		return nil, err
	}
	return &types.Listing{Fees: fees}, nil
}
