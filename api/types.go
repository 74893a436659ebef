// Package api - API types for rent cost calculation
// These types define the contract for the /calculate and /compare endpoints.
// The API is stateless and deterministic.
package api

import (
	"rent-cost/core/catalog"
	"rent-cost/core/cost"
	"rent-cost/core/types"
)

// CalculateRequest is the input to POST /calculate
type CalculateRequest struct {
	// Name labels the listing in the response (optional)
	Name string `json:"name,omitempty"`

	// Fees is the complete fee set in the export encoding
	Fees *types.FeeSet `json:"fees"`
}

// CompareRequest is the input to POST /compare
type CompareRequest struct {
	// Listings to rank by effective monthly cost
	Listings []CalculateRequest `json:"listings"`

	// Details attaches per-slot lines to every entry
	Details bool `json:"details,omitempty"`
}

// ResponseMetadata contains reproducibility metadata
type ResponseMetadata struct {
	InputHash     string `json:"input_hash"`
	EngineVersion string `json:"engine_version"`
	DurationMs    int64  `json:"duration_ms"`
}

// CalculateResponse is the output of POST /calculate
type CalculateResponse struct {
	RequestID      string            `json:"request_id"`
	Name           string            `json:"name,omitempty"`
	Currency       types.Currency    `json:"currency"`
	Result         types.CostResult  `json:"result"`
	MonthlyPremium int64             `json:"monthly_premium"`
	PremiumPercent string            `json:"premium_percent"`
	Lines          []cost.Line       `json:"lines"`
	Issues         []catalog.Issue   `json:"issues,omitempty"`
	Metadata       *ResponseMetadata `json:"metadata,omitempty"`
}

// CompareResponse is the output of POST /compare
type CompareResponse struct {
	RequestID string            `json:"request_id"`
	Report    interface{}       `json:"report"`
	Metadata  *ResponseMetadata `json:"metadata,omitempty"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ErrorResponse wraps an ErrorDetail
type ErrorResponse struct {
	RequestID string      `json:"request_id,omitempty"`
	Error     ErrorDetail `json:"error"`
}
