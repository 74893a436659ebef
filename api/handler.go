// Package api - HTTP handlers for rent cost calculation
// Handlers decode, delegate to core packages, and serialize.
package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"rent-cost/core/compare"
	"rent-cost/core/cost"
	"rent-cost/core/determinism"
	"rent-cost/core/output"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
	"rent-cost/internal/metrics"
)

// handleCalculate handles POST /calculate
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CalculateRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	listing, err := req.listing("")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	est, err := s.engine.Estimate(listing)
	s.observe(est, err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, &CalculateResponse{
		RequestID:      middleware.GetReqID(r.Context()),
		Name:           est.Name,
		Currency:       types.CurrencyJPY,
		Result:         est.Result,
		MonthlyPremium: est.Result.MonthlyPremium(),
		PremiumPercent: output.PremiumPercentString(est.Result),
		Lines:          est.Lines,
		Issues:         s.catalog.Check(listing.Fees),
		Metadata:       s.metadata(&req, start),
	}, http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req CompareRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	switch {
	case len(req.Listings) == 0:
		s.writeError(w, r, errors.Input("at least one listing is required").WithField("listings"))
		return
	case len(req.Listings) > maxCompareListings:
		s.writeError(w, r, errors.Newf(errors.TypeInput,
			"at most %d listings can be compared, got %d", maxCompareListings, len(req.Listings)).WithField("listings"))
		return
	}

	listings := make([]types.Listing, 0, len(req.Listings))
	for i, l := range req.Listings {
		listing, err := l.listing(fmt.Sprintf("listing %d", i+1))
		if err != nil {
			if e, ok := errors.As(err); ok {
				e.WithContext("index", i)
			}
			s.writeError(w, r, err)
			return
		}
		listings = append(listings, listing)
	}
	s.metrics.ListingsCompared.Add(float64(len(listings)))

	comparer := compare.New(cost.NewEngine(req.Details), s.catalog, s.config.Compare.MaxWorkers)
	result, err := comparer.Run(r.Context(), listings)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for _, e := range result.Entries {
		s.observe(e.Estimate, e.Err)
	}

	s.writeJSON(w, &CompareResponse{
		RequestID: middleware.GetReqID(r.Context()),
		Report:    output.View(result),
		Metadata:  s.metadata(&req, start),
	}, http.StatusOK)
}

// handleTemplate handles GET /template
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.catalog.Defaults(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "rent-cost",
		"api_version": "v1",
	}, http.StatusOK)
}

// listing converts a request item, naming it fallback when it has no name
func (req *CalculateRequest) listing(fallback string) (types.Listing, error) {
	if req.Fees == nil {
		return types.Listing{}, errors.Input("fees are required").WithField("fees")
	}
	name := req.Name
	if name == "" {
		name = fallback
	}
	return types.Listing{Name: name, Fees: *req.Fees}, nil
}

// decode reads a size-limited JSON body, rejecting unknown fields
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if _, ok := errors.As(err); ok {
			return err
		}
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.Wrapf(errors.TypeInput, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return errors.Parsing("invalid request body", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.Parsing("unexpected data after request body", nil)
	}
	return nil
}

func (s *Server) observe(est *cost.Estimate, err error) {
	switch {
	case err == nil && est != nil:
		s.metrics.ObserveCalculation(metrics.OutcomeOK, est.Result.AverageMonthlyCost, est.Result.MonthlyPremium())
	case errors.IsType(err, errors.TypeInvalidUnit):
		s.metrics.ObserveCalculation(metrics.OutcomeInvalidUnit, 0, 0)
	case errors.IsType(err, errors.TypeInvalidDuration):
		s.metrics.ObserveCalculation(metrics.OutcomeInvalidDuration, 0, 0)
	default:
		s.metrics.ObserveCalculation(metrics.OutcomeInvalidInput, 0, 0)
	}
}

func (s *Server) metadata(req interface{}, start time.Time) *ResponseMetadata {
	return &ResponseMetadata{
		InputHash:     computeInputHash(req),
		EngineVersion: s.version,
		DurationMs:    time.Since(start).Milliseconds(),
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}

// statusClientClosedRequest is the non-standard status for requests whose
// client went away first
const statusClientClosedRequest = 499

// writeError maps typed errors to a status code: internal errors are 500,
// cancellations are 499 and every other typed error is the caller's fault.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := errors.As(err)
	if !ok {
		e = errors.Internal("unexpected error", err)
	}
	detail := ErrorDetail{Type: string(e.Type), Message: e.Message, Context: e.Context}

	status := http.StatusBadRequest
	switch e.Type {
	case errors.TypeInternal:
		status = http.StatusInternalServerError
	case errors.TypeCanceled:
		status = statusClientClosedRequest
	}

	s.logger.Debug("request failed",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("type", detail.Type),
		zap.Error(err),
	)

	s.writeJSON(w, &ErrorResponse{
		RequestID: middleware.GetReqID(r.Context()),
		Error:     detail,
	}, status)
}

// computeInputHash hashes the canonical re-encoding of a decoded request
func computeInputHash(req interface{}) string {
	hash, err := determinism.HashJSON(req)
	if err != nil {
		return ""
	}
	return hash.Hex()
}
