// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions and their encodings.
package types

import (
	"strconv"
	"strings"

	"rent-cost/internal/errors"
)

// BillingUnit selects the schedule a fee is charged under.
// The set is closed: only the constants below are valid.
type BillingUnit int

const (
	// UnitMonthly is billed every month of occupancy
	UnitMonthly BillingUnit = 0

	// UnitOneShot is billed once regardless of duration
	UnitOneShot BillingUnit = 1

	// UnitPerContractTerm is billed once for every contract term started
	UnitPerContractTerm BillingUnit = 2

	// UnitPerContractRenewal is billed at every renewal, never for the first term
	UnitPerContractRenewal BillingUnit = 3

	// UnitMonthCount marks the amount as a number of months, not currency
	UnitMonthCount BillingUnit = 4
)

var unitNames = [...]string{
	UnitMonthly:            "monthly",
	UnitOneShot:            "one_shot",
	UnitPerContractTerm:    "per_contract_term",
	UnitPerContractRenewal: "per_contract_renewal",
	UnitMonthCount:         "month_count",
}

// AllUnits returns every billing unit in code order
func AllUnits() []BillingUnit {
	return []BillingUnit{
		UnitMonthly,
		UnitOneShot,
		UnitPerContractTerm,
		UnitPerContractRenewal,
		UnitMonthCount,
	}
}

// IsValid reports whether u is one of the defined units
func (u BillingUnit) IsValid() bool {
	return u >= UnitMonthly && u <= UnitMonthCount
}

// Code returns the integer wire code (0-4)
func (u BillingUnit) Code() int {
	return int(u)
}

// String returns the snake_case name of the unit
func (u BillingUnit) String() string {
	if !u.IsValid() {
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
	return unitNames[u]
}

// IsCurrency reports whether amounts under this unit are money rather than months
func (u BillingUnit) IsCurrency() bool {
	return u != UnitMonthCount
}

// ParseBillingUnit converts an untrusted wire code into a BillingUnit.
// field names the slot being decoded and is carried in the error.
func ParseBillingUnit(field string, code int) (BillingUnit, error) {
	u := BillingUnit(code)
	if !u.IsValid() {
		return 0, errors.InvalidUnit(field, code)
	}
	return u, nil
}

// ParseBillingUnitText accepts either a wire code ("2") or a unit name ("per_contract_term")
func ParseBillingUnitText(field, s string) (BillingUnit, error) {
	s = strings.TrimSpace(s)
	if code, err := strconv.Atoi(s); err == nil {
		return ParseBillingUnit(field, code)
	}
	name := strings.ToLower(strings.ReplaceAll(s, "-", "_"))
	for _, u := range AllUnits() {
		if unitNames[u] == name {
			return u, nil
		}
	}
	return 0, errors.InvalidUnit(field, s)
}
