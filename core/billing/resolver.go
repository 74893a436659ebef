// Package billing normalizes a fee's billing schedule into the total it
// contributes over a tenancy.
package billing

import (
	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// Resolve returns what amount, billed under unit, costs over leasePeriodMonths
// when the contract renews every contractTermMonths.
//
// MonthCount items are durations and come back unchanged. Division truncates
// toward zero. Per-term and per-renewal units need contractTermMonths >= 1.
func Resolve(amount int64, unit types.BillingUnit, leasePeriodMonths, contractTermMonths int64) (int64, error) {
	switch unit {
	case types.UnitMonthly:
		return amount * leasePeriodMonths, nil

	case types.UnitOneShot:
		return amount, nil

	case types.UnitPerContractTerm:
		if contractTermMonths < 1 {
			return 0, errors.InvalidDuration(types.SlotContractPeriod.String(), contractTermMonths)
		}
		return amount * (1 + Renewals(leasePeriodMonths, contractTermMonths)), nil

	case types.UnitPerContractRenewal:
		if contractTermMonths < 1 {
			return 0, errors.InvalidDuration(types.SlotContractPeriod.String(), contractTermMonths)
		}
		return max(0, amount*Renewals(leasePeriodMonths, contractTermMonths)), nil

	case types.UnitMonthCount:
		return amount, nil
	}

	return 0, errors.InvalidUnit("unit", int(unit))
}

// ResolveItem resolves a fee item
func ResolveItem(item types.FeeItem, leasePeriodMonths, contractTermMonths int64) (int64, error) {
	return Resolve(item.Amount, item.Unit, leasePeriodMonths, contractTermMonths)
}

// Renewals counts the contract boundaries crossed during the lease.
// It is negative only for a lease shorter than one month.
func Renewals(leasePeriodMonths, contractTermMonths int64) int64 {
	return (leasePeriodMonths - 1) / contractTermMonths
}

// Formula describes how unit is applied, for breakdown output
func Formula(unit types.BillingUnit) string {
	switch unit {
	case types.UnitMonthly:
		return "amount * lease months"
	case types.UnitOneShot:
		return "amount once"
	case types.UnitPerContractTerm:
		return "amount * (1 + (lease - 1) / term)"
	case types.UnitPerContractRenewal:
		return "max(0, amount * ((lease - 1) / term))"
	case types.UnitMonthCount:
		return "months"
	}
	return "unknown"
}
