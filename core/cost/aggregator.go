// Package cost aggregates the resolved fees of a tenancy into total and
// effective monthly cost.
package cost

import (
	"rent-cost/core/billing"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// summed lists the currency slots added to the total, in canonical order.
// Free rent is subtracted separately. The support fee is collected but not summed.
var summed = []types.Slot{
	types.SlotRent,
	types.SlotManagementFee,
	types.SlotGuaranteeFee,
	types.SlotAssociationMembershipFee,
	types.SlotKeyMoney,
	types.SlotBrokerageFee,
	types.SlotGuaranteeAdministrativeFee,
	types.SlotInsuranceFee,
	types.SlotBicycleSpaceFee,
	types.SlotCarSpaceFee,
	types.SlotKeyChangeFee,
	types.SlotCleaningFee,
	types.SlotContractUpdateFee,
}

// resolution is every slot of a fee set resolved against its own durations
type resolution struct {
	lease    int64
	term     int64
	resolved map[types.Slot]int64

	// monthlyRent is resolved rent divided back down by the lease length
	monthlyRent int64
}

// duration reads a month-count slot. The placeholder durations are never used
// by UnitMonthCount.
func duration(fees types.FeeSet, slot types.Slot) (int64, error) {
	item := fees.Item(slot)
	if !item.Unit.IsValid() {
		return 0, errors.InvalidUnit(slot.String(), item.Unit.Code())
	}
	if item.Unit != types.UnitMonthCount {
		return 0, errors.Newf(errors.TypeInvalidDuration,
			"duration must be expressed in months, got unit %s", item.Unit).WithField(slot.String())
	}
	months, err := billing.ResolveItem(item, 0, 0)
	if err != nil {
		return 0, err
	}
	if months < 1 {
		return 0, errors.InvalidDuration(slot.String(), months)
	}
	return months, nil
}

func resolve(fees types.FeeSet) (*resolution, error) {
	lease, err := duration(fees, types.SlotLeasePeriod)
	if err != nil {
		return nil, err
	}
	term, err := duration(fees, types.SlotContractPeriod)
	if err != nil {
		return nil, err
	}

	r := &resolution{
		lease:    lease,
		term:     term,
		resolved: make(map[types.Slot]int64, len(types.Slots())),
	}
	for _, s := range types.Slots() {
		if s.IsDuration() {
			continue
		}
		v, err := billing.ResolveItem(fees.Item(s), lease, term)
		if err != nil {
			if e, ok := errors.As(err); ok && e.Type == errors.TypeInvalidUnit {
				return nil, e.WithField(s.String())
			}
			return nil, err
		}
		r.resolved[s] = v
	}
	r.monthlyRent = r.resolved[types.SlotRent] / lease
	return r, nil
}

func (r *resolution) freeRentDiscount() int64 {
	return r.monthlyRent * r.resolved[types.SlotFreeRentPeriod]
}

func (r *resolution) total() int64 {
	var total int64
	for _, s := range summed {
		total += r.resolved[s]
	}
	return total - r.freeRentDiscount()
}

func (r *resolution) nominalTotal() int64 {
	return r.resolved[types.SlotRent] + r.resolved[types.SlotManagementFee]
}

// ComputeCost aggregates fees over the lease period they declare.
// It fails with INVALID_DURATION when the lease or contract length is below one month.
func ComputeCost(fees types.FeeSet) (*types.CostResult, error) {
	r, err := resolve(fees)
	if err != nil {
		return nil, err
	}

	total := r.total()
	nominal := r.nominalTotal()
	return &types.CostResult{
		LeasePeriodMonths:         r.lease,
		TotalCost:                 total,
		AverageMonthlyCost:        total / r.lease,
		NominalTotalCost:          nominal,
		NominalAverageMonthlyCost: nominal / r.lease,
	}, nil
}
