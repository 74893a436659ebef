package cost

import (
	"testing"

	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// baseFees is rent and management fee only over a 24 month lease and term
func baseFees() types.FeeSet {
	return types.FeeSet{
		Rent:           types.Monthly(50000),
		ManagementFee:  types.Monthly(2000),
		FreeRentPeriod: types.Months(0),
		ContractPeriod: types.Months(24),
		LeasePeriod:    types.Months(24),
	}
}

func TestComputeCostRentAndManagementOnly(t *testing.T) {
	result, err := ComputeCost(baseFees())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := types.CostResult{
		LeasePeriodMonths:         24,
		TotalCost:                 1248000,
		AverageMonthlyCost:        52000,
		NominalTotalCost:          1248000,
		NominalAverageMonthlyCost: 52000,
	}
	if *result != expected {
		t.Errorf("expected %+v, got %+v", expected, *result)
	}
	if result.MonthlyPremium() != 0 {
		t.Errorf("expected no premium, got %d", result.MonthlyPremium())
	}
}

func TestComputeCostFullListing(t *testing.T) {
	fees := types.FeeSet{
		Rent:                       types.Monthly(50000),
		ManagementFee:              types.Monthly(2000),
		FreeRentPeriod:             types.Months(1),
		GuaranteeFee:               types.OneShot(25000),
		SupportFee:                 types.Monthly(1000),
		AssociationMembershipFee:   types.Monthly(300),
		KeyMoney:                   types.OneShot(50000),
		BrokerageFee:               types.OneShot(55000),
		GuaranteeAdministrativeFee: types.OneShot(10000),
		InsuranceFee:               types.PerContractTerm(15000),
		BicycleSpaceFee:            types.Monthly(500),
		CarSpaceFee:                types.OneShot(0),
		KeyChangeFee:               types.OneShot(16500),
		CleaningFee:                types.OneShot(33000),
		ContractUpdateFee:          types.PerContractRenewal(50000),
		ContractPeriod:             types.Months(24),
		LeasePeriod:                types.Months(48),
	}

	result, err := ComputeCost(fees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 48 months over 24 month terms: two terms, one renewal
	var expectedTotal int64 = 50000*48 + 2000*48 + 25000 + 300*48 - 50000*1 +
		50000 + 55000 + 10000 + 15000*2 + 500*48 + 0 + 16500 + 33000 + 50000*1
	if result.TotalCost != expectedTotal {
		t.Errorf("expected total %d, got %d", expectedTotal, result.TotalCost)
	}
	if result.AverageMonthlyCost != expectedTotal/48 {
		t.Errorf("expected average %d, got %d", expectedTotal/48, result.AverageMonthlyCost)
	}
	if result.NominalTotalCost != 52000*48 {
		t.Errorf("expected nominal total %d, got %d", 52000*48, result.NominalTotalCost)
	}
	if result.NominalAverageMonthlyCost != 52000 {
		t.Errorf("expected nominal average 52000, got %d", result.NominalAverageMonthlyCost)
	}
}

// TestSupportFeeExcludedFromTotal pins the observed aggregation, which never sums the support fee
func TestSupportFeeExcludedFromTotal(t *testing.T) {
	with := baseFees().With(types.SlotSupportFee, types.Monthly(1500))

	a, err := ComputeCost(baseFees())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ComputeCost(with)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a != *b {
		t.Errorf("support fee changed the result: %+v vs %+v", *a, *b)
	}
}

// TestFreeRentUsesResolvedRent pins the discount basis to resolved rent / lease
func TestFreeRentUsesResolvedRent(t *testing.T) {
	tests := []struct {
		name     string
		rent     types.FeeItem
		free     int64
		expected int64
	}{
		{
			name:     "monthly rent discounts one month",
			rent:     types.Monthly(60000),
			free:     1,
			expected: 60000*24 - 60000,
		},
		{
			name:     "one shot rent discounts its per-month share",
			rent:     types.OneShot(240000),
			free:     2,
			expected: 240000 - (240000/24)*2,
		},
		{
			name:     "truncated per-month share",
			rent:     types.OneShot(100),
			free:     3,
			expected: 100 - (100/24)*3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees := types.FeeSet{
				Rent:           tt.rent,
				FreeRentPeriod: types.Months(tt.free),
				ContractPeriod: types.Months(24),
				LeasePeriod:    types.Months(24),
			}
			result, err := ComputeCost(fees)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TotalCost != tt.expected {
				t.Errorf("expected total %d, got %d", tt.expected, result.TotalCost)
			}
		})
	}
}

func TestComputeCostTruncatesAverages(t *testing.T) {
	fees := baseFees().With(types.SlotKeyMoney, types.OneShot(100))
	fees = fees.With(types.SlotLeasePeriod, types.Months(7))

	result, err := ComputeCost(fees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	total := int64(52000*7 + 100)
	if result.AverageMonthlyCost != total/7 {
		t.Errorf("expected %d, got %d", total/7, result.AverageMonthlyCost)
	}
}

func TestComputeCostRejectsBadDurations(t *testing.T) {
	tests := []struct {
		name  string
		fees  types.FeeSet
		field string
	}{
		{
			name:  "zero lease",
			fees:  baseFees().With(types.SlotLeasePeriod, types.Months(0)),
			field: "lease_period",
		},
		{
			name:  "negative lease",
			fees:  baseFees().With(types.SlotLeasePeriod, types.Months(-3)),
			field: "lease_period",
		},
		{
			name:  "zero contract term",
			fees:  baseFees().With(types.SlotContractPeriod, types.Months(0)),
			field: "contract_period",
		},
		{
			name:  "lease not in months",
			fees:  baseFees().With(types.SlotLeasePeriod, types.Monthly(24)),
			field: "lease_period",
		},
		{
			name:  "zero value fee set",
			fees:  types.FeeSet{},
			field: "lease_period",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeCost(tt.fees)
			if err == nil {
				t.Fatalf("expected error, got result %+v", result)
			}
			if !errors.IsType(err, errors.TypeInvalidDuration) {
				t.Fatalf("expected INVALID_DURATION, got %v", err)
			}
			e, _ := errors.As(err)
			if e.Field() != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, e.Field())
			}
		})
	}
}

func TestComputeCostRejectsUnknownUnit(t *testing.T) {
	tests := []struct {
		name string
		slot types.Slot
	}{
		{"currency slot", types.SlotCleaningFee},
		{"lease period", types.SlotLeasePeriod},
		{"contract period", types.SlotContractPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees := baseFees().With(tt.slot, types.NewFeeItem(12, types.BillingUnit(9)))

			_, err := ComputeCost(fees)
			if !errors.IsType(err, errors.TypeInvalidUnit) {
				t.Fatalf("expected INVALID_UNIT, got %v", err)
			}
			e, _ := errors.As(err)
			if e.Field() != string(tt.slot) {
				t.Errorf("expected field %s, got %q", tt.slot, e.Field())
			}
		})
	}
}

func TestComputeCostIsDeterministic(t *testing.T) {
	fees := baseFees().With(types.SlotInsuranceFee, types.PerContractTerm(12000))
	first, err := ComputeCost(fees)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := ComputeCost(fees)
		if *again != *first {
			t.Fatalf("run %d differs: %+v vs %+v", i, *again, *first)
		}
	}
}
