// Package types - Fee item and fee set types
package types

// Slot names one fixed position of a FeeSet. The string value is the wire key.
type Slot string

const (
	SlotRent                       Slot = "rent"
	SlotManagementFee              Slot = "management_fee"
	SlotFreeRentPeriod             Slot = "free_rent_period"
	SlotGuaranteeFee               Slot = "guarantee_fee"
	SlotSupportFee                 Slot = "support_fee"
	SlotAssociationMembershipFee   Slot = "association_membership_fee"
	SlotKeyMoney                   Slot = "key_money"
	SlotBrokerageFee               Slot = "brokerage_fee"
	SlotGuaranteeAdministrativeFee Slot = "guarantee_administrative_fee"
	SlotInsuranceFee               Slot = "insurance_fee"
	SlotBicycleSpaceFee            Slot = "bicycle_space_fee"
	SlotCarSpaceFee                Slot = "car_space_fee"
	SlotKeyChangeFee               Slot = "key_change_fee"
	SlotCleaningFee                Slot = "cleaning_fee"
	SlotContractUpdateFee          Slot = "contract_update_fee"
	SlotContractPeriod             Slot = "contract_period"
	SlotLeasePeriod                Slot = "lease_period"
)

// Slots returns every slot in canonical order
func Slots() []Slot {
	return []Slot{
		SlotRent,
		SlotManagementFee,
		SlotFreeRentPeriod,
		SlotGuaranteeFee,
		SlotSupportFee,
		SlotAssociationMembershipFee,
		SlotKeyMoney,
		SlotBrokerageFee,
		SlotGuaranteeAdministrativeFee,
		SlotInsuranceFee,
		SlotBicycleSpaceFee,
		SlotCarSpaceFee,
		SlotKeyChangeFee,
		SlotCleaningFee,
		SlotContractUpdateFee,
		SlotContractPeriod,
		SlotLeasePeriod,
	}
}

// String returns the wire key
func (s Slot) String() string {
	return string(s)
}

// IsValid reports whether s is one of the fixed slots
func (s Slot) IsValid() bool {
	for _, known := range Slots() {
		if s == known {
			return true
		}
	}
	return false
}

// IsDuration reports whether the slot carries a length in months rather than a fee
func (s Slot) IsDuration() bool {
	return s == SlotContractPeriod || s == SlotLeasePeriod
}

// FeeItem is a single itemized charge
type FeeItem struct {
	// Amount is whole yen, or months for UnitMonthCount
	Amount int64 `json:"amount" yaml:"amount"`

	// Unit selects the billing formula
	Unit BillingUnit `json:"unit" yaml:"unit"`
}

// NewFeeItem creates a fee item
func NewFeeItem(amount int64, unit BillingUnit) FeeItem {
	return FeeItem{Amount: amount, Unit: unit}
}

// Monthly creates a fee billed every month
func Monthly(amount int64) FeeItem { return FeeItem{Amount: amount, Unit: UnitMonthly} }

// OneShot creates a fee billed once
func OneShot(amount int64) FeeItem { return FeeItem{Amount: amount, Unit: UnitOneShot} }

// PerContractTerm creates a fee billed once per contract term
func PerContractTerm(amount int64) FeeItem {
	return FeeItem{Amount: amount, Unit: UnitPerContractTerm}
}

// PerContractRenewal creates a fee billed at each renewal
func PerContractRenewal(amount int64) FeeItem {
	return FeeItem{Amount: amount, Unit: UnitPerContractRenewal}
}

// Months creates a month-count item
func Months(n int64) FeeItem { return FeeItem{Amount: n, Unit: UnitMonthCount} }

// FeeSet holds every fee slot of one tenancy.
// ContractPeriod and LeasePeriod are month counts and never enter the cost sum.
type FeeSet struct {
	Rent                       FeeItem
	ManagementFee              FeeItem
	FreeRentPeriod             FeeItem
	GuaranteeFee               FeeItem
	SupportFee                 FeeItem
	AssociationMembershipFee   FeeItem
	KeyMoney                   FeeItem
	BrokerageFee               FeeItem
	GuaranteeAdministrativeFee FeeItem
	InsuranceFee               FeeItem
	BicycleSpaceFee            FeeItem
	CarSpaceFee                FeeItem
	KeyChangeFee               FeeItem
	CleaningFee                FeeItem
	ContractUpdateFee          FeeItem
	ContractPeriod             FeeItem
	LeasePeriod                FeeItem
}

func (f *FeeSet) slot(s Slot) *FeeItem {
	switch s {
	case SlotRent:
		return &f.Rent
	case SlotManagementFee:
		return &f.ManagementFee
	case SlotFreeRentPeriod:
		return &f.FreeRentPeriod
	case SlotGuaranteeFee:
		return &f.GuaranteeFee
	case SlotSupportFee:
		return &f.SupportFee
	case SlotAssociationMembershipFee:
		return &f.AssociationMembershipFee
	case SlotKeyMoney:
		return &f.KeyMoney
	case SlotBrokerageFee:
		return &f.BrokerageFee
	case SlotGuaranteeAdministrativeFee:
		return &f.GuaranteeAdministrativeFee
	case SlotInsuranceFee:
		return &f.InsuranceFee
	case SlotBicycleSpaceFee:
		return &f.BicycleSpaceFee
	case SlotCarSpaceFee:
		return &f.CarSpaceFee
	case SlotKeyChangeFee:
		return &f.KeyChangeFee
	case SlotCleaningFee:
		return &f.CleaningFee
	case SlotContractUpdateFee:
		return &f.ContractUpdateFee
	case SlotContractPeriod:
		return &f.ContractPeriod
	case SlotLeasePeriod:
		return &f.LeasePeriod
	}
	return nil
}

// Item returns the item in slot s. Unknown slots return the zero item.
func (f FeeSet) Item(s Slot) FeeItem {
	if p := f.slot(s); p != nil {
		return *p
	}
	return FeeItem{}
}

// With returns a copy of f with slot s replaced. Unknown slots leave f unchanged.
func (f FeeSet) With(s Slot, item FeeItem) FeeSet {
	if p := f.slot(s); p != nil {
		*p = item
	}
	return f
}

// Listing is a named fee set, the unit of comparison between dwellings
type Listing struct {
	Name string `json:"name,omitempty"`
	Fees FeeSet `json:"fees"`
}
