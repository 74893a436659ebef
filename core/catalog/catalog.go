// Package catalog - Authoritative fee slot catalog
// Defines every fee slot with its label, the billing units it is normally
// quoted in, and the value a blank listing starts from.
package catalog

import (
	"rent-cost/core/types"
)

// SlotEntry is a catalog entry for one fee slot
type SlotEntry struct {
	Slot types.Slot `json:"slot" yaml:"slot"`

	// Label is a short human-readable name
	Label string `json:"label" yaml:"label"`

	// AllowedUnits lists the units this fee is quoted in; the first is the default
	AllowedUnits []types.BillingUnit `json:"allowed_units" yaml:"allowed_units"`

	// Default is the item a blank listing starts from
	Default types.FeeItem `json:"default" yaml:"default"`

	// Min is the smallest sensible amount
	Min int64 `json:"min" yaml:"min"`

	// Notes describes how the fee is usually charged
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Allows reports whether unit is one of the entry's allowed units
func (e *SlotEntry) Allows(unit types.BillingUnit) bool {
	for _, u := range e.AllowedUnits {
		if u == unit {
			return true
		}
	}
	return false
}

// Catalog is the authoritative slot catalog
type Catalog struct {
	entries map[types.Slot]*SlotEntry
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		entries: make(map[types.Slot]*SlotEntry),
	}
}

// Register adds a slot to the catalog, replacing any previous entry
func (c *Catalog) Register(entry SlotEntry) {
	c.entries[entry.Slot] = &entry
}

// Get returns a slot entry
func (c *Catalog) Get(slot types.Slot) (*SlotEntry, bool) {
	entry, ok := c.entries[slot]
	return entry, ok
}

// Entries returns the registered entries in canonical slot order
func (c *Catalog) Entries() []*SlotEntry {
	result := make([]*SlotEntry, 0, len(c.entries))
	for _, s := range types.Slots() {
		if entry, ok := c.entries[s]; ok {
			result = append(result, entry)
		}
	}
	return result
}

// Label returns the slot label, falling back to the wire key
func (c *Catalog) Label(slot types.Slot) string {
	if entry, ok := c.entries[slot]; ok && entry.Label != "" {
		return entry.Label
	}
	return slot.String()
}

// Defaults returns a fee set with every registered slot at its default
func (c *Catalog) Defaults() types.FeeSet {
	var fees types.FeeSet
	for _, entry := range c.Entries() {
		fees = fees.With(entry.Slot, entry.Default)
	}
	return fees
}

// WithDefaults returns a copy of the catalog whose defaults are replaced by overrides
func (c *Catalog) WithDefaults(overrides map[types.Slot]types.FeeItem) *Catalog {
	out := NewCatalog()
	for slot, entry := range c.entries {
		copied := *entry
		if item, ok := overrides[slot]; ok {
			copied.Default = item
		}
		out.entries[slot] = &copied
	}
	return out
}

func register(c *Catalog) {
	u := func(units ...types.BillingUnit) []types.BillingUnit { return units }
	const (
		monthly = types.UnitMonthly
		oneShot = types.UnitOneShot
		term    = types.UnitPerContractTerm
		renewal = types.UnitPerContractRenewal
		months  = types.UnitMonthCount
	)

	c.Register(SlotEntry{
		Slot: types.SlotRent, Label: "Rent",
		AllowedUnits: u(monthly), Default: types.Monthly(50000),
		Notes: "Base rent billed every month.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotManagementFee, Label: "Management fee",
		AllowedUnits: u(monthly), Default: types.Monthly(2000),
		Notes: "Common-area charge billed with the rent. Usually not included in \"N months of rent\" fees.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotKeyMoney, Label: "Key money",
		AllowedUnits: u(oneShot), Default: types.OneShot(50000),
		Notes: "Non-refundable payment to the owner at move-in, often one month of rent.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotBrokerageFee, Label: "Brokerage fee",
		AllowedUnits: u(oneShot), Default: types.OneShot(50000),
		Notes: "Agent commission at move-in, often one month of rent.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotFreeRentPeriod, Label: "Free rent",
		AllowedUnits: u(months), Default: types.Months(0),
		Notes: "Months with no rent. Management fee is still charged.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotGuaranteeFee, Label: "Guarantee fee",
		AllowedUnits: u(oneShot, monthly, term), Default: types.OneShot(0),
		Notes: "Guarantor company charge, lump sum at start, monthly, or again at each renewal.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotSupportFee, Label: "24-hour support",
		AllowedUnits: u(monthly, term, oneShot), Default: types.Monthly(0),
		Notes: "Emergency support subscription. Recorded but not counted in the total.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotAssociationMembershipFee, Label: "Neighborhood association fee",
		AllowedUnits: u(monthly, term, oneShot), Default: types.Monthly(0),
	})
	c.Register(SlotEntry{
		Slot: types.SlotGuaranteeAdministrativeFee, Label: "Guarantee admin fee",
		AllowedUnits: u(oneShot), Default: types.OneShot(0),
	})
	c.Register(SlotEntry{
		Slot: types.SlotInsuranceFee, Label: "Insurance",
		AllowedUnits: u(term, oneShot), Default: types.PerContractTerm(10000),
		Notes: "Tenant fire insurance, renewed with each contract term.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotBicycleSpaceFee, Label: "Bicycle space",
		AllowedUnits: u(term, monthly, oneShot), Default: types.PerContractTerm(3000),
	})
	c.Register(SlotEntry{
		Slot: types.SlotCarSpaceFee, Label: "Car space",
		AllowedUnits: u(term, monthly, oneShot), Default: types.PerContractTerm(0),
	})
	c.Register(SlotEntry{
		Slot: types.SlotKeyChangeFee, Label: "Key change fee",
		AllowedUnits: u(oneShot), Default: types.OneShot(5000),
	})
	c.Register(SlotEntry{
		Slot: types.SlotCleaningFee, Label: "Cleaning fee",
		AllowedUnits: u(oneShot), Default: types.OneShot(0),
	})
	c.Register(SlotEntry{
		Slot: types.SlotContractUpdateFee, Label: "Contract renewal fee",
		AllowedUnits: u(renewal), Default: types.PerContractRenewal(0),
		Notes: "Charged at each renewal, never for the first term.",
	})
	c.Register(SlotEntry{
		Slot: types.SlotContractPeriod, Label: "Contract term",
		AllowedUnits: u(months), Default: types.Months(24), Min: 1,
	})
	c.Register(SlotEntry{
		Slot: types.SlotLeasePeriod, Label: "Planned stay",
		AllowedUnits: u(months), Default: types.Months(24), Min: 1,
	})
}

// Default returns the built-in catalog
func Default() *Catalog {
	c := NewCatalog()
	register(c)
	return c
}
