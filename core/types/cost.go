// Package types - Cost result types
package types

// Currency represents a currency code
type Currency string

// CurrencyJPY is the only currency fee amounts are expressed in
const CurrencyJPY Currency = "JPY"

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// CostResult is the outcome of aggregating a FeeSet over its lease period.
// All values are derived and are not modified after construction.
type CostResult struct {
	// LeasePeriodMonths is the occupancy duration the totals cover
	LeasePeriodMonths int64 `json:"lease_period_months" yaml:"lease_period_months"`

	// TotalCost is every counted fee over the lease, net of free rent
	TotalCost int64 `json:"total_cost" yaml:"total_cost"`

	// AverageMonthlyCost is TotalCost spread evenly over the lease (the effective rent)
	AverageMonthlyCost int64 `json:"average_monthly_cost" yaml:"average_monthly_cost"`

	// NominalTotalCost is rent plus management fee only
	NominalTotalCost int64 `json:"nominal_total_cost" yaml:"nominal_total_cost"`

	// NominalAverageMonthlyCost is NominalTotalCost spread over the lease
	NominalAverageMonthlyCost int64 `json:"nominal_average_monthly_cost" yaml:"nominal_average_monthly_cost"`
}

// MonthlyPremium is how much the effective rent exceeds the advertised rent plus management fee
func (r CostResult) MonthlyPremium() int64 {
	return r.AverageMonthlyCost - r.NominalAverageMonthlyCost
}

// HiddenCost is the total paid beyond rent plus management fee
func (r CostResult) HiddenCost() int64 {
	return r.TotalCost - r.NominalTotalCost
}
