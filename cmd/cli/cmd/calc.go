// Package cmd - calc command
package cmd

import (
	"github.com/spf13/cobra"

	"rent-cost/core/compare"
	"rent-cost/core/cost"
)

var calcOpts reportOptions

// calcCmd computes one listing
var calcCmd = &cobra.Command{
	Use:   "calc <listing>",
	Short: "Compute the effective monthly cost of one listing",
	Long: `Compute the total and effective monthly cost of a listing over the
planned stay.

The listing can be a .json, .yaml/.yml or .hcl file, or "-" to read the
JSON export encoding from stdin. YAML and HCL files may leave fees out;
missing fees take the catalog defaults.

Examples:
  rent-cost calc listing.yaml
  rent-cost calc --details listing.hcl
  rent-cost template | rent-cost calc -`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcOpts.bind(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	calcOpts.resolve(cmd)
	c := activeCatalog()

	listings, err := loadListings(cmd, c, args)
	if err != nil {
		return err
	}
	l := listings[0]

	est, err := cost.NewEngine(calcOpts.details).Estimate(l)
	if err != nil {
		return err
	}

	result := &compare.Result{Entries: []compare.Entry{{
		Rank:     1,
		Name:     l.Name,
		Estimate: est,
		Issues:   c.Check(l.Fees),
	}}}
	return writeReport(cmd, c, result, calcOpts)
}
