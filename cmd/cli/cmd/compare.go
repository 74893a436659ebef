// Package cmd - compare command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rent-cost/core/compare"
	"rent-cost/core/cost"
	"rent-cost/internal/config"
	"rent-cost/internal/errors"
	"rent-cost/internal/logging"
)

var compareOpts reportOptions

// compareCmd ranks several listings
var compareCmd = &cobra.Command{
	Use:   "compare <listing> <listing>...",
	Short: "Rank listings by effective monthly cost",
	Long: `Compute every listing and rank them from cheapest to most expensive
effective monthly cost. Listings that cannot be computed are reported
after the ranking and make the command exit with an error.

Examples:
  rent-cost compare a.yaml b.yaml c.hcl
  rent-cost compare --format json *.yaml
  rent-cost compare --format xlsx --output listings.xlsx *.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompare,
}

func init() {
	compareOpts.bind(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	compareOpts.resolve(cmd)
	c := activeCatalog()

	listings, err := loadListings(cmd, c, args)
	if err != nil {
		return err
	}

	comparer := compare.New(cost.NewEngine(compareOpts.details), c, config.Get().Compare.MaxWorkers)
	result, err := comparer.Run(cmd.Context(), listings)
	if err != nil {
		return err
	}

	logging.Debug("comparison finished",
		zap.Int("listings", len(listings)),
		zap.Int("failed", len(result.Failed())))

	if err := writeReport(cmd, c, result, compareOpts); err != nil {
		return err
	}

	if failed := result.Failed(); len(failed) > 0 {
		return errors.Newf(errors.TypeInput, "%d of %d listings could not be computed", len(failed), len(listings)).
			WithContext("first_error", failed[0].Err.Error())
	}
	return nil
}
