// Package cmd provides the CLI commands for rent-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rent-cost/core/catalog"
	"rent-cost/internal/config"
	"rent-cost/internal/logging"
)

// version is set at build time with -ldflags "-X rent-cost/cmd/cli/cmd.version=..."
var version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rent-cost",
	Short: "Compute the effective monthly cost of rental listings",
	Long: `rent-cost turns an itemized list of move-in and recurring charges into
the effective monthly cost of a lease, so listings with different
rent, key money and renewal terms can be compared directly.

Examples:
  rent-cost template > listing.json
  rent-cost calc listing.json
  rent-cost calc --details --format yaml listing.yaml
  rent-cost compare a.yaml b.hcl c.json
  rent-cost compare --format xlsx --output report.xlsx *.yaml`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rent-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// activeCatalog applies configured default overrides to the built-in catalog
func activeCatalog() *catalog.Catalog {
	return catalog.Default().WithDefaults(config.Get().Defaults)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rent-cost version %s\n", version)
	},
}
