// Package cmd - template command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"rent-cost/adapters/listing"
	"rent-cost/core/types"
)

var (
	templateFormat string
	templateName   string
)

// templateCmd prints a listing filled with catalog defaults
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a listing filled with default fees",
	Long: `Print a listing holding every fee with its default value, as a starting
point for describing a real listing.

Without --format the output is the compact JSON export encoding, which
"rent-cost calc -" reads back unchanged.

Examples:
  rent-cost template > listing.json
  rent-cost template --format yaml --name "Maison Sakura 203" > sakura.yaml
  rent-cost template --format hcl > listing.hcl`,
	Args: cobra.NoArgs,
	RunE: runTemplate,
}

func init() {
	templateCmd.Flags().StringVarP(&templateFormat, "format", "f", "", "listing format (json, yaml, hcl); default is the export encoding")
	templateCmd.Flags().StringVar(&templateName, "name", "", "listing name to include")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	defaults := activeCatalog().Defaults()

	if templateFormat == "" {
		text, err := types.ExportJSON(defaults)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	data, err := listing.Encode(listing.Format(templateFormat), types.Listing{Name: templateName, Fees: defaults})
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
