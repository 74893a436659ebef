package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rent-cost/adapters/listing"
	"rent-cost/core/catalog"
	"rent-cost/core/compare"
	"rent-cost/core/output"
	"rent-cost/core/types"
	"rent-cost/internal/config"
	"rent-cost/internal/errors"
	"rent-cost/internal/logging"
)

// reportOptions are the output flags shared by calc and compare
type reportOptions struct {
	format  string
	details bool
	output  string
}

func (o *reportOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (cli, table, json, yaml, xlsx); default from config")
	cmd.Flags().BoolVarP(&o.details, "details", "d", false, "show the per-fee breakdown")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the report to a file instead of stdout")
}

// resolve fills unset flags from the config file
func (o *reportOptions) resolve(cmd *cobra.Command) {
	cfg := config.Get()
	if !cmd.Flags().Changed("format") || o.format == "" {
		o.format = cfg.Output.DefaultFormat
	}
	if !cmd.Flags().Changed("details") {
		o.details = cfg.Output.ShowDetails
	}
}

// loadListings reads listing files; "-" reads a JSON listing from stdin
func loadListings(cmd *cobra.Command, c *catalog.Catalog, paths []string) ([]types.Listing, error) {
	loader := listing.NewLoader(c)
	listings := make([]types.Listing, 0, len(paths))

	for _, path := range paths {
		var (
			l   *types.Listing
			err error
		)
		if path == "-" {
			var data []byte
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, errors.Wrap(errors.TypeInput, "failed to read stdin", err)
			}
			l, err = loader.Parse(listing.FormatJSON, "stdin", data)
			if err == nil && l.Name == "" {
				l.Name = "stdin"
			}
		} else {
			l, err = loader.Load(path)
		}
		if err != nil {
			if e, ok := errors.As(err); ok {
				e.WithContext("path", path)
			}
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, nil
}

// writeReport renders result with the selected formatter
func writeReport(cmd *cobra.Command, c *catalog.Catalog, result *compare.Result, opts reportOptions) error {
	formatter, err := output.DefaultRegistry(c, opts.details).Get(opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		if formatter.Binary() {
			return errors.Newf(errors.TypeInput, "%s output must be written to a file with --output", opts.format)
		}
		return formatter.Render(cmd.OutOrStdout(), result)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return errors.Wrap(errors.TypeInput, "failed to create output file", err).WithContext("path", opts.output)
	}
	defer f.Close()

	if err := formatter.Render(f, result); err != nil {
		return err
	}
	logging.Info("report written",
		zap.String("path", opts.output),
		zap.String("format", opts.format),
		zap.Int("listings", len(result.Entries)))
	return f.Close()
}
