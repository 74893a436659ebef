// Package listing loads fee listings from JSON, YAML and HCL files.
package listing

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"rent-cost/core/catalog"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
	"rent-cost/internal/logging"
)

// Format identifies a listing file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", errors.NotSupported("listing file extension " + filepath.Ext(path)).WithContext("path", path)
}

// Loader reads listings. Slots a YAML or HCL file leaves out take the
// catalog's defaults; JSON must carry every slot.
type Loader struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewLoader creates a loader filling gaps from c
func NewLoader(c *catalog.Catalog) *Loader {
	if c == nil {
		c = catalog.Default()
	}
	return &Loader{
		catalog: c,
		logger:  logging.Named("listing"),
	}
}

// Load reads and decodes one listing file
func (l *Loader) Load(path string) (*types.Listing, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read listing", err).WithContext("path", path)
	}

	listing, err := l.Parse(format, path, data)
	if err != nil {
		return nil, err
	}
	if listing.Name == "" {
		base := filepath.Base(path)
		listing.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	l.logger.Debug("loaded listing",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.String("name", listing.Name))
	return listing, nil
}

// Parse decodes listing data. filename is used in diagnostics only.
func (l *Loader) Parse(format Format, filename string, data []byte) (*types.Listing, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		return l.parseYAML(data)
	case FormatHCL:
		return l.parseHCL(filename, data)
	}
	return nil, errors.NotSupported("listing format " + string(format))
}

// slotOf validates a slot key taken from a file
func slotOf(key string) (types.Slot, error) {
	s := types.Slot(strings.TrimSpace(key))
	if !s.IsValid() {
		return "", errors.Newf(errors.TypeParsing, "unknown fee slot %q", key).WithField(key)
	}
	return s, nil
}

// defaultUnit is the unit assumed when a file gives only an amount
func (l *Loader) defaultUnit(slot types.Slot) types.BillingUnit {
	if entry, ok := l.catalog.Get(slot); ok {
		return entry.Default.Unit
	}
	if slot.IsDuration() || slot == types.SlotFreeRentPeriod {
		return types.UnitMonthCount
	}
	return types.UnitOneShot
}
