package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load builds a catalog from raw units and items JSON (two arrays of loosely
// typed records). Individual malformed entries degrade to defaults; only
// documents that are not JSON arrays fail.
func Load(unitsJSON, itemsJSON []byte) (*Catalog, error) {
	var rawUnits []map[string]any
	if err := json.Unmarshal(unitsJSON, &rawUnits); err != nil {
		return nil, fmt.Errorf("failed to parse units: %w", err)
	}

	var rawItems []map[string]any
	if err := json.Unmarshal(itemsJSON, &rawItems); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}

	units := make([]UnitDefinition, 0, len(rawUnits))
	for _, raw := range rawUnits {
		units = append(units, NormalizeUnit(raw))
	}

	items := make([]CardDefinition, 0, len(rawItems))
	for _, raw := range rawItems {
		items = append(items, NormalizeItem(raw))
	}

	return New(units, items), nil
}

// LoadFiles builds a catalog from units and items JSON files on disk.
func LoadFiles(unitsPath, itemsPath string) (*Catalog, error) {
	unitsJSON, err := os.ReadFile(unitsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read units file: %w", err)
	}

	itemsJSON, err := os.ReadFile(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	return Load(unitsJSON, itemsJSON)
}
