package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hvackit/loadcalc/internal/model"
)

// loadBuilding reads and decodes a building description JSON file.
func loadBuilding(path string) (*model.Building, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading building file %s: %w", path, err)
	}

	var building model.Building
	if err := json.Unmarshal(data, &building); err != nil {
		return nil, fmt.Errorf("parsing building JSON from %s: %w", path, err)
	}

	return &building, nil
}
