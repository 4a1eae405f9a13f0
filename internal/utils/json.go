package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads a JSON config file into target. Read errors wrap the underlying
// os error so callers can test for fs.ErrNotExist.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}
