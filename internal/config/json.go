package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads the JSON configuration file at jsonFilePath and decodes it
// into a [StructuredConfig]. All settings of this application are plain
// strings, so the file shares the struct's json tags directly.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	cfg := &StructuredConfig{}
	if err := json.NewDecoder(jsonFile).Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg.JSONFilePath = ""

	return cfg, nil
}
