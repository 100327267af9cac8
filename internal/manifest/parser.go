package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads a plugin spec file, validates it against the schema, and
// decodes it. Schema violations are returned as *InvalidError.
func Load(path string) (*PluginManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating spec file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{File: path, Issues: result.Issues}
	}

	return Parse(data)
}

// Parse decodes YAML bytes into a PluginManifest without schema checks.
func Parse(data []byte) (*PluginManifest, error) {
	var m PluginManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing spec: %w", err)
	}
	return &m, nil
}
