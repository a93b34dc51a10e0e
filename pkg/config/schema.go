package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects the folder config into an indented JSON schema,
// used by cmd/schema to document the mrss.yml resource for operators
func GenerateSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&Config{})
	schema.Title = "MRSS folder configuration"
	schema.Description = "Optional per-folder settings read from " + FileName

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
