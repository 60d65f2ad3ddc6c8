package imports

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/adeolu-ojo/applytrack/constants"
)

// BuildJobJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing one importable job row.
func BuildJobJSONSchema() map[string]any {
	props := map[string]any{
		"company":    map[string]any{"type": "string", "minLength": 1, "maxLength": 255},
		"title":      map[string]any{"type": "string", "minLength": 1, "maxLength": 255},
		"city":       map[string]any{"type": "string"},
		"state":      map[string]any{"type": "string"},
		"country":    map[string]any{"type": "string"},
		"applied_at": map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"status":     map[string]any{"type": "string", "enum": constants.ApplicationStatuses()},
		"platform":   map[string]any{"type": "string"},
		"url":        map[string]any{"type": "string"},
		"notes":      map[string]any{"type": "string"},
	}
	required := []string{"company", "title"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

// CompileSchema compiles a schema map into a validator.
func CompileSchema(schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
