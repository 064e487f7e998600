package policy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema constrains policy files before they are decoded. Weight
// arithmetic (sum to 1.0, zero-net adjustments) is checked by Validate;
// the schema catches shape errors with better messages.
const fileSchema = `{
  "type": "object",
  "required": ["version", "weights"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "weights": {
      "type": "object",
      "required": ["delta", "confidence", "knowledge", "start_bias"],
      "additionalProperties": false,
      "properties": {
        "delta": {"type": "number", "minimum": 0, "maximum": 1},
        "confidence": {"type": "number", "minimum": 0, "maximum": 1},
        "knowledge": {"type": "number", "minimum": 0, "maximum": 1},
        "start_bias": {"type": "number", "minimum": 0, "maximum": 1}
      }
    },
    "delta_saturation": {"type": "number", "exclusiveMinimum": 0},
    "overconfident": {"$ref": "#/$defs/adjustment"},
    "underconfident": {"$ref": "#/$defs/adjustment"}
  },
  "$defs": {
    "adjustment": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "visual": {"type": "number"},
        "text": {"type": "number"},
        "quiz": {"type": "number"}
      }
    }
  }
}`

// Load reads a policy table from a JSON file. Fields absent from the
// file keep their Default() values, so a file may override just the
// weights and version.
func Load(path string) (Policy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy file: %w", err)
	}

	if err := validateRaw(raw); err != nil {
		return Policy{}, fmt.Errorf("policy file %s: %w", path, err)
	}

	p := Default()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Policy{}, fmt.Errorf("decode policy file: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("policy file %s: %w", path, err)
	}
	return p, nil
}

func validateRaw(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	var schemaDoc any
	if err := json.Unmarshal([]byte(fileSchema), &schemaDoc); err != nil {
		return fmt.Errorf("parse policy schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema://policy.json", schemaDoc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema://policy.json")
	if err != nil {
		return fmt.Errorf("compile policy schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
