package export

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// archiveSchema describes the archive wire format. Grade labels are not
// enumerated here: the deployed scale is configuration, and per-discipline
// membership is enforced by the core when climbs are logged.
const archiveSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "sessions"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "sessions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["gym", "discipline", "start_time"],
        "properties": {
          "id": {"type": "integer"},
          "gym": {"type": "string", "minLength": 1},
          "discipline": {"enum": ["boulder", "rope"]},
          "start_time": {"type": "string", "format": "date-time"},
          "end_time": {"type": "string", "format": "date-time"},
          "duration_minutes": {"type": "integer", "minimum": 0},
          "climbs": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["grade", "outcome", "logged_at"],
              "properties": {
                "grade": {"type": "string", "minLength": 1},
                "outcome": {"enum": ["warmup", "flash", "send", "dirty", "fail"]},
                "style": {"enum": ["wall", "board", "lead", "toprope"]},
                "difficulty": {"enum": ["on", "normal", "off"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "notes": {"type": "string"},
                "logged_at": {"type": "string", "format": "date-time"}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Validate checks raw archive bytes against the archive schema.
func Validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile archive schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("archive validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles the archive schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(archiveSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://archive.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
