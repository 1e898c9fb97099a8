package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed config.schema.json
var schemaJSON string

const schemaURL = "reactagent.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidationError wraps a JSON Schema validation error with a cleaner message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func configSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("failed to parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateDocument checks a decoded YAML document against the embedded schema.
// The document is normalized through JSON so numbers reach the validator as json.Number.
func validateDocument(doc any) error {
	sch, err := configSchema()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
	if err != nil {
		return fmt.Errorf("normalize config: %w", err)
	}

	if err := sch.Validate(instance); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
