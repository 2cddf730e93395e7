package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Entity is the JSON Schema for entity payloads accepted by the API. State
// fields are typed, but an entry may carry several of them.
var Entity = json.RawMessage(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"kind": {"type": "string", "enum": ["device", "group", "adapter"]},
		"name": {"type": "string", "maxLength": 128},
		"attributes": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"string-state": {"type": ["string", "null"]},
					"boolean-state": {"type": ["boolean", "null"]},
					"numeric-state": {"type": ["number", "null"]}
				},
				"additionalProperties": false
			}
		}
	},
	"required": ["name"]
}`)

// Validator validates JSON payloads against JSON Schema documents.
// It caches compiled schemas keyed by their raw bytes.
type Validator struct {
	mu    sync.RWMutex
	cache map[string]*jsonschema.Schema
}

// NewValidator creates a new Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{
		cache: make(map[string]*jsonschema.Schema),
	}
}

// ValidateEntity validates a decoded entity payload against Entity.
func (v *Validator) ValidateEntity(payload any) error {
	return v.Validate(Entity, payload)
}

// Validate validates payload against the given JSON Schema document.
// Returns nil if valid, or an error describing the validation failures.
func (v *Validator) Validate(schemaDoc json.RawMessage, payload any) error {
	if len(schemaDoc) == 0 || string(schemaDoc) == "{}" || string(schemaDoc) == "null" {
		return nil
	}

	compiled, err := v.compile(schemaDoc)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	return compiled.Validate(payload)
}

func (v *Validator) compile(schemaDoc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(schemaDoc)

	v.mu.RLock()
	if s, ok := v.cache[key]; ok {
		v.mu.RUnlock()
		return s, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.cache[key]; ok {
		return s, nil
	}

	var doc any
	if err := json.Unmarshal(schemaDoc, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.cache[key] = compiled
	return compiled, nil
}
