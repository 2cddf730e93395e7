package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// UnmarshalJSON decodes an entity without ever failing on its attribute
// collection. A non-array "attributes" leaves Attributes nil and entries that
// are not objects are dropped.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind       Kind            `json:"kind"`
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		Attributes json.RawMessage `json:"attributes"`
		UpdatedAt  time.Time       `json:"updated_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Entity{
		Kind:       raw.Kind,
		ID:         raw.ID,
		Name:       raw.Name,
		UpdatedAt:  raw.UpdatedAt,
		Attributes: decodeAttributes(raw.Attributes),
	}
	return nil
}

// DecodeAttributes parses a stored attribute collection. It returns nil
// when data is not a JSON array.
func DecodeAttributes(data []byte) []Attribute {
	return decodeAttributes(data)
}

func decodeAttributes(data json.RawMessage) []Attribute {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil
	}

	attrs := make([]Attribute, 0, len(items))
	for _, item := range items {
		var a Attribute
		if err := a.UnmarshalJSON(item); err != nil {
			continue
		}
		attrs = append(attrs, a)
	}
	return attrs
}

// UnmarshalJSON decodes an attribute entry field by field. A field holding
// the wrong JSON type is treated as absent rather than as an error.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errNotObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}

	*a = Attribute{}
	if raw, ok := fields["name"]; ok {
		_ = json.Unmarshal(raw, &a.Name)
	}
	if raw, ok := fields["string-state"]; ok {
		var s string
		if json.Unmarshal(raw, &s) == nil && !isNull(raw) {
			a.StringState = &s
		}
	}
	if raw, ok := fields["boolean-state"]; ok {
		var b bool
		if json.Unmarshal(raw, &b) == nil && !isNull(raw) {
			a.BooleanState = &b
		}
	}
	if raw, ok := fields["numeric-state"]; ok {
		var n float64
		if json.Unmarshal(raw, &n) == nil && !isNull(raw) {
			a.NumericState = &n
		}
	}
	return nil
}

var errNotObject = errors.New("attribute entry is not a JSON object")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
