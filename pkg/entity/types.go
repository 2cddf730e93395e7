package entity

import (
	"fmt"
	"time"
)

// Kind identifies which collection an entity belongs to.
type Kind string

// Entity kinds
const (
	KindDevice  Kind = "device"
	KindGroup   Kind = "group"
	KindAdapter Kind = "adapter"
)

// Kinds lists every entity kind in display order.
var Kinds = []Kind{KindDevice, KindGroup, KindAdapter}

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDevice, KindGroup, KindAdapter:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Entity is a managed object (device, group or adapter) with its attribute list.
type Entity struct {
	Kind       Kind        `json:"kind"`
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Attributes []Attribute `json:"attributes"` // nil when the entity has no attribute collection
	UpdatedAt  time.Time   `json:"updated_at,omitzero"`
}

// Attribute is one named state record. At most one state is expected to be
// set, but nothing enforces it.
type Attribute struct {
	Name         string   `json:"name"`
	StringState  *string  `json:"string-state,omitempty"`
	BooleanState *bool    `json:"boolean-state,omitempty"`
	NumericState *float64 `json:"numeric-state,omitempty"`
}

// AttributeNames returns the distinct attribute names in first-seen order.
func (e *Entity) AttributeNames() []string {
	if e == nil || len(e.Attributes) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(e.Attributes))
	names := make([]string, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		names = append(names, a.Name)
	}
	return names
}

// Event describes a change to a stored entity.
type Event struct {
	Type      string    `json:"type"` // entity_updated, entity_removed
	Kind      Kind      `json:"kind"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event type constants
const (
	EventUpdated = "entity_updated"
	EventRemoved = "entity_removed"
)
