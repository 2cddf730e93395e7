package entity

import "context"

// Source defines read access to entities. Views and tools depend on this
// rather than on a concrete storage backend.
type Source interface {
	// List returns all entities of a kind ordered by ID
	List(ctx context.Context, kind Kind) ([]Entity, error)

	// Get returns a single entity by kind and ID
	Get(ctx context.Context, kind Kind, id string) (*Entity, error)

	// Count returns the number of entities of a kind
	Count(ctx context.Context, kind Kind) (int, error)

	// Ping reports whether the source is reachable
	Ping(ctx context.Context) error
}

// Store adds write access to a Source.
type Store interface {
	Source

	// Put creates or replaces an entity
	Put(ctx context.Context, e *Entity) error

	// Delete removes an entity
	Delete(ctx context.Context, kind Kind, id string) error
}

// EventSubscriber defines the interface for subscribing to entity changes
type EventSubscriber interface {
	// Subscribe returns a channel that receives entity events
	Subscribe() chan Event

	// Unsubscribe removes a subscription
	Unsubscribe(ch chan Event)
}
