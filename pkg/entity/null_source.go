package entity

import "context"

// NullSource is an empty, disconnected source used when no database is
// available. Every lookup misses.
type NullSource struct{}

// NewNullSource creates a new NullSource.
func NewNullSource() *NullSource {
	return &NullSource{}
}

func (s *NullSource) List(ctx context.Context, kind Kind) ([]Entity, error) {
	return []Entity{}, nil
}

func (s *NullSource) Get(ctx context.Context, kind Kind, id string) (*Entity, error) {
	return nil, ErrNotFound
}

func (s *NullSource) Count(ctx context.Context, kind Kind) (int, error) {
	return 0, nil
}

func (s *NullSource) Ping(ctx context.Context) error {
	return ErrNotConnected
}
