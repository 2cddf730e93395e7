package entity

import "errors"

var (
	// ErrNotFound indicates an entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrNotConnected indicates the entity source is unavailable
	ErrNotConnected = errors.New("entity source not connected")

	// ErrValidation indicates an entity payload failed schema validation
	ErrValidation = errors.New("validation error")
)
