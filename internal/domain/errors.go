package domain

import "errors"

// Sentinel errors surfaced by the catalog API layer
var (
	// ErrNotFound indicates a lookup by id found no record
	ErrNotFound = errors.New("record not found")

	// ErrInvalidEntityType indicates an unrecognized entity kind was requested
	ErrInvalidEntityType = errors.New("invalid entity type")
)
