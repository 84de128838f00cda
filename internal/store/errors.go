package store

import "errors"

var (
	// ErrNotFound is returned by lookups that match no user.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("already exists")
)
