package repository

import "errors"

// Common repository errors.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry means a write violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Resource specific aliases, so callers can be explicit about what was missing.
var (
	ErrUserNotFound    = ErrNotFound
	ErrItemNotFound    = ErrNotFound
	ErrLogNotFound     = ErrNotFound
	ErrSessionNotFound = ErrNotFound
	ErrCategoryUnknown = ErrNotFound
)
